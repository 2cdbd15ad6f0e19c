package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/coord"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/internal/config"
	"github.com/katalvlaran/gridsearch/render"
)

// demo runs generate → search → pause → regenerate forever.
type demo struct {
	screen  tcell.Screen
	painter *render.Painter
	cfg     config.Config
	logger  *log.Logger
	rng     *rand.Rand

	runID  uuid.UUID
	grid   *gridgraph.GridGraph
	search *astar.Search
	doneAt time.Time
}

func newDemo(screen tcell.Screen, cfg config.Config, logger *log.Logger) *demo {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &demo{
		screen:  screen,
		painter: render.NewPainter(screen, nil),
		cfg:     cfg,
		logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// reset generates a fresh grid and starts a new search over it.
func (d *demo) reset() error {
	grid, err := gridgraph.Generate(d.cfg.GridHeight, d.cfg.GridWidth,
		gridgraph.WithScale(d.cfg.ObstacleScale),
		gridgraph.WithRand(d.rng),
	)
	if err != nil {
		return fmt.Errorf("generate grid: %w", err)
	}

	d.painter.Clear()
	search, err := astar.Initialize(grid, grid.Start(), grid.Goal(), astar.WithObserver(d.painter.Paint))
	if err != nil {
		return fmt.Errorf("initialize search: %w", err)
	}

	d.runID = uuid.New()
	d.grid = grid
	d.search = search
	d.doneAt = time.Time{}
	d.logger.Printf("[APP] [INFO] run %s: %d×%d grid, %d blocked cells",
		d.runID, d.cfg.GridHeight, d.cfg.GridWidth, grid.BlockedCount())
	if !d.painter.Fits(d.cfg.GridHeight, d.cfg.GridWidth) {
		d.logger.Printf("[APP] [WARN] run %s: grid is larger than the terminal and will be clipped", d.runID)
	}
	d.status()
	d.painter.Show()

	return nil
}

// tick advances the search by one frame, or regenerates once the pause after a result has elapsed.
func (d *demo) tick(now time.Time) error {
	if d.search.State().Terminal() {
		if now.Sub(d.doneAt) >= d.cfg.ResetDelay {
			return d.reset()
		}
		return nil
	}

	for i := 0; i < d.cfg.StepsPerFrame; i++ {
		res, err := d.search.Step()
		if err != nil {
			return fmt.Errorf("run %s: step: %w", d.runID, err)
		}
		if res.Terminal() {
			d.doneAt = now
			d.report(res)
			break
		}
	}
	d.status()
	d.painter.Show()

	return nil
}

// handle processes one terminal event and reports whether the demo should keep running.
func (d *demo) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			d.logger.Printf("[APP] [INFO] run %s: reset requested", d.runID)
			return true, d.reset()
		}
	case *tcell.EventResize:
		d.screen.Sync()
		d.repaint()
	}

	return true, nil
}

// repaint redraws every cell from the search state after the screen was resized.
func (d *demo) repaint() {
	d.painter.Clear()
	for r := 0; r < d.grid.Height; r++ {
		for c := 0; c < d.grid.Width; c++ {
			cell := coord.Cell{Row: r, Col: c}
			d.painter.Paint(cell, d.cellState(cell))
		}
	}
	if path, err := d.search.Path(); err == nil {
		for _, c := range path {
			d.painter.Paint(c, astar.Path)
		}
	}
	d.status()
	d.painter.Show()
}

func (d *demo) cellState(c coord.Cell) astar.CellState {
	switch {
	case d.grid.IsBlocked(c):
		return astar.Blocked
	case d.search.Closed(c):
		return astar.Visited
	case d.search.InOpen(c):
		return astar.Frontier
	default:
		return astar.Unexplored
	}
}

func (d *demo) report(res astar.StepResult) {
	if res == astar.Found {
		cost, _ := d.search.Cost()
		path, _ := d.search.Path()
		d.logger.Printf("[APP] [INFO] run %s: path found, %d cells, cost %.3f, %d steps, %d expanded",
			d.runID, len(path), cost, d.search.Steps(), d.search.Expanded())
		return
	}

	d.logger.Printf("[APP] [INFO] run %s: no path after %d steps, %d expanded",
		d.runID, d.search.Steps(), d.search.Expanded())
	regions, startRegion := d.regions()
	d.logger.Printf("[APP] [INFO] run %s: %d open regions, start region holds %d cells",
		d.runID, regions, startRegion)
	if _, removals, err := d.grid.MinClearance(d.grid.Start(), d.grid.Goal()); err == nil {
		d.logger.Printf("[APP] [INFO] run %s: clearing %d obstacles would connect start and goal", d.runID, removals)
	}
}

// regions returns the number of open regions and the size of the one holding the start.
func (d *demo) regions() (count, startSize int) {
	comps := d.grid.ConnectedComponents()
	start := d.grid.Start()
	for _, comp := range comps {
		for _, idx := range comp {
			if d.grid.Coordinate(idx) == start {
				startSize = len(comp)
				break
			}
		}
	}

	return len(comps), startSize
}

func (d *demo) status() {
	d.painter.Status(fmt.Sprintf(" %s | steps %d | open %d | closed %d | r: reset  q: quit",
		d.search.State(), d.search.Steps(), d.search.OpenLen(), d.search.Expanded()))
}
