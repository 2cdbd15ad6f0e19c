package main

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/internal/config"
)

func newTestDemo(t *testing.T) (*demo, tcell.SimulationScreen, *bytes.Buffer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(20, 10)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.GridWidth, cfg.GridHeight = 6, 6
	cfg.Seed = 3
	cfg.ResetDelay = 0

	var buf bytes.Buffer
	d := newDemo(screen, cfg, log.New(&buf, "", 0))
	require.NoError(t, d.reset())
	return d, screen, &buf
}

func runToEnd(t *testing.T, d *demo) {
	t.Helper()
	now := time.Now()
	for i := 0; i < 100 && !d.search.State().Terminal(); i++ {
		require.NoError(t, d.tick(now))
	}
	require.True(t, d.search.State().Terminal(), "search did not finish")
}

func TestDemo_ResetLogsRun(t *testing.T) {
	d, _, buf := newTestDemo(t)
	assert.Contains(t, buf.String(), d.runID.String())
	assert.Contains(t, buf.String(), "6×6 grid")
}

func TestDemo_TickFinishesAndRestarts(t *testing.T) {
	d, _, buf := newTestDemo(t)
	runToEnd(t, d)
	first := d.runID
	assert.Regexp(t, "path found|no path", buf.String())

	require.NoError(t, d.tick(d.doneAt))
	assert.NotEqual(t, first, d.runID, "terminal search must regenerate after the reset delay")
	assert.False(t, d.search.State().Terminal())
}

func TestDemo_ReportsWhyNoPath(t *testing.T) {
	d, _, buf := newTestDemo(t)
	gg, err := gridgraph.Parse(gridgraph.Conn8,
		"..#..",
		"..#..",
		"..#..",
	)
	require.NoError(t, err)
	d.grid = gg
	d.search, err = astar.Initialize(gg, gg.Start(), gg.Goal(), astar.WithObserver(d.painter.Paint))
	require.NoError(t, err)

	runToEnd(t, d)
	require.Equal(t, astar.Exhausted, d.search.State())
	assert.Contains(t, buf.String(), "no path after")
	assert.Contains(t, buf.String(), "2 open regions, start region holds 6 cells")
	assert.Contains(t, buf.String(), "clearing 1 obstacles would connect start and goal")
}

func TestDemo_WaitsForResetDelay(t *testing.T) {
	d, _, _ := newTestDemo(t)
	d.cfg.ResetDelay = time.Hour
	runToEnd(t, d)
	first := d.runID

	require.NoError(t, d.tick(d.doneAt.Add(time.Minute)))
	assert.Equal(t, first, d.runID)
	require.NoError(t, d.tick(d.doneAt.Add(time.Hour)))
	assert.NotEqual(t, first, d.runID)
}

func TestDemo_Keys(t *testing.T) {
	d, _, _ := newTestDemo(t)

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		keep, err := d.handle(ev)
		require.NoError(t, err)
		assert.False(t, keep, "key %v should quit", ev.Name())
	}

	first := d.runID
	keep, err := d.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	require.NoError(t, err)
	assert.True(t, keep)
	assert.NotEqual(t, first, d.runID)

	keep, err = d.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	require.NoError(t, err)
	assert.True(t, keep)
}

// TestDemo_RepaintMatchesIncremental checks that a full redraw reproduces
// what the observer painted step by step.
func TestDemo_RepaintMatchesIncremental(t *testing.T) {
	d, screen, _ := newTestDemo(t)
	// Three steps close the start but cannot finish a 6×6 search.
	now := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, d.tick(now))
	}

	snapshot := func() []tcell.Style {
		var styles []tcell.Style
		for y := 0; y < d.cfg.GridHeight; y++ {
			for x := 0; x < d.cfg.GridWidth*2; x++ {
				_, _, st, _ := screen.GetContent(x, y)
				styles = append(styles, st)
			}
		}
		return styles
	}
	before := snapshot()

	keep, err := d.handle(tcell.NewEventResize(20, 10))
	require.NoError(t, err)
	require.True(t, keep)
	assert.Equal(t, before, snapshot())
}
