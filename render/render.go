// Package render paints grid search progress onto a tcell screen.
//
// Painter.Paint has the astar observer signature, so a Painter can be passed
// straight to astar.WithObserver. Each grid cell occupies CellWidth terminal
// columns and one row; cells that fall outside the screen are clipped.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/coord"
)

// CellWidth is the number of terminal columns per grid cell, which keeps cells roughly square.
const CellWidth = 2

// Palette maps cell states to background colors.
type Palette map[astar.CellState]tcell.Color

// DefaultPalette mirrors the classic demo colors.
func DefaultPalette() Palette {
	return Palette{
		astar.Unexplored: tcell.NewHexColor(0x222222),
		astar.Blocked:    tcell.ColorBlack,
		astar.Frontier:   tcell.NewHexColor(0x551111),
		astar.Visited:    tcell.NewHexColor(0x111155),
		astar.Path:       tcell.NewHexColor(0x009900),
	}
}

// Painter draws cells and a one-line status bar.
type Painter struct {
	screen  tcell.Screen
	palette Palette
}

// NewPainter returns a Painter drawing at the top-left corner of screen.
// A nil palette selects DefaultPalette.
func NewPainter(screen tcell.Screen, palette Palette) *Painter {
	if palette == nil {
		palette = DefaultPalette()
	}

	return &Painter{screen: screen, palette: palette}
}

// Style returns the style used for a cell state.
func (p *Painter) Style(s astar.CellState) tcell.Style {
	return tcell.StyleDefault.Background(p.palette[s])
}

// Paint fills the screen area of c with the color of s.
func (p *Painter) Paint(c coord.Cell, s astar.CellState) {
	w, h := p.screen.Size()
	y := c.Row
	if y < 0 || y >= h {
		return
	}
	style := p.Style(s)
	x0 := c.Col * CellWidth
	for x := x0; x < x0+CellWidth; x++ {
		if x < 0 || x >= w {
			continue
		}
		p.screen.SetContent(x, y, ' ', nil, style)
	}
}

// Status writes text on the bottom screen row, padding the rest of the row.
func (p *Painter) Status(text string) {
	w, h := p.screen.Size()
	if h == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	runes := []rune(text)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		p.screen.SetContent(x, h-1, ch, nil, style)
	}
}

// Fits reports whether a height×width grid plus the status row fits on screen.
func (p *Painter) Fits(height, width int) bool {
	w, h := p.screen.Size()
	return width*CellWidth <= w && height < h
}

// Clear blanks the whole screen.
func (p *Painter) Clear() {
	p.screen.Clear()
}

// Show flushes pending changes to the terminal.
func (p *Painter) Show() {
	p.screen.Show()
}
