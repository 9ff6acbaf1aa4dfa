// Package tui renders the grid to a terminal via tcell. Each grid cell is
// drawn as two terminal columns so cells come out roughly square.
package tui

import (
	"github.com/gdamore/tcell/v2"
)

// cellAspect is the number of terminal columns per grid cell.
const cellAspect = 2

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(80, 200, 120))
	deadStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(16, 16, 20))
	statusStyle = tcell.StyleDefault.
			Background(tcell.NewRGBColor(40, 50, 70)).
			Foreground(tcell.NewRGBColor(220, 220, 220))
)

// Surface owns the tcell screen.
type Surface struct {
	screen tcell.Screen
}

// New initializes the terminal, enabling mouse reporting.
func New() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(deadStyle)
	screen.EnableMouse()
	screen.Clear()
	return &Surface{screen: screen}, nil
}

// Fini restores the terminal.
func (s *Surface) Fini() { s.screen.Fini() }

// PollEvent blocks until the next terminal event.
func (s *Surface) PollEvent() tcell.Event { return s.screen.PollEvent() }

// Sync forces a full repaint after a resize.
func (s *Surface) Sync() { s.screen.Sync() }

// CellAt translates a terminal position to grid coordinates. The result may
// be out of range; callers rely on the sim ignoring such presses.
func (s *Surface) CellAt(px, py int) (int, int) {
	return px / cellAspect, py
}

// Draw paints the grid and a one-line status bar, then flushes the screen.
// Grid cells that do not fit the terminal are clipped; terminal cells outside
// the grid are painted dead so a shrunk grid leaves no stale cells behind.
func (s *Surface) Draw(cells []uint8, w, h int, status string) {
	tw, th := s.screen.Size()
	for y := 0; y < th-1; y++ {
		for px := 0; px < tw; px++ {
			x := px / cellAspect
			style := deadStyle
			if y < h && x < w && cells[y*w+x] != 0 {
				style = aliveStyle
			}
			s.screen.SetContent(px, y, ' ', nil, style)
		}
	}

	row := th - 1
	for i := 0; i < tw; i++ {
		r := ' '
		if i < len(status) {
			r = rune(status[i])
		}
		s.screen.SetContent(i, row, r, nil, statusStyle)
	}
	s.screen.Show()
}
