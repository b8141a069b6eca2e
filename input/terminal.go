package input

import (
	"github.com/gdamore/tcell/v2"
)

// Action tells the terminal frontend what to do after an event
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
)

// CellPixel returns the half-block pixel at the centre of a terminal cell
// Each cell is one pixel wide and two pixels tall
func CellPixel(col, row int) (x, y float64) {
	return float64(col) + 0.5, float64(row)*2 + 1
}

// HandleTerminal applies a tcell event to the tracker
// Mouse motion moves the pointer; losing focus is the terminal's pointer-leave
func (t *Tracker) HandleTerminal(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyRune:
			if r := ev.Rune(); r == 'q' || r == 'Q' {
				return ActionQuit
			}
		}

	case *tcell.EventMouse:
		t.Move(CellPixel(ev.Position()))

	case *tcell.EventFocus:
		if !ev.Focused {
			t.Leave()
		}

	case *tcell.EventResize:
		return ActionResize
	}

	return ActionNone
}
