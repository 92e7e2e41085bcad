package terminal

import (
	"github.com/gdamore/tcell/v2"

	"snake/internal/domain"
)

// KeyDirection maps arrow keys and WASD to a direction. Other keys map to
// DirectionNone.
func KeyDirection(ev *tcell.EventKey) domain.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return domain.DirectionUp
	case tcell.KeyDown:
		return domain.DirectionDown
	case tcell.KeyLeft:
		return domain.DirectionLeft
	case tcell.KeyRight:
		return domain.DirectionRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return domain.DirectionUp
		case 's', 'S':
			return domain.DirectionDown
		case 'a', 'A':
			return domain.DirectionLeft
		case 'd', 'D':
			return domain.DirectionRight
		}
	}
	return domain.DirectionNone
}

func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
