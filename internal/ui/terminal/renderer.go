// Package terminal renders the game into a tcell screen and maps key
// events to steering.
package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"snake/internal/domain"
	"snake/internal/ui/types"
)

// CellWidth is the number of terminal columns per grid cell; two columns
// keep cells roughly square.
const CellWidth = 2

const appleRune = '@'

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw paints walls, apple, snake and the status line below the field.
func (r *Renderer) Draw(gs *domain.GameState) {
	if gs == nil {
		return
	}
	r.screen.Clear()

	field := gs.Field
	wall := styleFor(types.WallColor(gs.Level))
	for y := int32(0); y < field.Height; y++ {
		for x := int32(0); x < field.Width; x++ {
			if field.IsBorder(domain.Coord{X: x, Y: y}) {
				r.fill(domain.Coord{X: x, Y: y}, ' ', wall)
			}
		}
	}

	apple := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	r.fill(gs.Apple, appleRune, apple)

	body := styleFor(types.ColorSnakeBody)
	for i := gs.Snake.Len() - 1; i > 0; i-- {
		r.fill(gs.Snake.At(i), ' ', body)
	}
	r.fill(gs.Snake.Head(), ' ', styleFor(types.ColorSnakeHead))

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	row := int(field.Height)
	r.print(0, row, StatusLine(gs), text)
	if !gs.Playing() {
		r.print(0, row+1, fmt.Sprintf("Game Over! Score: %d", gs.Score), text.Bold(true))
		r.print(0, row+2, "Press q or ESC to quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	r.screen.Show()
}

func StatusLine(gs *domain.GameState) string {
	return fmt.Sprintf("Score: %d  Level: %d", gs.Score, gs.Level)
}

func (r *Renderer) fill(c domain.Coord, ch rune, style tcell.Style) {
	x := int(c.X) * CellWidth
	y := int(c.Y)
	r.screen.SetContent(x, y, ch, nil, style)
	for i := 1; i < CellWidth; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func (r *Renderer) print(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
