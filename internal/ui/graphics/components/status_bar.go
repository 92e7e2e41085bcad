package components

import (
	"fmt"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// StatusBar writes score and level over the top wall.
type StatusBar struct {
	CellSize int
}

func NewStatusBar(cellSize int) *StatusBar {
	return &StatusBar{CellSize: cellSize}
}

func StatusLine(state *domain.GameState) string {
	return fmt.Sprintf("Score: %d  Level: %d", state.Score, state.Level)
}

func (sb *StatusBar) Draw(screen *ebiten.Image, state *domain.GameState) {
	fonts := types.GetFonts()
	line := StatusLine(state)
	bounds := text.BoundString(fonts.Small, line)
	y := (sb.CellSize + bounds.Dy()) / 2
	text.Draw(screen, line, fonts.Small, sb.CellSize, y, types.Darken(types.WallColor(state.Level), 0.3))
}
