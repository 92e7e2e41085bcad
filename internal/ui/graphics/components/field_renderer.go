package components

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer paints the grid with no offset: the canvas is exactly
// Width*CellSize by Height*CellSize.
type FieldRenderer struct {
	CellSize int
	apple    *ebiten.Image
}

// NewFieldRenderer takes the apple sprite, which may be nil.
func NewFieldRenderer(cellSize int, apple *ebiten.Image) *FieldRenderer {
	return &FieldRenderer{
		CellSize: cellSize,
		apple:    apple,
	}
}

func (fr *FieldRenderer) DrawWalls(screen *ebiten.Image, field *domain.Field, level int32) {
	for _, r := range WallRects(field, fr.CellSize) {
		vector.DrawFilledRect(screen,
			float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()),
			types.WallColor(level), false)
	}
}

// DrawApple is a no-op without a sprite.
func (fr *FieldRenderer) DrawApple(screen *ebiten.Image, apple domain.Coord) {
	if fr.apple == nil {
		return
	}

	b := fr.apple.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(fr.CellSize)/float64(b.Dx()), float64(fr.CellSize)/float64(b.Dy()))
	op.GeoM.Translate(float64(int(apple.X)*fr.CellSize), float64(int(apple.Y)*fr.CellSize))
	screen.DrawImage(fr.apple, op)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, snake *domain.Snake) {
	if snake == nil {
		return
	}

	size := float32(fr.CellSize)
	for i, cell := range snake.Body() {
		c := types.ColorSnakeBody
		if i == 0 {
			c = types.ColorSnakeHead
		}
		vector.DrawFilledRect(screen,
			float32(int(cell.X)*fr.CellSize), float32(int(cell.Y)*fr.CellSize),
			size, size, c, false)
	}
}
