package components

import (
	"image"

	"snake/internal/domain"
)

// CanvasSize is the pixel size of the whole grid.
func CanvasSize(field *domain.Field, cellSize int) (int, int) {
	return int(field.Width) * cellSize, int(field.Height) * cellSize
}

// WallRects returns the top, bottom, left and right walls, one cell thick.
func WallRects(field *domain.Field, cellSize int) []image.Rectangle {
	w, h := CanvasSize(field, cellSize)
	return []image.Rectangle{
		image.Rect(0, 0, w, cellSize),
		image.Rect(0, h-cellSize, w, h),
		image.Rect(0, 0, cellSize, h),
		image.Rect(w-cellSize, 0, w, h),
	}
}

// CenteredX returns the x that centres a run of the given width.
func CenteredX(canvasWidth, width int) int {
	return (canvasWidth - width) / 2
}
