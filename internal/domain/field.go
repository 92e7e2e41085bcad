package domain

// Field is the playing grid. Unlike a torus it has hard edges: leaving it
// ends the game.
type Field struct {
	Width  int32
	Height int32
}

func NewField(width, height int32) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

func (f *Field) Move(c Coord, d Direction) Coord {
	return c.Add(d.Delta())
}

func (f *Field) Cells() int {
	return int(f.Width) * int(f.Height)
}

// IsBorder reports whether c lies on the outermost ring of cells, where the
// walls are painted.
func (f *Field) IsBorder(c Coord) bool {
	return c.X == 0 || c.Y == 0 || c.X == f.Width-1 || c.Y == f.Height-1
}
