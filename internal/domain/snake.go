package domain

import "github.com/gammazero/deque"

// Snake is an ordered run of cells with the head at index 0. Moving is a
// push to the front plus a pop from the back, so no segment is ever shifted.
type Snake struct {
	body deque.Deque[Coord]
}

// NewSnake lays out length cells starting at head and trailing away from
// the direction of travel.
func NewSnake(head Coord, heading Direction, length int32) *Snake {
	s := &Snake{}
	back := heading.Opposite().Delta()
	current := head
	for i := int32(0); i < length; i++ {
		s.body.PushBack(current)
		current = current.Add(back)
	}
	return s
}

func NewSnakeFromBody(body []Coord) *Snake {
	s := &Snake{}
	for _, c := range body {
		s.body.PushBack(c)
	}
	return s
}

func (s *Snake) Head() Coord {
	if s.body.Len() == 0 {
		return Coord{}
	}
	return s.body.Front()
}

func (s *Snake) Len() int {
	return s.body.Len()
}

func (s *Snake) At(i int) Coord {
	return s.body.At(i)
}

func (s *Snake) Body() []Coord {
	result := make([]Coord, s.body.Len())
	for i := range result {
		result[i] = s.body.At(i)
	}
	return result
}

func (s *Snake) Contains(c Coord) bool {
	return s.body.Index(func(cell Coord) bool { return cell == c }) >= 0
}

// HitsBody reports whether the head overlaps a segment beyond the first
// grace segments.
func (s *Snake) HitsBody(grace int) bool {
	head := s.Head()
	for i := grace + 1; i < s.body.Len(); i++ {
		if s.body.At(i) == head {
			return true
		}
	}
	return false
}

func (s *Snake) Clone() *Snake {
	cp := &Snake{}
	for i := 0; i < s.body.Len(); i++ {
		cp.body.PushBack(s.body.At(i))
	}
	return cp
}

// Advance moves the head to next. The tail is dropped unless grow is set.
func (s *Snake) Advance(next Coord, grow bool) {
	s.body.PushFront(next)
	if !grow {
		s.body.PopBack()
	}
}
