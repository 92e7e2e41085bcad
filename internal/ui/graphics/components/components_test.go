package components

import (
	"image"
	"testing"

	"snake/internal/domain"
)

func TestCanvasSize(t *testing.T) {
	w, h := CanvasSize(domain.NewField(30, 20), 20)
	if w != 600 || h != 400 {
		t.Errorf("canvas = %dx%d, want 600x400", w, h)
	}
}

func TestWallRects(t *testing.T) {
	got := WallRects(domain.NewField(30, 20), 20)
	want := []image.Rectangle{
		image.Rect(0, 0, 600, 20),
		image.Rect(0, 380, 600, 400),
		image.Rect(0, 0, 20, 400),
		image.Rect(580, 0, 600, 400),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d walls, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("wall %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStatusLine(t *testing.T) {
	gs := &domain.GameState{Score: 120, Level: 3}
	if got, want := StatusLine(gs), "Score: 120  Level: 3"; got != want {
		t.Errorf("StatusLine = %q, want %q", got, want)
	}
}

func TestButtonClick(t *testing.T) {
	b := NewButton(10, 10, 100, 30, "Quit")

	if !b.Contains(10, 10) || b.Contains(110, 10) || b.Contains(50, 40) {
		t.Fatal("Contains bounds wrong")
	}

	steps := []struct {
		hovered, down, click bool
	}{
		{true, false, false},
		{true, true, false},
		{true, false, true},
		{true, true, false},
		{false, false, false},
		{false, true, false},
		{true, false, false},
	}
	for i, s := range steps {
		if got := b.track(s.hovered, s.down); got != s.click {
			t.Errorf("step %d: click = %v, want %v", i, got, s.click)
		}
	}
}
