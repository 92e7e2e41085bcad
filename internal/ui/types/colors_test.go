package types

import (
	"image/color"
	"testing"

	"snake/internal/domain"
)

func TestOneWallThemePerLevel(t *testing.T) {
	if got, want := len(WallColors), int(domain.DefaultGameConfig().MaxLevel); got != want {
		t.Fatalf("%d wall themes for %d levels", got, want)
	}
}

func TestWallColorClamps(t *testing.T) {
	tests := []struct {
		level int32
		want  color.RGBA
	}{
		{0, WallColors[0]},
		{1, WallColors[0]},
		{2, WallColors[1]},
		{4, WallColors[3]},
		{9, WallColors[3]},
	}
	for _, tt := range tests {
		if got := WallColor(tt.level); got != tt.want {
			t.Errorf("WallColor(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestDarkenLighten(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := Darken(c, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("Darken = %v", got)
	}
	if got := Lighten(c, 2); got != (color.RGBA{255, 200, 100, 255}) {
		t.Errorf("Lighten = %v", got)
	}
}
