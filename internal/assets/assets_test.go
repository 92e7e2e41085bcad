package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}
}

func TestLoadAllPresent(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		Apple:    filepath.Join(dir, "apple.png"),
		LevelUp:  filepath.Join(dir, "levelup.wav"),
		GameOver: filepath.Join(dir, "gameover.wav"),
	}
	writePNG(t, paths.Apple)
	if err := os.WriteFile(paths.LevelUp, []byte("RIFF-level"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.GameOver, []byte("RIFF-over"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := Load(context.Background(), paths)

	if b.Apple == nil {
		t.Fatal("apple sprite not loaded")
	}
	if got := b.Apple.Bounds().Dx(); got != 4 {
		t.Errorf("apple width = %d, want 4", got)
	}
	if string(b.LevelUp) != "RIFF-level" {
		t.Errorf("level up clip = %q", b.LevelUp)
	}
	if string(b.GameOver) != "RIFF-over" {
		t.Errorf("game over clip = %q", b.GameOver)
	}
}

func TestLoadToleratesMissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		Apple:    filepath.Join(dir, "apple.png"),
		LevelUp:  filepath.Join(dir, "nope.wav"),
		GameOver: filepath.Join(dir, "gameover.wav"),
	}
	if err := os.WriteFile(paths.Apple, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.GameOver, []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := Load(context.Background(), paths)

	if b.Apple != nil {
		t.Error("corrupt sprite produced an image")
	}
	if b.LevelUp != nil {
		t.Error("missing clip produced data")
	}
	if b.GameOver == nil {
		t.Error("present clip not loaded alongside failures")
	}
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(context.Background(), filepath.Join(t.TempDir(), "apple.png"))
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("err = %v, want ErrMissing", err)
	}
}

func TestLoadClipEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadClip(context.Background(), path)
	if err == nil || errors.Is(err, ErrMissing) {
		t.Fatalf("err = %v, want a non-missing error", err)
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LoadClip(ctx, "levelup.wav"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
