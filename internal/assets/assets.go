// Package assets loads the apple sprite and the two sound clips. Absence of
// any asset is logged and tolerated: the matching field of the Bundle stays
// nil and the features that need it are skipped.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"os"

	"golang.org/x/sync/errgroup"
)

var ErrMissing = errors.New("asset missing")

type Paths struct {
	Apple    string
	LevelUp  string
	GameOver string
}

func DefaultPaths() Paths {
	return Paths{
		Apple:    "apple.png",
		LevelUp:  "levelup.wav",
		GameOver: "gameover.wav",
	}
}

type Bundle struct {
	Apple    image.Image
	LevelUp  []byte
	GameOver []byte
}

// Load reads every asset concurrently. It never fails; see the package doc.
func Load(ctx context.Context, paths Paths) *Bundle {
	bundle := &Bundle{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		img, err := LoadImage(ctx, paths.Apple)
		if err != nil {
			log.Printf("ASSETS: apple sprite unavailable, apple will not be drawn: %v", err)
			return nil
		}
		bundle.Apple = img
		return nil
	})

	g.Go(func() error {
		clip, err := LoadClip(ctx, paths.LevelUp)
		if err != nil {
			log.Printf("ASSETS: level up sound unavailable: %v", err)
			return nil
		}
		bundle.LevelUp = clip
		return nil
	})

	g.Go(func() error {
		clip, err := LoadClip(ctx, paths.GameOver)
		if err != nil {
			log.Printf("ASSETS: game over sound unavailable: %v", err)
			return nil
		}
		bundle.GameOver = clip
		return nil
	})

	_ = g.Wait()
	return bundle
}

func LoadImage(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, wrapOpen(path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadClip returns the raw bytes of an audio file. Decoding is left to the
// audio backend, which knows its own sample rate.
func LoadClip(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapOpen(path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("failed to read clip %s: empty file", path)
	}
	return data, nil
}

func wrapOpen(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrMissing, path)
	}
	return fmt.Errorf("failed to open %s: %w", path, err)
}
