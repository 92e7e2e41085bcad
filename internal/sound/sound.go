// Package sound plays the audio cues raised by the simulation. Playback is
// fire-and-forget: Play never blocks and never reports failure to the
// caller.
package sound

import (
	"sync"

	"snake/internal/assets"
	"snake/internal/domain"
)

type Player interface {
	Play(cue domain.Cue)
}

// Silent drops every cue.
type Silent struct{}

func (Silent) Play(domain.Cue) {}

// Cues lists the cues that have a clip.
var Cues = []domain.Cue{domain.CueLevelUp, domain.CueGameOver}

// Clip returns the encoded clip for cue, or nil when the bundle has none.
func Clip(bundle *assets.Bundle, cue domain.Cue) []byte {
	if bundle == nil {
		return nil
	}
	switch cue {
	case domain.CueLevelUp:
		return bundle.LevelUp
	case domain.CueGameOver:
		return bundle.GameOver
	}
	return nil
}

// Recorder keeps every cue it is asked to play. Headless runs use it in
// place of a device.
type Recorder struct {
	mu     sync.Mutex
	played []domain.Cue
}

func (r *Recorder) Play(cue domain.Cue) {
	r.mu.Lock()
	r.played = append(r.played, cue)
	r.mu.Unlock()
}

func (r *Recorder) Played() []domain.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Cue(nil), r.played...)
}
