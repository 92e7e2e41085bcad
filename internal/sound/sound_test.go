package sound

import (
	"testing"

	"snake/internal/assets"
	"snake/internal/domain"
)

func TestClip(t *testing.T) {
	b := &assets.Bundle{LevelUp: []byte("up"), GameOver: []byte("over")}

	tests := []struct {
		cue  domain.Cue
		want string
	}{
		{domain.CueLevelUp, "up"},
		{domain.CueGameOver, "over"},
		{domain.CueNone, ""},
	}
	for _, tt := range tests {
		if got := string(Clip(b, tt.cue)); got != tt.want {
			t.Errorf("Clip(%v) = %q, want %q", tt.cue, got, tt.want)
		}
	}
	if Clip(nil, domain.CueLevelUp) != nil {
		t.Error("nil bundle produced a clip")
	}
}

func TestSilentAndRecorder(t *testing.T) {
	var p Player = Silent{}
	p.Play(domain.CueGameOver)

	r := &Recorder{}
	p = r
	p.Play(domain.CueLevelUp)
	p.Play(domain.CueGameOver)
	played := r.Played()
	if len(played) != 2 || played[0] != domain.CueLevelUp || played[1] != domain.CueGameOver {
		t.Errorf("played = %v", played)
	}
}
