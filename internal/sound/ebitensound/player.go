// Package ebitensound plays cues through ebiten's audio context.
package ebitensound

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"snake/internal/assets"
	"snake/internal/domain"
	"snake/internal/sound"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

type Player struct {
	players map[domain.Cue]*audio.Player
}

// NewPlayer decodes every clip in the bundle. A clip that fails to decode is
// logged and its cue stays silent. The audio context is only created when
// at least one clip decodes.
func NewPlayer(bundle *assets.Bundle) *Player {
	p := &Player{players: make(map[domain.Cue]*audio.Player)}

	pcm := make(map[domain.Cue][]byte)
	for _, cue := range sound.Cues {
		data := sound.Clip(bundle, cue)
		if data == nil {
			continue
		}
		decoded, err := decode(data)
		if err != nil {
			log.Printf("AUDIO: %s clip unusable: %v", cue, err)
			continue
		}
		pcm[cue] = decoded
	}
	if len(pcm) == 0 {
		return p
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	for cue, data := range pcm {
		p.players[cue] = ctx.NewPlayerFromBytes(data)
	}
	return p
}

func (p *Player) Play(cue domain.Cue) {
	player, ok := p.players[cue]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("AUDIO: failed to rewind %s clip: %v", cue, err)
		return
	}
	player.Play()
}

func (p *Player) Has(cue domain.Cue) bool {
	_, ok := p.players[cue]
	return ok
}

func (p *Player) Close() {
	for cue, player := range p.players {
		if err := player.Close(); err != nil {
			log.Printf("AUDIO: failed to close %s player: %v", cue, err)
		}
	}
}

// decode turns a WAV file into 16-bit stereo PCM at the context rate.
func decode(data []byte) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav stream: %w", err)
	}
	return pcm, nil
}
