// Package beepsound plays cues through the beep speaker. It serves the
// terminal front-end, which has no ebiten audio context.
package beepsound

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"time"

	"snake/internal/assets"
	"snake/internal/domain"
	"snake/internal/sound"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(44100)
	resampleQ  = 4
)

type Player struct {
	mu          sync.Mutex
	buffers     map[domain.Cue]*beep.Buffer
	initialized bool
}

func NewPlayer(bundle *assets.Bundle) *Player {
	p := &Player{buffers: make(map[domain.Cue]*beep.Buffer)}
	for _, cue := range sound.Cues {
		data := sound.Clip(bundle, cue)
		if data == nil {
			continue
		}
		buf, err := decode(data)
		if err != nil {
			log.Printf("AUDIO: %s clip unusable: %v", cue, err)
			continue
		}
		p.buffers[cue] = buf
	}
	return p
}

// Initialize opens the speaker. Without clips there is nothing to open.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || len(p.buffers) == 0 {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

func (p *Player) Play(cue domain.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	buf, ok := p.buffers[cue]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

func (p *Player) Has(cue domain.Cue) bool {
	_, ok := p.buffers[cue]
	return ok
}

func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// decode reads a WAV clip into memory at the speaker rate.
func decode(data []byte) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQ, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("failed to decode wav: no samples")
	}
	return buf, nil
}
