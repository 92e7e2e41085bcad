package ebitensound

import (
	"bytes"
	"encoding/binary"
	"testing"

	"snake/internal/assets"
	"snake/internal/domain"
)

// tone builds a 16-bit stereo PCM WAV file of n frames.
func tone(rate, n int) []byte {
	var buf bytes.Buffer
	dataLen := n * 4
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVEfmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint32(rate))
	binary.Write(&buf, binary.LittleEndian, uint32(rate*4))
	binary.Write(&buf, binary.LittleEndian, uint16(4))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	for i := 0; i < n; i++ {
		v := int16(1000)
		if i%2 == 0 {
			v = -1000
		}
		binary.Write(&buf, binary.LittleEndian, v)
		binary.Write(&buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	pcm, err := decode(tone(sampleRate, 100))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(pcm) != 400 {
		t.Errorf("pcm length = %d, want 400", len(pcm))
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := decode([]byte("definitely not a wav file")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewPlayerWithoutUsableClipsIsSilent(t *testing.T) {
	p := NewPlayer(&assets.Bundle{GameOver: []byte("garbage")})

	if p.Has(domain.CueLevelUp) || p.Has(domain.CueGameOver) {
		t.Fatal("player built for unusable clips")
	}
	p.Play(domain.CueLevelUp)
	p.Play(domain.CueGameOver)
	p.Close()
}
