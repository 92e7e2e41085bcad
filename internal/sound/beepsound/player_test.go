package beepsound

import (
	"bytes"
	"encoding/binary"
	"testing"

	"snake/internal/assets"
	"snake/internal/domain"
)

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
		binary.Write(&buf, binary.LittleEndian, int16(i*10))
		binary.Write(&buf, binary.LittleEndian, int16(-i*10))
	}
	return buf.Bytes()
}

func TestDecodeAtSpeakerRate(t *testing.T) {
	buf, err := decode(tone(int(sampleRate), 500))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if buf.Len() != 500 {
		t.Errorf("buffer length = %d, want 500", buf.Len())
	}
}

func TestDecodeResamples(t *testing.T) {
	buf, err := decode(tone(22050, 500))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if buf.Len() < 900 || buf.Len() > 1100 {
		t.Errorf("buffer length = %d, want about 1000", buf.Len())
	}
}

func TestNewPlayerSkipsBadClips(t *testing.T) {
	p := NewPlayer(&assets.Bundle{
		LevelUp:  tone(int(sampleRate), 100),
		GameOver: []byte("garbage"),
	})

	if !p.Has(domain.CueLevelUp) {
		t.Error("level up clip not decoded")
	}
	if p.Has(domain.CueGameOver) {
		t.Error("garbage clip accepted")
	}
}

func TestPlayBeforeInitializeIsSilent(t *testing.T) {
	p := NewPlayer(&assets.Bundle{LevelUp: tone(int(sampleRate), 100)})
	p.Play(domain.CueLevelUp)
	p.Cleanup()
}

func TestInitializeWithoutClipsSkipsSpeaker(t *testing.T) {
	p := NewPlayer(nil)
	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	p.Play(domain.CueGameOver)
}
