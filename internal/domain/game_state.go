package domain

import (
	"fmt"
	"time"
)

type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game over"
	}
	return "playing"
}

// Rand is the randomness the simulation consumes. *golang.org/x/exp/rand.Rand
// satisfies it.
type Rand interface {
	Int31n(n int32) int32
}

// GameState is a value between ticks: Step and Steer never modify the state
// they are given, they return a new one.
type GameState struct {
	Field  *Field
	Config *GameConfig

	Snake     *Snake
	Direction Direction
	Apple     Coord

	Score     int32
	Level     int32
	DelayMs   int32
	Phase     Phase
	TickCount int64
}

func NewGameState(config *GameConfig, rng Rand) (*GameState, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game state: %w", err)
	}

	field := NewField(config.Width, config.Height)
	gs := &GameState{
		Field:     field,
		Config:    config.Copy(),
		Snake:     NewSnake(Coord{config.StartX, config.StartY}, config.StartDirection, config.InitialLength),
		Direction: config.StartDirection,
		Level:     1,
		DelayMs:   config.InitialDelayMs,
		Phase:     PhasePlaying,
	}
	gs.Apple = LocateApple(field, rng)
	return gs, nil
}

// LocateApple picks a cell uniformly over the whole grid. The snake is not
// excluded, so the apple may land underneath it.
func LocateApple(field *Field, rng Rand) Coord {
	return Coord{
		X: rng.Int31n(field.Width),
		Y: rng.Int31n(field.Height),
	}
}

func (gs *GameState) Copy() *GameState {
	cp := *gs
	cp.Field = NewField(gs.Field.Width, gs.Field.Height)
	cp.Config = gs.Config.Copy()
	cp.Snake = gs.Snake.Clone()
	return &cp
}

// Snapshot is the copy handed to render sinks.
func (gs *GameState) Snapshot() *GameState {
	return gs.Copy()
}

func (gs *GameState) Playing() bool {
	return gs.Phase == PhasePlaying
}

func (gs *GameState) Dots() int {
	return gs.Snake.Len()
}

func (gs *GameState) Interval() time.Duration {
	return time.Duration(gs.DelayMs) * time.Millisecond
}
