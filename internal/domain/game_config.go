package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid game config")

type GameConfig struct {
	Width    int32
	Height   int32
	CellSize int32

	InitialDelayMs int32
	MinDelayMs     int32
	DelayStepMs    int32

	InitialLength  int32
	StartX         int32
	StartY         int32
	StartDirection Direction

	ApplePoints int32
	LevelEvery  int32
	MaxLevel    int32

	// SelfCollisionGrace is the highest body index the head may overlap
	// without ending the game.
	SelfCollisionGrace int32
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:    30,
		Height:   20,
		CellSize: 20,

		InitialDelayMs: 200,
		MinDelayMs:     50,
		DelayStepMs:    10,

		InitialLength:  3,
		StartX:         3,
		StartY:         3,
		StartDirection: DirectionRight,

		ApplePoints: 10,
		LevelEvery:  50,
		MaxLevel:    4,

		SelfCollisionGrace: 4,
	}
}

func (c *GameConfig) Validate() error {
	if c.Width < 5 || c.Width > 200 {
		return fmt.Errorf("%w: width %d out of range [5, 200]", ErrInvalidConfig, c.Width)
	}
	if c.Height < 5 || c.Height > 200 {
		return fmt.Errorf("%w: height %d out of range [5, 200]", ErrInvalidConfig, c.Height)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.MinDelayMs < 1 || c.InitialDelayMs < c.MinDelayMs {
		return fmt.Errorf("%w: delays initial=%dms min=%dms", ErrInvalidConfig, c.InitialDelayMs, c.MinDelayMs)
	}
	if c.DelayStepMs < 0 {
		return fmt.Errorf("%w: negative delay step %dms", ErrInvalidConfig, c.DelayStepMs)
	}
	if !c.StartDirection.Valid() {
		return fmt.Errorf("%w: start direction %v", ErrInvalidConfig, c.StartDirection)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("%w: initial length %d", ErrInvalidConfig, c.InitialLength)
	}
	if c.ApplePoints < 1 || c.LevelEvery < c.ApplePoints {
		return fmt.Errorf("%w: apple points %d, level every %d", ErrInvalidConfig, c.ApplePoints, c.LevelEvery)
	}
	if c.MaxLevel < 1 {
		return fmt.Errorf("%w: max level %d", ErrInvalidConfig, c.MaxLevel)
	}
	if c.SelfCollisionGrace < 0 {
		return fmt.Errorf("%w: self collision grace %d", ErrInvalidConfig, c.SelfCollisionGrace)
	}

	field := NewField(c.Width, c.Height)
	head := Coord{c.StartX, c.StartY}
	tail := head.Add(scale(c.StartDirection.Opposite().Delta(), c.InitialLength-1))
	if !field.Contains(head) || !field.Contains(tail) {
		return fmt.Errorf("%w: snake %v..%v does not fit the %dx%d grid", ErrInvalidConfig, head, tail, c.Width, c.Height)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}

func (c *GameConfig) InitialInterval() time.Duration {
	return time.Duration(c.InitialDelayMs) * time.Millisecond
}

func scale(c Coord, n int32) Coord {
	return Coord{X: c.X * n, Y: c.Y * n}
}
