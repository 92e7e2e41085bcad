package domain

type Cue int

const (
	CueNone Cue = iota
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueLevelUp:
		return "level up"
	case CueGameOver:
		return "game over"
	}
	return "none"
}

type Input struct {
	Steer Direction
}

type TickResult struct {
	Ate       bool
	LeveledUp bool
	Collision bool
	Cues      []Cue
}

// Steer turns the snake right away. Reversals are ignored so the head can
// never fold back onto the neck.
func Steer(gs *GameState, dir Direction) *GameState {
	if !gs.Playing() || !dir.Valid() || dir == gs.Direction || dir.IsOpposite(gs.Direction) {
		return gs
	}
	next := gs.Copy()
	next.Direction = dir
	return next
}

// Step advances the game by one tick.
func Step(gs *GameState, input Input, rng Rand) (*GameState, TickResult) {
	var result TickResult
	if !gs.Playing() {
		return gs, result
	}

	current := Steer(gs, input.Steer)
	next := current.Copy()
	next.TickCount++

	head := next.Field.Move(next.Snake.Head(), next.Direction)
	if !next.Field.Contains(head) {
		return gameOver(current, &result), result
	}

	grow := head == next.Apple
	next.Snake.Advance(head, grow)

	if next.Snake.HitsBody(int(next.Config.SelfCollisionGrace)) {
		return gameOver(current, &result), result
	}

	if grow {
		result.Ate = true
		eatApple(next, rng, &result)
	}

	return next, result
}

func eatApple(gs *GameState, rng Rand, result *TickResult) {
	gs.Score += gs.Config.ApplePoints
	gs.Apple = LocateApple(gs.Field, rng)

	if gs.Score%gs.Config.LevelEvery != 0 {
		return
	}

	if gs.Level < gs.Config.MaxLevel {
		gs.Level++
	}
	gs.DelayMs -= gs.Config.DelayStepMs
	if gs.DelayMs < gs.Config.MinDelayMs {
		gs.DelayMs = gs.Config.MinDelayMs
	}
	result.LeveledUp = true
	result.Cues = append(result.Cues, CueLevelUp)
}

// gameOver freezes the snake at its last legal position.
func gameOver(gs *GameState, result *TickResult) *GameState {
	over := gs.Copy()
	over.TickCount++
	over.Phase = PhaseGameOver
	result.Collision = true
	result.Cues = append(result.Cues, CueGameOver)
	return over
}
