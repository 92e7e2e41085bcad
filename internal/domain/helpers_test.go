package domain

import "testing"

// scriptedRand replays fixed values, reduced modulo n.
type scriptedRand struct {
	values []int32
	next   int
}

func (r *scriptedRand) Int31n(n int32) int32 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func newTestState(t testing.TB, rng Rand) *GameState {
	t.Helper()
	gs, err := NewGameState(DefaultGameConfig(), rng)
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	return gs
}

func withApple(gs *GameState, c Coord) *GameState {
	next := gs.Copy()
	next.Apple = c
	return next
}
