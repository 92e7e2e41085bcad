package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"snake/internal/domain"
	"snake/internal/sound"

	"golang.org/x/exp/rand"
)

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventStateUpdated AppEventType = iota
	AppEventLevelUp
	AppEventGameOver
)

func (t AppEventType) String() string {
	switch t {
	case AppEventStateUpdated:
		return "state updated"
	case AppEventLevelUp:
		return "level up"
	case AppEventGameOver:
		return "game over"
	}
	return fmt.Sprintf("event(%d)", int(t))
}

type LevelUpPayload struct {
	Level   int32
	DelayMs int32
}

type GameOverPayload struct {
	Score int32
	Level int32
}

type Config struct {
	Game  *domain.GameConfig
	Rand  domain.Rand
	Sound sound.Player
	// Clock is built from the initial delay when nil.
	Clock Ticker
}

// App owns the game state. Only the run loop goroutine reads or writes it;
// render sinks get snapshots through Events and State.
type App struct {
	rng   domain.Rand
	sound sound.Player
	clock Ticker

	state *domain.GameState

	snapshot *domain.GameState
	snapMu   sync.RWMutex

	eventCh chan AppEvent
	inputCh chan domain.Direction

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewApp(cfg Config) (*App, error) {
	if cfg.Game == nil {
		cfg.Game = domain.DefaultGameConfig()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if cfg.Sound == nil {
		cfg.Sound = sound.Silent{}
	}

	state, err := domain.NewGameState(cfg.Game, cfg.Rand)
	if err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	return &App{
		rng:      cfg.Rand,
		sound:    cfg.Sound,
		clock:    cfg.Clock,
		state:    state,
		snapshot: state.Snapshot(),
		eventCh:  make(chan AppEvent, 100),
		inputCh:  make(chan domain.Direction, 16),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)

	if a.clock == nil {
		a.clock = NewClock(a.state.Interval())
	}

	a.wg.Add(1)
	go a.runLoop()

	log.Printf("APP: game started, %dx%d grid, tick %v", a.state.Field.Width, a.state.Field.Height, a.state.Interval())
	a.publish(AppEvent{Type: AppEventStateUpdated, Payload: a.State()})

	return nil
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
	if a.clock != nil {
		a.clock.Stop()
	}
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

// State returns the latest snapshot. Callers may keep it; it is never
// modified afterwards.
func (a *App) State() *domain.GameState {
	a.snapMu.RLock()
	defer a.snapMu.RUnlock()
	return a.snapshot
}

// Steer requests a direction change. It does not block; the change is
// applied as soon as the run loop picks it up, not on the next tick.
func (a *App) Steer(dir domain.Direction) {
	select {
	case a.inputCh <- dir:
	default:
		log.Println("APP: input channel full, dropping steer")
	}
}

func (a *App) runLoop() {
	defer a.wg.Done()

	for {
		select {
		case <-a.ctx.Done():
			return

		case dir := <-a.inputCh:
			a.handleSteer(dir)

		case <-a.clock.C():
			a.doTick()
		}
	}
}

func (a *App) handleSteer(dir domain.Direction) {
	next := domain.Steer(a.state, dir)
	if next == a.state {
		return
	}
	a.state = next
	a.storeSnapshot()
}

func (a *App) doTick() {
	prev := a.state
	next, result := domain.Step(prev, domain.Input{}, a.rng)
	if next == prev {
		return
	}
	a.state = next
	snap := a.storeSnapshot()

	for _, cue := range result.Cues {
		a.sound.Play(cue)
	}

	if next.DelayMs != prev.DelayMs {
		a.clock.Reset(next.Interval())
	}
	if !next.Playing() {
		a.clock.Stop()
	}

	a.publish(AppEvent{Type: AppEventStateUpdated, Payload: snap})

	if result.LeveledUp {
		log.Printf("APP: level %d, score %d, tick %v", next.Level, next.Score, next.Interval())
		a.publish(AppEvent{
			Type:    AppEventLevelUp,
			Payload: LevelUpPayload{Level: next.Level, DelayMs: next.DelayMs},
		})
	}

	if !next.Playing() {
		log.Printf("APP: game over, score %d", next.Score)
		a.publish(AppEvent{
			Type:    AppEventGameOver,
			Payload: GameOverPayload{Score: next.Score, Level: next.Level},
		})
	}
}

func (a *App) storeSnapshot() *domain.GameState {
	snap := a.state.Snapshot()
	a.snapMu.Lock()
	a.snapshot = snap
	a.snapMu.Unlock()
	return snap
}

func (a *App) publish(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Printf("APP: event channel full, dropping %v", event.Type)
	}
}
