package terminal

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"snake/internal/app"
	"snake/internal/domain"
)

// Game is the part of app.App the terminal front-end drives.
type Game interface {
	State() *domain.GameState
	Events() <-chan app.AppEvent
	Steer(domain.Direction)
}

// Run draws every published snapshot and forwards key presses until the
// player quits or ctx is cancelled. The screen must already be initialised.
func Run(ctx context.Context, game Game, screen tcell.Screen) error {
	renderer := NewRenderer(screen)
	renderer.Draw(game.State())

	done := make(chan struct{})
	defer close(done)

	screenEvents := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case screenEvents <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-game.Events():
			switch event.Type {
			case app.AppEventStateUpdated:
				if state, ok := event.Payload.(*domain.GameState); ok {
					renderer.Draw(state)
				}
			case app.AppEventGameOver:
				if payload, ok := event.Payload.(app.GameOverPayload); ok {
					log.Printf("TERM: game over, score %d, level %d", payload.Score, payload.Level)
				}
			}

		case ev := <-screenEvents:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if IsQuit(ev) {
					return nil
				}
				if dir := KeyDirection(ev); dir.Valid() {
					game.Steer(dir)
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.Draw(game.State())
			}
		}
	}
}
