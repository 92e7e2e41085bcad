package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake/internal/app"
	"snake/internal/assets"
	"snake/internal/domain"
	"snake/internal/sound/ebitensound"
	"snake/internal/ui/graphics"
	"snake/internal/ui/types"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bundle := assets.Load(ctx, assets.DefaultPaths())
	player := ebitensound.NewPlayer(bundle)
	defer player.Close()

	cfg := domain.DefaultGameConfig()
	application, err := app.NewApp(app.Config{Game: cfg, Sound: player})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	engine := graphics.NewEngine(cfg, bundle.Apple)
	engine.SetState(application.State())

	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		application.Stop()
		cancel()
		os.Exit(0)
	}()

	go handleAppEvents(application, engine)
	go handleUIEvents(application, engine)

	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}

	application.Stop()
}

func handleAppEvents(application *app.App, engine *graphics.Engine) {
	for event := range application.Events() {
		switch event.Type {
		case app.AppEventStateUpdated:
			if state, ok := event.Payload.(*domain.GameState); ok {
				engine.SetState(state)
			}

		case app.AppEventLevelUp:
			if payload, ok := event.Payload.(app.LevelUpPayload); ok {
				log.Printf("Level up: %d", payload.Level)
			}

		case app.AppEventGameOver:
			engine.SetState(application.State())
			engine.SetScreen(types.ScreenGameOver)
		}
	}
}

func handleUIEvents(application *app.App, engine *graphics.Engine) {
	for event := range engine.Events() {
		switch event.Type {
		case types.UIEventSteer:
			data := event.Payload.(types.SteerData)
			application.Steer(data.Direction)

		case types.UIEventQuit:
			log.Println("Quit requested")
		}
	}
}
