package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"snake/internal/app"
	"snake/internal/assets"
	"snake/internal/domain"
	"snake/internal/sound/beepsound"
	"snake/internal/ui/terminal"
)

const logFile = "snake-term.log"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	// The terminal belongs to tcell, so logs go to a file.
	if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bundle := assets.Load(ctx, assets.DefaultPaths())
	player := beepsound.NewPlayer(bundle)
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Cleanup()

	cfg := domain.DefaultGameConfig()
	application, err := app.NewApp(app.Config{Game: cfg, Sound: player})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	if err := application.Start(ctx); err != nil {
		screen.Fini()
		log.Fatalf("Failed to start app: %v", err)
	}

	runErr := terminal.Run(ctx, application, screen)
	application.Stop()
	screen.Fini()

	if runErr != nil {
		log.Printf("Terminal error: %v", runErr)
		os.Exit(1)
	}
}
