package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"manorwalk/pkg/engine/terminal"
	"manorwalk/pkg/game/config"
	"manorwalk/pkg/game/gameplay"
	"manorwalk/pkg/game/picker"
	"manorwalk/pkg/game/renderer/ebiten"
	"manorwalk/pkg/game/renderer/tui"
	"manorwalk/pkg/game/state"
	"manorwalk/pkg/game/text"
)

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	config.Set(cfg)

	terminalSurface := useTUI(cfg.Renderer)
	closeLog, err := setupLog(cfg.LogFile, terminalSurface)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := gameplay.NewSession(cfg)

	var result state.Result
	if terminalSurface {
		result, err = runTUI(ctx, g, cfg)
	} else {
		result, err = runWindow(ctx, g, cfg)
	}

	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, ebiten.ErrWindowClosed) {
		log.Printf("session ended with error: %v", err)
		fmt.Fprintln(os.Stderr, err)
	}
	fmt.Println(text.Get("GOODBYE"))

	if result.IsLoss() {
		closeLog()
		stop()
		os.Exit(1)
	}
}

// setupLog sends diagnostics to path. Without a path they stay on stderr,
// unless the terminal surface owns the screen, in which case they are dropped.
func setupLog(path string, terminalSurface bool) (func(), error) {
	if path == "" {
		if terminalSurface {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func useTUI(name string) bool {
	switch name {
	case config.RendererTUI:
		return true
	case config.RendererEbiten:
		return false
	default:
		return terminal.IsInteractive()
	}
}

// runTUI plays the session in the terminal on the main goroutine
func runTUI(ctx context.Context, g *state.Game, cfg config.Config) (state.Result, error) {
	surface := tui.New(os.Stdin, os.Stdout)
	if err := surface.Init(); err != nil {
		return g.Result, err
	}
	defer surface.Close()

	return gameplay.Run(ctx, g, surface, &picker.Interactive{Surface: surface}, cfg.MaxTurns)
}

// runWindow runs the ebiten loop on the main goroutine and the session
// beside it. The window stays open on the result until a key is pressed.
func runWindow(ctx context.Context, g *state.Game, cfg config.Config) (state.Result, error) {
	surface := ebiten.New()
	if err := surface.Init(); err != nil {
		return g.Result, err
	}

	eg, ctx := errgroup.WithContext(ctx)
	var result state.Result
	eg.Go(func() error {
		defer surface.Close()

		var err error
		result, err = gameplay.Run(ctx, g, surface, &picker.Interactive{Surface: surface}, cfg.MaxTurns)
		if err != nil {
			return err
		}
		_, err = surface.NextIntent(ctx)
		if errors.Is(err, ebiten.ErrWindowClosed) {
			return nil
		}
		return err
	})

	if err := surface.Run(); err != nil {
		log.Printf("window loop: %v", err)
	}
	err := eg.Wait()
	return result, err
}
