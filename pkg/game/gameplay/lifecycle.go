package gameplay

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"manorwalk/pkg/engine/rng"
	"manorwalk/pkg/game/config"
	"manorwalk/pkg/game/renderer"
	"manorwalk/pkg/game/state"
)

// ErrTurnLimit is returned by Run when the configured turn limit is reached
var ErrTurnLimit = errors.New("turn limit reached")

// NewSession creates a game from cfg. A zero seed is derived from the clock.
func NewSession(cfg config.Config) *state.Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := state.NewGame(cfg.Rows, cfg.Cols, cfg.Inventory(), rng.New(seed))
	log.Printf("new session: seed=%d grid=%dx%d", seed, cfg.Rows, cfg.Cols)

	g.ClearMessages()
	logMessage(g, "HELP")
	return g
}

// Run plays g on surface until the session is resolved or ctx is done.
// maxTurns of 0 means no limit.
func Run(ctx context.Context, g *state.Game, surface renderer.Surface, picker RoomPicker, maxTurns int) (state.Result, error) {
	for {
		CheckEnd(g)
		surface.RenderFrame(renderer.NewView(g))
		if g.IsOver() {
			log.Printf("session over: %s after %d turns", g.Result, g.Stats.Turns)
			return g.Result, nil
		}

		if maxTurns > 0 && g.Stats.Turns >= maxTurns {
			return g.Result, fmt.Errorf("%w: %d", ErrTurnLimit, maxTurns)
		}

		intent, err := surface.NextIntent(ctx)
		if err != nil {
			return g.Result, err
		}
		if err := ProcessIntent(ctx, g, intent, picker); err != nil {
			return g.Result, err
		}
	}
}
