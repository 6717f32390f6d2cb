package renderer

import (
	"context"

	"manorwalk/pkg/engine/input"
)

// Surface defines the interface for game rendering backends.
// Implementations are the terminal (tui) and the window (ebiten).
type Surface interface {
	// Init prepares the surface (colors, raw mode, window, etc.)
	Init() error

	// RenderFrame draws the manor, status bar and message log
	RenderFrame(v View)

	// RenderPicker draws the room offer on top of the manor
	RenderPicker(v PickerView)

	// NextIntent blocks until the player does something or ctx is done
	NextIntent(ctx context.Context) (input.Intent, error)

	// Close releases the surface
	Close() error
}

// Nop is a Surface that draws nothing and never yields an intent of its own.
// Intents pushed onto Intents are handed out in order.
type Nop struct {
	Intents []input.Intent
	Frames  int
	Pickers int
}

// Init implements Surface
func (n *Nop) Init() error { return nil }

// RenderFrame implements Surface
func (n *Nop) RenderFrame(View) { n.Frames++ }

// RenderPicker implements Surface
func (n *Nop) RenderPicker(PickerView) { n.Pickers++ }

// NextIntent implements Surface. It returns context.Canceled once the
// queued intents run out.
func (n *Nop) NextIntent(ctx context.Context) (input.Intent, error) {
	if err := ctx.Err(); err != nil {
		return input.Intent{}, err
	}
	if len(n.Intents) == 0 {
		return input.Intent{}, context.Canceled
	}
	next := n.Intents[0]
	n.Intents = n.Intents[1:]
	return next, nil
}

// Close implements Surface
func (n *Nop) Close() error { return nil }
