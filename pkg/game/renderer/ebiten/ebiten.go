package ebiten

import (
	"context"
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "manorwalk/pkg/engine/input"
	"manorwalk/pkg/game/renderer"
	gametext "manorwalk/pkg/game/text"
)

// ErrWindowClosed is returned by NextIntent once the window is gone
var ErrWindowClosed = errors.New("window closed")

// New creates a window renderer. Run must be called on the main goroutine.
func New() *EbitenRenderer {
	return &EbitenRenderer{
		tileSize:       defaultTileSize,
		inputChan:      make(chan engineinput.Intent, intentBuffer),
		closed:         make(chan struct{}),
		keyRepeatState: make(map[string]keyRepeatInfo),
		now:            func() int64 { return time.Now().UnixMilli() },
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(gametext.Get("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run() error {
	defer e.Close()
	return ebiten.RunGame(e)
}

// RenderFrame replaces the frame drawn by the window
func (e *EbitenRenderer) RenderFrame(v renderer.View) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot = renderSnapshot{valid: true, view: v}
}

// RenderPicker draws the room offer over the manor
func (e *EbitenRenderer) RenderPicker(pv renderer.PickerView) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot = renderSnapshot{valid: true, view: pv.Frame, picker: pv, showPicker: true}
}

// NextIntent blocks until a key press arrives, ctx is done or the window closes
func (e *EbitenRenderer) NextIntent(ctx context.Context) (engineinput.Intent, error) {
	select {
	case intent := <-e.inputChan:
		return intent, nil
	case <-ctx.Done():
		return engineinput.Intent{}, ctx.Err()
	case <-e.closed:
		return engineinput.Intent{}, ErrWindowClosed
	}
}

// Close asks the window to shut down. It is safe to call more than once.
func (e *EbitenRenderer) Close() error {
	e.closeOnce.Do(func() { close(e.closed) })
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
