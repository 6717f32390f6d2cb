package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "manorwalk/pkg/engine/input"
)

// keyBinding ties a physical key to the device code the binding table knows
type keyBinding struct {
	key    ebiten.Key
	code   string
	repeat bool // Held keys fire again after keyRepeatInitialDelay
}

// keyboard lists the keys checked every tick, in priority order
var keyboard = []keyBinding{
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyW, "w", true},
	{ebiten.KeyZ, "z", true},
	{ebiten.KeyS, "s", true},
	{ebiten.KeyA, "a", true},
	{ebiten.KeyQ, "q", true},
	{ebiten.KeyD, "d", true},
	{ebiten.KeyTab, "tab", true},
	{ebiten.KeySpace, "space", false},
	{ebiten.KeyEnter, "enter", false},
	{ebiten.KeyNumpadEnter, "enter", false},
	{ebiten.KeyR, "r", false},
	{ebiten.KeyEscape, "escape", false},
	{ebiten.KeyF9, "f9", false},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	select {
	case <-e.closed:
		return ebiten.Termination
	default:
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.handleZoom()

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}

	return nil
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setTileSize(e.tileSize + tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setTileSize(e.tileSize - tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.setTileSize(defaultTileSize)
	}
}

// setTileSize clamps and applies a new tile size
func (e *EbitenRenderer) setTileSize(size int) {
	e.tileSize = clampTileSize(size)
}

func clampTileSize(size int) int {
	if size < minTileSize {
		return minTileSize
	}
	if size > maxTileSize {
		return maxTileSize
	}
	return size
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat).
// pressed is the key's current state.
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string) bool {
	now := e.now()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]

	if !pressed {
		// Key released - clean up state
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{
			firstPressed: now,
			lastRepeat:   now,
		}
		return true
	}

	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// checkInput checks for keyboard input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		return e.intentFor("ctrl_c")
	}
	if shift && inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		return e.intentFor("?")
	}

	for _, b := range keyboard {
		var fire bool
		if b.repeat {
			fire = e.shouldRepeatKey(ebiten.IsKeyPressed(b.key), "key_"+b.code)
		} else {
			fire = inpututil.IsKeyJustPressed(b.key)
		}
		if !fire {
			continue
		}

		code := b.code
		if code == "tab" && shift {
			code = "shift_tab"
		}
		return e.intentFor(code)
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

func (e *EbitenRenderer) intentFor(code string) engineinput.Intent {
	return engineinput.FromCode(engineinput.DeviceKeyboard, code)
}
