package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Direction selection
	ActionSelectUp
	ActionSelectDown
	ActionSelectLeft
	ActionSelectRight

	// Turn / picker
	ActionConfirm
	ActionPrev
	ActionNext
	ActionRedraw

	// Meta
	ActionQuit
	ActionDumpMap
	ActionHelp
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "z", "arrow_up", "enter").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after deduplication.
// Both surfaces already deliver one event per key press, so this is a thin
// wrapper kept to make the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var defaultBindings = map[string]Action{
	// Direction selection (arrows, ZQSD, WASD)
	"arrow_up":    ActionSelectUp,
	"z":           ActionSelectUp,
	"w":           ActionSelectUp,
	"arrow_down":  ActionSelectDown,
	"s":           ActionSelectDown,
	"arrow_left":  ActionSelectLeft,
	"q":           ActionSelectLeft,
	"a":           ActionSelectLeft,
	"arrow_right": ActionSelectRight,
	"d":           ActionSelectRight,

	// Confirm the move / the offered room
	"space": ActionConfirm,
	"enter": ActionConfirm,

	// Offer cycling
	"tab":       ActionNext,
	"shift_tab": ActionPrev,

	// Redraw the offer with a die
	"r": ActionRedraw,

	// Quit
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	// Debug
	"f9": ActionDumpMap,

	"?": ActionHelp,
}

var bindings = cloneBindings(defaultBindings)

func cloneBindings(src map[string]Action) map[string]Action {
	out := make(map[string]Action, len(src))
	for code, act := range src {
		out[code] = act
	}
	return out
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// FromCode runs a device code through all four layers.
func FromCode(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{
		Device:    device,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionSelectUp:
		return "Select Up"
	case ActionSelectDown:
		return "Select Down"
	case ActionSelectLeft:
		return "Select Left"
	case ActionSelectRight:
		return "Select Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPrev:
		return "Previous Room"
	case ActionNext:
		return "Next Room"
	case ActionRedraw:
		return "Redraw"
	case ActionQuit:
		return "Quit"
	case ActionDumpMap:
		return "Dump Map"
	case ActionHelp:
		return "Help"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Arrow keys and enter stay bound.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if isReserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !isReserved(code) {
		bindings[code] = action
	}
}

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = cloneBindings(defaultBindings)
}

func isReserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "enter", "ctrl_c":
		return true
	}
	return false
}
