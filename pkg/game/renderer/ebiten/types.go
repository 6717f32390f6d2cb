// Package ebiten draws the manor in a desktop window using Ebiten.
package ebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "manorwalk/pkg/engine/input"
	"manorwalk/pkg/game/renderer"
)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// renderSnapshot holds what the session goroutine last asked to draw.
// Draw only ever reads a copy of it.
type renderSnapshot struct {
	valid      bool
	view       renderer.View
	picker     renderer.PickerView
	showPicker bool
}

// keyRepeatInfo tracks the repeat state for a key
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Tile size for rendering (adjustable with +/-)
	tileSize int

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for map tiles
	sansFontSource *text.GoTextFaceSource // Sans-serif font for UI text

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace

	// Latest frame sent by the session goroutine
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and the session loop
	inputChan chan engineinput.Intent

	// closed is closed once, by Close or when the window goes away
	closed    chan struct{}
	closeOnce sync.Once

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	// Key repeat state tracking, keyed by key code
	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.RWMutex

	// now returns the current time in milliseconds
	now func() int64
}
