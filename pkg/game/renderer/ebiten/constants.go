package ebiten

import (
	"image/color"

	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/lock"
)

// Color palette for the window
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorEmpty           = color.RGBA{60, 60, 80, 255}    // Undrafted cell
	colorTarget          = color.RGBA{100, 150, 255, 255} // Cell being drafted
	colorGoal            = color.RGBA{255, 220, 100, 255} // Antechamber marker
	colorItem            = color.RGBA{220, 170, 255, 255} // Bright purple
	colorRoomName        = color.RGBA{160, 160, 180, 255} // Light gray for room names
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorPanelBorder     = color.RGBA{80, 80, 100, 255}
	colorSelected        = color.RGBA{60, 80, 100, 255} // Highlighted card
)

// Wall colors per room family
var roomColors = map[entities.Color]color.RGBA{
	entities.Blue:   {90, 130, 230, 255},
	entities.Green:  {80, 190, 110, 255},
	entities.Yellow: {230, 200, 80, 255},
	entities.Purple: {170, 110, 220, 255},
	entities.Orange: {240, 150, 70, 255},
	entities.Red:    {220, 80, 80, 255},
}

// Door colors per lock state
var doorColors = map[lock.State]color.RGBA{
	lock.Unlocked:     {0, 220, 0, 255},
	lock.Locked:       {255, 255, 0, 255},
	lock.DoubleLocked: {255, 100, 100, 255},
}

// Tile size constraints
const (
	minTileSize     = 32
	maxTileSize     = 144
	defaultTileSize = 72
	tileSizeStep    = 8
	baseFontSize    = 16.0
)

const (
	keyRepeatInitialDelay = 500 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 100 // Interval between repeat events (milliseconds)
)

// Layout
const (
	windowWidth     = 1024
	windowHeight    = 768
	mapMargin       = 20
	maxMessageLines = 5
	intentBuffer    = 16
)
