package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/lock"
	"manorwalk/pkg/game/renderer"
	"manorwalk/pkg/game/state"
	gametext "manorwalk/pkg/game/text"
)

// layout is where each part of the screen goes for one frame
type layout struct {
	tile       int
	mapX, mapY int
	mapW, mapH int
	statusY    int
	lineHeight int
}

// computeLayout fits the grid between the header and the status bar,
// shrinking tiles below the preferred size when the window is too small.
func computeLayout(preferred, screenWidth, screenHeight, rows, cols int, uiFontSize float64) layout {
	lineHeight := int(uiFontSize) + 6
	headerHeight := lineHeight*2 + mapMargin
	footerHeight := lineHeight*(maxMessageLines+4) + mapMargin

	tile := preferred
	if cols > 0 {
		if fit := (screenWidth - mapMargin*2) / cols; fit < tile {
			tile = fit
		}
	}
	if rows > 0 {
		if fit := (screenHeight - headerHeight - footerHeight - mapMargin*2) / rows; fit < tile {
			tile = fit
		}
	}
	if tile < 8 {
		tile = 8
	}

	l := layout{
		tile:       tile,
		mapW:       tile * cols,
		mapH:       tile * rows,
		lineHeight: lineHeight,
	}
	l.mapX = (screenWidth - l.mapW) / 2
	l.mapY = headerHeight + mapMargin
	l.statusY = l.mapY + l.mapH + mapMargin
	return l
}

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid || e.monoFontSource == nil || e.sansFontSource == nil {
		// Can't draw without valid snapshot or fonts
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	v := snap.view
	l := computeLayout(e.tileSize, screenWidth, screenHeight, v.Rows, v.Cols, e.getUIFontSize())

	e.drawHeader(screen, v, l)

	vector.DrawFilledRect(screen, float32(l.mapX-mapMargin/2), float32(l.mapY-mapMargin/2),
		float32(l.mapW+mapMargin), float32(l.mapH+mapMargin), colorMapBackground, false)

	var target *world.Position
	if snap.showPicker {
		t := snap.picker.Target
		target = &t
	}
	e.drawMap(screen, v, l, target)
	e.drawStatusBar(screen, v, l)
	e.drawMessages(screen, v, l, screenWidth)

	if snap.showPicker {
		e.drawPicker(screen, snap.picker, screenWidth, screenHeight)
	} else if v.Result != state.Playing {
		e.drawResult(screen, v, screenWidth, screenHeight)
	}
}

// drawHeader draws the title and the current room
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, v renderer.View, l layout) {
	e.drawColoredText(screen, gametext.Get("TITLE"), mapMargin, mapMargin/2, colorAction)
	if room := v.CurrentRoom(); room != nil {
		segments := parseMarkup(fmt.Sprintf("GT{IN_ROOM} ROOM{%s}", room.Name))
		e.drawColoredTextSegments(screen, segments, mapMargin, mapMargin/2+l.lineHeight)
	}
}

// drawMap draws every cell of the grid
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, v renderer.View, l layout, target *world.Position) {
	for row := 0; row < v.Rows; row++ {
		for col := 0; col < v.Cols; col++ {
			p := world.Pos(row, col)
			x := float32(l.mapX + col*l.tile)
			y := float32(l.mapY + row*l.tile)
			e.drawCell(screen, v, p, x, y, l.tile, target != nil && *target == p)
		}
	}
}

// drawCell draws one cell: an inset block with its doors on the walls
func (e *EbitenRenderer) drawCell(screen *ebiten.Image, v renderer.View, p world.Position, x, y float32, tile int, isTarget bool) {
	size := float32(tile)
	margin := size / 12
	cx := float64(x + size/2)
	cy := float64(y + size/2)

	room := v.Room(p)
	if room == nil {
		vector.DrawFilledRect(screen, x+margin*3, y+margin*3, size-margin*6, size-margin*6, colorEmpty, false)
		if isTarget {
			vector.StrokeRect(screen, x+margin, y+margin, size-margin*2, size-margin*2, 2, colorTarget, false)
			e.drawGlyph(screen, "?", cx, cy, tile, colorTarget)
		}
		if p == v.Goal {
			vector.StrokeRect(screen, x+margin, y+margin, size-margin*2, size-margin*2, 2, colorGoal, false)
		}
		return
	}

	wall := roomColors[room.Color]
	bg := color.RGBA{wall.R / 5, wall.G / 5, wall.B / 5, 255}
	vector.DrawFilledRect(screen, x+margin, y+margin, size-margin*2, size-margin*2, bg, false)
	border := color.Color(wall)
	if p == v.Goal {
		border = colorGoal
	}
	vector.StrokeRect(screen, x+margin, y+margin, size-margin*2, size-margin*2, 2, border, false)

	for _, d := range room.Doors {
		e.drawDoor(screen, d, x, y, size, margin)
	}

	if v.Player == p {
		e.drawGlyph(screen, renderer.PlayerIcon, cx, cy, tile, colorPlayer)
	} else {
		e.drawGlyph(screen, strings.ToUpper(room.Color.String()[:1]), cx, cy, tile, wall)
	}
}

// drawDoor draws a door as a bar across the middle of its wall.
// Locked doors get one notch, double-locked doors get two.
func (e *EbitenRenderer) drawDoor(screen *ebiten.Image, d *entities.Door, x, y, size, margin float32) {
	col := doorColors[d.Lock]
	length := size / 3
	thick := margin * 1.5

	var dx, dy, w, h float32
	switch d.Direction {
	case world.Up:
		dx, dy, w, h = x+(size-length)/2, y, length, thick
	case world.Down:
		dx, dy, w, h = x+(size-length)/2, y+size-thick, length, thick
	case world.Left:
		dx, dy, w, h = x, y+(size-length)/2, thick, length
	case world.Right:
		dx, dy, w, h = x+size-thick, y+(size-length)/2, thick, length
	default:
		return
	}
	vector.DrawFilledRect(screen, dx, dy, w, h, col, false)

	notches := 0
	switch d.Lock {
	case lock.Locked:
		notches = 1
	case lock.DoubleLocked:
		notches = 2
	}
	for i := 1; i <= notches; i++ {
		offset := length * float32(i) / float32(notches+1)
		if w > h {
			vector.DrawFilledRect(screen, dx+offset-1, dy, 2, h, colorMapBackground, false)
		} else {
			vector.DrawFilledRect(screen, dx, dy+offset-1, w, 2, colorMapBackground, false)
		}
	}
}

// drawStatusBar draws the inventory, turn count and heading below the map
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, v renderer.View, l layout) {
	x := l.mapX
	if x < mapMargin {
		x = mapMargin
	}
	e.drawColoredText(screen, renderer.StatusLine(v.Inventory), x, l.statusY, colorItem)

	heading := "-"
	if v.HasPending {
		heading = fmt.Sprintf("ACTION{%s} %s", v.Pending.String(), renderer.ArrowFor(v.Pending))
	}
	line := fmt.Sprintf("%s %d   %s", gametext.Get("TURNS"), v.Stats.Turns, heading)
	e.drawColoredTextSegments(screen, parseMarkup(line), x, l.statusY+l.lineHeight)
}

// drawMessages draws the last few log lines in a panel under the status bar
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, v renderer.View, l layout, screenWidth int) {
	start := len(v.Messages) - maxMessageLines
	if start < 0 {
		start = 0
	}
	visible := make([][]textSegment, 0, maxMessageLines)
	for _, msg := range v.Messages[start:] {
		visible = append(visible, parseMarkup(msg))
	}

	headerText := "─── " + gametext.Get("MESSAGES") + " ───"
	maxTextWidth := e.getTextWidth(headerText)
	for _, segments := range visible {
		if w := e.getSegmentsWidth(segments); w > maxTextWidth {
			maxTextWidth = w
		}
	}

	panelWidth := int(maxTextWidth) + 20
	if panelWidth > screenWidth-40 {
		panelWidth = screenWidth - 40
	}
	lines := len(visible)
	if lines == 0 {
		lines = 1
	}
	panelHeight := l.lineHeight*(lines+1) + 10

	bgX := float32((screenWidth - panelWidth) / 2)
	bgY := float32(l.statusY + l.lineHeight*2 + mapMargin/2)
	bgW := float32(panelWidth)
	bgH := float32(panelHeight)

	vector.DrawFilledRect(screen, bgX-1, bgY-1, bgW+2, bgH+2, colorPanelBorder, false)
	vector.DrawFilledRect(screen, bgX, bgY, bgW, bgH, colorPanelBackground, false)

	x := int(bgX) + 10
	y := int(bgY) + 5
	e.drawColoredText(screen, headerText, x, y, colorSubtle)

	if len(visible) == 0 {
		e.drawColoredText(screen, gametext.Get("NO_MESSAGES"), x, y+l.lineHeight, colorSubtle)
		return
	}
	for i, segments := range visible {
		e.drawColoredTextSegments(screen, segments, x, y+(i+1)*l.lineHeight)
	}
}

// drawPanel draws a bordered panel centered on the screen and returns its top-left corner
func drawPanel(screen *ebiten.Image, width, height, screenWidth, screenHeight int, border color.Color) (int, int) {
	x := (screenWidth - width) / 2
	y := (screenHeight - height) / 2
	vector.DrawFilledRect(screen, float32(x-2), float32(y-2), float32(width+4), float32(height+4), border, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), colorPanelBackground, false)
	return x, y
}

// drawResult draws the end-of-session banner
func (e *EbitenRenderer) drawResult(screen *ebiten.Image, v renderer.View, screenWidth, screenHeight int) {
	msg := renderer.ResultText(v)
	ui := int(e.getUIFontSize())
	width := int(e.getTextWidth(msg)) + 40
	height := ui + 30

	border := colorDenied
	if v.Result == state.Win || v.Result == state.Quit {
		border = colorGoal
	}
	x, y := drawPanel(screen, width, height, screenWidth, screenHeight, border)
	e.drawColoredText(screen, msg, x+20, y+15, border)
}

// drawPicker draws the three-card room offer
func (e *EbitenRenderer) drawPicker(screen *ebiten.Image, pv renderer.PickerView, screenWidth, screenHeight int) {
	ui := e.getUIFontSize()
	lineHeight := int(ui) + 6

	cardWidth := int(ui * 11)
	cardHeight := lineHeight*5 + 10
	gap := 16
	width := cardWidth*len(pv.Offer) + gap*(len(pv.Offer)+1)
	height := cardHeight + lineHeight*4 + 20

	x, y := drawPanel(screen, width, height, screenWidth, screenHeight, colorAction)

	title := gametext.Get("PICKER_TITLE") + " " + renderer.ArrowFor(pv.Travel)
	e.drawColoredText(screen, title, x+gap, y+10, colorAction)

	cardY := y + 10 + lineHeight + 10
	for i, room := range pv.Offer {
		cardX := x + gap + i*(cardWidth+gap)
		e.drawCard(screen, room, i == pv.Selected, pv.Inventory, cardX, cardY, cardWidth, cardHeight, lineHeight)
	}

	footerY := cardY + cardHeight + 10
	if pv.Notice != "" {
		e.drawColoredTextSegments(screen, parseMarkup(pv.Notice), x+gap, footerY)
	}
	e.drawColoredText(screen, gametext.Get("PICKER_HINT"), x+gap, footerY+lineHeight, colorSubtle)
}

// drawCard draws one offered room: name, family, cost and doors
func (e *EbitenRenderer) drawCard(screen *ebiten.Image, room *entities.Room, selected bool, inv entities.Inventory, x, y, w, h, lineHeight int) {
	if room == nil {
		return
	}
	wall := roomColors[room.Color]

	bg := colorMapBackground
	if selected {
		bg = colorSelected
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, wall, false)

	tx := x + 10
	ty := y + 8
	e.drawColoredText(screen, room.Name, tx, ty, colorText)
	e.drawColoredText(screen, room.Color.String(), tx, ty+lineHeight, wall)

	cost, costColor := gametext.Get("FREE"), color.Color(colorItem)
	if !room.IsFree() {
		cost = fmt.Sprintf("%s %d", gametext.Get("COST"), room.Cost)
		costColor = colorAction
		if room.Cost > inv.Gems {
			costColor = colorDenied
		}
	}
	e.drawColoredText(screen, cost, tx, ty+lineHeight*2, costColor)

	dx := float64(tx)
	for _, d := range room.Doors {
		label := d.Direction.String()
		e.drawColoredText(screen, label, int(dx), ty+lineHeight*3, doorColors[d.Lock])
		dx += e.getTextWidth(label + " ")
	}
}
