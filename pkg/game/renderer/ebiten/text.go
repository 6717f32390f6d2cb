package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	gametext "manorwalk/pkg/game/text"
)

// markupRegex matches FUNCTION{content}
var markupRegex = regexp.MustCompile(`([A-Z_]+)\{([^{}]+)\}`)

// drawGlyph draws a single glyph centered on (cx, cy) with the mono font
// sized for tile
func (e *EbitenRenderer) drawGlyph(screen *ebiten.Image, glyph string, cx, cy float64, tile int, col color.Color) {
	face := e.getMonoFontFace(tile)
	w, h := text.Measure(glyph, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, glyph, face, op)
}

// drawColoredText draws plain text with the UI font, top-left at (x, y)
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, e.getSansFontFace(), op)
}

// parseMarkup parses a message string with markup (ITEM{}, ROOM{}, ACTION{}, GT{}) and returns colored segments
func parseMarkup(msg string) []textSegment {
	var segments []textSegment

	lastIndex := 0
	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, textSegment{text: msg[lastIndex:match[0]], color: colorText})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		var segColor color.Color
		switch function {
		case "ITEM":
			segColor = colorItem
		case "ROOM":
			segColor = colorRoomName
		case "ACTION":
			segColor = colorAction
		case "GT":
			content = gametext.Get(content)
			segColor = colorText
		default:
			segColor = colorText
		}

		segments = append(segments, textSegment{text: content, color: segColor})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, textSegment{text: msg[lastIndex:], color: colorText})
	}
	return segments
}

// drawColoredTextSegments draws multiple text segments with different colors
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y int) {
	face := e.getSansFontFace()
	currentX := float64(x)

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(currentX, float64(y))
		op.ColorScale.ScaleWithColor(seg.color)

		text.Draw(screen, seg.text, face, op)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// getTextWidth returns the width of a string in pixels at UI font size
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	w, _ := text.Measure(str, e.getSansFontFace(), 0)
	return w
}

// getSegmentsWidth returns the width of a marked-up line in pixels
func (e *EbitenRenderer) getSegmentsWidth(segments []textSegment) float64 {
	total := 0.0
	for _, seg := range segments {
		total += e.getTextWidth(seg.text)
	}
	return total
}
