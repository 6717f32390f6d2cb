// Package renderer defines the render surfaces the session draws on and the
// message markup they share.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/lock"
	"manorwalk/pkg/game/state"
	"manorwalk/pkg/game/text"
)

// Markup functions understood in messages:
//
//	GT{KEY}       catalog lookup
//	ITEM{name}    an item or resource
//	ROOM{name}    a room name
//	ACTION{word}  a key or command, first letter highlighted
var markupPattern = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)

// Styler renders one markup function. It returns the replacement text and
// whether the function was recognized.
type Styler func(function, operand string) (string, bool)

// FormatText formats msg with args and expands its markup through style
func FormatText(style Styler, msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	for _, match := range markupPattern.FindAllStringSubmatch(ret, -1) {
		function, operand := match[1], match[2]
		if function == "GT" {
			operand = text.Get(operand)
		}
		val, ok := style(function, operand)
		if !ok {
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}
		ret = strings.Replace(ret, match[0], val, -1)
	}
	return ret
}

// Plain is a Styler that drops all styling
func Plain(function, operand string) (string, bool) {
	switch function {
	case "GT", "ITEM", "ROOM", "ACTION":
		return operand, true
	}
	return "", false
}

// StripMarkup returns msg with markup expanded to plain text
func StripMarkup(msg string) string {
	return FormatText(Plain, msg)
}

// Icons shared by both surfaces
const (
	PlayerIcon = "@"
	IconEmpty  = "·"
	IconGoal   = "◆"
	IconStart  = "▲"
)

// LockIcon returns the glyph drawn for a door of the given lock state
func LockIcon(s lock.State) string {
	switch s {
	case lock.Locked:
		return "▣"
	case lock.DoubleLocked:
		return "▩"
	default:
		return "□"
	}
}

// DoorSummary lists a room's doors, e.g. "up□ left▣"
func DoorSummary(r *entities.Room) string {
	if r == nil {
		return ""
	}
	parts := make([]string, 0, len(r.Doors))
	for _, d := range r.Doors {
		parts = append(parts, d.Direction.String()+LockIcon(d.Lock))
	}
	return strings.Join(parts, " ")
}

// ArrowFor returns an arrow glyph pointing in d
func ArrowFor(d world.Direction) string {
	switch d {
	case world.Up:
		return "↑"
	case world.Down:
		return "↓"
	case world.Left:
		return "←"
	case world.Right:
		return "→"
	default:
		return "?"
	}
}

// ResultText returns the catalog text for a finished session
func ResultText(v View) string {
	switch v.Result {
	case state.Win:
		return text.Get("RESULT_WIN")
	case state.LoseOutOfSteps:
		return text.Get("RESULT_OUT_OF_STEPS")
	case state.LoseStuck:
		return text.Get("RESULT_STUCK")
	case state.Quit:
		return text.Get("RESULT_QUIT")
	}
	return ""
}

// StatusLine summarizes the inventory in one line of plain text
func StatusLine(inv entities.Inventory) string {
	line := fmt.Sprintf("%s %d  %s %d  %s %d  %s %d",
		text.Get("STEPS"), inv.Steps,
		text.Get("KEYS"), inv.Keys,
		text.Get("GEMS"), inv.Gems,
		text.Get("DICE"), inv.Dice,
	)
	if perms := inv.Permanents(); len(perms) > 0 {
		names := make([]string, len(perms))
		for i, p := range perms {
			names[i] = p.String()
		}
		line += "  " + text.Get("ITEMS") + ": " + strings.Join(names, ", ")
	}
	return line
}
