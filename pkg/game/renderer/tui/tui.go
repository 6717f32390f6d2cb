// Package tui draws the manor in a terminal and reads keys from it.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"manorwalk/pkg/engine/input"
	"manorwalk/pkg/engine/terminal"
	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/lock"
	"manorwalk/pkg/game/renderer"
	"manorwalk/pkg/game/state"
	"manorwalk/pkg/game/text"
)

// clearScreen moves the cursor home and clears the display
const clearScreen = "\033[H\033[2J"

// Width of the wall drawn between two cells
const cellWidth = 5

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out  io.Writer
	keys *input.Terminal

	colorCell        color.Style
	colorCellText    color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorGoal        color.Style
	colorSelected    color.Style
	colorDoor        map[lock.State]color.Style
	colorRoom        map[entities.Color]color.Style
}

// New creates a terminal renderer drawing to out and reading keys from in.
// A nil in gives a renderer that only draws.
func New(in *os.File, out io.Writer) *TUIRenderer {
	t := &TUIRenderer{out: out}
	if in != nil {
		t.keys = input.NewTerminal(in, out)
	}
	t.initColors()
	return t
}

func (t *TUIRenderer) initColors() {
	t.colorCell = color.Style{color.FgGray}
	t.colorCellText = color.Style{color.FgBlue}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorGoal = color.Style{color.FgYellow, color.OpBold}
	t.colorSelected = color.Style{color.FgBlack, color.BgCyan, color.OpBold}

	t.colorDoor = map[lock.State]color.Style{
		lock.Unlocked:     {color.FgGreen},
		lock.Locked:       {color.FgYellow, color.OpBold},
		lock.DoubleLocked: {color.FgRed, color.OpBold},
	}
	t.colorRoom = map[entities.Color]color.Style{
		entities.Blue:   {color.FgBlue, color.OpBold},
		entities.Green:  {color.FgGreen},
		entities.Yellow: {color.FgYellow},
		entities.Purple: {color.FgMagenta},
		entities.Orange: {color.FgLightRed},
		entities.Red:    {color.FgRed},
	}
}

// Init starts reading keys in raw mode
func (t *TUIRenderer) Init() error {
	if t.keys == nil {
		return nil
	}
	return t.keys.Start()
}

// Close restores the terminal
func (t *TUIRenderer) Close() error {
	if t.keys == nil {
		return nil
	}
	return t.keys.Stop()
}

// NextIntent blocks until the next key press or typed command
func (t *TUIRenderer) NextIntent(ctx context.Context) (input.Intent, error) {
	if t.keys == nil {
		return input.Intent{}, io.EOF
	}
	return t.keys.Next(ctx)
}

// style renders one markup function for the terminal
func (t *TUIRenderer) style(function, operand string) (string, bool) {
	switch function {
	case "GT":
		return operand, true
	case "ITEM":
		return t.colorItem.Sprint(operand), true
	case "ROOM":
		return t.colorCellText.Sprint(operand), true
	case "ACTION":
		if operand == "" {
			return "", true
		}
		return t.colorActionShort.Sprint(operand[:1]) + t.colorAction.Sprint(operand[1:]), true
	}
	return "", false
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.FormatText(t.style, msg, args...)
}

// flush writes a finished screen. Raw mode disables output post-processing,
// so every newline needs its carriage return.
func (t *TUIRenderer) flush(b *strings.Builder) {
	io.WriteString(t.out, clearScreen+strings.ReplaceAll(b.String(), "\n", "\r\n"))
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(v renderer.View) {
	var b strings.Builder
	t.writeFrame(&b, v, nil)

	if v.Result != state.Playing {
		fmt.Fprintf(&b, "\n%s\n", t.colorGoal.Sprint(renderer.ResultText(v)))
	} else {
		fmt.Fprintf(&b, "\n%s ", t.colorSubtle.Sprint(">"))
	}
	t.flush(&b)
}

// RenderPicker renders the manor with the room offer below it
func (t *TUIRenderer) RenderPicker(pv renderer.PickerView) {
	var b strings.Builder
	target := pv.Target
	t.writeFrame(&b, pv.Frame, &target)

	fmt.Fprintf(&b, "\n%s %s\n\n", t.colorGoal.Sprint(text.Get("PICKER_TITLE")), renderer.ArrowFor(pv.Travel))
	for i, room := range pv.Offer {
		if room == nil {
			continue
		}
		cost := t.colorItem.Sprint(text.Get("FREE"))
		if !room.IsFree() {
			c := fmt.Sprintf("%s %d", text.Get("COST"), room.Cost)
			if room.Cost > pv.Inventory.Gems {
				cost = t.colorDenied.Sprint(c)
			} else {
				cost = t.colorAction.Sprint(c)
			}
		}

		name := fmt.Sprintf(" %d. %-12s", i+1, room.Name)
		if i == pv.Selected {
			name = t.colorSelected.Sprint(name)
		} else {
			name = t.roomStyle(room).Sprint(name)
		}
		fmt.Fprintf(&b, "%s  %-10s %s\n", name, cost, t.doorList(room))
	}

	if pv.Notice != "" {
		fmt.Fprintf(&b, "\n%s\n", t.FormatText(pv.Notice))
	}
	fmt.Fprintf(&b, "\n%s\n", t.colorSubtle.Sprint(text.Get("PICKER_HINT")))
	t.flush(&b)
}

// writeFrame writes the title, current room, map, status bar and messages.
// target, if set, is drawn as the cell being drafted.
func (t *TUIRenderer) writeFrame(b *strings.Builder, v renderer.View, target *world.Position) {
	fmt.Fprintf(b, "%s\n\n", t.colorAction.Sprint(text.Get("TITLE")))
	if room := v.CurrentRoom(); room != nil {
		fmt.Fprintf(b, "%s\n\n", t.FormatText("GT{IN_ROOM} ROOM{%s}", room.Name))
	}

	t.writeMap(b, v, target)
	t.writeStatusBar(b, v)
	t.writeMessagesPane(b, v)
}

func (t *TUIRenderer) roomStyle(room *entities.Room) color.Style {
	if s, ok := t.colorRoom[room.Color]; ok {
		return s
	}
	return t.colorCell
}

func (t *TUIRenderer) doorList(room *entities.Room) string {
	parts := make([]string, 0, len(room.Doors))
	for _, d := range room.Doors {
		parts = append(parts, d.Direction.String()+t.colorDoor[d.Lock].Sprint(renderer.LockIcon(d.Lock)))
	}
	return strings.Join(parts, " ")
}

// writeMap draws every cell as a three-line tile with its doors in the walls
func (t *TUIRenderer) writeMap(b *strings.Builder, v renderer.View, target *world.Position) {
	indent := (terminal.GetWidth() - v.Cols*cellWidth) / 2
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)

	for row := 0; row < v.Rows; row++ {
		var lines [3]strings.Builder
		for col := 0; col < v.Cols; col++ {
			tile := t.renderCell(v, world.Pos(row, col), target)
			for i := range lines {
				lines[i].WriteString(tile[i])
			}
		}
		for i := range lines {
			fmt.Fprintf(b, "%s%s\n", pad, lines[i].String())
		}
	}
	b.WriteString("\n")
}

// renderCell returns the three lines of one cell
func (t *TUIRenderer) renderCell(v renderer.View, p world.Position, target *world.Position) [3]string {
	room := v.Room(p)
	if room == nil {
		center := t.colorSubtle.Sprint(renderer.IconEmpty)
		if target != nil && *target == p {
			center = t.colorSelected.Sprint("?")
		}
		return [3]string{"     ", "  " + center + "  ", "     "}
	}

	wall := t.roomStyle(room)
	door := func(d world.Direction, fallback string) string {
		if dr := room.Door(d); dr != nil {
			return t.colorDoor[dr.Lock].Sprint(renderer.LockIcon(dr.Lock))
		}
		return wall.Sprint(fallback)
	}

	var center string
	switch {
	case v.Player == p:
		center = t.colorPlayer.Sprint(renderer.PlayerIcon)
	case p == v.Goal:
		center = t.colorGoal.Sprint(renderer.IconGoal)
	case p == v.Start:
		center = wall.Sprint(renderer.IconStart)
	default:
		center = wall.Sprint(strings.ToUpper(room.Color.String()[:1]))
	}

	return [3]string{
		wall.Sprint("┌─") + door(world.Up, "─") + wall.Sprint("─┐"),
		door(world.Left, "│") + " " + center + " " + door(world.Right, "│"),
		wall.Sprint("└─") + door(world.Down, "─") + wall.Sprint("─┘"),
	}
}

// writeStatusBar renders the inventory, statistics and heading
func (t *TUIRenderer) writeStatusBar(b *strings.Builder, v renderer.View) {
	fmt.Fprintf(b, "%s\n", t.colorItem.Sprint(renderer.StatusLine(v.Inventory)))

	heading := t.colorSubtle.Sprint("-")
	if v.HasPending {
		heading = t.FormatText("ACTION{%s} %s", v.Pending.String(), renderer.ArrowFor(v.Pending))
	}
	fmt.Fprintf(b, "%s %d   %s\n",
		t.colorSubtle.Sprint(text.Get("TURNS")), v.Stats.Turns, heading)
}

// writeMessagesPane renders the messages log pane
func (t *TUIRenderer) writeMessagesPane(b *strings.Builder, v renderer.View) {
	width := terminal.GetWidth()

	label := " " + text.Get("MESSAGES") + " "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - len(label)
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(b)
	fmt.Fprintln(b, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(v.Messages) == 0 {
		fmt.Fprintln(b, t.colorSubtle.Sprint("  "+text.Get("NO_MESSAGES")))
	} else {
		for _, msg := range v.Messages {
			fmt.Fprintf(b, "  %s\n", t.FormatText(msg))
		}
	}

	fmt.Fprintln(b, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
