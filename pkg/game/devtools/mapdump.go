// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/state"
)

const mapDumpFilename = "manor-map.txt"

// colorSymbol returns the map letter for a drafted room of color c
func colorSymbol(c entities.Color) rune {
	switch c {
	case entities.Blue:
		return 'b'
	case entities.Green:
		return 'g'
	case entities.Yellow:
		return 'y'
	case entities.Purple:
		return 'p'
	case entities.Orange:
		return 'o'
	case entities.Red:
		return 'r'
	default:
		return '?'
	}
}

// cellSymbol returns the single-character symbol for a cell, with the
// player, entrance and antechamber drawn on top.
func cellSymbol(g *state.Game, p world.Position) rune {
	switch {
	case g.Player.At(p):
		return '@'
	case p == g.Manor.Start():
		return 'S'
	case p == g.Manor.Goal():
		return 'E'
	}
	room := g.Manor.Room(p)
	if room == nil {
		return '.'
	}
	return colorSymbol(room.Color)
}

// WriteManor writes a full debug dump of g to w: metadata, inventory, stats,
// legend, the map and every placed room with its doors.
func WriteManor(w io.Writer, g *state.Game) {
	rows, cols := g.Manor.Rows(), g.Manor.Cols()
	player := g.Player.Position()

	fmt.Fprintln(w, "=== MANOR DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", g.RNG.Seed())
	fmt.Fprintf(w, "grid_rows: %d\n", rows)
	fmt.Fprintf(w, "grid_cols: %d\n", cols)
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row 0 is the top)\n")
	fmt.Fprintf(w, "player_cell: %d,%d\n", player.Row, player.Col)
	fmt.Fprintf(w, "start_cell: %s\n", g.Manor.Start())
	fmt.Fprintf(w, "goal_cell: %s\n", g.Manor.Goal())
	fmt.Fprintf(w, "phase: %s\n", g.Phase)
	fmt.Fprintf(w, "result: %s\n", g.Result)
	if g.HasPending {
		fmt.Fprintf(w, "pending_direction: %s\n", g.Pending)
	}

	inv := g.Inventory
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Inventory ---")
	fmt.Fprintf(w, "steps: %d\nkeys: %d\ngems: %d\ndice: %d\n", inv.Steps, inv.Keys, inv.Gems, inv.Dice)
	perms := inv.Permanents()
	names := make([]string, len(perms))
	for i, p := range perms {
		names[i] = p.String()
	}
	fmt.Fprintf(w, "permanents: %s\n", strings.Join(names, ", "))

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Stats ---")
	fmt.Fprintf(w, "turns: %d\n", g.Stats.Turns)
	fmt.Fprintf(w, "rooms_drafted: %d\n", g.Stats.RoomsDrafted)
	fmt.Fprintf(w, "gems_spent: %d\n", g.Stats.GemsSpent)
	fmt.Fprintf(w, "dice_spent: %d\n", g.Stats.DiceSpent)
	fmt.Fprintf(w, "keys_used: %d\n", g.Stats.KeysUsed)

	used := mapset.New[entities.Color]()
	g.Manor.ForEachRoom(func(p world.Position, room *entities.Room) {
		if p != g.Manor.Start() && p != g.Manor.Goal() {
			used.Put(room.Color)
		}
	})
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "@ player   S entrance   E antechamber   . empty")
	var legend []string
	used.Each(func(c entities.Color) {
		legend = append(legend, fmt.Sprintf("%c %s", colorSymbol(c), c))
	})
	sort.Strings(legend)
	for _, l := range legend {
		fmt.Fprintln(w, l)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Map ---")
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			fmt.Fprintf(w, "%c", cellSymbol(g, world.Pos(row, col)))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Rooms ---")
	g.Manor.ForEachRoom(func(p world.Position, room *entities.Room) {
		doors := make([]string, len(room.Doors))
		for i, d := range room.Doors {
			doors[i] = fmt.Sprintf("%s:%s", d.Direction, d.Lock)
		}
		fmt.Fprintf(w, "%s  %s  color=%s cost=%d rarity=%d doors=[%s]\n",
			p, room.Name, room.Color, room.Cost, room.Rarity, strings.Join(doors, " "))
	})

	if len(g.Messages) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "--- Messages ---")
		for _, m := range g.Messages {
			fmt.Fprintln(w, m)
		}
	}
}

// DumpManor writes the dump to a file in dir and returns its absolute path
func DumpManor(g *state.Game, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	WriteManor(f, g)
	return absPath, nil
}
