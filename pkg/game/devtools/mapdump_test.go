package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"manorwalk/pkg/engine/rng"
	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/lock"
	"manorwalk/pkg/game/state"
)

func testGame(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame(5, 9, entities.NewInventory(), rng.New(99))
	shop := entities.NewRoom("Shop", entities.Yellow, 2, 1,
		entities.NewDoor(world.Down, lock.Unlocked),
		entities.NewDoor(world.Left, lock.Locked),
	)
	if err := g.Manor.Place(world.Pos(3, 4), shop); err != nil {
		t.Fatal(err)
	}
	g.SelectDirection(world.Up)
	g.AddMessage("You draft ROOM{Shop}.")
	return g
}

func TestWriteManor(t *testing.T) {
	var buf bytes.Buffer
	WriteManor(&buf, testGame(t))
	out := buf.String()

	for _, want := range []string{
		"=== MANOR DUMP ===",
		"seed: 99",
		"grid_rows: 5",
		"grid_cols: 9",
		"player_cell: 4,4",
		"goal_cell: 0,4",
		"pending_direction: up",
		"steps: 70",
		"gems: 2",
		"y yellow",
		"3,4  Shop  color=yellow cost=2 rarity=1 doors=[down:unlocked left:locked]",
		"You draft ROOM{Shop}.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q:\n%s", want, out)
		}
	}

	// The map section lists one line per row
	_, mapSection, _ := strings.Cut(out, "--- Map ---\n")
	lines := strings.Split(mapSection, "\n")
	want := []string{"....E....", ".........", ".........", "....y....", "....@...."}
	for i, w := range want {
		if i >= len(lines) || lines[i] != w {
			t.Fatalf("map row %d = %q, want %q\n%s", i, lines[i], w, mapSection)
		}
	}

	// Fixed rooms are not part of the legend
	if strings.Contains(out, "b blue") || strings.Contains(out, "p purple") {
		t.Errorf("legend lists the entrance or antechamber colors:\n%s", out)
	}
}

func TestDumpManor(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpManor(testGame(t), dir)
	if err != nil {
		t.Fatalf("DumpManor() = %v", err)
	}
	if filepath.Base(path) != mapDumpFilename || !filepath.IsAbs(path) {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("=== MANOR DUMP ===")) {
		t.Errorf("file starts with %q", data[:20])
	}
}

func TestDumpManorMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope")
	if _, err := DumpManor(testGame(t), dir); err == nil {
		t.Error("DumpManor() into a missing directory succeeded")
	}
}
