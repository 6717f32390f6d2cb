package catalog

import (
	"fmt"
	"testing"

	"manorwalk/pkg/engine/rng"
	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/lock"
)

func templateNames(ts []*Template) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
	}
	return names
}

func containsName(ts []*Template, name string) bool {
	for _, t := range ts {
		if t.Name == name {
			return true
		}
	}
	return false
}

func TestDefaultTemplates(t *testing.T) {
	ts := DefaultTemplates()
	if len(ts) != 9 {
		t.Fatalf("len(DefaultTemplates()) = %d, want 9", len(ts))
	}
	for _, tpl := range ts {
		if tpl.Cost < 0 {
			t.Errorf("%s: negative cost %d", tpl.Name, tpl.Cost)
		}
		if tpl.Rarity < 0 || tpl.Rarity > entities.MaxRarity {
			t.Errorf("%s: rarity %d out of range", tpl.Name, tpl.Rarity)
		}
		if len(tpl.Doors) == 0 {
			t.Errorf("%s: no doors", tpl.Name)
		}
	}
}

func TestNewTemplateDeduplicatesDoors(t *testing.T) {
	tpl := NewTemplate("Odd", entities.Orange, 0, 0, world.Up, world.Left, world.Up)
	if len(tpl.Doors) != 2 || tpl.Doors[0] != world.Up || tpl.Doors[1] != world.Left {
		t.Errorf("Doors = %v, want [up left]", tpl.Doors)
	}
	if !tpl.HasDoor(world.Left) || tpl.HasDoor(world.Down) {
		t.Error("HasDoor disagrees with the door list")
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		rarity int
		want   float64
	}{
		{0, 1},
		{1, 1.0 / 3},
		{2, 1.0 / 9},
		{3, 1.0 / 27},
	}
	for _, tt := range tests {
		tpl := &Template{Rarity: tt.rarity}
		if got := tpl.Weight(); got-tt.want > 1e-12 || tt.want-got > 1e-12 {
			t.Errorf("Weight(rarity %d) = %v, want %v", tt.rarity, got, tt.want)
		}
	}
}

func TestCandidatesForEntry(t *testing.T) {
	c := New(5, 9)

	// Travelling Up means entering through the new room's Down side.
	got := c.CandidatesForEntry(world.Up.Opposite())
	for _, tpl := range got {
		if !tpl.HasDoor(world.Down) {
			t.Errorf("%s has no Down door", tpl.Name)
		}
	}
	if containsName(got, "Turn Left") || containsName(got, "Turn Right") {
		t.Errorf("candidates %v include a room without a Down door", templateNames(got))
	}
	if len(got) != 7 {
		t.Errorf("len(candidates for Down) = %d, want 7: %v", len(got), templateNames(got))
	}
}

func TestFilterLegal(t *testing.T) {
	c := New(5, 9)

	t.Run("drops rooms leaking off the left edge", func(t *testing.T) {
		candidates := c.CandidatesForEntry(world.Down)
		got := c.FilterLegal(candidates, 2, 0)
		for _, tpl := range got {
			if tpl.HasDoor(world.Left) {
				t.Errorf("%s kept at column 0 despite a Left door", tpl.Name)
			}
		}
		if !containsName(got, "Blue") {
			t.Errorf("Blue missing from %v", templateNames(got))
		}
	})

	t.Run("returns input when nothing fits", func(t *testing.T) {
		only := []*Template{NewTemplate("Corner", entities.Blue, 0, 0, world.Up, world.Left)}
		got := c.FilterLegal(only, 0, 0)
		if len(got) != 1 || got[0] != only[0] {
			t.Errorf("FilterLegal() = %v, want the unfiltered input", templateNames(got))
		}
	})
}

func TestWeightedPickFollowsCumulativeWeights(t *testing.T) {
	common := NewTemplate("Common", entities.Blue, 0, 0, world.Up)
	rare := NewTemplate("Rare", entities.Purple, 2, 1, world.Up)
	candidates := []*Template{common, rare}
	// total weight 4/3; Common covers [0, 0.75) of the unit draw.
	tests := []struct {
		u    float64
		want *Template
	}{
		{0.0, common},
		{0.74, common},
		{0.76, rare},
		{0.999, rare},
	}
	for _, tt := range tests {
		if got := WeightedPick(candidates, rng.NewSequence(tt.u)); got != tt.want {
			t.Errorf("WeightedPick(u=%v) = %s, want %s", tt.u, got.Name, tt.want.Name)
		}
	}
	if WeightedPick(nil, rng.NewSequence()) != nil {
		t.Error("WeightedPick(nil) returned a template")
	}
}

func TestWeightedPickFavoursCommonRooms(t *testing.T) {
	c := New(5, 9)
	src := rng.New(3)
	counts := map[string]int{}
	const n = 30000
	for i := 0; i < n; i++ {
		counts[WeightedPick(c.Templates(), src).Name]++
	}
	if counts["Blue"] <= counts["Left Garden"] || counts["Left Garden"] <= counts["Shop"] {
		t.Errorf("counts not ordered by rarity: %v", counts)
	}
}

func TestMaterializeDrawsLocksInDoorOrder(t *testing.T) {
	c := New(5, 9)
	cross := c.Templates()[1]
	// Row 1 is in the late band: Unlocked < .30, Locked < .70.
	src := rng.NewSequence(0.1, 0.5, 0.9, 0.2)
	room := c.Materialize(cross, 1, src)
	want := []lock.State{lock.Unlocked, lock.Locked, lock.DoubleLocked, lock.Unlocked}
	if len(room.Doors) != len(want) {
		t.Fatalf("len(Doors) = %d, want %d", len(room.Doors), len(want))
	}
	for i, d := range room.Doors {
		if d.Direction != cross.Doors[i] {
			t.Errorf("door %d faces %v, want %v", i, d.Direction, cross.Doors[i])
		}
		if d.Lock != want[i] {
			t.Errorf("door %d lock = %v, want %v", i, d.Lock, want[i])
		}
	}
	if src.Used() != 4 {
		t.Errorf("draws used = %d, want 4", src.Used())
	}
	if room.Name != "Cross" || room.Color != entities.Blue || room.Cost != 0 {
		t.Errorf("room = %+v", room)
	}
}

func TestMaterializeBottomRowIsUnlocked(t *testing.T) {
	c := New(5, 9)
	src := rng.NewSequence()
	room := c.Materialize(c.Templates()[1], 4, src)
	for _, d := range room.Doors {
		if d.Lock != lock.Unlocked {
			t.Errorf("bottom-row door %v is %v", d.Direction, d.Lock)
		}
	}
}

func TestPickThreeAlwaysOffersAFreeRoom(t *testing.T) {
	const rows, cols = 5, 9
	c := New(rows, cols)
	src := rng.New(42)

	trials := 0
	for trials < 10000 {
		for _, dir := range world.AllDirections() {
			for row := 0; row < rows; row++ {
				for col := 0; col < cols; col++ {
					offer := c.PickThree(dir, row, col, src)
					trials++

					free := 0
					for i, room := range offer {
						if room == nil {
							t.Fatalf("%v into (%d,%d): offer[%d] is nil", dir, row, col, i)
						}
						if room.IsFree() {
							free++
						}
					}
					if free == 0 {
						t.Fatalf("%v into (%d,%d): no free room in %v", dir, row, col, offerNames(offer))
					}
				}
			}
		}
	}
}

func TestPickThreeHonoursEntrySide(t *testing.T) {
	c := New(5, 9)
	src := rng.New(7)
	for i := 0; i < 500; i++ {
		offer := c.PickThree(world.Up, 2, 4, src)
		for _, room := range offer {
			if !room.HasDoor(world.Down) {
				t.Fatalf("travelling up offered %s without a Down door", room.Name)
			}
		}
	}
}

func TestPickThreeRetriesWholeTriple(t *testing.T) {
	paid := NewTemplate("Paid", entities.Yellow, 1, 0, world.Down)
	free := NewTemplate("Free", entities.Blue, 0, 0, world.Down)
	c := NewWithTemplates(3, 1, []*Template{paid, free})

	// Row 2 is the bottom row, so materializing draws nothing. The first
	// triple is all Paid (u < .5) and is thrown away.
	src := rng.NewSequence(0.1, 0.2, 0.3, 0.1, 0.9, 0.1)
	offer := c.PickThree(world.Up, 2, 0, src)
	got := offerNames(offer)
	want := "[Paid Free Paid]"
	if got != want {
		t.Errorf("PickThree() = %s, want %s", got, want)
	}
	if src.Used() != 6 {
		t.Errorf("draws used = %d, want 6", src.Used())
	}
}

func TestPickThreeDropsWallFilterBeforeEntrySide(t *testing.T) {
	c := New(5, 9)

	// Entering (0,2) through its Left side: every candidate except Left
	// Garden has an Up door into the outer wall, and Left Garden costs a gem.
	pool := c.DraftPool(world.Right, 0, 2)
	if got := fmt.Sprint(templateNames(pool)); got != "[Left Garden]" {
		t.Fatalf("DraftPool() = %s, want [Left Garden]", got)
	}

	src := rng.New(3)
	for i := 0; i < 1000; i++ {
		offer := c.PickThree(world.Right, 0, 2, src)
		free := false
		for _, room := range offer {
			if !room.HasDoor(world.Left) {
				t.Fatalf("offer %s includes %s without a Left door", offerNames(offer), room.Name)
			}
			free = free || room.IsFree()
		}
		if !free {
			t.Fatalf("offer %s has no free room", offerNames(offer))
		}
	}
}

func TestPickThreeWidensToFullTable(t *testing.T) {
	paid := NewTemplate("Paid", entities.Yellow, 1, 0, world.Down)
	free := NewTemplate("Free", entities.Blue, 0, 0, world.Up)
	c := NewWithTemplates(3, 1, []*Template{paid, free})

	// No template entered through Down is free, so Free joins the pool.
	src := rng.New(1)
	for i := 0; i < 200; i++ {
		offer := c.PickThree(world.Up, 2, 0, src)
		anyFree := false
		for _, room := range offer {
			anyFree = anyFree || room.IsFree()
		}
		if !anyFree {
			t.Fatalf("PickThree() = %s, want at least one free room", offerNames(offer))
		}
	}
}

func TestDraftPool(t *testing.T) {
	upOnly := NewTemplate("Up", entities.Blue, 0, 0, world.Up)
	sideways := NewTemplate("Side", entities.Green, 1, 1, world.Left, world.Right)

	tests := []struct {
		name      string
		templates []*Template
		travel    world.Direction
		row, col  int
		want      string
	}{
		{
			name:      "no template has the entry side",
			templates: []*Template{upOnly, sideways},
			travel:    world.Up,
			row:       1,
			col:       1,
			want:      "[Up Side]",
		},
		{
			name:      "entry side candidates only",
			templates: []*Template{upOnly, sideways},
			travel:    world.Down,
			row:       1,
			col:       1,
			want:      "[Up]",
		},
		{
			name:      "wall filter keeps candidates when nothing fits",
			templates: []*Template{sideways},
			travel:    world.Right,
			row:       1,
			col:       0,
			want:      "[Side]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewWithTemplates(3, 3, tt.templates)
			got := fmt.Sprint(templateNames(c.DraftPool(tt.travel, tt.row, tt.col)))
			if got != tt.want {
				t.Errorf("DraftPool(%v, %d, %d) = %s, want %s", tt.travel, tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func offerNames(offer [OfferSize]*entities.Room) string {
	names := make([]string, len(offer))
	for i, r := range offer {
		names[i] = r.Name
	}
	return fmt.Sprint(names)
}
