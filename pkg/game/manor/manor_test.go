package manor

import (
	"errors"
	"testing"

	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/lock"
)

// newTestManor returns a default manor with the player on the start cell
func newTestManor(t *testing.T) (*Manor, *entities.Player, *entities.Inventory) {
	t.Helper()
	m := New(DefaultRows, DefaultCols)
	return m, entities.NewPlayer(m.Start()), entities.NewInventory()
}

func corridor(lockState lock.State) *entities.Room {
	return entities.NewRoom("Blue", entities.Blue, 0, 0,
		entities.NewDoor(world.Up, lockState),
		entities.NewDoor(world.Down, lock.Unlocked),
	)
}

func TestNewPlacesStartAndGoal(t *testing.T) {
	m := New(5, 9)
	if m.Start() != world.Pos(4, 4) || m.Goal() != world.Pos(0, 4) {
		t.Errorf("start %v goal %v, want 4,4 and 0,4", m.Start(), m.Goal())
	}
	if r := m.Room(m.Start()); r == nil || r.Name != entities.StartRoomName {
		t.Errorf("start cell holds %v", r)
	}
	if r := m.Room(m.Goal()); r == nil || r.Name != entities.GoalRoomName {
		t.Errorf("goal cell holds %v", r)
	}
	if m.Placed() != 0 {
		t.Errorf("Placed() = %d, want 0", m.Placed())
	}
}

func TestPlace(t *testing.T) {
	m := New(5, 9)
	if err := m.Place(world.Pos(3, 4), corridor(lock.Unlocked)); err != nil {
		t.Fatalf("Place on empty cell: %v", err)
	}
	if err := m.Place(world.Pos(3, 4), corridor(lock.Unlocked)); !errors.Is(err, ErrOccupied) {
		t.Errorf("Place on filled cell = %v, want ErrOccupied", err)
	}
	if err := m.Place(m.Start(), corridor(lock.Unlocked)); !errors.Is(err, ErrOccupied) {
		t.Errorf("Place on start = %v, want ErrOccupied", err)
	}
	if err := m.Place(world.Pos(5, 0), corridor(lock.Unlocked)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Place off grid = %v, want ErrOutOfBounds", err)
	}
	if m.Placed() != 1 {
		t.Errorf("Placed() = %d, want 1", m.Placed())
	}
}

func TestCanMove(t *testing.T) {
	m, player, inv := newTestManor(t)

	tests := []struct {
		dir  world.Direction
		want bool
	}{
		{world.Up, true},     // start door
		{world.Down, false},  // off the grid
		{world.Left, false},  // no door
		{world.Right, false}, // no door
	}
	for _, tt := range tests {
		if got := m.CanMove(player, inv, tt.dir); got != tt.want {
			t.Errorf("CanMove(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestMoveIntoPopulatedCell(t *testing.T) {
	m, player, inv := newTestManor(t)
	target := world.Pos(3, 4)
	if err := m.Place(target, corridor(lock.Unlocked)); err != nil {
		t.Fatal(err)
	}

	if !m.CanMove(player, inv, world.Up) {
		t.Fatal("CanMove(Up) from start = false")
	}
	out := m.Move(player, inv, world.Up)
	moved, ok := out.(Moved)
	if !ok {
		t.Fatalf("Move() = %#v, want Moved", out)
	}
	if moved.To != target || !player.At(target) {
		t.Errorf("player at %v, want %v", player.Position(), target)
	}
	if inv.Steps != 69 {
		t.Errorf("steps = %d, want 69", inv.Steps)
	}
}

func TestMoveIntoEmptyCell(t *testing.T) {
	m, player, inv := newTestManor(t)
	before := *inv

	out := m.Move(player, inv, world.Up)
	pending, ok := out.(NewRoomPending)
	if !ok {
		t.Fatalf("Move() = %#v, want NewRoomPending", out)
	}
	if pending.Target != world.Pos(3, 4) {
		t.Errorf("Target = %v, want 3,4", pending.Target)
	}
	if !player.At(m.Start()) {
		t.Error("player moved before a room was placed")
	}
	if *inv != before {
		t.Errorf("unlocked door changed inventory: %+v", *inv)
	}
	if m.Room(pending.Target) != nil {
		t.Error("Move placed a room")
	}

	if err := m.Place(pending.Target, corridor(lock.Unlocked)); err != nil {
		t.Fatal(err)
	}
	if err := m.Enter(player, inv, pending.Target); err != nil {
		t.Fatal(err)
	}
	if inv.Steps != 69 || !player.At(pending.Target) {
		t.Errorf("after Enter: steps %d at %v", inv.Steps, player.Position())
	}
}

func TestMoveBlockedByLockedDoor(t *testing.T) {
	m, player, inv := newTestManor(t)
	from := world.Pos(3, 4)
	target := world.Pos(2, 4)
	if err := m.Place(from, corridor(lock.Locked)); err != nil {
		t.Fatal(err)
	}
	player.MoveTo(from)
	inv.Keys = 0
	inv.HasLockpick = false
	before := *inv

	if m.CanMove(player, inv, world.Up) {
		t.Error("CanMove(Up) through a locked door with no key = true")
	}
	if _, ok := m.Move(player, inv, world.Up).(Blocked); !ok {
		t.Error("Move(Up) through a locked door with no key was not Blocked")
	}
	if *inv != before {
		t.Errorf("blocked move changed inventory: %+v", *inv)
	}
	if m.Room(target) != nil {
		t.Error("blocked move filled the target cell")
	}
	if !player.At(from) {
		t.Errorf("player moved to %v", player.Position())
	}
}

func TestMoveSpendsKeyOnEveryTraversal(t *testing.T) {
	m, player, inv := newTestManor(t)
	from := world.Pos(3, 4)
	if err := m.Place(from, corridor(lock.Locked)); err != nil {
		t.Fatal(err)
	}
	if err := m.Place(world.Pos(2, 4), corridor(lock.Unlocked)); err != nil {
		t.Fatal(err)
	}
	player.MoveTo(from)
	inv.Keys = 2

	m.Move(player, inv, world.Up)
	m.Move(player, inv, world.Down)
	m.Move(player, inv, world.Up)
	if inv.Keys != 0 {
		t.Errorf("keys = %d, want 0 after crossing the locked door twice", inv.Keys)
	}
}

func TestMoveCommitsDoorCostBeforeDraft(t *testing.T) {
	m, player, inv := newTestManor(t)
	from := world.Pos(3, 4)
	if err := m.Place(from, corridor(lock.Locked)); err != nil {
		t.Fatal(err)
	}
	player.MoveTo(from)
	inv.Keys = 1

	if _, ok := m.Move(player, inv, world.Up).(NewRoomPending); !ok {
		t.Fatal("Move into an empty cell was not NewRoomPending")
	}
	if inv.Keys != 0 {
		t.Errorf("keys = %d, want the key spent before drafting", inv.Keys)
	}
	if inv.Steps != entities.DefaultSteps {
		t.Errorf("steps = %d, want no step used yet", inv.Steps)
	}
}
