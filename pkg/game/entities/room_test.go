package entities

import (
	"encoding/json"
	"testing"

	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/lock"
)

func TestNewRoomKeepsOneDoorPerDirection(t *testing.T) {
	r := NewRoom("Hall", Blue, 0, 0,
		NewDoor(world.Up, lock.Locked),
		NewDoor(world.Up, lock.Unlocked),
		nil,
		NewDoor(world.Left, lock.DoubleLocked),
	)
	if len(r.Doors) != 2 {
		t.Fatalf("len(Doors) = %d, want 2", len(r.Doors))
	}
	if got := r.Door(world.Up).Lock; got != lock.Locked {
		t.Errorf("Up door lock = %v, want the first one given (locked)", got)
	}
	if r.HasDoor(world.Down) {
		t.Error("HasDoor(Down) = true, want false")
	}
	var nilRoom *Room
	if nilRoom.Door(world.Up) != nil {
		t.Error("nil room returned a door")
	}
}

func TestFixedRooms(t *testing.T) {
	start := NewStartRoom()
	if len(start.Doors) != 1 || start.Door(world.Up) == nil || start.Door(world.Up).Lock != lock.Unlocked {
		t.Errorf("start room doors = %+v, want one unlocked door up", start.Doors)
	}
	goal := NewGoalRoom()
	if len(goal.Doors) != 1 || goal.Door(world.Down) == nil || goal.Door(world.Down).Lock != lock.DoubleLocked {
		t.Errorf("goal room doors = %+v, want one double-locked door down", goal.Doors)
	}
}

func TestRoomJSONRoundTrip(t *testing.T) {
	r := NewRoom("Left Garden", Green, 1, 1,
		NewDoor(world.Down, lock.Locked),
		NewDoor(world.Left, lock.Unlocked),
	)
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Room
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Name != r.Name || back.Color != Green || back.Cost != 1 || back.Rarity != 1 {
		t.Errorf("round trip = %+v, want %+v", back, r)
	}
	if len(back.Doors) != 2 || back.Doors[0].Direction != world.Down || back.Doors[0].Lock != lock.Locked {
		t.Errorf("round trip doors = %+v", back.Doors)
	}
}

func TestInventoryDefaults(t *testing.T) {
	inv := NewInventory()
	want := Inventory{Steps: 70, Keys: 0, Gems: 2, Dice: 0}
	if *inv != want {
		t.Errorf("NewInventory() = %+v, want %+v", *inv, want)
	}
}

func TestInventorySpending(t *testing.T) {
	inv := Inventory{Gems: 2, Dice: 1}
	if inv.SpendGems(3) {
		t.Error("SpendGems(3) with 2 gems = true, want false")
	}
	if !inv.SpendGems(2) || inv.Gems != 0 {
		t.Errorf("SpendGems(2) left %d gems, want 0", inv.Gems)
	}
	if !inv.SpendGems(0) {
		t.Error("SpendGems(0) = false, want true (free rooms)")
	}
	if !inv.SpendDie() || inv.Dice != 0 {
		t.Errorf("SpendDie() left %d dice, want 0", inv.Dice)
	}
	if inv.SpendDie() {
		t.Error("SpendDie() with no dice = true, want false")
	}
}

func TestInventoryPermanents(t *testing.T) {
	inv := NewInventory()
	if len(inv.Permanents()) != 0 {
		t.Fatalf("fresh inventory holds %v", inv.Permanents())
	}
	inv.Grant(MetalDetector)
	inv.Grant(MetalDetector)
	if !inv.HasMetalDetector || !inv.Has(MetalDetector) {
		t.Error("Grant(MetalDetector) did not set the flag")
	}
	if got := inv.Permanents(); len(got) != 1 || got[0] != MetalDetector {
		t.Errorf("Permanents() = %v, want [Metal Detector]", got)
	}
}

func TestInventorySteps(t *testing.T) {
	inv := Inventory{Steps: 1}
	inv.UseStep()
	if !inv.OutOfSteps() {
		t.Error("OutOfSteps() at 0 = false, want true")
	}
	inv.AddSteps(15)
	if inv.Steps != 15 || inv.OutOfSteps() {
		t.Errorf("after AddSteps(15): steps = %d", inv.Steps)
	}
}

func TestPlayerPosition(t *testing.T) {
	p := NewPlayer(world.Pos(4, 4))
	p.MoveTo(world.Pos(3, 4))
	if !p.At(world.Pos(3, 4)) || p.Position() != world.Pos(3, 4) {
		t.Errorf("player at %v, want 3,4", p.Position())
	}
}
