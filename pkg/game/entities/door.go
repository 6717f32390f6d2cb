// Package entities contains the manor's game objects: doors, rooms, the
// inventory and the player.
package entities

import (
	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/lock"
)

// Door is one exit of a room. Its lock never changes after the room is created;
// only the resources needed to walk through it vary with the lock.
type Door struct {
	Direction world.Direction `json:"direction"`
	Lock      lock.State      `json:"lock"`
}

// NewDoor creates a door facing the given direction
func NewDoor(dir world.Direction, state lock.State) *Door {
	return &Door{
		Direction: dir,
		Lock:      state,
	}
}

// CanOpen reports whether the inventory holds what this door needs
func (d *Door) CanOpen(inv *Inventory) bool {
	return d.Lock.CanBeOpenedWith(inv.Keys, inv.HasLockpick)
}

// Open spends whatever the door costs. It returns false, leaving the inventory
// untouched, when the door cannot be opened. A lockpick opens Locked doors for
// free but does nothing for DoubleLocked ones.
func (d *Door) Open(inv *Inventory) bool {
	if !d.CanOpen(inv) {
		return false
	}

	switch d.Lock {
	case lock.Locked:
		if !inv.HasLockpick {
			inv.Keys--
		}
	case lock.DoubleLocked:
		inv.Keys--
	}

	return true
}
