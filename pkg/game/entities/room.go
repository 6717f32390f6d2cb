package entities

import (
	"fmt"

	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/lock"
)

// Color is the family a room belongs to. It drives loot odds and rendering.
type Color int

const (
	Blue Color = iota
	Green
	Yellow
	Purple
	Orange
	Red
)

// AllColors returns every room color
func AllColors() []Color {
	return []Color{Blue, Green, Yellow, Purple, Orange, Red}
}

// String returns the string representation of a color
func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Purple:
		return "purple"
	case Orange:
		return "orange"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	if c < Blue || c > Red {
		return nil, fmt.Errorf("invalid room color %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	for _, col := range AllColors() {
		if col.String() == string(text) {
			*c = col
			return nil
		}
	}
	return fmt.Errorf("unknown room color %q", text)
}

// MaxRarity is the rarest tier a room can have
const MaxRarity = 3

// Room is a placed (or offered) room. It never changes once created.
type Room struct {
	Name   string  `json:"name"`
	Color  Color   `json:"color"`
	Cost   int     `json:"cost"`   // Gem price to draft it
	Rarity int     `json:"rarity"` // 0 (common) .. MaxRarity
	Doors  []*Door `json:"doors"`  // At most one per direction, in template order
}

// NewRoom creates a room, keeping the first door given for each direction
func NewRoom(name string, color Color, cost, rarity int, doors ...*Door) *Room {
	r := &Room{
		Name:   name,
		Color:  color,
		Cost:   cost,
		Rarity: rarity,
	}
	for _, d := range doors {
		if d == nil || r.Door(d.Direction) != nil {
			continue
		}
		r.Doors = append(r.Doors, d)
	}
	return r
}

// Door returns the door facing dir, or nil if the room has none
func (r *Room) Door(dir world.Direction) *Door {
	if r == nil {
		return nil
	}
	for _, d := range r.Doors {
		if d.Direction == dir {
			return d
		}
	}
	return nil
}

// HasDoor reports whether the room has a door facing dir
func (r *Room) HasDoor(dir world.Direction) bool {
	return r.Door(dir) != nil
}

// IsFree reports whether drafting the room costs nothing
func (r *Room) IsFree() bool {
	return r.Cost == 0
}

// Names of the two fixed rooms
const (
	StartRoomName = "Entrance Hall"
	GoalRoomName  = "Antechamber"
)

// NewStartRoom creates the entrance: one unlocked door leading up
func NewStartRoom() *Room {
	return NewRoom(StartRoomName, Blue, 0, 0, NewDoor(world.Up, lock.Unlocked))
}

// NewGoalRoom creates the goal: one double-locked door leading down
func NewGoalRoom() *Room {
	return NewRoom(GoalRoomName, Purple, 0, 0, NewDoor(world.Down, lock.DoubleLocked))
}
