// Package manor holds the grid of rooms being explored and resolves movement
// between cells against the player's inventory.
package manor

import (
	"errors"
	"fmt"

	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
)

// Default manor dimensions
const (
	DefaultRows = 5
	DefaultCols = 9
)

var (
	// ErrOutOfBounds is returned when a position is not on the grid
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrOccupied is returned when placing a room on a filled cell
	ErrOccupied = errors.New("cell already has a room")
)

// Manor is the lattice of rooms. The start room sits on the bottom row and
// the goal room on the top row, both in the middle column.
type Manor struct {
	grid  *world.Grid[*entities.Room]
	start world.Position
	goal  world.Position
}

// New creates a rows x cols manor with the start and goal rooms placed
func New(rows, cols int) *Manor {
	m := &Manor{grid: world.NewGrid[*entities.Room](rows, cols)}
	m.start = m.grid.BottomCenter()
	m.goal = m.grid.TopCenter()
	m.grid.Set(m.start, entities.NewStartRoom())
	m.grid.Set(m.goal, entities.NewGoalRoom())
	return m
}

// Rows returns the number of rows
func (m *Manor) Rows() int {
	return m.grid.Rows()
}

// Cols returns the number of columns
func (m *Manor) Cols() int {
	return m.grid.Cols()
}

// Start returns the entrance cell
func (m *Manor) Start() world.Position {
	return m.start
}

// Goal returns the antechamber cell
func (m *Manor) Goal() world.Position {
	return m.goal
}

// InBounds reports whether p is on the grid
func (m *Manor) InBounds(p world.Position) bool {
	return m.grid.IsValidPosition(p)
}

// Room returns the room at p, or nil if the cell is empty or off the grid
func (m *Manor) Room(p world.Position) *entities.Room {
	return m.grid.Get(p)
}

// Place commits a room into an empty cell. Cells are filled at most once.
func (m *Manor) Place(p world.Position, room *entities.Room) error {
	if !m.grid.IsValidPosition(p) {
		return fmt.Errorf("place %s at %v: %w", room.Name, p, ErrOutOfBounds)
	}
	if !m.grid.IsEmpty(p) {
		return fmt.Errorf("place %s at %v: %w", room.Name, p, ErrOccupied)
	}
	m.grid.Set(p, room)
	return nil
}

// ForEachRoom calls fn for every occupied cell in row-major order
func (m *Manor) ForEachRoom(fn func(p world.Position, room *entities.Room)) {
	m.grid.ForEachOccupied(fn)
}

// Placed returns how many rooms have been drafted, excluding start and goal
func (m *Manor) Placed() int {
	return m.grid.Count() - 2
}

// door returns the door leading out of the player's room in dir and the cell
// it opens onto. ok is false if there is no such door or it leads off the grid.
func (m *Manor) door(player *entities.Player, dir world.Direction) (d *entities.Door, target world.Position, ok bool) {
	from := player.Position()
	target, _, inBounds := m.grid.GetRelative(from, dir)
	if !inBounds {
		return nil, target, false
	}
	d = m.grid.Get(from).Door(dir)
	if d == nil {
		return nil, target, false
	}
	return d, target, true
}

// CanMove reports whether the player could leave its room through dir right now
func (m *Manor) CanMove(player *entities.Player, inv *entities.Inventory, dir world.Direction) bool {
	d, _, ok := m.door(player, dir)
	if !ok {
		return false
	}
	return d.CanOpen(inv)
}

// Move tries to take the player through the door in dir.
//
// Into a populated cell the door is opened, the player advances and a step
// is used. Into an empty cell the door is opened (its cost is committed) and
// NewRoomPending is returned; placing a room and moving the player is then
// up to the caller.
func (m *Manor) Move(player *entities.Player, inv *entities.Inventory, dir world.Direction) Outcome {
	d, target, ok := m.door(player, dir)
	if !ok {
		return Blocked{}
	}

	if m.grid.IsEmpty(target) {
		if !d.CanOpen(inv) {
			return Blocked{}
		}
		d.Open(inv)
		return NewRoomPending{Target: target}
	}

	if !d.Open(inv) {
		return Blocked{}
	}
	player.MoveTo(target)
	inv.UseStep()
	return Moved{To: target}
}

// Enter moves the player onto a freshly placed room, using one step
func (m *Manor) Enter(player *entities.Player, inv *entities.Inventory, p world.Position) error {
	if m.Room(p) == nil {
		return fmt.Errorf("enter %v: no room", p)
	}
	player.MoveTo(p)
	inv.UseStep()
	return nil
}
