package manor

import "manorwalk/pkg/engine/world"

// Outcome is the result of a Move: one of Blocked, Moved or NewRoomPending
type Outcome interface {
	outcome()
}

// Blocked means the move did not happen and nothing was spent
type Blocked struct{}

// Moved means the player advanced into an existing room
type Moved struct {
	To world.Position
}

// NewRoomPending means the door was opened onto an empty cell that needs a
// room drafted into it
type NewRoomPending struct {
	Target world.Position
}

func (Blocked) outcome()        {}
func (Moved) outcome()          {}
func (NewRoomPending) outcome() {}
