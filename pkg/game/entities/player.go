package entities

import "manorwalk/pkg/engine/world"

// Player is the explorer's position on the manor grid
type Player struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewPlayer creates a player standing on p
func NewPlayer(p world.Position) *Player {
	return &Player{Row: p.Row, Col: p.Col}
}

// Position returns where the player stands
func (pl *Player) Position() world.Position {
	return world.Pos(pl.Row, pl.Col)
}

// MoveTo puts the player on p
func (pl *Player) MoveTo(p world.Position) {
	pl.Row = p.Row
	pl.Col = p.Col
}

// At reports whether the player stands on p
func (pl *Player) At(p world.Position) bool {
	return pl.Row == p.Row && pl.Col == p.Col
}
