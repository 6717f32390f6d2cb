package renderer

import (
	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/catalog"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/state"
)

// View is a read-only projection of a game for drawing. Rooms are shared
// with the game; they never change once placed.
type View struct {
	Rows, Cols int
	Cells      [][]*entities.Room
	Player     world.Position
	Start      world.Position
	Goal       world.Position
	Inventory  entities.Inventory
	Pending    world.Direction
	HasPending bool
	Phase      state.Phase
	Result     state.Result
	Messages   []string
	Stats      state.Stats
	Seed       int64
}

// NewView captures g for drawing
func NewView(g *state.Game) View {
	v := View{
		Rows:       g.Manor.Rows(),
		Cols:       g.Manor.Cols(),
		Player:     g.Player.Position(),
		Start:      g.Manor.Start(),
		Goal:       g.Manor.Goal(),
		Inventory:  *g.Inventory,
		Pending:    g.Pending,
		HasPending: g.HasPending,
		Phase:      g.Phase,
		Result:     g.Result,
		Messages:   append([]string(nil), g.Messages...),
		Stats:      g.Stats,
		Seed:       g.RNG.Seed(),
	}
	v.Cells = make([][]*entities.Room, v.Rows)
	for r := range v.Cells {
		v.Cells[r] = make([]*entities.Room, v.Cols)
	}
	g.Manor.ForEachRoom(func(p world.Position, room *entities.Room) {
		v.Cells[p.Row][p.Col] = room
	})
	return v
}

// Room returns the room at p, or nil
func (v View) Room(p world.Position) *entities.Room {
	if p.Row < 0 || p.Row >= v.Rows || p.Col < 0 || p.Col >= v.Cols {
		return nil
	}
	return v.Cells[p.Row][p.Col]
}

// CurrentRoom returns the room the player stands in
func (v View) CurrentRoom() *entities.Room {
	return v.Room(v.Player)
}

// PickerView is what a surface needs to draw a room offer
type PickerView struct {
	Frame     View
	Offer     [catalog.OfferSize]*entities.Room
	Selected  int
	Travel    world.Direction
	Target    world.Position
	Inventory entities.Inventory
	Notice    string // Last refusal or redraw message, may be empty
}
