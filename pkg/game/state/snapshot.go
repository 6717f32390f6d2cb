package state

import (
	"encoding/json"
	"fmt"

	"manorwalk/pkg/engine/rng"
	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
)

// PlacedRoom is a drafted room and the cell it occupies
type PlacedRoom struct {
	Pos  world.Position `json:"pos"`
	Room *entities.Room `json:"room"`
}

// Snapshot is an in-memory capture of a session, enough to replay it from
// the same point. It is never written to disk by the game.
type Snapshot struct {
	Rows       int                `json:"rows"`
	Cols       int                `json:"cols"`
	Rooms      []PlacedRoom       `json:"rooms"`
	Player     entities.Player    `json:"player"`
	Inventory  entities.Inventory `json:"inventory"`
	Phase      Phase              `json:"phase"`
	Pending    world.Direction    `json:"pending"`
	HasPending bool               `json:"has_pending"`
	Result     Result             `json:"result"`
	Seed       int64              `json:"seed"`
	RNG        []byte             `json:"rng"`
	Stats      Stats              `json:"stats"`
	Messages   []string           `json:"messages"`
}

// Snapshot captures the session as JSON
func (g *Game) Snapshot() ([]byte, error) {
	rngState, err := g.RNG.State()
	if err != nil {
		return nil, fmt.Errorf("snapshot rng: %w", err)
	}

	s := Snapshot{
		Rows:       g.Manor.Rows(),
		Cols:       g.Manor.Cols(),
		Player:     *g.Player,
		Inventory:  *g.Inventory,
		Phase:      g.Phase,
		Pending:    g.Pending,
		HasPending: g.HasPending,
		Result:     g.Result,
		Seed:       g.RNG.Seed(),
		RNG:        rngState,
		Stats:      g.Stats,
		Messages:   append([]string(nil), g.Messages...),
	}
	start, goal := g.Manor.Start(), g.Manor.Goal()
	g.Manor.ForEachRoom(func(p world.Position, room *entities.Room) {
		if p == start || p == goal {
			return
		}
		s.Rooms = append(s.Rooms, PlacedRoom{Pos: p, Room: room})
	})

	return json.Marshal(s)
}

// Restore rebuilds a session from a Snapshot
func Restore(data []byte) (*Game, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Rows <= 0 || s.Cols <= 0 {
		return nil, fmt.Errorf("decode snapshot: bad dimensions %dx%d", s.Rows, s.Cols)
	}

	src := rng.New(s.Seed)
	if err := src.Restore(s.RNG); err != nil {
		return nil, err
	}

	inv := s.Inventory
	g := NewGame(s.Rows, s.Cols, &inv, src)
	for _, pr := range s.Rooms {
		if err := g.Manor.Place(pr.Pos, pr.Room); err != nil {
			return nil, fmt.Errorf("restore rooms: %w", err)
		}
	}
	if !g.Manor.InBounds(s.Player.Position()) {
		return nil, fmt.Errorf("restore player: %v is off the grid", s.Player.Position())
	}
	g.Player.MoveTo(s.Player.Position())
	g.Phase = s.Phase
	g.Pending = s.Pending
	g.HasPending = s.HasPending
	g.Result = s.Result
	g.Stats = s.Stats
	if s.Messages != nil {
		g.Messages = s.Messages
	}
	return g, nil
}
