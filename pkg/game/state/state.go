package state

import (
	"manorwalk/pkg/engine/rng"
	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/catalog"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/manor"
)

// Phase is where the current turn stands
type Phase int

// Turn phases
const (
	AwaitingDirection Phase = iota
	DirectionSelected
	AwaitingRoomChoice
	Resolved // The session is over; further intents are ignored
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case AwaitingDirection:
		return "awaiting-direction"
	case DirectionSelected:
		return "direction-selected"
	case AwaitingRoomChoice:
		return "awaiting-room-choice"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Result is how the session stands
type Result int

// Session results
const (
	Playing Result = iota
	Win
	LoseOutOfSteps
	LoseStuck
	Quit
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case Playing:
		return "playing"
	case Win:
		return "win"
	case LoseOutOfSteps:
		return "out-of-steps"
	case LoseStuck:
		return "stuck"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// IsLoss reports whether the result is one of the losing outcomes
func (r Result) IsLoss() bool {
	return r == LoseOutOfSteps || r == LoseStuck
}

// Stats counts what the player has done this session
type Stats struct {
	Turns        int `json:"turns"`
	RoomsDrafted int `json:"rooms_drafted"`
	GemsSpent    int `json:"gems_spent"`
	DiceSpent    int `json:"dice_spent"`
	KeysUsed     int `json:"keys_used"`
}

// Game represents the state of one manor run
type Game struct {
	Manor     *manor.Manor
	Catalog   *catalog.Catalog
	Player    *entities.Player
	Inventory *entities.Inventory
	RNG       *rng.Seeded

	Phase      Phase
	Pending    world.Direction
	HasPending bool
	Result     Result

	Messages []string
	Stats    Stats
}

// NewGame creates a new game on a rows x cols manor with the player on the
// entrance cell
func NewGame(rows, cols int, inv *entities.Inventory, src *rng.Seeded) *Game {
	m := manor.New(rows, cols)
	return &Game{
		Manor:     m,
		Catalog:   catalog.New(rows, cols),
		Player:    entities.NewPlayer(m.Start()),
		Inventory: inv,
		RNG:       src,
		Phase:     AwaitingDirection,
		Result:    Playing,
		Messages:  make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// SelectDirection records d as the direction the next confirm will take
func (g *Game) SelectDirection(d world.Direction) {
	g.Pending = d
	g.HasPending = true
}

// ClearPending forgets the selected direction
func (g *Game) ClearPending() {
	g.HasPending = false
}

// Finish ends the session with the given result
func (g *Game) Finish(r Result) {
	g.Result = r
	g.Phase = Resolved
	g.HasPending = false
}

// IsOver reports whether the session has ended
func (g *Game) IsOver() bool {
	return g.Phase == Resolved
}

// CurrentRoom returns the room the player stands in
func (g *Game) CurrentRoom() *entities.Room {
	return g.Manor.Room(g.Player.Position())
}
