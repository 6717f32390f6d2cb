package gameplay

import (
	"context"

	"manorwalk/pkg/engine/rng"
	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/catalog"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/renderer"
)

// Request describes the empty cell a room is being drafted into
type Request struct {
	Travel    world.Direction     // Direction the player is moving
	Target    world.Position      // The empty cell
	Inventory *entities.Inventory // Live inventory; confirming spends gems, redrawing spends dice
	Source    rng.Source
	Catalog   *catalog.Catalog
	Frame     renderer.View // The manor as it stands, for drawing behind the offer
}

// Decision is what the picker settled on: a room, or cancellation
type Decision struct {
	Room      *entities.Room
	Cancelled bool
}

// RoomPicker chooses the room to draft. It may block until the player
// decides; cancellation refunds nothing.
type RoomPicker interface {
	Pick(ctx context.Context, req Request) (Decision, error)
}

// PickerFunc adapts a function to RoomPicker
type PickerFunc func(ctx context.Context, req Request) (Decision, error)

// Pick implements RoomPicker
func (f PickerFunc) Pick(ctx context.Context, req Request) (Decision, error) {
	return f(ctx, req)
}
