// Package gameplay drives a manor run: direction selection, confirmed moves,
// room drafting, loot and the end-of-game checks.
package gameplay

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/loot"
	"manorwalk/pkg/game/manor"
	"manorwalk/pkg/game/renderer"
	"manorwalk/pkg/game/state"
	"manorwalk/pkg/game/text"
)

// Turn reports what one Confirm did
type Turn struct {
	Outcome   manor.Outcome // nil when nothing was attempted
	Drafted   *entities.Room
	Cancelled bool
	Find      loot.Find
	Result    state.Result
}

// SelectDirection records d as the pending direction, whether or not a door
// lies that way.
func SelectDirection(g *state.Game, d world.Direction) {
	if g.IsOver() {
		return
	}
	g.SelectDirection(d)
	g.Phase = state.DirectionSelected
	logMessage(g, "SELECTED", d.String())
}

// Confirm attempts the move in the pending direction, drafting a room
// through picker if the door opens onto an empty cell.
func Confirm(ctx context.Context, g *state.Game, picker RoomPicker) (Turn, error) {
	if g.IsOver() {
		return Turn{Result: g.Result}, nil
	}
	if !g.HasPending {
		logMessage(g, "NO_DIRECTION")
		return Turn{Result: g.Result}, nil
	}

	dir := g.Pending
	inv := g.Inventory
	keysBefore := inv.Keys

	out := g.Manor.Move(g.Player, inv, dir)
	g.Stats.KeysUsed += keysBefore - inv.Keys
	turn := Turn{Outcome: out}

	switch o := out.(type) {
	case manor.Blocked:
		logMessage(g, "BLOCKED", dir.String())
		g.ClearPending()
		g.Phase = state.AwaitingDirection

	case manor.Moved:
		g.Stats.Turns++
		logMessage(g, "MOVED", g.CurrentRoom().Name)
		g.Phase = state.AwaitingDirection

	case manor.NewRoomPending:
		g.Stats.Turns++
		g.Phase = state.AwaitingRoomChoice
		err := draft(ctx, g, picker, dir, o.Target, &turn)
		g.Phase = state.AwaitingDirection
		if err != nil {
			return turn, err
		}
	}

	turn.Result = CheckEnd(g)
	return turn, nil
}

func draft(ctx context.Context, g *state.Game, picker RoomPicker, dir world.Direction, target world.Position, turn *Turn) error {
	inv := g.Inventory
	gemsBefore, diceBefore := inv.Gems, inv.Dice

	decision, err := picker.Pick(ctx, Request{
		Travel:    dir,
		Target:    target,
		Inventory: inv,
		Source:    g.RNG,
		Catalog:   g.Catalog,
		Frame:     renderer.NewView(g),
	})
	g.Stats.GemsSpent += gemsBefore - inv.Gems
	g.Stats.DiceSpent += diceBefore - inv.Dice
	if err != nil {
		return fmt.Errorf("pick room for %v: %w", target, err)
	}

	if decision.Cancelled || decision.Room == nil {
		turn.Cancelled = true
		logMessage(g, "DRAFT_ABANDONED")
		return nil
	}

	room := decision.Room
	if err := g.Manor.Place(target, room); err != nil {
		return err
	}
	if err := g.Manor.Enter(g.Player, inv, target); err != nil {
		return err
	}
	g.Stats.RoomsDrafted++
	turn.Drafted = room
	logMessage(g, "DRAFTED", room.Name)

	turn.Find = loot.OnEnter(room, inv, g.RNG)
	logFind(g, turn.Find)
	return nil
}

func logFind(g *state.Game, f loot.Find) {
	switch f.Kind {
	case loot.Gem:
		logMessage(g, "FOUND_GEM")
	case loot.Key:
		logMessage(g, "FOUND_KEY")
	case loot.Die:
		logMessage(g, "FOUND_DIE")
	case loot.Food:
		logMessage(g, "FOUND_FOOD", f.Food, f.Steps)
	case loot.Item:
		logMessage(g, "FOUND_ITEM", f.Item.String())
	}
}

// OpenDirections returns the directions the player could leave through now
func OpenDirections(g *state.Game) mapset.Set[world.Direction] {
	open := mapset.New[world.Direction]()
	for _, d := range world.AllDirections() {
		if g.Manor.CanMove(g.Player, g.Inventory, d) {
			open.Put(d)
		}
	}
	return open
}

// CheckEnd decides whether the session is over. Reaching the goal wins even
// with no steps left; otherwise running out of steps loses before being
// stuck is considered. A decided result moves the game to Resolved.
func CheckEnd(g *state.Game) state.Result {
	if g.IsOver() {
		return g.Result
	}

	switch {
	case g.Player.At(g.Manor.Goal()):
		g.Finish(state.Win)
		logMessage(g, "WIN")
	case g.Inventory.OutOfSteps():
		g.Finish(state.LoseOutOfSteps)
		logMessage(g, "LOSE_STEPS")
	case OpenDirections(g).Size() == 0:
		g.Finish(state.LoseStuck)
		logMessage(g, "LOSE_STUCK")
	}
	return g.Result
}

// logMessage adds a catalog message to the game's message log
func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(text.Get(key, a...))
}
