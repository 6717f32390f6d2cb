package gameplay

import (
	"context"
	"log"

	engineinput "manorwalk/pkg/engine/input"
	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/config"
	"manorwalk/pkg/game/devtools"
	"manorwalk/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// Intents arriving after the session is resolved are ignored.
func ProcessIntent(ctx context.Context, g *state.Game, intent engineinput.Intent, picker RoomPicker) error {
	if g.IsOver() {
		return nil
	}

	switch intent.Action {
	case engineinput.ActionSelectUp:
		SelectDirection(g, world.Up)
	case engineinput.ActionSelectDown:
		SelectDirection(g, world.Down)
	case engineinput.ActionSelectLeft:
		SelectDirection(g, world.Left)
	case engineinput.ActionSelectRight:
		SelectDirection(g, world.Right)

	case engineinput.ActionConfirm:
		if _, err := Confirm(ctx, g, picker); err != nil {
			return err
		}

	case engineinput.ActionQuit:
		g.Finish(state.Quit)
		logMessage(g, "QUIT")

	case engineinput.ActionDumpMap:
		path, err := devtools.DumpManor(g, config.Current().DumpDir)
		if err != nil {
			log.Printf("map dump failed: %v", err)
			logMessage(g, "MAP_DUMP_FAILED", err.Error())
		} else {
			logMessage(g, "MAP_DUMPED", path)
		}

	case engineinput.ActionHelp:
		logMessage(g, "HELP")

	case engineinput.ActionPrev, engineinput.ActionNext, engineinput.ActionRedraw:
		// Only meaningful while a room offer is open

	default:
		logMessage(g, "UNKNOWN_COMMAND")
	}
	return nil
}
