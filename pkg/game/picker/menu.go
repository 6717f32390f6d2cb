package picker

import (
	"context"
	"log"

	engineinput "manorwalk/pkg/engine/input"
	"manorwalk/pkg/game/gameplay"
	"manorwalk/pkg/game/renderer"
	"manorwalk/pkg/game/text"
)

// Interactive shows the offer on a render surface and lets the player cycle
// through the rooms, redraw them or walk away.
type Interactive struct {
	Surface renderer.Surface
}

// Pick implements gameplay.RoomPicker
func (p *Interactive) Pick(ctx context.Context, req gameplay.Request) (gameplay.Decision, error) {
	offer := NewOffer(req)
	notice := ""

	for {
		p.Surface.RenderPicker(pickerView(offer, req, notice))

		intent, err := p.Surface.NextIntent(ctx)
		if err != nil {
			return gameplay.Decision{}, err
		}

		switch intent.Action {
		case engineinput.ActionSelectLeft, engineinput.ActionPrev:
			offer.Prev()
			notice = ""
		case engineinput.ActionSelectRight, engineinput.ActionNext:
			offer.Next()
			notice = ""
		case engineinput.ActionConfirm:
			room, err := offer.Confirm()
			if err != nil {
				notice = text.Get("CANNOT_AFFORD", offer.Current().Name)
				continue
			}
			return gameplay.Decision{Room: room}, nil
		case engineinput.ActionRedraw:
			if err := offer.Redraw(); err != nil {
				notice = text.Get("NO_DICE")
				continue
			}
			log.Printf("picker: redrew offer for %v", req.Target)
			notice = text.Get("REDRAWN")
		case engineinput.ActionQuit:
			return gameplay.Decision{Cancelled: true}, nil
		case engineinput.ActionNone:
			// Ignore
		default:
			// Ignore other actions while the offer is open
		}
	}
}

func pickerView(o *Offer, req gameplay.Request, notice string) renderer.PickerView {
	return renderer.PickerView{
		Frame:     req.Frame,
		Offer:     o.Rooms(),
		Selected:  o.Selected(),
		Travel:    req.Travel,
		Target:    req.Target,
		Inventory: *req.Inventory,
		Notice:    notice,
	}
}

// Auto drafts without asking: the cheapest room it can pay for, or
// cancellation when nothing on offer is affordable.
type Auto struct{}

// Pick implements gameplay.RoomPicker
func (Auto) Pick(ctx context.Context, req gameplay.Request) (gameplay.Decision, error) {
	if err := ctx.Err(); err != nil {
		return gameplay.Decision{}, err
	}

	offer := NewOffer(req)
	i := offer.CheapestAffordable()
	if i < 0 {
		return gameplay.Decision{Cancelled: true}, nil
	}
	offer.Select(i)
	room, err := offer.Confirm()
	if err != nil {
		return gameplay.Decision{}, err
	}
	return gameplay.Decision{Room: room}, nil
}
