package picker

import (
	"context"
	"errors"
	"testing"

	engineinput "manorwalk/pkg/engine/input"
	"manorwalk/pkg/engine/rng"
	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/catalog"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/gameplay"
	"manorwalk/pkg/game/renderer"
)

// testRequest drafts into the bottom cell of a 3x1 manor, where locks take no
// draws. Each Float64 below .5 picks Paid, anything else Free.
func testRequest(t *testing.T, inv *entities.Inventory, draws ...float64) gameplay.Request {
	t.Helper()
	paid := catalog.NewTemplate("Paid", entities.Yellow, 1, 0, world.Down)
	free := catalog.NewTemplate("Free", entities.Blue, 0, 0, world.Down)
	return gameplay.Request{
		Travel:    world.Up,
		Target:    world.Pos(2, 0),
		Inventory: inv,
		Source:    rng.NewSequence(draws...),
		Catalog:   catalog.NewWithTemplates(3, 1, []*catalog.Template{paid, free}),
	}
}

func names(o *Offer) [catalog.OfferSize]string {
	var out [catalog.OfferSize]string
	for i, r := range o.Rooms() {
		out[i] = r.Name
	}
	return out
}

func intents(actions ...engineinput.Action) []engineinput.Intent {
	out := make([]engineinput.Intent, len(actions))
	for i, a := range actions {
		out[i] = engineinput.Intent{Action: a}
	}
	return out
}

func TestOfferCyclesWithWrapAround(t *testing.T) {
	o := NewOffer(testRequest(t, &entities.Inventory{}, 0.1, 0.9, 0.1))
	if got := names(o); got != [3]string{"Paid", "Free", "Paid"} {
		t.Fatalf("offer = %v", got)
	}

	steps := []struct {
		move func()
		want int
	}{
		{o.Prev, 2},
		{o.Next, 0},
		{o.Next, 1},
		{o.Next, 2},
		{o.Next, 0},
	}
	for i, s := range steps {
		s.move()
		if o.Selected() != s.want {
			t.Errorf("step %d: selected = %d, want %d", i, o.Selected(), s.want)
		}
	}

	o.Select(7)
	if o.Selected() != 0 {
		t.Errorf("Select(7) moved selection to %d", o.Selected())
	}
}

func TestOfferConfirm(t *testing.T) {
	inv := &entities.Inventory{Gems: 0}
	o := NewOffer(testRequest(t, inv, 0.1, 0.9, 0.1))

	if _, err := o.Confirm(); !errors.Is(err, ErrCannotAfford) {
		t.Fatalf("Confirm(Paid) with no gems = %v, want ErrCannotAfford", err)
	}
	if inv.Gems != 0 {
		t.Errorf("gems = %d after refusal, want 0", inv.Gems)
	}

	o.Next()
	room, err := o.Confirm()
	if err != nil || room.Name != "Free" {
		t.Fatalf("Confirm(Free) = %v, %v", room, err)
	}

	inv.Gems = 3
	o.Prev()
	if _, err := o.Confirm(); err != nil {
		t.Fatalf("Confirm(Paid) with 3 gems = %v", err)
	}
	if inv.Gems != 2 {
		t.Errorf("gems = %d, want 2", inv.Gems)
	}
}

func TestOfferRedraw(t *testing.T) {
	inv := &entities.Inventory{Gems: 4, Dice: 1}
	o := NewOffer(testRequest(t, inv, 0.1, 0.9, 0.1, 0.9, 0.9, 0.1))
	o.Next()
	o.Next()

	if err := o.Redraw(); err != nil {
		t.Fatalf("Redraw() = %v", err)
	}
	if got := names(o); got != [3]string{"Free", "Free", "Paid"} {
		t.Errorf("redrawn offer = %v", got)
	}
	if o.Selected() != 0 {
		t.Errorf("selected = %d after redraw, want 0", o.Selected())
	}
	if inv.Dice != 0 || inv.Gems != 4 {
		t.Errorf("inventory after redraw = %+v, want dice 0 gems 4", *inv)
	}

	if err := o.Redraw(); !errors.Is(err, ErrNoDice) {
		t.Errorf("Redraw() without dice = %v, want ErrNoDice", err)
	}
	if got := names(o); got != [3]string{"Free", "Free", "Paid"} {
		t.Errorf("refused redraw changed offer to %v", got)
	}
}

func TestAuto(t *testing.T) {
	tests := []struct {
		name      string
		gems      int
		draws     []float64
		want      string
		cancelled bool
	}{
		{"cheapest wins", 5, []float64{0.1, 0.9, 0.1}, "Free", false},
		{"first free on ties", 0, []float64{0.9, 0.9, 0.1}, "Free", false},
		{"nothing affordable", -1, []float64{0.1, 0.9, 0.1}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &entities.Inventory{Gems: tt.gems}
			d, err := Auto{}.Pick(context.Background(), testRequest(t, inv, tt.draws...))
			if err != nil {
				t.Fatalf("Pick() = %v", err)
			}
			if d.Cancelled != tt.cancelled {
				t.Fatalf("Cancelled = %v, want %v", d.Cancelled, tt.cancelled)
			}
			if !tt.cancelled && d.Room.Name != tt.want {
				t.Errorf("room = %s, want %s", d.Room.Name, tt.want)
			}
			if inv.Gems != tt.gems {
				t.Errorf("gems = %d, want %d (free room)", inv.Gems, tt.gems)
			}
		})
	}
}

func TestAutoHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Auto{}).Pick(ctx, testRequest(t, &entities.Inventory{})); !errors.Is(err, context.Canceled) {
		t.Errorf("Pick() = %v, want context.Canceled", err)
	}
}

func TestInteractive(t *testing.T) {
	t.Run("cycle and confirm", func(t *testing.T) {
		surface := &renderer.Nop{Intents: intents(engineinput.ActionSelectRight, engineinput.ActionConfirm)}
		inv := &entities.Inventory{}
		d, err := (&Interactive{Surface: surface}).Pick(context.Background(), testRequest(t, inv, 0.1, 0.9, 0.1))
		if err != nil {
			t.Fatalf("Pick() = %v", err)
		}
		if d.Cancelled || d.Room.Name != "Free" {
			t.Errorf("decision = %+v, want Free", d)
		}
		if surface.Pickers != 2 {
			t.Errorf("offer drawn %d times, want 2", surface.Pickers)
		}
	})

	t.Run("refused confirm keeps the offer open", func(t *testing.T) {
		surface := &renderer.Nop{Intents: intents(engineinput.ActionConfirm, engineinput.ActionRedraw, engineinput.ActionQuit)}
		inv := &entities.Inventory{}
		d, err := (&Interactive{Surface: surface}).Pick(context.Background(), testRequest(t, inv, 0.1, 0.9, 0.1))
		if err != nil {
			t.Fatalf("Pick() = %v", err)
		}
		if !d.Cancelled {
			t.Errorf("decision = %+v, want cancelled", d)
		}
		if inv.Gems != 0 || inv.Dice != 0 {
			t.Errorf("inventory = %+v, want untouched", *inv)
		}
		if surface.Pickers != 3 {
			t.Errorf("offer drawn %d times, want 3", surface.Pickers)
		}
	})

	t.Run("surface error", func(t *testing.T) {
		surface := &renderer.Nop{}
		_, err := (&Interactive{Surface: surface}).Pick(context.Background(), testRequest(t, &entities.Inventory{}, 0.1, 0.9, 0.1))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Pick() = %v, want context.Canceled", err)
		}
	})
}
