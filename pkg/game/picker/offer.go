// Package picker chooses the room drafted into an empty cell, either by
// asking the player through a render surface or automatically.
package picker

import (
	"errors"

	"manorwalk/pkg/game/catalog"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/gameplay"
)

var (
	// ErrCannotAfford is returned when confirming a room that costs more gems than the player holds
	ErrCannotAfford = errors.New("not enough gems")
	// ErrNoDice is returned when redrawing without a die
	ErrNoDice = errors.New("no dice left")
)

// Offer is an open draft: three rooms with one of them selected. Moving the
// selection is free; confirming spends gems, redrawing spends a die.
type Offer struct {
	req      gameplay.Request
	rooms    [catalog.OfferSize]*entities.Room
	selected int
}

// NewOffer draws the first three rooms for req
func NewOffer(req gameplay.Request) *Offer {
	o := &Offer{req: req}
	o.draw()
	return o
}

func (o *Offer) draw() {
	o.rooms = o.req.Catalog.PickThree(o.req.Travel, o.req.Target.Row, o.req.Target.Col, o.req.Source)
	o.selected = 0
}

// Rooms returns the rooms on offer
func (o *Offer) Rooms() [catalog.OfferSize]*entities.Room {
	return o.rooms
}

// Selected returns the index of the selected room
func (o *Offer) Selected() int {
	return o.selected
}

// Current returns the selected room
func (o *Offer) Current() *entities.Room {
	return o.rooms[o.selected]
}

// Next moves the selection right, wrapping around
func (o *Offer) Next() {
	o.selected = (o.selected + 1) % len(o.rooms)
}

// Prev moves the selection left, wrapping around
func (o *Offer) Prev() {
	o.selected = (o.selected + len(o.rooms) - 1) % len(o.rooms)
}

// Select moves the selection to index i. Out-of-range indexes are ignored.
func (o *Offer) Select(i int) {
	if i >= 0 && i < len(o.rooms) {
		o.selected = i
	}
}

// Redraw spends a die and replaces all three rooms. Gems are untouched.
func (o *Offer) Redraw() error {
	if !o.req.Inventory.SpendDie() {
		return ErrNoDice
	}
	o.draw()
	return nil
}

// Confirm spends the selected room's cost and returns it
func (o *Offer) Confirm() (*entities.Room, error) {
	room := o.Current()
	if !o.req.Inventory.SpendGems(room.Cost) {
		return nil, ErrCannotAfford
	}
	return room, nil
}

// CheapestAffordable returns the index of the cheapest room the inventory can
// pay for, preferring the lowest index on ties, or -1 if none is affordable.
func (o *Offer) CheapestAffordable() int {
	best := -1
	for i, room := range o.rooms {
		if !o.req.Inventory.CanAfford(room.Cost) {
			continue
		}
		if best < 0 || room.Cost < o.rooms[best].Cost {
			best = i
		}
	}
	return best
}
