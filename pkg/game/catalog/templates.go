// Package catalog holds the fixed room templates and the draft rules that
// turn them into concrete rooms when the player opens a door onto an empty cell.
package catalog

import (
	"github.com/zyedidia/generic/mapset"

	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
)

// Template is the blueprint a room is materialized from
type Template struct {
	Name   string
	Color  entities.Color
	Cost   int
	Rarity int
	Doors  []world.Direction // Door directions, in lock-draw order

	doorSet mapset.Set[world.Direction]
}

// NewTemplate creates a template with its door lookup set
func NewTemplate(name string, color entities.Color, cost, rarity int, doors ...world.Direction) *Template {
	t := &Template{
		Name:    name,
		Color:   color,
		Cost:    cost,
		Rarity:  rarity,
		doorSet: mapset.New[world.Direction](),
	}
	for _, d := range doors {
		if t.doorSet.Has(d) {
			continue
		}
		t.doorSet.Put(d)
		t.Doors = append(t.Doors, d)
	}
	return t
}

// HasDoor reports whether the template has a door facing dir
func (t *Template) HasDoor(dir world.Direction) bool {
	return t.doorSet.Has(dir)
}

// Weight is the sampling weight of the template: 3^-rarity
func (t *Template) Weight() float64 {
	w := 1.0
	for i := 0; i < t.Rarity; i++ {
		w /= 3
	}
	return w
}

// DefaultTemplates returns the manor's fixed room table
func DefaultTemplates() []*Template {
	return []*Template{
		// Common blue rooms
		NewTemplate("Blue", entities.Blue, 0, 0, world.Up, world.Down),
		NewTemplate("Cross", entities.Blue, 0, 0, world.Up, world.Down, world.Left, world.Right),

		// Gardens open sideways
		NewTemplate("Left Garden", entities.Green, 1, 1, world.Down, world.Left),
		NewTemplate("Right Garden", entities.Green, 1, 1, world.Down, world.Right),

		// Yellow turns
		NewTemplate("Turn Left", entities.Yellow, 1, 1, world.Up, world.Left),
		NewTemplate("Turn Right", entities.Yellow, 1, 1, world.Up, world.Right),
		NewTemplate("Shop", entities.Yellow, 1, 2, world.Up, world.Down, world.Left, world.Right),

		// Dead ends
		NewTemplate("Bedroom", entities.Purple, 2, 2, world.Down),
		NewTemplate("Trap", entities.Red, 0, 2, world.Down),
	}
}
