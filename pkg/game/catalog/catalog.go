package catalog

import (
	"manorwalk/pkg/engine/rng"
	"manorwalk/pkg/engine/world"
	"manorwalk/pkg/game/entities"
	"manorwalk/pkg/game/lock"
)

// OfferSize is how many rooms a draft offers
const OfferSize = 3

// Catalog draws rooms for a manor of fixed dimensions
type Catalog struct {
	templates []*Template
	rows      int
	cols      int
}

// New creates a catalog of the default templates for a rows x cols manor
func New(rows, cols int) *Catalog {
	return NewWithTemplates(rows, cols, DefaultTemplates())
}

// NewWithTemplates creates a catalog over an explicit template table
func NewWithTemplates(rows, cols int, templates []*Template) *Catalog {
	return &Catalog{
		templates: templates,
		rows:      rows,
		cols:      cols,
	}
}

// Templates returns the full template table
func (c *Catalog) Templates() []*Template {
	return c.templates
}

// CandidatesForEntry returns the templates with a door on entrySide, the side
// the player walks in through.
func (c *Catalog) CandidatesForEntry(entrySide world.Direction) []*Template {
	var out []*Template
	for _, t := range c.templates {
		if t.HasDoor(entrySide) {
			out = append(out, t)
		}
	}
	return out
}

// FilterLegal drops templates that would put a door on the manor's outer wall
// at (row, col). If nothing survives, the candidates are returned unfiltered.
func (c *Catalog) FilterLegal(candidates []*Template, row, col int) []*Template {
	var legal []*Template
	for _, t := range candidates {
		if c.fits(t, row, col) {
			legal = append(legal, t)
		}
	}
	if len(legal) == 0 {
		return candidates
	}
	return legal
}

func (c *Catalog) fits(t *Template, row, col int) bool {
	for _, d := range t.Doors {
		next := world.Pos(row, col).Step(d)
		if next.Row < 0 || next.Row >= c.rows || next.Col < 0 || next.Col >= c.cols {
			return false
		}
	}
	return true
}

// WeightedPick samples one template with weight 3^-rarity
func WeightedPick(candidates []*Template, src rng.Source) *Template {
	if len(candidates) == 0 {
		return nil
	}
	total := 0.0
	for _, t := range candidates {
		total += t.Weight()
	}
	r := src.Float64() * total
	for _, t := range candidates {
		r -= t.Weight()
		if r < 0 {
			return t
		}
	}
	// Float rounding can leave r at exactly zero past the last bucket.
	return candidates[len(candidates)-1]
}

// Materialize builds a room from t, drawing each door's lock for the given row
func (c *Catalog) Materialize(t *Template, row int, src rng.Source) *entities.Room {
	doors := make([]*entities.Door, 0, len(t.Doors))
	for _, d := range t.Doors {
		doors = append(doors, entities.NewDoor(d, lock.ForRow(row, c.rows, src)))
	}
	return entities.NewRoom(t.Name, t.Color, t.Cost, t.Rarity, doors...)
}

// DraftPool returns the templates a draft into (row, col) samples from when
// the player travels in the given direction.
func (c *Catalog) DraftPool(travel world.Direction, row, col int) []*Template {
	candidates := c.CandidatesForEntry(travel.Opposite())
	candidates = c.FilterLegal(candidates, row, col)
	if len(candidates) == 0 {
		candidates = c.templates
	}
	return candidates
}

// PickThree draws an offer of three rooms for the cell (row, col), entered by
// travelling in the given direction. Whole triples are redrawn until at least
// one room is free.
func (c *Catalog) PickThree(travel world.Direction, row, col int, src rng.Source) [OfferSize]*entities.Room {
	pool := c.offerPool(travel, row, col)

	for {
		var picked [OfferSize]*Template
		for i := range picked {
			picked[i] = WeightedPick(pool, src)
		}

		var rooms [OfferSize]*entities.Room
		anyFree := false
		for i, t := range picked {
			rooms[i] = c.Materialize(t, row, src)
			if rooms[i].IsFree() {
				anyFree = true
			}
		}
		if anyFree {
			return rooms
		}
	}
}

// offerPool is DraftPool widened until it holds a free template, so the
// redraw loop in PickThree terminates. The outer-wall filter goes first,
// then the entry side.
func (c *Catalog) offerPool(travel world.Direction, row, col int) []*Template {
	if pool := c.DraftPool(travel, row, col); hasFree(pool) {
		return pool
	}
	if pool := c.CandidatesForEntry(travel.Opposite()); hasFree(pool) {
		return pool
	}
	return c.templates
}

func hasFree(templates []*Template) bool {
	for _, t := range templates {
		if t.Cost == 0 {
			return true
		}
	}
	return false
}
