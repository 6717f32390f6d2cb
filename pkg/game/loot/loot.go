// Package loot resolves what a player finds on first entering a room.
package loot

import (
	"manorwalk/pkg/engine/rng"
	"manorwalk/pkg/game/entities"
)

// Kind is the category of a find
type Kind int

const (
	Nothing Kind = iota
	Gem
	Key
	Die
	Food
	Item
)

// String returns the string representation of a find kind
func (k Kind) String() string {
	switch k {
	case Nothing:
		return "nothing"
	case Gem:
		return "gem"
	case Key:
		return "key"
	case Die:
		return "die"
	case Food:
		return "food"
	case Item:
		return "item"
	default:
		return "unknown"
	}
}

// Find reports the outcome of one loot roll
type Find struct {
	Kind  Kind
	Item  entities.Permanent // Set when Kind == Item
	Food  string             // Set when Kind == Food
	Steps int                // Steps restored by food
}

// Tuning values for the loot table
const (
	DefaultBaseChance = 0.15
	RabbitFootBonus   = 1.5
	PermanentRoll     = 0.85
)

var baseChance = map[entities.Color]float64{
	entities.Green:  0.40,
	entities.Purple: 0.35,
	entities.Yellow: 0.25,
	entities.Red:    0.25,
	entities.Blue:   0.20,
}

// Chance returns the probability of finding anything in a room of color c
func Chance(c entities.Color, inv *entities.Inventory) float64 {
	base, ok := baseChance[c]
	if !ok {
		base = DefaultBaseChance
	}
	if inv.HasRabbitFoot {
		base *= RabbitFootBonus
	}
	return base
}

type weighted struct {
	kind   Kind
	weight int
}

// weights returns the consumable table for a room, in draw order
func weights(room *entities.Room, inv *entities.Inventory) []weighted {
	gem, key, dice, food := 3, 3, 2, 4
	if inv.HasMetalDetector {
		gem += 2
		key += 2
	}
	if room.Color == entities.Green {
		gem++
		food++
	}
	return []weighted{
		{Gem, gem},
		{Key, key},
		{Die, dice},
		{Food, food},
	}
}

type foodBand struct {
	upTo  float64
	name  string
	steps int
}

var foodBands = []foodBand{
	{0.2, "apple", 2},
	{0.4, "banana", 3},
	{0.7, "cake", 10},
	{0.9, "sandwich", 15},
}

var meal = foodBand{1, "meal", 25}

// FoodFor maps a uniform draw onto a food and the steps it restores
func FoodFor(u float64) (string, int) {
	for _, b := range foodBands {
		if u < b.upTo {
			return b.name, b.steps
		}
	}
	return meal.name, meal.steps
}

// OnEnter rolls loot for a room the player has just drafted and entered,
// applying the find to inv.
func OnEnter(room *entities.Room, inv *entities.Inventory, src rng.Source) Find {
	if src.Float64() > Chance(room.Color, inv) {
		return Find{Kind: Nothing}
	}

	if src.Float64() > PermanentRoll {
		perms := entities.AllPermanents()
		item := perms[src.IntN(len(perms))]
		inv.Grant(item)
		return Find{Kind: Item, Item: item}
	}

	switch pickKind(weights(room, inv), src) {
	case Gem:
		inv.Gems++
		return Find{Kind: Gem}
	case Key:
		inv.Keys++
		return Find{Kind: Key}
	case Die:
		inv.Dice++
		return Find{Kind: Die}
	default:
		name, steps := FoodFor(src.Float64())
		inv.AddSteps(steps)
		return Find{Kind: Food, Food: name, Steps: steps}
	}
}

func pickKind(table []weighted, src rng.Source) Kind {
	total := 0
	for _, w := range table {
		total += w.weight
	}
	r := src.Float64() * float64(total)
	for _, w := range table {
		r -= float64(w.weight)
		if r < 0 {
			return w.kind
		}
	}
	return table[len(table)-1].kind
}
