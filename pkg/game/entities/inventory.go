package entities

// Starting resources for a new run
const (
	DefaultSteps = 70
	DefaultKeys  = 0
	DefaultGems  = 2
	DefaultDice  = 0
)

// Inventory is the player's resource ledger. Counters are not clamped.
type Inventory struct {
	Steps int `json:"steps"`
	Keys  int `json:"keys"`
	Gems  int `json:"gems"`
	Dice  int `json:"dice"`

	HasLockpick      bool `json:"has_lockpick"`
	HasMetalDetector bool `json:"has_metal_detector"`
	HasRabbitFoot    bool `json:"has_rabbit_foot"`
}

// NewInventory creates an inventory with the default starting resources
func NewInventory() *Inventory {
	return &Inventory{
		Steps: DefaultSteps,
		Keys:  DefaultKeys,
		Gems:  DefaultGems,
		Dice:  DefaultDice,
	}
}

// UseStep spends one step
func (inv *Inventory) UseStep() {
	inv.Steps--
}

// AddSteps adds n steps
func (inv *Inventory) AddSteps(n int) {
	inv.Steps += n
}

// OutOfSteps reports whether the step budget is exhausted
func (inv *Inventory) OutOfSteps() bool {
	return inv.Steps <= 0
}

// CanAfford reports whether the inventory holds at least cost gems
func (inv *Inventory) CanAfford(cost int) bool {
	return cost <= inv.Gems
}

// SpendGems removes cost gems if affordable and reports success
func (inv *Inventory) SpendGems(cost int) bool {
	if !inv.CanAfford(cost) {
		return false
	}
	inv.Gems -= cost
	return true
}

// SpendDie removes one die if any is held and reports success
func (inv *Inventory) SpendDie() bool {
	if inv.Dice <= 0 {
		return false
	}
	inv.Dice--
	return true
}

// Has reports whether a permanent item is held
func (inv *Inventory) Has(item Permanent) bool {
	switch item {
	case Lockpick:
		return inv.HasLockpick
	case MetalDetector:
		return inv.HasMetalDetector
	case RabbitFoot:
		return inv.HasRabbitFoot
	default:
		return false
	}
}

// Grant gives a permanent item. Granting one already held changes nothing.
func (inv *Inventory) Grant(item Permanent) {
	switch item {
	case Lockpick:
		inv.HasLockpick = true
	case MetalDetector:
		inv.HasMetalDetector = true
	case RabbitFoot:
		inv.HasRabbitFoot = true
	}
}

// Permanents returns the permanent items currently held
func (inv *Inventory) Permanents() []Permanent {
	var held []Permanent
	for _, p := range AllPermanents() {
		if inv.Has(p) {
			held = append(held, p)
		}
	}
	return held
}
