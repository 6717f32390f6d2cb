package entities

// Permanent is a one-time upgrade that is never consumed
type Permanent int

const (
	Lockpick Permanent = iota
	MetalDetector
	RabbitFoot
)

// AllPermanents returns every permanent item, in loot-table order
func AllPermanents() []Permanent {
	return []Permanent{Lockpick, MetalDetector, RabbitFoot}
}

// String returns the display name of the item
func (p Permanent) String() string {
	switch p {
	case Lockpick:
		return "Lockpick"
	case MetalDetector:
		return "Metal Detector"
	case RabbitFoot:
		return "Rabbit Foot"
	default:
		return "Unknown"
	}
}
