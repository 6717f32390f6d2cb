// Package lock defines door lock difficulty and the row-based policy that
// makes doors harder to open the closer they are to the goal.
package lock

import (
	"fmt"

	"manorwalk/pkg/engine/rng"
)

// State is the lock difficulty of a door. Higher values are harder.
type State int

const (
	Unlocked State = iota
	Locked
	DoubleLocked
)

// AllStates returns every lock state in increasing difficulty
func AllStates() []State {
	return []State{Unlocked, Locked, DoubleLocked}
}

// String returns the string representation of a lock state
func (s State) String() string {
	switch s {
	case Unlocked:
		return "unlocked"
	case Locked:
		return "locked"
	case DoubleLocked:
		return "double-locked"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (s State) MarshalText() ([]byte, error) {
	if s < Unlocked || s > DoubleLocked {
		return nil, fmt.Errorf("invalid lock state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *State) UnmarshalText(text []byte) error {
	for _, st := range AllStates() {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown lock state %q", text)
}

// Distribution is the probability of each lock state for one progress band.
type Distribution struct {
	Unlocked     float64
	Locked       float64
	DoubleLocked float64
}

// Band thresholds on vertical progress (0 at the entrance, 1 at the goal).
const (
	EarlyBandEnd = 0.33
	MidBandEnd   = 0.66
)

var (
	earlyBand = Distribution{Unlocked: 0.70, Locked: 0.25, DoubleLocked: 0.05}
	midBand   = Distribution{Unlocked: 0.50, Locked: 0.35, DoubleLocked: 0.15}
	lateBand  = Distribution{Unlocked: 0.30, Locked: 0.40, DoubleLocked: 0.30}
)

// DistributionFor returns the lock probabilities for a progress value in (0,1)
func DistributionFor(progress float64) Distribution {
	switch {
	case progress < EarlyBandEnd:
		return earlyBand
	case progress < MidBandEnd:
		return midBand
	default:
		return lateBand
	}
}

// Pick maps a uniform draw u in [0,1) onto a state via cumulative thresholds
func (d Distribution) Pick(u float64) State {
	if u < d.Unlocked {
		return Unlocked
	}
	if u < d.Unlocked+d.Locked {
		return Locked
	}
	return DoubleLocked
}

// Progress returns how far up the grid row is: 0 on the bottom row, 1 on the top.
func Progress(row, rows int) float64 {
	bottom := rows - 1
	if bottom <= 0 {
		return 0
	}
	return float64(bottom-row) / float64(bottom)
}

// ForRow chooses the lock state for a door on the given row of a grid with
// rows rows. The bottom row is always Unlocked and the top row always
// DoubleLocked; neither consumes a draw.
func ForRow(row, rows int, src rng.Source) State {
	bottom := rows - 1
	if row >= bottom {
		return Unlocked
	}
	if row <= 0 {
		return DoubleLocked
	}
	return DistributionFor(Progress(row, rows)).Pick(src.Float64())
}

// CanBeOpenedWith reports whether a lock of this state could be opened by
// someone holding the given resources, ignoring how many keys get spent.
func (s State) CanBeOpenedWith(keys int, lockpick bool) bool {
	switch s {
	case Unlocked:
		return true
	case Locked:
		return keys > 0 || lockpick
	case DoubleLocked:
		return keys > 0
	default:
		return false
	}
}
