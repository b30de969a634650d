package motion

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/energy"
)

// Mover is the base movement capability: anything with a name and an
// energy reserve. All other capabilities build on it.
type Mover interface {
	energy.Carrier

	// Name identifies the entity in result strings and errors.
	Name() string
}

// MoveCost is the energy consumed by one basic movement step.
const MoveCost = 1

// Move performs one basic movement step. It requires energy above
// Collapsed, consumes exactly one level, and describes the movement based
// on the energy the entity had before the step.
func Move(m Mover) (string, error) {
	before := m.Energy()
	if err := checkMove(m); err != nil {
		return "", err
	}

	energy.Consume(m)
	return fmt.Sprintf("%s %s", m.Name(), moveDescription(before)), nil
}

// CanMove reports whether m has any energy left to move with.
func CanMove(m Mover) bool {
	return m.Energy() > energy.Collapsed
}

// checkMove verifies the base movement preconditions without consuming
// anything. The threshold check below can only trip at the Collapsed
// boundary today; it is kept separate so the two error kinds stay distinct.
func checkMove(m Mover) error {
	cur := m.Energy()
	if cur == energy.Collapsed {
		return &CollapsedError{Name: m.Name(), Current: cur}
	}
	if cur < energy.Exhausted {
		return &InsufficientEnergyError{
			Activity: "movement",
			Required: energy.Exhausted,
			Current:  cur,
		}
	}
	return nil
}

func moveDescription(before energy.Level) string {
	switch before {
	case energy.Exhausted:
		return "moves very slowly"
	case energy.Tired:
		return "moves cautiously"
	case energy.Normal:
		return "moves steadily"
	case energy.Energetic:
		return "moves with vigor"
	default:
		return "moves with explosive energy"
	}
}
