package motion

import (
	"fmt"
	"strings"

	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
)

// Swimmer is a mover that can travel through water.
type Swimmer interface {
	Mover

	// MaxDepth is the deepest dive in meters this swimmer can attempt.
	MaxDepth() int
}

// SwimCost is the total energy consumed by one basic swim.
const SwimCost = 2

// Swim performs basic swimming. It requires at least Tired energy and
// consumes two levels, one for the effort of water and one for the
// movement itself.
func Swim(s Swimmer) (string, error) {
	before := s.Energy()
	if before < energy.Tired {
		return "", &InsufficientEnergyError{
			Activity: "swimming",
			Required: energy.Tired,
			Current:  before,
		}
	}

	energy.Consume(s)
	if _, err := Move(s); err != nil {
		return "", &ActivityError{Activity: "swimming", Err: err}
	}
	return fmt.Sprintf("%s %s", s.Name(), swimDescription(before)), nil
}

// Dive descends to the target depth in meters. The depth bucket sets both
// the minimum energy and the extra cost on top of the base step.
func Dive(s Swimmer, targetDepth int) (string, error) {
	if max := s.MaxDepth(); targetDepth > max {
		return "", &DepthLimitError{Requested: targetDepth, Max: max}
	}

	before := s.Energy()
	required := depthRequirement(targetDepth)
	if before < required {
		return "", &InsufficientEnergyError{
			Activity: "swimming",
			Required: required,
			Current:  before,
		}
	}

	energy.ConsumeLevels(s, depthCost(targetDepth))
	if _, err := Move(s); err != nil {
		return "", &ActivityError{Activity: "swimming", Err: err}
	}
	return fmt.Sprintf("%s dives to %d meters depth", s.Name(), targetDepth), nil
}

// SwimInConditions swims through the given water. Hurricane-class water is
// rejected outright; otherwise the conditions add their surcharge to the
// basic swim cost.
func SwimInConditions(s Swimmer, water conditions.WaterConditions) (string, error) {
	if !water.Swimmable() {
		return "", &WaterConditionsError{
			Conditions: water,
			Reason:     "no swimmer can survive these conditions",
		}
	}

	before := s.Energy()
	if required := water.RequiredEnergy(); before < required {
		return "", &WaterConditionsError{
			Conditions: water,
			Reason: fmt.Sprintf("conditions too challenging for current energy: %s",
				before),
		}
	}

	if cost := water.EnergyCost(); cost > 0 {
		energy.ConsumeLevels(s, cost)
	}
	if _, err := Swim(s); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s swims through %s conditions",
		s.Name(), strings.ToLower(water.String())), nil
}

func depthRequirement(depth int) energy.Level {
	switch {
	case depth <= 10:
		return energy.Tired
	case depth <= 50:
		return energy.Normal
	case depth <= 200:
		return energy.Energetic
	default:
		return energy.Hyperactive
	}
}

func depthCost(depth int) int {
	switch {
	case depth <= 10:
		return 1
	case depth <= 50:
		return 2
	case depth <= 200:
		return 3
	default:
		return 4
	}
}

func swimDescription(before energy.Level) string {
	switch before {
	case energy.Tired:
		return "swims slowly"
	case energy.Normal:
		return "swims steadily"
	case energy.Energetic:
		return "swims gracefully"
	default:
		return "swims with powerful strokes"
	}
}
