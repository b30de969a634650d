package conditions

import "github.com/fieldday-games/fieldday/game/energy"

// WalkingPace represents how briskly a walker covers ground.
type WalkingPace int

const (
	PaceStroll WalkingPace = iota + 1
	PaceCasual
	PaceBrisk
	PacePower
	PaceSprint
)

// DefaultWalkingPace is the fallback used when parsing unrecognized input.
const DefaultWalkingPace = PaceCasual

// DifficultyLevel ranks this pace from 1 to 5.
func (p WalkingPace) DifficultyLevel() int {
	return int(p)
}

// EnergyCost is the extra energy consumed at this pace.
func (p WalkingPace) EnergyCost() int {
	switch p {
	case PaceStroll, PaceCasual:
		return 0
	case PaceBrisk:
		return 1
	case PacePower:
		return 2
	default:
		return 3
	}
}

// RequiredEnergy is the minimum level needed to hold this pace.
func (p WalkingPace) RequiredEnergy() energy.Level {
	switch p {
	case PaceStroll:
		return energy.Exhausted
	case PaceCasual:
		return energy.Tired
	case PaceBrisk:
		return energy.Normal
	case PacePower:
		return energy.Energetic
	default:
		return energy.Hyperactive
	}
}

// Description returns a human-readable description of this pace.
func (p WalkingPace) Description() string {
	switch p {
	case PaceStroll:
		return "leisurely stroll"
	case PaceCasual:
		return "casual walking pace"
	case PaceBrisk:
		return "brisk, purposeful walk"
	case PacePower:
		return "power walk at the edge of a jog"
	default:
		return "flat-out sprint"
	}
}

// SpeedMultiplier scales the walker's base speed at this pace.
func (p WalkingPace) SpeedMultiplier() float64 {
	switch p {
	case PaceStroll:
		return 0.5
	case PaceCasual:
		return 1.0
	case PaceBrisk:
		return 1.4
	case PacePower:
		return 1.8
	default:
		return 2.5
	}
}

// AllWalkingPaces returns every pace in ascending order.
func AllWalkingPaces() []WalkingPace {
	return []WalkingPace{PaceStroll, PaceCasual, PaceBrisk, PacePower, PaceSprint}
}

var paceNames = []string{"stroll", "casual", "brisk", "power", "sprint"}

// String returns the display name for this pace.
func (p WalkingPace) String() string {
	switch p {
	case PaceStroll:
		return "Stroll"
	case PaceCasual:
		return "Casual"
	case PaceBrisk:
		return "Brisk"
	case PacePower:
		return "Power"
	default:
		return "Sprint"
	}
}

// ParseWalkingPace converts free text to a WalkingPace, falling back to
// DefaultWalkingPace when the input is unrecognizable.
func ParseWalkingPace(s string) WalkingPace {
	switch normalize(s) {
	case "stroll", "amble", "leisurely":
		return PaceStroll
	case "casual", "walk", "normal":
		return PaceCasual
	case "brisk", "quick":
		return PaceBrisk
	case "power", "power_walk", "fast":
		return PacePower
	case "sprint", "run", "max":
		return PaceSprint
	}
	if i, ok := closest(normalize(s), paceNames); ok {
		return AllWalkingPaces()[i]
	}
	return DefaultWalkingPace
}
