package conditions

import "github.com/fieldday-games/fieldday/game/energy"

// WaterConditions represents the state of the water a swimmer moves through.
type WaterConditions int

const (
	WaterCalm WaterConditions = iota
	WaterChoppy
	WaterCurrent
	WaterRough
	WaterStorm
	WaterHurricane
)

// DefaultWaterConditions is the fallback used when parsing unrecognized input.
const DefaultWaterConditions = WaterCalm

// DifficultyLevel ranks these conditions from 1 (calm) to 4 (hurricane).
func (w WaterConditions) DifficultyLevel() int {
	switch w {
	case WaterCalm:
		return 1
	case WaterChoppy, WaterCurrent:
		return 2
	case WaterRough, WaterStorm:
		return 3
	default:
		return 4
	}
}

// EnergyCost is the extra energy consumed swimming in these conditions.
func (w WaterConditions) EnergyCost() int {
	switch w {
	case WaterCalm:
		return 0
	case WaterChoppy, WaterCurrent:
		return 1
	case WaterRough, WaterStorm:
		return 2
	default:
		return 3
	}
}

// RequiredEnergy is the minimum level needed to swim in these conditions.
func (w WaterConditions) RequiredEnergy() energy.Level {
	switch w {
	case WaterCalm:
		return energy.Tired
	case WaterChoppy, WaterCurrent:
		return energy.Normal
	case WaterRough, WaterStorm:
		return energy.Energetic
	default:
		return energy.Hyperactive
	}
}

// Description returns a human-readable description of these conditions.
func (w WaterConditions) Description() string {
	switch w {
	case WaterCalm:
		return "calm, flat water"
	case WaterChoppy:
		return "choppy surface waves"
	case WaterCurrent:
		return "steady opposing current"
	case WaterRough:
		return "rough seas with breaking waves"
	case WaterStorm:
		return "storm-driven swell"
	default:
		return "hurricane seas - swimming impossible"
	}
}

// Swimmable reports whether any swimmer can attempt these conditions.
// Hurricane-class water is rejected outright regardless of energy.
func (w WaterConditions) Swimmable() bool {
	return w != WaterHurricane
}

// AllWaterConditions returns every variant in ascending difficulty.
func AllWaterConditions() []WaterConditions {
	return []WaterConditions{
		WaterCalm, WaterChoppy, WaterCurrent, WaterRough, WaterStorm, WaterHurricane,
	}
}

var waterNames = []string{"calm", "choppy", "current", "rough", "storm", "hurricane"}

// String returns the display name for these conditions.
func (w WaterConditions) String() string {
	switch w {
	case WaterCalm:
		return "Calm"
	case WaterChoppy:
		return "Choppy"
	case WaterCurrent:
		return "Current"
	case WaterRough:
		return "Rough"
	case WaterStorm:
		return "Storm"
	default:
		return "Hurricane"
	}
}

// ParseWaterConditions converts free text to WaterConditions, falling back
// to DefaultWaterConditions when the input is unrecognizable.
func ParseWaterConditions(s string) WaterConditions {
	switch normalize(s) {
	case "calm", "flat":
		return WaterCalm
	case "choppy", "waves":
		return WaterChoppy
	case "current", "tide":
		return WaterCurrent
	case "rough":
		return WaterRough
	case "storm", "stormy":
		return WaterStorm
	case "hurricane":
		return WaterHurricane
	}
	if i, ok := closest(normalize(s), waterNames); ok {
		return AllWaterConditions()[i]
	}
	return DefaultWaterConditions
}
