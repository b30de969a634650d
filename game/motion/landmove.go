package motion

import (
	"fmt"
	"strings"

	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
)

// LandMover covers anything that travels over ground, biological or
// mechanical. Walking animals and driving vehicles both satisfy it, which
// lets them share land-based competition legs.
type LandMover interface {
	Mover

	// MaxLandSpeed is km/h for vehicles and a relative scale for animals.
	MaxLandSpeed() int

	// LandEfficiency is the distance covered per energy level.
	LandEfficiency() int

	// LandMoverType describes the category, e.g. "Dog (walking)".
	LandMoverType() string

	// LandSkill grades ground-handling ability from 1 (clumsy) to 5
	// (expert). Skilled movers take difficult ground more cheaply.
	LandSkill() int
}

// LandMove performs one basic step over ground. It requires at least
// Exhausted energy and consumes one level.
func LandMove(lm LandMover) (string, error) {
	before := lm.Energy()
	if before < energy.Exhausted {
		return "", &InsufficientEnergyError{
			Activity: "land movement",
			Required: energy.Exhausted,
			Current:  before,
		}
	}

	if _, err := Move(lm); err != nil {
		return "", &ActivityError{Activity: "land movement", Err: err}
	}
	return fmt.Sprintf("%s %s", lm.Name(), landMoveDescription(before)), nil
}

// LandMoveFast is a quicker step: it needs at least Normal energy and
// consumes two levels.
func LandMoveFast(lm LandMover) (string, error) {
	before := lm.Energy()
	if before < energy.Normal {
		return "", &InsufficientEnergyError{
			Activity: "land movement",
			Required: energy.Normal,
			Current:  before,
		}
	}

	if _, err := Move(lm); err != nil {
		return "", &ActivityError{Activity: "land movement", Err: err}
	}
	energy.Consume(lm)
	return fmt.Sprintf("%s moves fast on land", lm.Name()), nil
}

// LandMoveAtSpeed moves at a target speed in km/h. The speed bucket sets
// both the minimum energy and the extra cost on top of the base step.
func LandMoveAtSpeed(lm LandMover, targetSpeed int) (string, error) {
	if max := lm.MaxLandSpeed(); targetSpeed > max {
		return "", &SpeedLimitError{Requested: targetSpeed, Max: max}
	}

	before := lm.Energy()
	required := landSpeedRequirement(targetSpeed)
	if before < required {
		return "", &InsufficientEnergyError{
			Activity: "land movement",
			Required: required,
			Current:  before,
		}
	}

	energy.ConsumeLevels(lm, landSpeedCost(targetSpeed)+MoveCost)
	return fmt.Sprintf("%s moves on land at %d km/h", lm.Name(), targetSpeed), nil
}

// NavigateTerrain crosses the given terrain. The terrain sets the minimum
// energy and the extra cost, both adjusted by the mover's land skill.
func NavigateTerrain(lm LandMover, terrain conditions.Terrain) (string, error) {
	if !terrain.Walkable() {
		return "", &TerrainNotSupportedError{Terrain: terrain}
	}

	before := lm.Energy()
	required, cost := skillAdjusted(
		terrain.RequiredEnergy(), terrain.EnergyCost(), lm.LandSkill(), energy.Exhausted)
	if before < required {
		return "", &TerrainError{Terrain: terrain, Current: before}
	}

	energy.ConsumeLevels(lm, cost+MoveCost)
	return fmt.Sprintf("%s successfully navigates %s terrain",
		lm.Name(), strings.ToLower(terrain.String())), nil
}

// skillAdjusted applies the common skill modifier: experts (skill >= 4)
// need one level less, never below the family floor, and pay one level
// less when the surcharge exceeds one; novices (skill <= 2) pay one more.
func skillAdjusted(required energy.Level, cost, skill int, floor energy.Level) (energy.Level, int) {
	if skill >= 4 {
		if required > floor {
			required = required.Decrease()
		}
		if cost > 1 {
			cost--
		}
	} else if skill <= 2 {
		cost++
	}
	return required, cost
}

func landSpeedRequirement(speed int) energy.Level {
	switch {
	case speed <= 20:
		return energy.Exhausted
	case speed <= 50:
		return energy.Tired
	case speed <= 100:
		return energy.Normal
	case speed <= 150:
		return energy.Energetic
	default:
		return energy.Hyperactive
	}
}

func landSpeedCost(speed int) int {
	switch {
	case speed <= 50:
		return 1
	case speed <= 100:
		return 2
	case speed <= 150:
		return 3
	default:
		return 4
	}
}

func landMoveDescription(before energy.Level) string {
	switch before {
	case energy.Exhausted:
		return "moves slowly on land"
	case energy.Tired:
		return "moves carefully on land"
	case energy.Normal:
		return "moves steadily on land"
	case energy.Energetic:
		return "moves confidently on land"
	default:
		return "moves with great vigor on land"
	}
}
