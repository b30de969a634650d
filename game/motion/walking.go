package motion

import (
	"fmt"
	"strings"

	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
)

// Walker is a land mover that travels on its own legs. It adds no methods
// of its own; the distinction gives biological movement its own vocabulary.
type Walker interface {
	LandMover
}

// Walk is basic biological land movement: one step, one energy level.
func Walk(w Walker) (string, error) {
	return LandMove(w)
}

// Run is fast biological land movement: needs Normal energy, costs two.
func Run(w Walker) (string, error) {
	return LandMoveFast(w)
}

// WalkAtPace walks at the given pace. The pace sets the minimum energy and
// the extra cost, adjusted by the walker's land skill.
func WalkAtPace(w Walker, pace conditions.WalkingPace) (string, error) {
	before := w.Energy()
	required, cost := skillAdjusted(
		pace.RequiredEnergy(), pace.EnergyCost(), w.LandSkill(), energy.Exhausted)
	if before < required {
		return "", &InsufficientEnergyError{
			Activity: "walking",
			Required: required,
			Current:  before,
		}
	}

	energy.ConsumeLevels(w, cost+MoveCost)
	return fmt.Sprintf("%s walks at a %s pace",
		w.Name(), strings.ToLower(pace.String())), nil
}
