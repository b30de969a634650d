package competition

import (
	"sort"

	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// UnifiedRaceTeam races over the land-movement abstraction: the land
// leg accepts a walking animal or a driving vehicle interchangeably.
// Teams are assembled from rosters at run time, so eligibility is
// checked when the team is built rather than by the type system.
type UnifiedRaceTeam struct {
	Name      string
	LandMover motion.LandMover
	Swimmer   motion.Swimmer
	Flyer     motion.Flyer
}

// NewUnifiedRaceTeam validates the entrants' capability profiles and
// the land mover's category before assembling the team.
func NewUnifiedRaceTeam(name string, landMover motion.LandMover, swimmer motion.Swimmer, flyer motion.Flyer) (*UnifiedRaceTeam, error) {
	if !ApprovedLandMover(landMover) {
		return nil, &LandMoverNotApprovedError{
			Name:     landMover.Name(),
			Category: landMover.LandMoverType(),
		}
	}
	if !ProfileOf(swimmer).Has(CanSwim) {
		return nil, &EligibilityError{Name: swimmer.Name(), Competition: "unified race", Missing: CanSwim}
	}
	if !ProfileOf(flyer).Has(CanFly) {
		return nil, &EligibilityError{Name: flyer.Name(), Competition: "unified race", Missing: CanFly}
	}
	return &UnifiedRaceTeam{Name: name, LandMover: landMover, Swimmer: swimmer, Flyer: flyer}, nil
}

// UnifiedRaceResult is one team's run.
type UnifiedRaceResult struct {
	Team             string
	LandLeg          Leg
	WaterLeg         Leg
	AirLeg           Leg
	CompletedLegs    int
	AbstractionBonus int
}

// Score weighs completion heaviest, then remaining energy, capability
// ceilings, and the bonus for racing through the shared abstraction.
func (r UnifiedRaceResult) Score() int {
	energyBonus := (int(r.LandLeg.EndEnergy) + int(r.WaterLeg.EndEnergy) + int(r.AirLeg.EndEnergy)) * 15
	capabilityBonus := (r.LandLeg.Capability + r.WaterLeg.Capability + r.AirLeg.Capability) / 10
	return r.CompletedLegs*400 + energyBonus + capabilityBonus + r.AbstractionBonus
}

// Completed reports whether all three legs finished.
func (r UnifiedRaceResult) Completed() bool {
	return r.CompletedLegs == 3
}

// Race runs land movement, swimming and flying in order. The land leg
// earns an extra bonus when it succeeds through the abstraction.
func (t *UnifiedRaceTeam) Race() UnifiedRaceResult {
	result := UnifiedRaceResult{Team: t.Name, AbstractionBonus: 150}

	result.LandLeg = runLeg(t.LandMover.Name(), t.LandMover.LandMoverType(), "Land Movement",
		t.LandMover, func() (string, error) { return motion.LandMove(t.LandMover) },
		func(energy.Level) int { return 0 }, 0)
	result.LandLeg.Capability = t.LandMover.MaxLandSpeed()
	if result.LandLeg.Completed() {
		result.AbstractionBonus += 100
	}

	result.WaterLeg = runLeg(t.Swimmer.Name(), "Swimmer", "Swimming", t.Swimmer,
		func() (string, error) { return motion.Swim(t.Swimmer) },
		func(energy.Level) int { return 0 }, 0)
	result.WaterLeg.Capability = t.Swimmer.MaxDepth()

	result.AirLeg = runLeg(t.Flyer.Name(), "Flyer", "Flying", t.Flyer,
		func() (string, error) { return motion.Fly(t.Flyer) },
		func(energy.Level) int { return 0 }, 0)
	result.AirLeg.Capability = t.Flyer.MaxAltitude()

	for _, leg := range []Leg{result.LandLeg, result.WaterLeg, result.AirLeg} {
		if leg.Completed() {
			result.CompletedLegs++
		}
	}
	return result
}

// UnifiedRace accumulates team results.
type UnifiedRace struct {
	Results []UnifiedRaceResult
}

// NewUnifiedRace returns an empty unified race.
func NewUnifiedRace() *UnifiedRace {
	return &UnifiedRace{}
}

// AddTeamResult records a finished team run.
func (u *UnifiedRace) AddTeamResult(result UnifiedRaceResult) {
	u.Results = append(u.Results, result)
}

// Rankings returns team results ordered best-first.
func (u *UnifiedRace) Rankings() []UnifiedRaceResult {
	ranked := make([]UnifiedRaceResult, len(u.Results))
	copy(ranked, u.Results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CompletedLegs != ranked[j].CompletedLegs {
			return ranked[i].CompletedLegs > ranked[j].CompletedLegs
		}
		return ranked[i].Score() > ranked[j].Score()
	})
	return ranked
}

// Winner returns the best team result, or false when no team has raced.
func (u *UnifiedRace) Winner() (UnifiedRaceResult, bool) {
	if len(u.Results) == 0 {
		return UnifiedRaceResult{}, false
	}
	return u.Rankings()[0], true
}
