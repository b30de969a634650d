package competition

import (
	"sort"

	"github.com/fieldday-games/fieldday/game/animals"
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// Relay specialists: each team member contributes one discipline.
type (
	// RelaySwimmer swims the first leg.
	RelaySwimmer interface {
		animals.Animal
		motion.Swimmer
	}

	// RelayWalker walks the second leg.
	RelayWalker interface {
		animals.Animal
		motion.Walker
	}

	// RelayFlyer flies the third leg.
	RelayFlyer interface {
		animals.Animal
		motion.Flyer
	}
)

// RelayTeam is three specialists racing in sequence: swim, walk, fly.
type RelayTeam struct {
	Name    string
	Swimmer RelaySwimmer
	Walker  RelayWalker
	Flyer   RelayFlyer
}

// NewRelayTeam assembles a team from its three specialists.
func NewRelayTeam(name string, swimmer RelaySwimmer, walker RelayWalker, flyer RelayFlyer) *RelayTeam {
	return &RelayTeam{Name: name, Swimmer: swimmer, Walker: walker, Flyer: flyer}
}

// RelayResult is one team's run.
type RelayResult struct {
	Team          string
	SwimLeg       Leg
	WalkLeg       Leg
	FlyLeg        Leg
	CompletedLegs int
	TimePenalty   int
}

// Score rewards completed legs, the specialists' remaining energy, and
// subtracts the accumulated time penalty.
func (r RelayResult) Score() int {
	energyBonus := (int(r.SwimLeg.EndEnergy) + int(r.WalkLeg.EndEnergy) + int(r.FlyLeg.EndEnergy)) * 5
	return r.CompletedLegs*150 + energyBonus - r.TimePenalty
}

// Completed reports whether all three legs finished.
func (r RelayResult) Completed() bool {
	return r.CompletedLegs == 3
}

// Race runs the three legs in order. A dropped baton (failed leg) costs
// a heavy penalty but the next specialist still runs.
func (t *RelayTeam) Race() RelayResult {
	result := RelayResult{Team: t.Name}

	result.SwimLeg = runLeg(t.Swimmer.Name(), t.Swimmer.Species(), "Swimming", t.Swimmer,
		func() (string, error) { return motion.Swim(t.Swimmer) }, relayPenalty, 300)
	result.WalkLeg = runLeg(t.Walker.Name(), t.Walker.Species(), "Walking", t.Walker,
		func() (string, error) { return motion.Walk(t.Walker) }, relayPenalty, 300)
	result.FlyLeg = runLeg(t.Flyer.Name(), t.Flyer.Species(), "Flying", t.Flyer,
		func() (string, error) { return motion.Fly(t.Flyer) }, relayPenalty, 300)

	for _, leg := range []Leg{result.SwimLeg, result.WalkLeg, result.FlyLeg} {
		if leg.Completed() {
			result.CompletedLegs++
		}
		result.TimePenalty += leg.Penalty
	}
	return result
}

// relayPenalty is steeper at the top and bottom than the triathlon's:
// fresh specialists hand over faster.
func relayPenalty(level energy.Level) int {
	switch level {
	case energy.Hyperactive:
		return 5
	case energy.Energetic:
		return 15
	case energy.Normal:
		return 25
	case energy.Tired:
		return 40
	case energy.Exhausted:
		return 70
	default:
		return 100
	}
}

// RelayCompetition accumulates team results.
type RelayCompetition struct {
	Results []RelayResult
}

// NewRelayCompetition returns an empty relay competition.
func NewRelayCompetition() *RelayCompetition {
	return &RelayCompetition{}
}

// AddTeamResult records a finished team run.
func (c *RelayCompetition) AddTeamResult(result RelayResult) {
	c.Results = append(c.Results, result)
}

// Rankings returns team results ordered best-first.
func (c *RelayCompetition) Rankings() []RelayResult {
	ranked := make([]RelayResult, len(c.Results))
	copy(ranked, c.Results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CompletedLegs != ranked[j].CompletedLegs {
			return ranked[i].CompletedLegs > ranked[j].CompletedLegs
		}
		return ranked[i].Score() > ranked[j].Score()
	})
	return ranked
}

// Winner returns the best team result, or false when no team has raced.
func (c *RelayCompetition) Winner() (RelayResult, bool) {
	if len(c.Results) == 0 {
		return RelayResult{}, false
	}
	return c.Rankings()[0], true
}
