package competition

import (
	"sort"

	"github.com/fieldday-games/fieldday/game/animals"
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// Triathlete can complete all three triathlon stages. Only animals that
// walk, swim and fly qualify; the constraint is enforced by the type
// system, so a whale can never be entered by mistake.
type Triathlete interface {
	animals.Animal
	motion.Walker
	motion.Swimmer
	motion.Flyer
}

// TriathlonResult is one participant's run through walk, swim and fly.
type TriathlonResult struct {
	Participant     string
	Species         string
	StartingEnergy  energy.Level
	FinalEnergy     energy.Level
	Walk, Swim, Fly Leg
	CompletedStages int
	TimePenalty     int
}

// Score rewards completion first, remaining energy second, and
// subtracts the accumulated time penalty.
func (r TriathlonResult) Score() int {
	return r.CompletedStages*100 + int(r.FinalEnergy)*10 - r.TimePenalty
}

// Completed reports whether all three stages finished.
func (r TriathlonResult) Completed() bool {
	return r.CompletedStages == 3
}

// Triathlon collects results, one per participant.
type Triathlon struct {
	Results []TriathlonResult
}

// NewTriathlon returns an empty triathlon.
func NewTriathlon() *Triathlon {
	return &Triathlon{}
}

// AddParticipant runs the three stages for one entrant and records the
// result. A collapsed entrant skips the remaining stages; a failed
// stage costs a heavy penalty but the event continues.
func (t *Triathlon) AddParticipant(p Triathlete) TriathlonResult {
	result := TriathlonResult{
		Participant:    p.Name(),
		Species:        p.Species(),
		StartingEnergy: p.Energy(),
	}

	result.Walk = t.stage(p, "Walking", func() (string, error) { return motion.Walk(p) })
	result.Swim = t.stage(p, "Swimming", func() (string, error) { return motion.Swim(p) })
	result.Fly = t.stage(p, "Flying", func() (string, error) { return motion.Fly(p) })

	for _, leg := range []Leg{result.Walk, result.Swim, result.Fly} {
		if leg.Completed() {
			result.CompletedStages++
		}
		result.TimePenalty += leg.Penalty
	}
	result.FinalEnergy = p.Energy()

	t.Results = append(t.Results, result)
	return result
}

func (t *Triathlon) stage(p Triathlete, activity string, action func() (string, error)) Leg {
	if p.Energy() == energy.Collapsed {
		return Leg{
			Participant: p.Name(),
			Category:    p.Species(),
			Activity:    activity,
			StartEnergy: p.Energy(),
			EndEnergy:   p.Energy(),
			Failure:     "too exhausted to continue",
			Penalty:     200,
		}
	}
	return runLeg(p.Name(), p.Species(), activity, p, action, triathlonPenalty, 200)
}

// triathlonPenalty charges more time the lower the finishing energy.
func triathlonPenalty(level energy.Level) int {
	switch level {
	case energy.Hyperactive:
		return 10
	case energy.Energetic:
		return 20
	case energy.Normal:
		return 30
	case energy.Tired:
		return 50
	case energy.Exhausted:
		return 80
	default:
		return 100
	}
}

// Rankings returns the results ordered best-first: most stages
// completed, then highest score.
func (t *Triathlon) Rankings() []TriathlonResult {
	ranked := make([]TriathlonResult, len(t.Results))
	copy(ranked, t.Results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CompletedStages != ranked[j].CompletedStages {
			return ranked[i].CompletedStages > ranked[j].CompletedStages
		}
		return ranked[i].Score() > ranked[j].Score()
	})
	return ranked
}

// Winner returns the best result, or false when nobody has raced.
func (t *Triathlon) Winner() (TriathlonResult, bool) {
	if len(t.Results) == 0 {
		return TriathlonResult{}, false
	}
	return t.Rankings()[0], true
}
