package competition

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/energy"
)

// Leg records one movement attempt within a competition: who tried
// what, the energy spent, and how it went. A leg either completed with
// a message or failed with an error string; never both.
type Leg struct {
	Participant string
	Category    string
	Activity    string
	StartEnergy energy.Level
	EndEnergy   energy.Level
	Message     string
	Failure     string
	Penalty     int

	// Capability is the relevant ceiling for the leg: max speed for a
	// land leg, max depth for water, max altitude for air.
	Capability int
}

// Completed reports whether the leg finished without error.
func (l Leg) Completed() bool {
	return l.Failure == ""
}

func (l Leg) String() string {
	status := "ok"
	outcome := l.Message
	if !l.Completed() {
		status = "failed"
		outcome = l.Failure
	}
	return fmt.Sprintf("[%s] %s (%s): %s -> %s - %s",
		status, l.Participant, l.Category, l.StartEnergy, l.EndEnergy, outcome)
}

// runLeg executes one action and records the outcome. penalties maps
// the post-action energy to a time penalty; failPenalty is charged when
// the action errors out.
func runLeg(participant, category, activity string, carrier energy.Carrier,
	action func() (string, error), penalties func(energy.Level) int, failPenalty int) Leg {

	leg := Leg{
		Participant: participant,
		Category:    category,
		Activity:    activity,
		StartEnergy: carrier.Energy(),
	}

	msg, err := action()
	leg.EndEnergy = carrier.Energy()
	if err != nil {
		leg.Failure = err.Error()
		leg.Penalty = failPenalty
		return leg
	}

	leg.Message = msg
	leg.Penalty = penalties(leg.EndEnergy)
	return leg
}
