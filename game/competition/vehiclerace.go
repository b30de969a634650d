package competition

import (
	"sort"

	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
	"github.com/fieldday-games/fieldday/game/vehicles"
)

// Vehicle race specialists, one per element.
type (
	// RaceDriver drives the land leg.
	RaceDriver interface {
		vehicles.Vehicle
		motion.Driver
	}

	// RaceSwimmer takes the water leg.
	RaceSwimmer interface {
		vehicles.Vehicle
		motion.Swimmer
	}

	// RaceFlyer takes the air leg.
	RaceFlyer interface {
		vehicles.Vehicle
		motion.Flyer
	}
)

// VehicleRaceTeam is three vehicles racing in sequence: land, water, air.
type VehicleRaceTeam struct {
	Name    string
	Driver  RaceDriver
	Swimmer RaceSwimmer
	Flyer   RaceFlyer
}

// NewVehicleRaceTeam assembles a team from its three vehicles.
func NewVehicleRaceTeam(name string, driver RaceDriver, swimmer RaceSwimmer, flyer RaceFlyer) *VehicleRaceTeam {
	return &VehicleRaceTeam{Name: name, Driver: driver, Swimmer: swimmer, Flyer: flyer}
}

// VehicleRaceResult is one team's run.
type VehicleRaceResult struct {
	Team          string
	LandLeg       Leg
	WaterLeg      Leg
	AirLeg        Leg
	CompletedLegs int
	TimePenalty   int
}

// Score rewards completed legs, remaining fuel, and the machines'
// headline capabilities.
func (r VehicleRaceResult) Score() int {
	energyBonus := (int(r.LandLeg.EndEnergy) + int(r.WaterLeg.EndEnergy) + int(r.AirLeg.EndEnergy)) * 8
	capabilityBonus := (r.LandLeg.Capability + r.WaterLeg.Capability + r.AirLeg.Capability) / 10
	return r.CompletedLegs*200 + energyBonus + capabilityBonus - r.TimePenalty
}

// Completed reports whether all three legs finished.
func (r VehicleRaceResult) Completed() bool {
	return r.CompletedLegs == 3
}

// Race runs the three legs in order.
func (t *VehicleRaceTeam) Race() VehicleRaceResult {
	result := VehicleRaceResult{Team: t.Name}

	result.LandLeg = runLeg(t.Driver.Name(), t.Driver.VehicleType(), "Driving", t.Driver,
		func() (string, error) { return motion.Drive(t.Driver) }, vehiclePenalty, 400)
	result.LandLeg.Capability = t.Driver.MaxSpeed()

	result.WaterLeg = runLeg(t.Swimmer.Name(), t.Swimmer.VehicleType(), "Swimming", t.Swimmer,
		func() (string, error) { return motion.Swim(t.Swimmer) }, vehiclePenalty, 400)
	result.WaterLeg.Capability = t.Swimmer.MaxDepth()

	result.AirLeg = runLeg(t.Flyer.Name(), t.Flyer.VehicleType(), "Flying", t.Flyer,
		func() (string, error) { return motion.Fly(t.Flyer) }, vehiclePenalty, 400)
	result.AirLeg.Capability = t.Flyer.MaxAltitude()

	for _, leg := range []Leg{result.LandLeg, result.WaterLeg, result.AirLeg} {
		if leg.Completed() {
			result.CompletedLegs++
		}
		result.TimePenalty += leg.Penalty
	}
	return result
}

func vehiclePenalty(level energy.Level) int {
	switch level {
	case energy.Hyperactive:
		return 10
	case energy.Energetic:
		return 20
	case energy.Normal:
		return 35
	case energy.Tired:
		return 60
	case energy.Exhausted:
		return 100
	default:
		return 150
	}
}

// VehicleTriathlete is a single machine that can drive, swim and fly.
// Only the most versatile vehicles qualify.
type VehicleTriathlete interface {
	vehicles.Vehicle
	motion.Driver
	motion.Swimmer
	motion.Flyer
}

// IndividualRaceResult is one multi-capability vehicle's run through
// all three stages alone.
type IndividualRaceResult struct {
	Participant      string
	VehicleType      string
	StartingEnergy   energy.Level
	FinalEnergy      energy.Level
	Drive, Swim, Fly Leg
	CompletedStages  int
	TimePenalty      int
	MaxSpeed         int
	MaxDepth         int
	MaxAltitude      int
}

// Score weighs versatility alongside completion and remaining fuel.
func (r IndividualRaceResult) Score() int {
	versatility := (r.MaxSpeed + r.MaxDepth + r.MaxAltitude) / 5
	return r.CompletedStages*250 + int(r.FinalEnergy)*15 + versatility - r.TimePenalty
}

// VehicleTriathlon is the individual event for do-everything machines.
type VehicleTriathlon struct {
	Results []IndividualRaceResult
}

// NewVehicleTriathlon returns an empty individual vehicle triathlon.
func NewVehicleTriathlon() *VehicleTriathlon {
	return &VehicleTriathlon{}
}

// AddParticipant runs drive, swim and fly for one machine. A stage is
// skipped once the tank hits the floor.
func (v *VehicleTriathlon) AddParticipant(p VehicleTriathlete) IndividualRaceResult {
	result := IndividualRaceResult{
		Participant:    p.Name(),
		VehicleType:    p.VehicleType(),
		StartingEnergy: p.Energy(),
		MaxSpeed:       p.MaxSpeed(),
		MaxDepth:       p.MaxDepth(),
		MaxAltitude:    p.MaxAltitude(),
	}

	result.Drive = v.stage(p, "Driving", func() (string, error) { return motion.Drive(p) })
	result.Swim = v.stage(p, "Swimming", func() (string, error) { return motion.Swim(p) })
	result.Fly = v.stage(p, "Flying", func() (string, error) { return motion.Fly(p) })

	for _, leg := range []Leg{result.Drive, result.Swim, result.Fly} {
		if leg.Completed() {
			result.CompletedStages++
		}
		result.TimePenalty += leg.Penalty
	}
	result.FinalEnergy = p.Energy()

	v.Results = append(v.Results, result)
	return result
}

func (v *VehicleTriathlon) stage(p VehicleTriathlete, activity string, action func() (string, error)) Leg {
	if p.Energy() == energy.Collapsed {
		return Leg{
			Participant: p.Name(),
			Category:    p.VehicleType(),
			Activity:    activity,
			StartEnergy: p.Energy(),
			EndEnergy:   p.Energy(),
			Failure:     "out of fuel",
			Penalty:     300,
		}
	}
	return runLeg(p.Name(), p.VehicleType(), activity, p, action, vehiclePenalty, 300)
}

// Rankings returns the individual results ordered best-first.
func (v *VehicleTriathlon) Rankings() []IndividualRaceResult {
	ranked := make([]IndividualRaceResult, len(v.Results))
	copy(ranked, v.Results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CompletedStages != ranked[j].CompletedStages {
			return ranked[i].CompletedStages > ranked[j].CompletedStages
		}
		return ranked[i].Score() > ranked[j].Score()
	})
	return ranked
}

// VehicleRace accumulates team results.
type VehicleRace struct {
	Results []VehicleRaceResult
}

// NewVehicleRace returns an empty vehicle race.
func NewVehicleRace() *VehicleRace {
	return &VehicleRace{}
}

// AddTeamResult records a finished team run.
func (v *VehicleRace) AddTeamResult(result VehicleRaceResult) {
	v.Results = append(v.Results, result)
}

// Rankings returns team results ordered best-first.
func (v *VehicleRace) Rankings() []VehicleRaceResult {
	ranked := make([]VehicleRaceResult, len(v.Results))
	copy(ranked, v.Results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CompletedLegs != ranked[j].CompletedLegs {
			return ranked[i].CompletedLegs > ranked[j].CompletedLegs
		}
		return ranked[i].Score() > ranked[j].Score()
	})
	return ranked
}

// Winner returns the best team result, or false when no team has raced.
func (v *VehicleRace) Winner() (VehicleRaceResult, bool) {
	if len(v.Results) == 0 {
		return VehicleRaceResult{}, false
	}
	return v.Rankings()[0], true
}
