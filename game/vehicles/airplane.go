package vehicles

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// AirplaneType is the closed set of fixed-wing aircraft classes.
type AirplaneType int

const (
	PlaneCommercial AirplaneType = iota
	PlaneMilitary
	PlanePrivate
	PlaneCargo
	PlaneAerobatic
	PlaneSeaplane
)

func (t AirplaneType) String() string {
	switch t {
	case PlaneCommercial:
		return "Commercial"
	case PlaneMilitary:
		return "Military"
	case PlanePrivate:
		return "Private"
	case PlaneCargo:
		return "Cargo"
	case PlaneAerobatic:
		return "Aerobatic"
	case PlaneSeaplane:
		return "Seaplane"
	}
	return "Unknown"
}

// AeroEngine is the closed set of airplane power plants. The engine sets
// how high the plane climbs and how wastefully it taxis.
type AeroEngine interface {
	altitudeBonus() int
	taxiEfficiency() int
	describe() string
}

// JetEngine is a turbojet or turbofan power plant.
type JetEngine struct {
	Engines    int
	ThrustEach int // kN
}

func (e JetEngine) altitudeBonus() int  { return e.Engines * e.ThrustEach / 10 }
func (e JetEngine) taxiEfficiency() int { return 5 }
func (e JetEngine) describe() string {
	return fmt.Sprintf("%dx%dkN Jet", e.Engines, e.ThrustEach)
}

// TurbopropEngine is a gas turbine driving a propeller.
type TurbopropEngine struct {
	Engines   int
	PowerEach int // kW
}

func (e TurbopropEngine) altitudeBonus() int  { return e.Engines * e.PowerEach / 100 }
func (e TurbopropEngine) taxiEfficiency() int { return 8 }
func (e TurbopropEngine) describe() string {
	return fmt.Sprintf("%dx%dkW Turboprop", e.Engines, e.PowerEach)
}

// PistonEngine is a conventional aviation piston engine.
type PistonEngine struct {
	Engines   int
	PowerEach int // kW
}

func (e PistonEngine) altitudeBonus() int  { return e.Engines * e.PowerEach / 200 }
func (e PistonEngine) taxiEfficiency() int { return 12 }
func (e PistonEngine) describe() string {
	return fmt.Sprintf("%dx%dkW Piston", e.Engines, e.PowerEach)
}

// ElectricAeroEngine is a battery-electric propulsion system.
type ElectricAeroEngine struct {
	Motors          int
	BatteryCapacity int // kWh
}

func (e ElectricAeroEngine) altitudeBonus() int  { return e.Motors * 200 }
func (e ElectricAeroEngine) taxiEfficiency() int { return 20 }
func (e ElectricAeroEngine) describe() string {
	return fmt.Sprintf("%dx Electric (%dkWh)", e.Motors, e.BatteryCapacity)
}

// Airplane flies and also drives, slowly, when taxiing on the ground.
type Airplane struct {
	chassis
	planeType AirplaneType
	wingspan  int // meters
	engine    AeroEngine
}

var (
	_ Refueler      = (*Airplane)(nil)
	_ motion.Flyer  = (*Airplane)(nil)
	_ motion.Driver = (*Airplane)(nil)
)

// NewAirplane returns an airplane of the given class with half a tank.
func NewAirplane(name, manufacturer string, year int, planeType AirplaneType, wingspan int, engine AeroEngine) *Airplane {
	return &Airplane{
		chassis:   chassis{name: name, manufacturer: manufacturer, year: year, level: energy.Normal},
		planeType: planeType,
		wingspan:  wingspan,
		engine:    engine,
	}
}

func (a *Airplane) VehicleType() string        { return "Airplane" }
func (a *Airplane) AirplaneType() AirplaneType { return a.planeType }
func (a *Airplane) Wingspan() int              { return a.wingspan }
func (a *Airplane) Engine() AeroEngine         { return a.engine }

func (a *Airplane) Description() string {
	return describe(a, fmt.Sprintf("%s, %dm wingspan, %s",
		a.planeType, a.wingspan, a.engine.describe()))
}

// MaxAltitude combines the class's service ceiling with an engine bonus.
func (a *Airplane) MaxAltitude() int {
	var base int
	switch a.planeType {
	case PlaneCommercial:
		base = 12000
	case PlaneMilitary:
		base = 15000
	case PlanePrivate:
		base = 4000
	case PlaneCargo:
		base = 11000
	case PlaneAerobatic:
		base = 3000
	default:
		base = 2000
	}
	return base + a.engine.altitudeBonus()
}

// Military and aerobatic pilots fly with precision.
func (a *Airplane) FlyingSkill() int {
	switch a.planeType {
	case PlaneMilitary, PlaneAerobatic:
		return 5
	case PlaneCommercial, PlaneCargo:
		return 4
	default:
		return 3
	}
}

// Fixed wings cannot hover.
func (a *Airplane) SupportsFlightMode(mode conditions.FlightMode) bool {
	return mode != conditions.FlightHovering
}

// MaxSpeed here is taxi speed on the ground, far below flight speed.
func (a *Airplane) MaxSpeed() int {
	switch a.planeType {
	case PlaneCommercial:
		return 30
	case PlaneMilitary:
		return 40
	case PlaneAerobatic:
		return 35
	case PlaneSeaplane:
		return 20
	default:
		return 25
	}
}

// Taxiing wastes fuel: the engines are not built for ground work.
func (a *Airplane) FuelEfficiency() int        { return a.engine.taxiEfficiency() }
func (a *Airplane) HasOffRoadCapability() bool { return false }

func (a *Airplane) MaxLandSpeed() int     { return a.MaxSpeed() }
func (a *Airplane) LandEfficiency() int   { return a.FuelEfficiency() }
func (a *Airplane) LandMoverType() string { return "Airplane (taxiing)" }
func (a *Airplane) LandSkill() int        { return 2 }
