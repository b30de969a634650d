package vehicles

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// HelicopterType is the closed set of rotorcraft mission profiles.
type HelicopterType int

const (
	HeliEmergency HelicopterType = iota
	HeliMilitary
	HeliCivilian
	HeliCargo
	HeliPolice
	HeliNews
)

func (t HelicopterType) String() string {
	switch t {
	case HeliEmergency:
		return "Emergency"
	case HeliMilitary:
		return "Military"
	case HeliCivilian:
		return "Civilian"
	case HeliCargo:
		return "Cargo"
	case HeliPolice:
		return "Police"
	case HeliNews:
		return "News"
	}
	return "Unknown"
}

// RotorEngine is the closed set of helicopter power plants.
type RotorEngine interface {
	altitudeBonus() int
	describe() string
}

// TurboshaftEngine is the standard helicopter gas turbine.
type TurboshaftEngine struct {
	Engines   int
	PowerEach int // kW
}

func (e TurboshaftEngine) altitudeBonus() int { return e.Engines * e.PowerEach / 100 }
func (e TurboshaftEngine) describe() string {
	return fmt.Sprintf("%dx%dkW Turboshaft", e.Engines, e.PowerEach)
}

// PistonRotorEngine powers light helicopters.
type PistonRotorEngine struct {
	Engines      int
	Displacement float64 // liters
}

func (e PistonRotorEngine) altitudeBonus() int { return e.Engines * 50 }
func (e PistonRotorEngine) describe() string {
	return fmt.Sprintf("%dx%.1fL Piston", e.Engines, e.Displacement)
}

// ElectricRotorEngine is a battery-electric rotor drive.
type ElectricRotorEngine struct {
	Motors          int
	BatteryCapacity int // kWh
}

func (e ElectricRotorEngine) altitudeBonus() int { return e.Motors * 100 }
func (e ElectricRotorEngine) describe() string {
	return fmt.Sprintf("%dx Electric (%dkWh)", e.Motors, e.BatteryCapacity)
}

// Helicopter is the only vehicle that hovers.
type Helicopter struct {
	chassis
	heliType      HelicopterType
	rotorDiameter int // meters
	engine        RotorEngine
}

var (
	_ Refueler     = (*Helicopter)(nil)
	_ motion.Flyer = (*Helicopter)(nil)
)

// NewHelicopter returns a helicopter of the given mission profile.
func NewHelicopter(name, manufacturer string, year int, heliType HelicopterType, rotorDiameter int, engine RotorEngine) *Helicopter {
	return &Helicopter{
		chassis:       chassis{name: name, manufacturer: manufacturer, year: year, level: energy.Normal},
		heliType:      heliType,
		rotorDiameter: rotorDiameter,
		engine:        engine,
	}
}

func (h *Helicopter) VehicleType() string            { return "Helicopter" }
func (h *Helicopter) HelicopterType() HelicopterType { return h.heliType }
func (h *Helicopter) RotorDiameter() int             { return h.rotorDiameter }
func (h *Helicopter) Engine() RotorEngine            { return h.engine }

func (h *Helicopter) Description() string {
	return describe(h, fmt.Sprintf("%s, %dm rotor, %s",
		h.heliType, h.rotorDiameter, h.engine.describe()))
}

// MaxAltitude combines the mission profile's ceiling with rotor and
// engine bonuses.
func (h *Helicopter) MaxAltitude() int {
	var base int
	switch h.heliType {
	case HeliEmergency:
		base = 3000
	case HeliMilitary:
		base = 6000
	case HeliCivilian:
		base = 2000
	case HeliCargo:
		base = 2500
	case HeliPolice:
		base = 1500
	default:
		base = 1000
	}
	return base + h.rotorDiameter/2*100 + h.engine.altitudeBonus()
}

// Rescue and military pilots fly in conditions nobody else would.
func (h *Helicopter) FlyingSkill() int {
	switch h.heliType {
	case HeliEmergency, HeliMilitary:
		return 5
	case HeliPolice:
		return 4
	default:
		return 3
	}
}

// Rotorcraft hover but cannot glide or soar without forward airspeed.
func (h *Helicopter) SupportsFlightMode(mode conditions.FlightMode) bool {
	switch mode {
	case conditions.FlightPowered, conditions.FlightHovering:
		return true
	default:
		return false
	}
}
