package vehicles

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// ShipType is the closed set of hull classes. Only submarines dive.
type ShipType int

const (
	ShipCargo ShipType = iota
	ShipCruise
	ShipWarship
	ShipYacht
	ShipFerry
	ShipSubmarine
	ShipSpeedboat
)

func (t ShipType) String() string {
	switch t {
	case ShipCargo:
		return "Cargo Ship"
	case ShipCruise:
		return "Cruise Ship"
	case ShipWarship:
		return "Warship"
	case ShipYacht:
		return "Yacht"
	case ShipFerry:
		return "Ferry"
	case ShipSubmarine:
		return "Submarine"
	case ShipSpeedboat:
		return "Speedboat"
	}
	return "Unknown"
}

// Propulsion is the closed set of marine drive systems.
type Propulsion interface {
	describe() string
}

// DieselPropulsion is the marine workhorse.
type DieselPropulsion struct {
	Engines   int
	PowerEach int // kW
}

func (p DieselPropulsion) describe() string {
	return fmt.Sprintf("%dx%dkW Diesel", p.Engines, p.PowerEach)
}

// NuclearPropulsion powers warships and submarines.
type NuclearPropulsion struct {
	Reactors int
}

func (p NuclearPropulsion) describe() string {
	return fmt.Sprintf("%dx Nuclear", p.Reactors)
}

// SailPropulsion is wind power.
type SailPropulsion struct {
	Sails int
}

func (p SailPropulsion) describe() string {
	return fmt.Sprintf("%dx Sails", p.Sails)
}

// ElectricPropulsion is a battery or shore-charged drive.
type ElectricPropulsion struct {
	Motors    int
	PowerEach int // kW
}

func (p ElectricPropulsion) describe() string {
	return fmt.Sprintf("%dx%dkW Electric", p.Motors, p.PowerEach)
}

// Ship moves only through water.
type Ship struct {
	chassis
	shipType     ShipType
	displacement int // tons
	propulsion   Propulsion
}

var (
	_ Refueler       = (*Ship)(nil)
	_ motion.Swimmer = (*Ship)(nil)
)

// NewShip returns a ship of the given hull class and displacement.
func NewShip(name, manufacturer string, year int, shipType ShipType, displacement int, propulsion Propulsion) *Ship {
	return &Ship{
		chassis:      chassis{name: name, manufacturer: manufacturer, year: year, level: energy.Normal},
		shipType:     shipType,
		displacement: displacement,
		propulsion:   propulsion,
	}
}

func (s *Ship) VehicleType() string    { return "Ship" }
func (s *Ship) ShipType() ShipType     { return s.shipType }
func (s *Ship) Displacement() int      { return s.displacement }
func (s *Ship) Propulsion() Propulsion { return s.propulsion }

func (s *Ship) Description() string {
	return describe(s, fmt.Sprintf("%s, %dt, %s",
		s.shipType, s.displacement, s.propulsion.describe()))
}

// MaxDepth is zero for surface vessels; submarines dive to 300m.
func (s *Ship) MaxDepth() int {
	if s.shipType == ShipSubmarine {
		return 300
	}
	return 0
}
