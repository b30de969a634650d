package roster

import (
	"fmt"
	"strings"

	"github.com/fieldday-games/fieldday/game/animals"
	"github.com/fieldday-games/fieldday/game/competition"
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
	"github.com/fieldday-games/fieldday/game/vehicles"
)

// Entrant is a live entity built from a spec, together with the
// capability profile derived from its type.
type Entrant struct {
	Spec    EntrantSpec
	Mover   motion.Mover
	Profile competition.Capability
}

// Walker returns the entrant as a walker, if its type walks.
func (e *Entrant) Walker() (motion.Walker, bool) {
	w, ok := e.Mover.(motion.Walker)
	return w, ok
}

// Swimmer returns the entrant as a swimmer, if its type swims.
func (e *Entrant) Swimmer() (motion.Swimmer, bool) {
	s, ok := e.Mover.(motion.Swimmer)
	return s, ok
}

// Flyer returns the entrant as a flyer, if its type flies.
func (e *Entrant) Flyer() (motion.Flyer, bool) {
	f, ok := e.Mover.(motion.Flyer)
	return f, ok
}

// Driver returns the entrant as a driver, if its type drives.
func (e *Entrant) Driver() (motion.Driver, bool) {
	d, ok := e.Mover.(motion.Driver)
	return d, ok
}

// LandMover returns the entrant as a land mover, walking or driving.
func (e *Entrant) LandMover() (motion.LandMover, bool) {
	lm, ok := e.Mover.(motion.LandMover)
	return lm, ok
}

// Build constructs the entity a spec describes. Missing attributes fall
// back to sensible defaults; class strings are matched
// case-insensitively and unknown ones take the kind's default class.
func Build(spec EntrantSpec) (*Entrant, error) {
	mover, err := build(spec)
	if err != nil {
		return nil, err
	}

	if spec.Energy != "" {
		mover.SetEnergy(energy.ParseLevel(spec.Energy))
	}

	return &Entrant{
		Spec:    spec,
		Mover:   mover,
		Profile: competition.ProfileOf(mover),
	}, nil
}

// BuildAll constructs every entrant in the roster, keyed by name.
func BuildAll(r *Roster) (map[string]*Entrant, error) {
	entrants := make(map[string]*Entrant, len(r.Entrants))
	for _, spec := range r.Entrants {
		e, err := Build(spec)
		if err != nil {
			return nil, fmt.Errorf("entrant %q: %w", spec.Name, err)
		}
		entrants[spec.Name] = e
	}
	return entrants, nil
}

func build(spec EntrantSpec) (motion.Mover, error) {
	manufacturer := spec.Manufacturer
	if manufacturer == "" {
		manufacturer = "Unknown"
	}
	year := spec.Year
	if year == 0 {
		year = 2020
	}

	switch strings.ToLower(spec.Kind) {
	case "dog":
		breed := spec.Breed
		if breed == "" {
			breed = "Mixed Breed"
		}
		return animals.NewDog(spec.Name, breed), nil
	case "duck":
		return animals.NewDuck(spec.Name), nil
	case "eagle":
		return animals.NewEagle(spec.Name), nil
	case "penguin":
		return animals.NewPenguin(spec.Name), nil
	case "snake":
		return animals.NewSnake(spec.Name, spec.Aquatic), nil
	case "whale":
		return animals.NewWhale(spec.Name), nil
	case "car":
		return vehicles.NewCar(spec.Name, manufacturer, year, carEngine(spec)), nil
	case "motorcycle":
		cc := spec.EngineCC
		if cc == 0 {
			cc = 650
		}
		return vehicles.NewMotorcycle(spec.Name, manufacturer, year, cc, motoClass(spec.Class)), nil
	case "truck":
		payload := spec.PayloadKG
		if payload == 0 {
			payload = 1000
		}
		return vehicles.NewTruck(spec.Name, manufacturer, year, payload, truckClass(spec.Class)), nil
	case "airplane":
		wingspan := spec.WingspanM
		if wingspan == 0 {
			wingspan = 11
		}
		return vehicles.NewAirplane(spec.Name, manufacturer, year,
			planeClass(spec.Class), wingspan, aeroEngine(spec)), nil
	case "helicopter":
		rotor := spec.RotorM
		if rotor == 0 {
			rotor = 10
		}
		return vehicles.NewHelicopter(spec.Name, manufacturer, year,
			heliClass(spec.Class), rotor, rotorEngine(spec)), nil
	case "ship":
		tonnage := spec.TonnageT
		if tonnage == 0 {
			tonnage = 50
		}
		return vehicles.NewShip(spec.Name, manufacturer, year,
			shipClass(spec.Class), tonnage, propulsion(spec)), nil
	case "amphibious":
		return vehicles.NewAmphibiousVehicle(spec.Name, manufacturer, year,
			amphibClass(spec.Class), hullClass(spec.Hull)), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidRoster, spec.Kind)
	}
}

func carEngine(spec EntrantSpec) vehicles.Engine {
	switch strings.ToLower(spec.Engine) {
	case "gasoline":
		return vehicles.GasolineEngine{
			Cylinders:    orInt(spec.Cylinders, 4),
			Displacement: orFloat(spec.Displacement, 2.0),
		}
	case "diesel":
		return vehicles.DieselEngine{
			Cylinders:    orInt(spec.Cylinders, 4),
			Displacement: orFloat(spec.Displacement, 2.0),
		}
	case "hybrid":
		return vehicles.HybridEngine{
			Gas: vehicles.GasolineEngine{
				Cylinders:    orInt(spec.Cylinders, 4),
				Displacement: orFloat(spec.Displacement, 1.8),
			},
			MotorKW: 60,
		}
	default:
		return vehicles.ElectricEngine{BatteryCapacity: orInt(spec.BatteryKWH, 75)}
	}
}

func aeroEngine(spec EntrantSpec) vehicles.AeroEngine {
	switch strings.ToLower(spec.Engine) {
	case "jet":
		return vehicles.JetEngine{Engines: 2, ThrustEach: 120}
	case "turboprop":
		return vehicles.TurbopropEngine{Engines: 2, PowerEach: 1000}
	case "electric":
		return vehicles.ElectricAeroEngine{Motors: 2, BatteryCapacity: orInt(spec.BatteryKWH, 100)}
	default:
		return vehicles.PistonEngine{Engines: 1, PowerEach: 120}
	}
}

func rotorEngine(spec EntrantSpec) vehicles.RotorEngine {
	switch strings.ToLower(spec.Engine) {
	case "piston":
		return vehicles.PistonRotorEngine{Engines: 1, Displacement: orFloat(spec.Displacement, 5.9)}
	case "electric":
		return vehicles.ElectricRotorEngine{Motors: 2, BatteryCapacity: orInt(spec.BatteryKWH, 100)}
	default:
		return vehicles.TurboshaftEngine{Engines: 2, PowerEach: 500}
	}
}

func propulsion(spec EntrantSpec) vehicles.Propulsion {
	switch strings.ToLower(spec.Engine) {
	case "nuclear":
		return vehicles.NuclearPropulsion{Reactors: 1}
	case "sail":
		return vehicles.SailPropulsion{Sails: 3}
	case "electric":
		return vehicles.ElectricPropulsion{Motors: 2, PowerEach: 400}
	default:
		return vehicles.DieselPropulsion{Engines: 2, PowerEach: 800}
	}
}

func motoClass(class string) vehicles.MotorcycleType {
	switch strings.ToLower(class) {
	case "sport":
		return vehicles.MotoSport
	case "touring":
		return vehicles.MotoTouring
	case "dirt":
		return vehicles.MotoDirt
	case "electric":
		return vehicles.MotoElectric
	default:
		return vehicles.MotoCruiser
	}
}

func truckClass(class string) vehicles.TruckType {
	switch strings.ToLower(class) {
	case "delivery":
		return vehicles.TruckDelivery
	case "semi":
		return vehicles.TruckSemi
	case "dump":
		return vehicles.TruckDump
	case "emergency":
		return vehicles.TruckEmergency
	default:
		return vehicles.TruckPickup
	}
}

func planeClass(class string) vehicles.AirplaneType {
	switch strings.ToLower(class) {
	case "commercial":
		return vehicles.PlaneCommercial
	case "military":
		return vehicles.PlaneMilitary
	case "cargo":
		return vehicles.PlaneCargo
	case "aerobatic":
		return vehicles.PlaneAerobatic
	case "seaplane":
		return vehicles.PlaneSeaplane
	default:
		return vehicles.PlanePrivate
	}
}

func heliClass(class string) vehicles.HelicopterType {
	switch strings.ToLower(class) {
	case "emergency":
		return vehicles.HeliEmergency
	case "military":
		return vehicles.HeliMilitary
	case "cargo":
		return vehicles.HeliCargo
	case "police":
		return vehicles.HeliPolice
	case "news":
		return vehicles.HeliNews
	default:
		return vehicles.HeliCivilian
	}
}

func shipClass(class string) vehicles.ShipType {
	switch strings.ToLower(class) {
	case "cargo":
		return vehicles.ShipCargo
	case "cruise":
		return vehicles.ShipCruise
	case "warship":
		return vehicles.ShipWarship
	case "ferry":
		return vehicles.ShipFerry
	case "submarine":
		return vehicles.ShipSubmarine
	case "speedboat":
		return vehicles.ShipSpeedboat
	default:
		return vehicles.ShipYacht
	}
}

func amphibClass(class string) vehicles.AmphibiousType {
	switch strings.ToLower(class) {
	case "hovercraft":
		return vehicles.AmphibHovercraft
	case "car":
		return vehicles.AmphibCar
	case "landing-craft":
		return vehicles.AmphibLandingCraft
	case "rv":
		return vehicles.AmphibRV
	case "emergency":
		return vehicles.AmphibEmergency
	default:
		return vehicles.AmphibDuck
	}
}

func hullClass(hull string) vehicles.HullType {
	switch strings.ToLower(hull) {
	case "planing":
		return vehicles.HullPlaning
	case "catamaran":
		return vehicles.HullCatamaran
	case "air-cushion":
		return vehicles.HullAirCushion
	case "sealed":
		return vehicles.HullSealed
	default:
		return vehicles.HullBoat
	}
}

func orInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

func orFloat(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
