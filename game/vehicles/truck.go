package vehicles

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// TruckType is the closed set of truck duty classes.
type TruckType int

const (
	TruckPickup TruckType = iota
	TruckDelivery
	TruckSemi
	TruckDump
	TruckEmergency
)

func (t TruckType) String() string {
	switch t {
	case TruckPickup:
		return "Pickup"
	case TruckDelivery:
		return "Delivery"
	case TruckSemi:
		return "Semi"
	case TruckDump:
		return "Dump"
	case TruckEmergency:
		return "Emergency"
	}
	return "Unknown"
}

// Truck is a cargo-carrying road vehicle. Its load weighs on both top
// speed and fuel efficiency.
type Truck struct {
	chassis
	truckType       TruckType
	payloadCapacity int // kg
	currentLoad     int // kg
}

var (
	_ Refueler      = (*Truck)(nil)
	_ motion.Driver = (*Truck)(nil)
)

// NewTruck returns an empty truck with the given payload capacity in kg.
func NewTruck(name, manufacturer string, year, payloadCapacity int, truckType TruckType) *Truck {
	return &Truck{
		chassis:         chassis{name: name, manufacturer: manufacturer, year: year, level: energy.Normal},
		truckType:       truckType,
		payloadCapacity: payloadCapacity,
	}
}

func (t *Truck) VehicleType() string  { return "Truck" }
func (t *Truck) TruckType() TruckType { return t.truckType }
func (t *Truck) PayloadCapacity() int { return t.payloadCapacity }
func (t *Truck) CurrentLoad() int     { return t.currentLoad }

func (t *Truck) Description() string {
	return describe(t, fmt.Sprintf("%s, %dkg capacity", t.truckType, t.payloadCapacity))
}

// LoadCargo adds weight in kg, refusing anything over capacity.
func (t *Truck) LoadCargo(weight int) error {
	if t.currentLoad+weight > t.payloadCapacity {
		return fmt.Errorf("cannot load %d kg: would exceed capacity of %d kg",
			weight, t.payloadCapacity)
	}
	t.currentLoad += weight
	return nil
}

// UnloadCargo removes weight in kg, refusing more than is loaded.
func (t *Truck) UnloadCargo(weight int) error {
	if weight > t.currentLoad {
		return fmt.Errorf("cannot unload %d kg: only %d kg loaded", weight, t.currentLoad)
	}
	t.currentLoad -= weight
	return nil
}

// LoadPercentage reports how full the truck is, 0 to 100.
func (t *Truck) LoadPercentage() int {
	if t.payloadCapacity == 0 {
		return 0
	}
	return t.currentLoad * 100 / t.payloadCapacity
}

// MaxSpeed starts from the duty class and loses up to 20 km/h under full
// load.
func (t *Truck) MaxSpeed() int {
	var base int
	switch t.truckType {
	case TruckPickup:
		base = 160
	case TruckDelivery:
		base = 120
	case TruckSemi:
		base = 110
	case TruckDump:
		base = 90
	default:
		base = 140
	}
	return base - t.loadFraction(20)
}

// FuelEfficiency loses up to 10 km per energy level under full load.
func (t *Truck) FuelEfficiency() int {
	var base int
	switch t.truckType {
	case TruckPickup:
		base = 35
	case TruckDelivery:
		base = 25
	case TruckSemi:
		base = 15
	case TruckDump:
		base = 20
	default:
		base = 30
	}
	return base - t.loadFraction(10)
}

// loadFraction scales max by the current load ratio.
func (t *Truck) loadFraction(max int) int {
	if t.payloadCapacity == 0 {
		return 0
	}
	return t.currentLoad * max / t.payloadCapacity
}

// Pickups and dump trucks are built for unpaved ground.
func (t *Truck) HasOffRoadCapability() bool {
	return t.truckType == TruckPickup || t.truckType == TruckDump
}

func (t *Truck) MaxLandSpeed() int     { return t.MaxSpeed() }
func (t *Truck) LandEfficiency() int   { return t.FuelEfficiency() }
func (t *Truck) LandMoverType() string { return "Truck (driving)" }
func (t *Truck) LandSkill() int        { return 3 }
