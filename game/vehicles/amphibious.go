package vehicles

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// AmphibiousType is the closed set of land-and-water vehicle designs.
type AmphibiousType int

const (
	AmphibDuck AmphibiousType = iota
	AmphibHovercraft
	AmphibCar
	AmphibLandingCraft
	AmphibRV
	AmphibEmergency
)

func (t AmphibiousType) String() string {
	switch t {
	case AmphibDuck:
		return "Duck"
	case AmphibHovercraft:
		return "Hovercraft"
	case AmphibCar:
		return "Amphibious Car"
	case AmphibLandingCraft:
		return "Landing Craft"
	case AmphibRV:
		return "Amphibious RV"
	case AmphibEmergency:
		return "Emergency Vehicle"
	}
	return "Unknown"
}

// HullType is the closed set of amphibious hull designs. The hull drags
// on land efficiency.
type HullType int

const (
	HullBoat HullType = iota
	HullPlaning
	HullCatamaran
	HullAirCushion
	HullSealed
)

func (h HullType) String() string {
	switch h {
	case HullBoat:
		return "Boat Hull"
	case HullPlaning:
		return "Planing Hull"
	case HullCatamaran:
		return "Catamaran"
	case HullAirCushion:
		return "Air Cushion"
	case HullSealed:
		return "Sealed Body"
	}
	return "Unknown"
}

// landPenalty is the efficiency lost to dragging the hull over ground.
func (h HullType) landPenalty() int {
	switch h {
	case HullBoat:
		return 5
	case HullPlaning:
		return 3
	case HullCatamaran:
		return 7
	case HullAirCushion:
		return 0
	default:
		return 1
	}
}

// AmphibiousVehicle drives and swims, switching between land and water
// mode at a small energy cost.
type AmphibiousVehicle struct {
	chassis
	amphibType AmphibiousType
	hull       HullType
	inWater    bool
}

var (
	_ Refueler       = (*AmphibiousVehicle)(nil)
	_ motion.Driver  = (*AmphibiousVehicle)(nil)
	_ motion.Swimmer = (*AmphibiousVehicle)(nil)
)

// NewAmphibiousVehicle returns an amphibious vehicle in land mode.
func NewAmphibiousVehicle(name, manufacturer string, year int, amphibType AmphibiousType, hull HullType) *AmphibiousVehicle {
	return &AmphibiousVehicle{
		chassis:    chassis{name: name, manufacturer: manufacturer, year: year, level: energy.Normal},
		amphibType: amphibType,
		hull:       hull,
	}
}

func (v *AmphibiousVehicle) VehicleType() string            { return "Amphibious Vehicle" }
func (v *AmphibiousVehicle) AmphibiousType() AmphibiousType { return v.amphibType }
func (v *AmphibiousVehicle) HullType() HullType             { return v.hull }
func (v *AmphibiousVehicle) InWater() bool                  { return v.inWater }

func (v *AmphibiousVehicle) Description() string {
	return describe(v, fmt.Sprintf("%s, %s", v.amphibType, v.hull))
}

// SwitchMode transitions between land and water operation. The designs
// differ in how laborious the transition is; a hovercraft never notices.
func (v *AmphibiousVehicle) SwitchMode(toWater bool) (string, error) {
	mode := "land"
	if toWater {
		mode = "water"
	}

	if v.level < energy.Tired {
		return "", fmt.Errorf("insufficient energy to switch to %s mode", mode)
	}

	energy.ConsumeLevels(v, v.transitionCost())
	v.inWater = toWater
	return fmt.Sprintf("successfully switched to %s mode", mode), nil
}

func (v *AmphibiousVehicle) transitionCost() int {
	switch v.amphibType {
	case AmphibHovercraft:
		return 0
	case AmphibRV:
		return 2
	default:
		return 1
	}
}

// MaxSpeed is the land-mode top speed, helped along by the hull design.
func (v *AmphibiousVehicle) MaxSpeed() int {
	var base int
	switch v.amphibType {
	case AmphibDuck:
		base = 80
	case AmphibHovercraft:
		base = 100
	case AmphibCar:
		base = 120
	case AmphibLandingCraft:
		base = 60
	case AmphibRV:
		base = 90
	default:
		base = 110
	}
	if v.hull == HullAirCushion {
		base += 20
	}
	return base
}

func (v *AmphibiousVehicle) FuelEfficiency() int {
	var base int
	switch v.amphibType {
	case AmphibDuck:
		base = 25
	case AmphibHovercraft:
		base = 15
	case AmphibCar:
		base = 40
	case AmphibLandingCraft:
		base = 20
	case AmphibRV:
		base = 30
	default:
		base = 25
	}
	return base - v.hull.landPenalty()
}

// Every amphibious design copes with unpaved ground.
func (v *AmphibiousVehicle) HasOffRoadCapability() bool { return true }

func (v *AmphibiousVehicle) MaxLandSpeed() int     { return v.MaxSpeed() }
func (v *AmphibiousVehicle) LandEfficiency() int   { return v.FuelEfficiency() }
func (v *AmphibiousVehicle) LandMoverType() string { return "Amphibious Vehicle (driving)" }
func (v *AmphibiousVehicle) LandSkill() int        { return 3 }

// MaxDepth is shallow for everything but the landing craft; the
// hovercraft never leaves the surface.
func (v *AmphibiousVehicle) MaxDepth() int {
	switch v.amphibType {
	case AmphibHovercraft:
		return 0
	case AmphibLandingCraft:
		return 3
	case AmphibDuck, AmphibEmergency:
		return 2
	default:
		return 1
	}
}
