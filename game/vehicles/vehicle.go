// Package vehicles provides the mechanical entities of the game. A
// vehicle's energy level stands in for its fuel: driving, flying and
// swimming drain it, refueling sets it back to full.
package vehicles

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// Vehicle is the identity shared by every mechanical entity.
type Vehicle interface {
	motion.Mover

	// VehicleType is the vehicle's kind, e.g. "Car".
	VehicleType() string

	// Manufacturer is the builder's name.
	Manufacturer() string

	// Year is the model year.
	Year() int

	// Description returns a short human-readable summary.
	Description() string
}

// Refueler is a vehicle whose tank can be topped up.
type Refueler interface {
	Vehicle

	// Refuel fills the tank, setting energy to Hyperactive.
	Refuel()

	// FuelPercentage reports the tank level from 0 to 100.
	FuelPercentage() int
}

// chassis carries the fields and fuel behavior every vehicle shares.
type chassis struct {
	name         string
	manufacturer string
	year         int
	level        energy.Level
}

func (c *chassis) Name() string                 { return c.name }
func (c *chassis) Manufacturer() string         { return c.manufacturer }
func (c *chassis) Year() int                    { return c.year }
func (c *chassis) Energy() energy.Level         { return c.level }
func (c *chassis) SetEnergy(level energy.Level) { c.level = level }

func (c *chassis) Refuel() { c.level = energy.Hyperactive }

// FuelPercentage maps the energy scale onto a fuel gauge.
func (c *chassis) FuelPercentage() int {
	switch c.level {
	case energy.Collapsed:
		return 0
	case energy.Exhausted:
		return 15
	case energy.Tired:
		return 30
	case energy.Normal:
		return 50
	case energy.Energetic:
		return 75
	default:
		return 100
	}
}

func describe(v Vehicle, detail string) string {
	if detail == "" {
		return fmt.Sprintf("%d %s %s (%s)", v.Year(), v.Manufacturer(), v.Name(), v.VehicleType())
	}
	return fmt.Sprintf("%d %s %s (%s, %s)", v.Year(), v.Manufacturer(), v.Name(), v.VehicleType(), detail)
}
