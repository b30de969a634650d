package vehicles

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// Engine is the closed set of car power plants. Speed and efficiency
// derive from the engine's characteristics.
type Engine interface {
	maxSpeed() int
	efficiency() int
	describe() string
}

// GasolineEngine is a conventional combustion engine.
type GasolineEngine struct {
	Cylinders    int
	Displacement float64 // liters
}

func (e GasolineEngine) maxSpeed() int { return 120 + e.Cylinders*10 }

// Larger engines are less efficient.
func (e GasolineEngine) efficiency() int {
	return 60 - e.Cylinders*2 - int(e.Displacement*5)
}

func (e GasolineEngine) describe() string {
	return fmt.Sprintf("%.1fL V%d Gasoline", e.Displacement, e.Cylinders)
}

// ElectricEngine is a battery-electric drivetrain.
type ElectricEngine struct {
	BatteryCapacity int // kWh
}

func (e ElectricEngine) maxSpeed() int   { return 100 + e.BatteryCapacity/10 }
func (e ElectricEngine) efficiency() int { return 120 }
func (e ElectricEngine) describe() string {
	return fmt.Sprintf("%dkWh Electric", e.BatteryCapacity)
}

// HybridEngine pairs a gas engine with an electric motor.
type HybridEngine struct {
	Gas     GasolineEngine
	MotorKW int
}

func (e HybridEngine) maxSpeed() int    { return 140 }
func (e HybridEngine) efficiency() int  { return 90 }
func (e HybridEngine) describe() string { return "Hybrid" }

// DieselEngine is a compression-ignition engine.
type DieselEngine struct {
	Cylinders    int
	Displacement float64 // liters
}

func (e DieselEngine) maxSpeed() int   { return 110 + e.Cylinders*8 }
func (e DieselEngine) efficiency() int { return 70 }
func (e DieselEngine) describe() string {
	return fmt.Sprintf("%.1fL V%d Diesel", e.Displacement, e.Cylinders)
}

// Car is a road vehicle. It drives but has no off-road capability.
type Car struct {
	chassis
	engine   Engine
	maxSpeed int
}

var (
	_ Refueler      = (*Car)(nil)
	_ motion.Driver = (*Car)(nil)
)

// NewCar returns a car with the given engine, starting with half a tank.
func NewCar(name, manufacturer string, year int, engine Engine) *Car {
	return &Car{
		chassis:  chassis{name: name, manufacturer: manufacturer, year: year, level: energy.Normal},
		engine:   engine,
		maxSpeed: engine.maxSpeed(),
	}
}

func (c *Car) VehicleType() string { return "Car" }
func (c *Car) Engine() Engine      { return c.engine }
func (c *Car) Description() string { return describe(c, c.engine.describe()) }

func (c *Car) MaxSpeed() int              { return c.maxSpeed }
func (c *Car) FuelEfficiency() int        { return c.engine.efficiency() }
func (c *Car) HasOffRoadCapability() bool { return false }

func (c *Car) MaxLandSpeed() int    { return c.maxSpeed }
func (c *Car) LandEfficiency() int  { return c.FuelEfficiency() }
func (c *Car) LandMoverType() string { return "Car (driving)" }
func (c *Car) LandSkill() int       { return 3 }
