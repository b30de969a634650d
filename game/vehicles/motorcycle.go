package vehicles

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// MotorcycleType is the closed set of motorcycle classes.
type MotorcycleType int

const (
	MotoSport MotorcycleType = iota
	MotoCruiser
	MotoTouring
	MotoDirt
	MotoElectric
)

func (t MotorcycleType) String() string {
	switch t {
	case MotoSport:
		return "Sport"
	case MotoCruiser:
		return "Cruiser"
	case MotoTouring:
		return "Touring"
	case MotoDirt:
		return "Dirt"
	case MotoElectric:
		return "Electric"
	}
	return "Unknown"
}

// Motorcycle is a two-wheeled road vehicle. Only dirt bikes leave the
// pavement.
type Motorcycle struct {
	chassis
	engineSize int // cc
	motoType   MotorcycleType
}

var (
	_ Refueler      = (*Motorcycle)(nil)
	_ motion.Driver = (*Motorcycle)(nil)
)

// NewMotorcycle returns a motorcycle of the given class and engine size.
func NewMotorcycle(name, manufacturer string, year, engineSize int, motoType MotorcycleType) *Motorcycle {
	return &Motorcycle{
		chassis:    chassis{name: name, manufacturer: manufacturer, year: year, level: energy.Normal},
		engineSize: engineSize,
		motoType:   motoType,
	}
}

func (m *Motorcycle) VehicleType() string            { return "Motorcycle" }
func (m *Motorcycle) EngineSize() int                { return m.engineSize }
func (m *Motorcycle) MotorcycleType() MotorcycleType { return m.motoType }

func (m *Motorcycle) Description() string {
	return describe(m, fmt.Sprintf("%dcc %s", m.engineSize, m.motoType))
}

// MaxSpeed combines the class's base speed with an engine-size bonus.
func (m *Motorcycle) MaxSpeed() int {
	var base int
	switch m.motoType {
	case MotoSport:
		base = 200
	case MotoCruiser:
		base = 140
	case MotoTouring:
		base = 160
	case MotoDirt:
		base = 120
	default:
		base = 130
	}
	return base + m.engineSize/50
}

// FuelEfficiency drops as engine size grows.
func (m *Motorcycle) FuelEfficiency() int {
	var base int
	switch m.motoType {
	case MotoSport:
		base = 40
	case MotoCruiser:
		base = 60
	case MotoTouring:
		base = 70
	case MotoDirt:
		base = 50
	default:
		base = 150
	}
	return base - m.engineSize/100
}

func (m *Motorcycle) HasOffRoadCapability() bool { return m.motoType == MotoDirt }

func (m *Motorcycle) MaxLandSpeed() int     { return m.MaxSpeed() }
func (m *Motorcycle) LandEfficiency() int   { return m.FuelEfficiency() }
func (m *Motorcycle) LandMoverType() string { return "Motorcycle (driving)" }

// Riders need more finesse than drivers; dirt riders the most.
func (m *Motorcycle) LandSkill() int {
	if m.motoType == MotoDirt {
		return 4
	}
	return 3
}
