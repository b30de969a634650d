package animals

import (
	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// Duck is the generalist: it walks, swims and flies, none of them
// particularly well.
type Duck struct {
	name  string
	level energy.Level
}

var (
	_ motion.Walker  = (*Duck)(nil)
	_ motion.Swimmer = (*Duck)(nil)
	_ motion.Flyer   = (*Duck)(nil)
)

// NewDuck returns a duck with Normal energy.
func NewDuck(name string) *Duck {
	return &Duck{name: name, level: energy.Normal}
}

func (d *Duck) Name() string                 { return d.name }
func (d *Duck) Species() string              { return "Duck" }
func (d *Duck) Description() string          { return describe(d) }
func (d *Duck) Energy() energy.Level         { return d.level }
func (d *Duck) SetEnergy(level energy.Level) { d.level = level }

func (d *Duck) MaxLandSpeed() int {
	switch d.level {
	case energy.Collapsed:
		return 0
	case energy.Exhausted:
		return 2
	case energy.Tired:
		return 4
	case energy.Normal:
		return 6
	case energy.Energetic:
		return 8
	default:
		return 10
	}
}

func (d *Duck) LandEfficiency() int   { return 100 }
func (d *Duck) LandMoverType() string { return "Duck (walking)" }

// Ducks waddle.
func (d *Duck) LandSkill() int { return 2 }

// Ducks dabble rather than dive.
func (d *Duck) MaxDepth() int { return 5 }

func (d *Duck) MaxAltitude() int { return 1000 }
func (d *Duck) FlyingSkill() int { return 3 }

func (d *Duck) SupportsFlightMode(mode conditions.FlightMode) bool {
	switch mode {
	case conditions.FlightPowered, conditions.FlightGliding:
		return true
	default:
		return false
	}
}
