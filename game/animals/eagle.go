package animals

import (
	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// Eagle is a master flyer that can also hop around on the ground.
type Eagle struct {
	name  string
	level energy.Level
}

var (
	_ motion.Walker = (*Eagle)(nil)
	_ motion.Flyer  = (*Eagle)(nil)
)

// NewEagle returns an eagle, starting out Energetic.
func NewEagle(name string) *Eagle {
	return &Eagle{name: name, level: energy.Energetic}
}

func (e *Eagle) Name() string                 { return e.name }
func (e *Eagle) Species() string              { return "Eagle" }
func (e *Eagle) Description() string          { return describe(e) }
func (e *Eagle) Energy() energy.Level         { return e.level }
func (e *Eagle) SetEnergy(level energy.Level) { e.level = level }

func (e *Eagle) MaxLandSpeed() int {
	switch e.level {
	case energy.Collapsed:
		return 0
	case energy.Exhausted:
		return 2
	case energy.Tired:
		return 3
	case energy.Normal:
		return 5
	case energy.Energetic:
		return 7
	default:
		return 10
	}
}

func (e *Eagle) LandEfficiency() int   { return 100 }
func (e *Eagle) LandMoverType() string { return "Eagle (walking)" }

// Eagles are awkward on foot.
func (e *Eagle) LandSkill() int { return 2 }

func (e *Eagle) MaxAltitude() int { return 3000 }

// In the air nothing touches an eagle.
func (e *Eagle) FlyingSkill() int { return 5 }

func (e *Eagle) SupportsFlightMode(mode conditions.FlightMode) bool {
	switch mode {
	case conditions.FlightPowered, conditions.FlightGliding, conditions.FlightSoaring:
		return true
	default:
		return false
	}
}
