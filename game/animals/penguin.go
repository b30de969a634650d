package animals

import (
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// Penguin waddles on land but is an outstanding diver.
type Penguin struct {
	name  string
	level energy.Level
}

var (
	_ motion.Walker  = (*Penguin)(nil)
	_ motion.Swimmer = (*Penguin)(nil)
)

// NewPenguin returns a penguin with Normal energy.
func NewPenguin(name string) *Penguin {
	return &Penguin{name: name, level: energy.Normal}
}

func (p *Penguin) Name() string                 { return p.name }
func (p *Penguin) Species() string              { return "Penguin" }
func (p *Penguin) Description() string          { return describe(p) }
func (p *Penguin) Energy() energy.Level         { return p.level }
func (p *Penguin) SetEnergy(level energy.Level) { p.level = level }

func (p *Penguin) MaxLandSpeed() int {
	switch p.level {
	case energy.Collapsed:
		return 0
	case energy.Exhausted:
		return 2
	case energy.Tired:
		return 3
	case energy.Normal:
		return 5
	case energy.Energetic:
		return 8
	default:
		return 12
	}
}

func (p *Penguin) LandEfficiency() int   { return 100 }
func (p *Penguin) LandMoverType() string { return "Penguin (walking)" }
func (p *Penguin) LandSkill() int        { return 2 }

// Penguins dive deeper than anything else on legs.
func (p *Penguin) MaxDepth() int { return 500 }
