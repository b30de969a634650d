package animals

import (
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// Dog walks, runs and swims. How well it swims depends on the breed.
type Dog struct {
	name  string
	breed string
	level energy.Level
}

var (
	_ motion.Walker  = (*Dog)(nil)
	_ motion.Swimmer = (*Dog)(nil)
)

// NewDog returns a dog of the given breed, starting out Energetic.
func NewDog(name, breed string) *Dog {
	return &Dog{name: name, breed: breed, level: energy.Energetic}
}

func (d *Dog) Name() string                 { return d.name }
func (d *Dog) Species() string              { return "Dog" }
func (d *Dog) Breed() string                { return d.breed }
func (d *Dog) Description() string          { return describe(d) }
func (d *Dog) Energy() energy.Level         { return d.level }
func (d *Dog) SetEnergy(level energy.Level) { d.level = level }

// MaxLandSpeed scales with how much energy the dog has left.
func (d *Dog) MaxLandSpeed() int {
	switch d.level {
	case energy.Collapsed:
		return 0
	case energy.Exhausted:
		return 3
	case energy.Tired:
		return 5
	case energy.Normal:
		return 8
	case energy.Energetic:
		return 12
	default:
		return 15
	}
}

func (d *Dog) LandEfficiency() int   { return 100 }
func (d *Dog) LandMoverType() string { return "Dog (walking)" }

// Dogs are nimble on the ground.
func (d *Dog) LandSkill() int { return 4 }

// MaxDepth depends on the breed: water dogs dive deeper, bulldogs barely
// float.
func (d *Dog) MaxDepth() int {
	switch d.breed {
	case "Golden Retriever", "Labrador":
		return 10
	case "Bulldog":
		return 2
	default:
		return 5
	}
}
