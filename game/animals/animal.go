// Package animals provides the biological entities of the game. Each
// animal carries a name, a species, an energy level, and the movement
// capabilities its nature allows: a whale only swims, a duck walks, swims
// and flies.
package animals

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/motion"
)

// Animal is the identity shared by every biological entity.
type Animal interface {
	motion.Mover

	// Species is the animal's kind, e.g. "Dog".
	Species() string

	// Description returns a short human-readable introduction.
	Description() string
}

func describe(a Animal) string {
	return fmt.Sprintf("%s is a %s", a.Name(), a.Species())
}
