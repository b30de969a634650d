package animals

import (
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// Whale only swims. It never walks or flies, and no other capability
// applies to it.
type Whale struct {
	name  string
	level energy.Level
}

var _ motion.Swimmer = (*Whale)(nil)

// NewWhale returns a whale at full energy.
func NewWhale(name string) *Whale {
	return &Whale{name: name, level: energy.Hyperactive}
}

func (w *Whale) Name() string                 { return w.name }
func (w *Whale) Species() string              { return "Whale" }
func (w *Whale) Description() string          { return describe(w) }
func (w *Whale) Energy() energy.Level         { return w.level }
func (w *Whale) SetEnergy(level energy.Level) { w.level = level }

func (w *Whale) MaxDepth() int { return 2000 }
