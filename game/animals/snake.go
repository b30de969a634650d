package animals

import (
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

// Snake slithers rather than walks, so it carries no land capability.
// Aquatic snakes can swim; the rest only manage basic movement.
type Snake struct {
	name    string
	aquatic bool
	level   energy.Level
}

var _ motion.Swimmer = (*Snake)(nil)

// NewSnake returns a snake with Normal energy.
func NewSnake(name string, aquatic bool) *Snake {
	return &Snake{name: name, aquatic: aquatic, level: energy.Normal}
}

func (s *Snake) Name() string                 { return s.name }
func (s *Snake) Species() string              { return "Snake" }
func (s *Snake) Description() string          { return describe(s) }
func (s *Snake) IsAquatic() bool              { return s.aquatic }
func (s *Snake) Energy() energy.Level         { return s.level }
func (s *Snake) SetEnergy(level energy.Level) { s.level = level }

// MaxDepth is zero for non-aquatic snakes: any dive attempt exceeds it.
func (s *Snake) MaxDepth() int {
	if s.aquatic {
		return 50
	}
	return 0
}
