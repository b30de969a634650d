package competition

import (
	"fmt"
	"strings"

	"github.com/fieldday-games/fieldday/game/motion"
)

// Capability is a set of movement profile flags. An entity's capability
// set is fixed by its type; the flags only restate, at run time, what
// the type already implements.
type Capability uint8

const (
	CanWalk Capability = 1 << iota
	CanSwim
	CanFly
	CanDrive
)

// Has reports whether every flag in want is present.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c.Has(CanWalk) {
		parts = append(parts, "walk")
	}
	if c.Has(CanSwim) {
		parts = append(parts, "swim")
	}
	if c.Has(CanFly) {
		parts = append(parts, "fly")
	}
	if c.Has(CanDrive) {
		parts = append(parts, "drive")
	}
	return strings.Join(parts, "+")
}

// ProfileOf derives an entity's capability flags from the motion
// interfaces its type implements. Drivers are land movers too, but the
// drive flag replaces the walk flag for them.
func ProfileOf(m motion.Mover) Capability {
	var c Capability
	if _, ok := m.(motion.Driver); ok {
		c |= CanDrive
	} else if _, ok := m.(motion.LandMover); ok {
		c |= CanWalk
	}
	if _, ok := m.(motion.Swimmer); ok {
		c |= CanSwim
	}
	if _, ok := m.(motion.Flyer); ok {
		c |= CanFly
	}
	return c
}

// EligibilityError reports an entrant that lacks a capability the
// competition requires.
type EligibilityError struct {
	Name        string
	Competition string
	Missing     Capability
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("%s cannot enter the %s: missing capability %s",
		e.Name, e.Competition, e.Missing)
}

// Land movement is a closed abstraction: only the categories listed here
// may run a land leg. New land movers must be added to this list
// deliberately rather than by merely implementing the interface.
var approvedLandMovers = map[string]struct{}{
	"Dog (walking)":                {},
	"Duck (walking)":               {},
	"Eagle (walking)":              {},
	"Penguin (walking)":            {},
	"Car (driving)":                {},
	"Motorcycle (driving)":         {},
	"Truck (driving)":              {},
	"Airplane (taxiing)":           {},
	"Amphibious Vehicle (driving)": {},
}

// ApprovedLandMover reports whether lm's category is on the closed list
// of permitted land movers.
func ApprovedLandMover(lm motion.LandMover) bool {
	_, ok := approvedLandMovers[lm.LandMoverType()]
	return ok
}

// LandMoverNotApprovedError reports a land mover whose category is not
// on the closed list.
type LandMoverNotApprovedError struct {
	Name     string
	Category string
}

func (e *LandMoverNotApprovedError) Error() string {
	return fmt.Sprintf("%s (%s) is not an approved land mover", e.Name, e.Category)
}
