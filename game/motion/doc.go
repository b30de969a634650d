// Package motion defines the movement capabilities shared by animals and
// vehicles. Each capability is an interface describing what an entity must
// expose (name, energy, physical limits) plus package-level action functions
// that gate the action behind an energy threshold, consume a fixed cost, and
// return a descriptive result string.
//
// Actions are atomic: the required energy level and any physical ceiling are
// checked before anything is consumed. A failed action returns a typed error
// and leaves the entity's energy untouched; a successful one applies exactly
// its documented cost as saturating decrements.
package motion
