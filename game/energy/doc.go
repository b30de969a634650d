// Package energy provides the six-step energy scale that gates every
// movement capability in the game.
//
// Level is a totally ordered scale from Collapsed to Hyperactive with
// saturating Increase/Decrease steps and a lossy mapping to a 0-100 point
// scale. Carrier is the capability implemented by every animal and vehicle
// that owns an energy level; the package-level helpers (CanPerform, Consume,
// ConsumeLevels, Rest) are the only sanctioned ways to mutate it.
//
// Usage:
//
//	dog := animals.NewDog("Rex", "Border Collie")
//	if energy.CanPerform(dog, energy.Normal) {
//		energy.ConsumeLevels(dog, 2)
//	}
//	energy.Rest(dog)
package energy
