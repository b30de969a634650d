package conditions

import "github.com/fieldday-games/fieldday/game/energy"

// FlightMode represents the style of flight a flyer uses.
type FlightMode int

const (
	FlightPowered FlightMode = iota
	FlightGliding
	FlightSoaring
	FlightHovering
)

// DefaultFlightMode is the fallback used when parsing unrecognized input.
const DefaultFlightMode = FlightPowered

// EnergyCost is the extra energy consumed in this mode, beyond the base
// movement step.
func (m FlightMode) EnergyCost() int {
	switch m {
	case FlightPowered:
		return 2
	case FlightGliding, FlightSoaring:
		return 1
	default:
		return 3
	}
}

// RequiredEnergy is the minimum level needed to fly in this mode.
func (m FlightMode) RequiredEnergy() energy.Level {
	switch m {
	case FlightGliding:
		return energy.Tired
	case FlightPowered, FlightSoaring:
		return energy.Normal
	default:
		return energy.Energetic
	}
}

// Description returns a human-readable description of this mode.
func (m FlightMode) Description() string {
	switch m {
	case FlightPowered:
		return "active powered flight"
	case FlightGliding:
		return "gliding on extended wings"
	case FlightSoaring:
		return "soaring on rising thermals"
	default:
		return "hovering in place"
	}
}

// AllFlightModes returns every flight mode variant.
func AllFlightModes() []FlightMode {
	return []FlightMode{FlightPowered, FlightGliding, FlightSoaring, FlightHovering}
}

var flightModeNames = []string{"powered", "gliding", "soaring", "hovering"}

// String returns the display name for this mode.
func (m FlightMode) String() string {
	switch m {
	case FlightPowered:
		return "Powered"
	case FlightGliding:
		return "Gliding"
	case FlightSoaring:
		return "Soaring"
	default:
		return "Hovering"
	}
}

// ParseFlightMode converts free text to a FlightMode, falling back to
// DefaultFlightMode when the input is unrecognizable.
func ParseFlightMode(s string) FlightMode {
	switch normalize(s) {
	case "powered", "fly", "flight":
		return FlightPowered
	case "gliding", "glide":
		return FlightGliding
	case "soaring", "soar":
		return FlightSoaring
	case "hovering", "hover":
		return FlightHovering
	}
	if i, ok := closest(normalize(s), flightModeNames); ok {
		return AllFlightModes()[i]
	}
	return DefaultFlightMode
}
