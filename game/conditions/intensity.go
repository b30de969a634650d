package conditions

import "github.com/fieldday-games/fieldday/game/energy"

// Intensity represents how hard an entity pushes during a movement.
type Intensity int

const (
	IntensityGentle Intensity = iota + 1
	IntensityModerate
	IntensityVigorous
	IntensityIntense
	IntensityMaximum
)

// DefaultIntensity is the fallback used when parsing unrecognized input.
const DefaultIntensity = IntensityModerate

// DifficultyLevel ranks this intensity from 1 to 5.
func (i Intensity) DifficultyLevel() int {
	return int(i)
}

// EnergyCost is the extra energy consumed at this intensity.
func (i Intensity) EnergyCost() int {
	switch i {
	case IntensityGentle, IntensityModerate:
		return 0
	case IntensityVigorous:
		return 1
	case IntensityIntense:
		return 2
	default:
		return 3
	}
}

// RequiredEnergy is the minimum level needed to sustain this intensity.
func (i Intensity) RequiredEnergy() energy.Level {
	switch i {
	case IntensityGentle:
		return energy.Exhausted
	case IntensityModerate:
		return energy.Tired
	case IntensityVigorous:
		return energy.Normal
	case IntensityIntense:
		return energy.Energetic
	default:
		return energy.Hyperactive
	}
}

// Description returns a human-readable description of this intensity.
func (i Intensity) Description() string {
	switch i {
	case IntensityGentle:
		return "gentle, low-impact movement"
	case IntensityModerate:
		return "moderate, steady movement"
	case IntensityVigorous:
		return "vigorous, energetic movement"
	case IntensityIntense:
		return "intense, high-energy movement"
	default:
		return "maximum effort, all-out movement"
	}
}

// SpeedMultiplier scales the entity's base speed at this intensity.
func (i Intensity) SpeedMultiplier() float64 {
	switch i {
	case IntensityGentle:
		return 0.5
	case IntensityModerate:
		return 1.0
	case IntensityVigorous:
		return 1.5
	case IntensityIntense:
		return 2.0
	default:
		return 3.0
	}
}

// Sustainable reports whether this intensity can be held for long periods.
func (i Intensity) Sustainable() bool {
	return i == IntensityGentle || i == IntensityModerate
}

// AllIntensities returns every intensity in ascending order.
func AllIntensities() []Intensity {
	return []Intensity{
		IntensityGentle, IntensityModerate, IntensityVigorous,
		IntensityIntense, IntensityMaximum,
	}
}

// IntensitiesAvailableFor returns the intensities the given energy supports.
func IntensitiesAvailableFor(level energy.Level) []Intensity {
	var out []Intensity
	for _, i := range AllIntensities() {
		if level >= i.RequiredEnergy() {
			out = append(out, i)
		}
	}
	return out
}

var intensityNames = []string{"gentle", "moderate", "vigorous", "intense", "maximum"}

// String returns the display name for this intensity.
func (i Intensity) String() string {
	switch i {
	case IntensityGentle:
		return "Gentle"
	case IntensityModerate:
		return "Moderate"
	case IntensityVigorous:
		return "Vigorous"
	case IntensityIntense:
		return "Intense"
	default:
		return "Maximum"
	}
}

// ParseIntensity converts free text to an Intensity, falling back to
// DefaultIntensity when the input is unrecognizable.
func ParseIntensity(s string) Intensity {
	switch normalize(s) {
	case "gentle", "easy", "slow":
		return IntensityGentle
	case "moderate", "normal", "medium":
		return IntensityModerate
	case "vigorous", "energetic", "active":
		return IntensityVigorous
	case "intense", "hard", "high":
		return IntensityIntense
	case "maximum", "max", "extreme", "all_out":
		return IntensityMaximum
	}
	if i, ok := closest(normalize(s), intensityNames); ok {
		return AllIntensities()[i]
	}
	return DefaultIntensity
}

// IntensityFromLevel maps a numeric 1-5 difficulty to an Intensity,
// clamping out-of-range values.
func IntensityFromLevel(level int) Intensity {
	switch {
	case level <= 1:
		return IntensityGentle
	case level == 2:
		return IntensityModerate
	case level == 3:
		return IntensityVigorous
	case level == 4:
		return IntensityIntense
	default:
		return IntensityMaximum
	}
}
