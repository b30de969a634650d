package energy

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Level represents an entity's energy on a six-step ordinal scale.
type Level int

const (
	Collapsed   Level = 0 // Cannot perform any actions
	Exhausted   Level = 1 // Can only rest or crawl along
	Tired       Level = 2 // Limited actions only
	Normal      Level = 3 // Normal activity level
	Energetic   Level = 4 // High activity level
	Hyperactive Level = 5 // Maximum energy
)

// DefaultLevel is the fallback used when parsing unrecognized input.
const DefaultLevel = Normal

var levelNames = map[Level]string{
	Collapsed:   "Collapsed",
	Exhausted:   "Exhausted",
	Tired:       "Tired",
	Normal:      "Normal",
	Energetic:   "Energetic",
	Hyperactive: "Hyperactive",
}

// String returns the display name for this level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// Decrease returns the level one step lower, saturating at Collapsed.
func (l Level) Decrease() Level {
	if l <= Collapsed {
		return Collapsed
	}
	return l - 1
}

// Increase returns the level one step higher, saturating at Hyperactive.
func (l Level) Increase() Level {
	if l >= Hyperactive {
		return Hyperactive
	}
	return l + 1
}

// CanMove reports whether this level allows basic movement.
func (l Level) CanMove() bool {
	return l > Collapsed
}

// CanRun reports whether this level allows intensive activities.
func (l Level) CanRun() bool {
	return l >= Normal
}

// Points converts the level to a 0-100 point value. The mapping picks a
// representative value inside each bucket, so FromPoints(l.Points()) == l but
// l.Points() does not reproduce an arbitrary input to FromPoints.
func (l Level) Points() int {
	switch l {
	case Collapsed:
		return 5
	case Exhausted:
		return 20
	case Tired:
		return 40
	case Normal:
		return 65
	case Energetic:
		return 85
	default:
		return 100
	}
}

// FromPoints buckets a 0-100 point value into a Level. Values above 100 fall
// back to Normal rather than saturating to Hyperactive; callers relying on
// saturation must clamp first.
func FromPoints(points int) Level {
	switch {
	case points >= 0 && points <= 10:
		return Collapsed
	case points >= 11 && points <= 25:
		return Exhausted
	case points >= 26 && points <= 50:
		return Tired
	case points >= 51 && points <= 75:
		return Normal
	case points >= 76 && points <= 90:
		return Energetic
	case points >= 91 && points <= 100:
		return Hyperactive
	default:
		return Normal
	}
}

// AllLevels returns every level in ascending order.
func AllLevels() []Level {
	return []Level{Collapsed, Exhausted, Tired, Normal, Energetic, Hyperactive}
}

// ParseLevel converts a level name to a Level, case-insensitively. Close
// misspellings resolve to the nearest name; anything unrecognizable falls
// back to DefaultLevel. It never fails.
func ParseLevel(s string) Level {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return DefaultLevel
	}

	best := DefaultLevel
	bestDist := -1
	for _, level := range AllLevels() {
		name := strings.ToLower(level.String())
		if name == normalized {
			return level
		}
		dist := levenshtein.ComputeDistance(normalized, name)
		if bestDist == -1 || dist < bestDist {
			best = level
			bestDist = dist
		}
	}

	// Only accept fuzzy matches that are plausibly typos.
	if bestDist <= 2 {
		return best
	}
	return DefaultLevel
}
