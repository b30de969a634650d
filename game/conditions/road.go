package conditions

import "github.com/fieldday-games/fieldday/game/energy"

// RoadType represents the class of road a vehicle drives on.
type RoadType int

const (
	RoadHighway RoadType = iota
	RoadCity
	RoadCountry
	RoadSuburban
	RoadMountain
	RoadOffRoad
	RoadExtremeOff
)

// DefaultRoadType is the fallback used when parsing unrecognized input.
const DefaultRoadType = RoadCountry

// DifficultyLevel ranks this road type from 1 to 4.
func (r RoadType) DifficultyLevel() int {
	switch r {
	case RoadHighway, RoadCity:
		return 1
	case RoadCountry, RoadSuburban:
		return 2
	case RoadMountain, RoadOffRoad:
		return 3
	default:
		return 4
	}
}

// EnergyCost is the extra energy consumed driving on this road type.
func (r RoadType) EnergyCost() int {
	switch r {
	case RoadHighway, RoadCity, RoadCountry, RoadSuburban:
		return 1
	case RoadMountain, RoadOffRoad:
		return 2
	default:
		return 3
	}
}

// RequiredEnergy is the minimum level needed to drive this road type.
func (r RoadType) RequiredEnergy() energy.Level {
	switch r {
	case RoadHighway, RoadCity:
		return energy.Tired
	case RoadCountry, RoadSuburban:
		return energy.Normal
	case RoadMountain, RoadOffRoad:
		return energy.Energetic
	default:
		return energy.Hyperactive
	}
}

// Description returns a human-readable description of this road type.
func (r RoadType) Description() string {
	switch r {
	case RoadHighway:
		return "high-speed highway with smooth asphalt"
	case RoadCity:
		return "urban streets with traffic lights and congestion"
	case RoadCountry:
		return "rural roads with moderate traffic"
	case RoadSuburban:
		return "residential area streets"
	case RoadMountain:
		return "winding mountain roads with steep grades"
	case RoadOffRoad:
		return "unpaved trails and rough terrain"
	default:
		return "extremely challenging off-road conditions"
	}
}

// RequiresOffRoadCapability reports whether only off-road vehicles can
// handle this road type.
func (r RoadType) RequiresOffRoadCapability() bool {
	return r == RoadOffRoad || r == RoadExtremeOff
}

// AllRoadTypes returns every road type variant.
func AllRoadTypes() []RoadType {
	return []RoadType{
		RoadHighway, RoadCity, RoadCountry, RoadSuburban,
		RoadMountain, RoadOffRoad, RoadExtremeOff,
	}
}

// RoadTypesByDifficulty returns road types at or below a difficulty cap.
func RoadTypesByDifficulty(maxDifficulty int) []RoadType {
	var out []RoadType
	for _, r := range AllRoadTypes() {
		if r.DifficultyLevel() <= maxDifficulty {
			out = append(out, r)
		}
	}
	return out
}

var roadTypeNames = []string{
	"highway", "city", "country", "suburban", "mountain", "off_road", "extreme_off_road",
}

// String returns the display name for this road type.
func (r RoadType) String() string {
	switch r {
	case RoadHighway:
		return "Highway"
	case RoadCity:
		return "City"
	case RoadCountry:
		return "Country"
	case RoadSuburban:
		return "Suburban"
	case RoadMountain:
		return "Mountain"
	case RoadOffRoad:
		return "Off-Road"
	default:
		return "Extreme Off-Road"
	}
}

// ParseRoadType converts free text to a RoadType, falling back to
// DefaultRoadType when the input is unrecognizable.
func ParseRoadType(s string) RoadType {
	switch normalize(s) {
	case "highway":
		return RoadHighway
	case "city":
		return RoadCity
	case "country":
		return RoadCountry
	case "suburban":
		return RoadSuburban
	case "mountain":
		return RoadMountain
	case "off_road", "offroad":
		return RoadOffRoad
	case "extreme_off_road", "extreme_terrain", "extreme":
		return RoadExtremeOff
	}
	if i, ok := closest(normalize(s), roadTypeNames); ok {
		return AllRoadTypes()[i]
	}
	return DefaultRoadType
}
