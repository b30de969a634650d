package conditions

import "github.com/fieldday-games/fieldday/game/energy"

// Terrain represents the surface an entity moves across.
type Terrain int

const (
	// Easy terrains
	TerrainRoad Terrain = iota
	TerrainPavement
	TerrainSidewalk

	// Moderate terrains
	TerrainGrass
	TerrainDirt
	TerrainGravel
	TerrainSand

	// Challenging terrains
	TerrainRocky
	TerrainMuddy
	TerrainSnow
	TerrainForest

	// Difficult terrains
	TerrainSteep
	TerrainMountain
	TerrainSwamp
	TerrainDesert

	// Extreme terrains
	TerrainExtreme
	TerrainCliff
	TerrainGlacier
	TerrainVolcano
)

// DefaultTerrain is the fallback used when parsing unrecognized input.
const DefaultTerrain = TerrainDirt

// DifficultyLevel ranks this terrain from 1 (trivial) to 9 (brutal).
func (t Terrain) DifficultyLevel() int {
	switch t {
	case TerrainRoad, TerrainPavement, TerrainSidewalk:
		return 1
	case TerrainGrass, TerrainDirt:
		return 2
	case TerrainGravel, TerrainSand:
		return 3
	case TerrainRocky, TerrainMuddy:
		return 4
	case TerrainSnow, TerrainForest:
		return 5
	case TerrainSteep, TerrainMountain:
		return 6
	case TerrainSwamp, TerrainDesert:
		return 7
	case TerrainExtreme, TerrainCliff:
		return 8
	default:
		return 9
	}
}

// EnergyCost is the extra energy consumed when crossing this terrain,
// on top of the movement itself.
func (t Terrain) EnergyCost() int {
	switch t {
	case TerrainRoad, TerrainPavement, TerrainSidewalk, TerrainGrass, TerrainDirt:
		return 0
	case TerrainGravel, TerrainSand, TerrainRocky, TerrainMuddy:
		return 1
	case TerrainSnow, TerrainForest, TerrainSteep, TerrainMountain:
		return 2
	case TerrainSwamp, TerrainDesert, TerrainExtreme, TerrainCliff:
		return 3
	default:
		return 4
	}
}

// RequiredEnergy is the minimum level needed to attempt this terrain.
func (t Terrain) RequiredEnergy() energy.Level {
	switch d := t.DifficultyLevel(); {
	case d <= 2:
		return energy.Exhausted
	case d <= 4:
		return energy.Tired
	case d <= 6:
		return energy.Normal
	case d <= 8:
		return energy.Energetic
	default:
		return energy.Hyperactive
	}
}

// Description returns a human-readable description of this terrain.
func (t Terrain) Description() string {
	switch t {
	case TerrainRoad:
		return "smooth asphalt road"
	case TerrainPavement:
		return "concrete pavement"
	case TerrainSidewalk:
		return "pedestrian sidewalk"
	case TerrainGrass:
		return "grassy field"
	case TerrainDirt:
		return "packed dirt path"
	case TerrainGravel:
		return "loose gravel surface"
	case TerrainSand:
		return "sandy ground"
	case TerrainRocky:
		return "rocky, uneven surface"
	case TerrainMuddy:
		return "muddy, slippery ground"
	case TerrainSnow:
		return "snow-covered terrain"
	case TerrainForest:
		return "dense forest floor"
	case TerrainSteep:
		return "steep inclined surface"
	case TerrainMountain:
		return "mountainous terrain"
	case TerrainSwamp:
		return "marshy swampland"
	case TerrainDesert:
		return "arid desert landscape"
	case TerrainExtreme:
		return "extremely challenging terrain"
	case TerrainCliff:
		return "dangerous cliff face"
	case TerrainGlacier:
		return "icy glacial surface"
	default:
		return "volcanic rock and ash"
	}
}

// VehicleAccessible reports whether vehicles can generally cross this terrain.
func (t Terrain) VehicleAccessible() bool {
	switch t {
	case TerrainRoad, TerrainPavement, TerrainSidewalk,
		TerrainGrass, TerrainDirt, TerrainGravel,
		TerrainSand, TerrainRocky, TerrainSnow:
		return true
	default:
		return false
	}
}

// Walkable reports whether biological movement can cross this terrain.
// Only outright lethal surfaces are excluded.
func (t Terrain) Walkable() bool {
	switch t {
	case TerrainCliff, TerrainGlacier, TerrainVolcano:
		return false
	default:
		return true
	}
}

// AllTerrains returns every terrain variant.
func AllTerrains() []Terrain {
	return []Terrain{
		TerrainRoad, TerrainPavement, TerrainSidewalk,
		TerrainGrass, TerrainDirt, TerrainGravel, TerrainSand,
		TerrainRocky, TerrainMuddy, TerrainSnow, TerrainForest,
		TerrainSteep, TerrainMountain, TerrainSwamp, TerrainDesert,
		TerrainExtreme, TerrainCliff, TerrainGlacier, TerrainVolcano,
	}
}

// TerrainsByDifficulty returns the terrains at or below a difficulty cap.
func TerrainsByDifficulty(maxDifficulty int) []Terrain {
	var out []Terrain
	for _, t := range AllTerrains() {
		if t.DifficultyLevel() <= maxDifficulty {
			out = append(out, t)
		}
	}
	return out
}

var terrainNames = []string{
	"road", "pavement", "sidewalk",
	"grass", "dirt", "gravel", "sand",
	"rocky", "muddy", "snow", "forest",
	"steep", "mountain", "swamp", "desert",
	"extreme", "cliff", "glacier", "volcano",
}

// String returns the display name for this terrain.
func (t Terrain) String() string {
	switch t {
	case TerrainRoad:
		return "Road"
	case TerrainPavement:
		return "Pavement"
	case TerrainSidewalk:
		return "Sidewalk"
	case TerrainGrass:
		return "Grass"
	case TerrainDirt:
		return "Dirt"
	case TerrainGravel:
		return "Gravel"
	case TerrainSand:
		return "Sand"
	case TerrainRocky:
		return "Rocky"
	case TerrainMuddy:
		return "Muddy"
	case TerrainSnow:
		return "Snow"
	case TerrainForest:
		return "Forest"
	case TerrainSteep:
		return "Steep"
	case TerrainMountain:
		return "Mountain"
	case TerrainSwamp:
		return "Swamp"
	case TerrainDesert:
		return "Desert"
	case TerrainExtreme:
		return "Extreme"
	case TerrainCliff:
		return "Cliff"
	case TerrainGlacier:
		return "Glacier"
	default:
		return "Volcano"
	}
}

// ParseTerrain converts free text to a Terrain, falling back to
// DefaultTerrain when the input is unrecognizable.
func ParseTerrain(s string) Terrain {
	switch normalize(s) {
	case "road":
		return TerrainRoad
	case "pavement":
		return TerrainPavement
	case "sidewalk":
		return TerrainSidewalk
	case "grass":
		return TerrainGrass
	case "dirt":
		return TerrainDirt
	case "gravel":
		return TerrainGravel
	case "sand", "sandy":
		return TerrainSand
	case "rock", "rocks", "rocky":
		return TerrainRocky
	case "mud", "muddy":
		return TerrainMuddy
	case "snow":
		return TerrainSnow
	case "forest":
		return TerrainForest
	case "steep", "steep_hill":
		return TerrainSteep
	case "mountain":
		return TerrainMountain
	case "swamp":
		return TerrainSwamp
	case "desert":
		return TerrainDesert
	case "extreme", "extreme_terrain":
		return TerrainExtreme
	case "cliff":
		return TerrainCliff
	case "glacier":
		return TerrainGlacier
	case "volcano":
		return TerrainVolcano
	}
	if i, ok := closest(normalize(s), terrainNames); ok {
		return AllTerrains()[i]
	}
	return DefaultTerrain
}
