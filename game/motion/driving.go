package motion

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
)

// Driver is a land mover with an engine. Its land skill doubles as the
// driving skill in the road functions below.
type Driver interface {
	LandMover

	// MaxSpeed is the vehicle's top speed in km/h.
	MaxSpeed() int

	// FuelEfficiency is km covered per energy level.
	FuelEfficiency() int

	// HasOffRoadCapability reports whether the vehicle can leave paved
	// roads.
	HasOffRoadCapability() bool
}

// Drive performs one basic driving step: requires Exhausted energy,
// consumes one level.
func Drive(d Driver) (string, error) {
	before := d.Energy()
	if before < energy.Exhausted {
		return "", &InsufficientEnergyError{
			Activity: "driving",
			Required: energy.Exhausted,
			Current:  before,
		}
	}

	if _, err := Move(d); err != nil {
		return "", &ActivityError{Activity: "driving", Err: err}
	}
	return fmt.Sprintf("%s drives", d.Name()), nil
}

// DriveAtSpeed drives at a target speed in km/h. The speed bucket sets
// both the minimum energy and the extra cost on top of the base step.
func DriveAtSpeed(d Driver, targetSpeed int) (string, error) {
	if max := d.MaxSpeed(); targetSpeed > max {
		return "", &SpeedLimitError{Requested: targetSpeed, Max: max}
	}

	before := d.Energy()
	required := driveSpeedRequirement(targetSpeed)
	if before < required {
		return "", &InsufficientEnergyError{
			Activity: "driving",
			Required: required,
			Current:  before,
		}
	}

	energy.ConsumeLevels(d, driveSpeedCost(targetSpeed))
	if _, err := Move(d); err != nil {
		return "", &ActivityError{Activity: "driving", Err: err}
	}
	return fmt.Sprintf("%s drives at %d km/h", d.Name(), targetSpeed), nil
}

// DriveOnRoad drives on the given road class. Off-road classes need the
// off-road capability; the road sets the minimum energy and extra cost,
// both adjusted by the driver's skill.
func DriveOnRoad(d Driver, road conditions.RoadType) (string, error) {
	if road.RequiresOffRoadCapability() && !d.HasOffRoadCapability() {
		return "", &RoadConditionsError{
			Road:   road,
			Reason: "vehicle lacks off-road capability",
		}
	}

	before := d.Energy()
	required, cost := skillAdjusted(
		road.RequiredEnergy(), road.EnergyCost(), d.LandSkill(), energy.Tired)
	if before < required {
		return "", &RoadConditionsError{
			Road: road,
			Reason: fmt.Sprintf("insufficient energy for %s roads: need %s, have %s",
				road, required, before),
		}
	}

	energy.ConsumeLevels(d, cost+MoveCost)
	return fmt.Sprintf("%s drives on %s roads (%s)",
		d.Name(), road, road.Description()), nil
}

// DriveOnTerrain drives across raw terrain by mapping it to the nearest
// road class. Terrain no vehicle can cross is rejected outright.
func DriveOnTerrain(d Driver, terrain conditions.Terrain) (string, error) {
	if !terrain.VehicleAccessible() {
		return "", &TerrainNotSupportedError{Terrain: terrain}
	}

	var road conditions.RoadType
	switch terrain {
	case conditions.TerrainRoad, conditions.TerrainPavement, conditions.TerrainSidewalk:
		road = conditions.RoadHighway
	case conditions.TerrainGrass, conditions.TerrainDirt:
		road = conditions.RoadCountry
	case conditions.TerrainGravel, conditions.TerrainSand, conditions.TerrainRocky:
		road = conditions.RoadOffRoad
	case conditions.TerrainSnow:
		road = conditions.RoadMountain
	default:
		return "", &TerrainNotSupportedError{Terrain: terrain}
	}

	return DriveOnRoad(d, road)
}

// DriveDistance covers the given distance in km, converting it to energy
// through the vehicle's fuel efficiency.
func DriveDistance(d Driver, distanceKM int) (string, error) {
	efficiency := d.FuelEfficiency()
	if efficiency <= 0 {
		return "", &FuelEfficiencyError{Name: d.Name(), Efficiency: efficiency}
	}

	before := d.Energy()
	needed := (distanceKM + efficiency - 1) / efficiency

	if int(before) <= needed {
		return "", &InsufficientEnergyError{
			Activity: "driving",
			Required: energy.FromPoints(needed * 20),
			Current:  before,
		}
	}

	energy.ConsumeLevels(d, needed)
	if _, err := Move(d); err != nil {
		return "", &ActivityError{Activity: "driving", Err: err}
	}
	return fmt.Sprintf("%s drives %d km (efficiency: %d km per energy level)",
		d.Name(), distanceKM, efficiency), nil
}

// PerformEmergencyManeuver executes an abrupt defensive action. The harder
// maneuvers demand a highly skilled driver on top of their energy floor.
func PerformEmergencyManeuver(d Driver, m conditions.EmergencyManeuver) (string, error) {
	if m.RequiresSkilledDriver() && d.LandSkill() < 4 {
		return "", &ManeuverError{
			Maneuver: m,
			Reason:   "maneuver requires a highly skilled driver",
		}
	}

	before := d.Energy()
	if required := m.RequiredEnergy(); before < required {
		return "", &InsufficientEnergyError{
			Activity: "driving",
			Required: required,
			Current:  before,
		}
	}

	energy.ConsumeLevels(d, m.EnergyCost()+MoveCost)
	return fmt.Sprintf("%s performs a %s maneuver (%s)",
		d.Name(), m, m.Description()), nil
}

// AvailableRoadTypes lists the road classes the driver can take on right
// now, given its energy and capabilities.
func AvailableRoadTypes(d Driver) []conditions.RoadType {
	cur := d.Energy()
	var out []conditions.RoadType
	for _, road := range conditions.AllRoadTypes() {
		if cur < road.RequiredEnergy() {
			continue
		}
		if road.RequiresOffRoadCapability() && !d.HasOffRoadCapability() {
			continue
		}
		out = append(out, road)
	}
	return out
}

// DriveMaxChallenge drives on the hardest road class currently available,
// falling back to the highway when nothing else qualifies.
func DriveMaxChallenge(d Driver) (string, error) {
	hardest := conditions.RoadHighway
	for _, road := range AvailableRoadTypes(d) {
		if road.DifficultyLevel() > hardest.DifficultyLevel() {
			hardest = road
		}
	}
	return DriveOnRoad(d, hardest)
}

func driveSpeedRequirement(speed int) energy.Level {
	switch {
	case speed <= 50:
		return energy.Tired
	case speed <= 100:
		return energy.Normal
	case speed <= 150:
		return energy.Energetic
	default:
		return energy.Hyperactive
	}
}

func driveSpeedCost(speed int) int {
	switch {
	case speed <= 50:
		return 1
	case speed <= 100:
		return 2
	case speed <= 150:
		return 3
	default:
		return 4
	}
}
