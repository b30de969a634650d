package motion

import (
	"fmt"
	"strings"

	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
)

// Flyer is a mover that can travel through the air. Flying is the most
// energy-intensive movement family.
type Flyer interface {
	Mover

	// MaxAltitude is the flyer's ceiling in meters.
	MaxAltitude() int

	// FlyingSkill grades airmanship from 1 (clumsy) to 5 (expert).
	FlyingSkill() int

	// SupportsFlightMode reports whether this flyer can use the given
	// mode. Hovering in particular is opt-in per entity.
	SupportsFlightMode(mode conditions.FlightMode) bool
}

// FlyCost is the total energy consumed by one basic powered flight.
const FlyCost = 3

// Fly performs basic powered flight: requires Normal energy, costs three.
func Fly(f Flyer) (string, error) {
	return FlyInMode(f, conditions.FlightPowered)
}

// Glide rides the air on extended wings: requires Tired energy, costs two.
func Glide(f Flyer) (string, error) {
	return FlyInMode(f, conditions.FlightGliding)
}

// Soar rides rising thermals: requires Normal energy, costs two.
func Soar(f Flyer) (string, error) {
	return FlyInMode(f, conditions.FlightSoaring)
}

// Hover holds position in the air: requires Energetic energy, costs four.
func Hover(f Flyer) (string, error) {
	return FlyInMode(f, conditions.FlightHovering)
}

// FlyInMode flies using the given mode. The mode sets the minimum energy
// and the extra cost on top of the base step.
func FlyInMode(f Flyer, mode conditions.FlightMode) (string, error) {
	if !f.SupportsFlightMode(mode) {
		return "", &FlightModeError{Name: f.Name(), Mode: mode}
	}

	before := f.Energy()
	if required := mode.RequiredEnergy(); before < required {
		return "", &InsufficientEnergyError{
			Activity: "flying",
			Required: required,
			Current:  before,
		}
	}

	energy.ConsumeLevels(f, mode.EnergyCost())
	if _, err := Move(f); err != nil {
		return "", &ActivityError{Activity: "flying", Err: err}
	}
	return fmt.Sprintf("%s %s", f.Name(), flightDescription(mode, before)), nil
}

// FlyToAltitude climbs to the target altitude in meters. The altitude
// bucket sets both the minimum energy and the extra cost.
func FlyToAltitude(f Flyer, targetAltitude int) (string, error) {
	if max := f.MaxAltitude(); targetAltitude > max {
		return "", &AltitudeLimitError{Requested: targetAltitude, Max: max}
	}

	before := f.Energy()
	required := altitudeRequirement(targetAltitude)
	if before < required {
		return "", &InsufficientEnergyError{
			Activity: "flying",
			Required: required,
			Current:  before,
		}
	}

	energy.ConsumeLevels(f, altitudeCost(targetAltitude)+MoveCost)
	return fmt.Sprintf("%s flies to %d meters altitude", f.Name(), targetAltitude), nil
}

// FlyInWeather flies through the given weather. Hurricanes, tornadoes and
// thunderstorms are rejected outright; otherwise the weather's surcharge
// is added to the basic flight cost, adjusted by the flyer's skill.
func FlyInWeather(f Flyer, weather conditions.Weather) (string, error) {
	if !weather.SafeForFlying() {
		return "", &WeatherError{Weather: weather}
	}
	if !f.SupportsFlightMode(conditions.FlightPowered) {
		return "", &FlightModeError{Name: f.Name(), Mode: conditions.FlightPowered}
	}

	before := f.Energy()
	required, cost := skillAdjusted(
		weather.RequiredEnergy(), weather.EnergyCost(), f.FlyingSkill(), energy.Normal)
	if before < required {
		return "", &InsufficientEnergyError{
			Activity: "flying",
			Required: required,
			Current:  before,
		}
	}

	energy.ConsumeLevels(f, cost+FlyCost)
	return fmt.Sprintf("%s flies through %s weather",
		f.Name(), strings.ToLower(weather.String())), nil
}

func altitudeRequirement(altitude int) energy.Level {
	switch {
	case altitude <= 100:
		return energy.Normal
	case altitude <= 500:
		return energy.Energetic
	default:
		return energy.Hyperactive
	}
}

func altitudeCost(altitude int) int {
	switch {
	case altitude <= 100:
		return 2
	case altitude <= 500:
		return 3
	case altitude <= 1000:
		return 4
	default:
		return 5
	}
}

func flightDescription(mode conditions.FlightMode, before energy.Level) string {
	switch mode {
	case conditions.FlightGliding:
		return "glides effortlessly"
	case conditions.FlightSoaring:
		return "soars on rising thermals"
	case conditions.FlightHovering:
		return "hovers in place"
	}
	switch before {
	case energy.Normal:
		return "flies steadily"
	case energy.Energetic:
		return "soars gracefully"
	default:
		return "flies with incredible agility"
	}
}
