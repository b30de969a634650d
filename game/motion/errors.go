package motion

import (
	"fmt"

	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
)

// CollapsedError reports that an entity's energy sits at the floor and no
// movement of any kind is possible until it rests.
type CollapsedError struct {
	Name    string
	Current energy.Level
}

func (e *CollapsedError) Error() string {
	return fmt.Sprintf("%s cannot move: entity is collapsed (energy: %s)", e.Name, e.Current)
}

// InsufficientEnergyError reports that an action's minimum energy level was
// not met. Activity names the action family, e.g. "swimming".
type InsufficientEnergyError struct {
	Activity string
	Required energy.Level
	Current  energy.Level
}

func (e *InsufficientEnergyError) Error() string {
	return fmt.Sprintf("insufficient energy for %s: need at least %s, have %s",
		e.Activity, e.Required, e.Current)
}

// SpeedLimitError reports a requested speed above the entity's maximum.
type SpeedLimitError struct {
	Requested int
	Max       int
}

func (e *SpeedLimitError) Error() string {
	return fmt.Sprintf("cannot reach %d km/h: maximum speed is %d km/h", e.Requested, e.Max)
}

// FuelEfficiencyError reports an engine that cannot convert energy into
// distance. Oversized engines can compute a zero or negative km-per-level
// figure, which makes distance-based driving impossible.
type FuelEfficiencyError struct {
	Name       string
	Efficiency int
}

func (e *FuelEfficiencyError) Error() string {
	return fmt.Sprintf("%s cannot drive by distance: fuel efficiency is %d km per energy level",
		e.Name, e.Efficiency)
}

// DepthLimitError reports a requested dive below the swimmer's maximum depth.
type DepthLimitError struct {
	Requested int
	Max       int
}

func (e *DepthLimitError) Error() string {
	return fmt.Sprintf("cannot dive to %dm: maximum depth is %dm", e.Requested, e.Max)
}

// AltitudeLimitError reports a requested altitude above the flyer's ceiling.
type AltitudeLimitError struct {
	Requested int
	Max       int
}

func (e *AltitudeLimitError) Error() string {
	return fmt.Sprintf("cannot fly to %dm: maximum altitude is %dm", e.Requested, e.Max)
}

// TerrainError reports terrain that is too demanding for the entity's
// current energy.
type TerrainError struct {
	Terrain conditions.Terrain
	Current energy.Level
}

func (e *TerrainError) Error() string {
	return fmt.Sprintf("terrain %q too difficult for current energy: %s", e.Terrain, e.Current)
}

// TerrainNotSupportedError reports terrain the entity cannot traverse at
// all, regardless of energy.
type TerrainNotSupportedError struct {
	Terrain conditions.Terrain
}

func (e *TerrainNotSupportedError) Error() string {
	return fmt.Sprintf("not capable of %s terrain", e.Terrain)
}

// RoadConditionsError reports a road class the driver cannot take on,
// either for lack of capability or for lack of energy.
type RoadConditionsError struct {
	Road   conditions.RoadType
	Reason string
}

func (e *RoadConditionsError) Error() string {
	return fmt.Sprintf("road conditions too challenging: %s - %s", e.Road, e.Reason)
}

// WeatherError reports weather that rules out flying unconditionally.
type WeatherError struct {
	Weather conditions.Weather
}

func (e *WeatherError) Error() string {
	return fmt.Sprintf("weather conditions prevent flying: %s", e.Weather)
}

// WaterConditionsError reports water the swimmer cannot take on.
type WaterConditionsError struct {
	Conditions conditions.WaterConditions
	Reason     string
}

func (e *WaterConditionsError) Error() string {
	return fmt.Sprintf("water conditions too challenging: %s - %s", e.Conditions, e.Reason)
}

// FlightModeError reports a flight mode the flyer does not support.
type FlightModeError struct {
	Name string
	Mode conditions.FlightMode
}

func (e *FlightModeError) Error() string {
	return fmt.Sprintf("%s does not support %s flight", e.Name, e.Mode)
}

// ManeuverError reports an emergency maneuver the driver cannot attempt.
type ManeuverError struct {
	Maneuver conditions.EmergencyManeuver
	Reason   string
}

func (e *ManeuverError) Error() string {
	return fmt.Sprintf("cannot perform %s: %s", e.Maneuver, e.Reason)
}

// ActivityError wraps the base movement error that caused a higher-level
// action to fail, preserving the root cause for errors.As.
type ActivityError struct {
	Activity string
	Err      error
}

func (e *ActivityError) Error() string {
	return fmt.Sprintf("cannot perform %s: %v", e.Activity, e.Err)
}

func (e *ActivityError) Unwrap() error {
	return e.Err
}
