// Package conditions defines the closed modifier sets that adjust movement
// actions: Terrain, Weather, Intensity, RoadType, WalkingPace, FlightMode,
// EmergencyManeuver, and WaterConditions.
//
// Every modifier is a value type. Each variant exposes, through pure
// methods, a difficulty ranking, an extra energy cost, the minimum energy
// level required to attempt it, a human-readable description, and
// domain-specific predicates (terrain walkability, weather flight safety,
// and so on).
//
// Each modifier also has a ParseX function that converts free-text input
// (case-insensitive, tolerant of close misspellings) into a variant, falling
// back to a documented default instead of failing.
package conditions
