package conditions

import "github.com/fieldday-games/fieldday/game/energy"

// EmergencyManeuver represents an abrupt defensive driving action.
type EmergencyManeuver int

const (
	ManeuverHardBrake EmergencyManeuver = iota + 1
	ManeuverSwerve
	ManeuverControlledSkid
	ManeuverJTurn
)

// DefaultEmergencyManeuver is the fallback used when parsing unrecognized input.
const DefaultEmergencyManeuver = ManeuverHardBrake

// DifficultyLevel ranks this maneuver from 1 to 4.
func (m EmergencyManeuver) DifficultyLevel() int {
	return int(m)
}

// EnergyCost is the extra energy consumed performing this maneuver.
func (m EmergencyManeuver) EnergyCost() int {
	switch m {
	case ManeuverHardBrake, ManeuverSwerve:
		return 1
	case ManeuverControlledSkid:
		return 2
	default:
		return 3
	}
}

// RequiredEnergy is the minimum level needed to attempt this maneuver.
func (m EmergencyManeuver) RequiredEnergy() energy.Level {
	switch m {
	case ManeuverHardBrake:
		return energy.Tired
	case ManeuverSwerve:
		return energy.Normal
	case ManeuverControlledSkid:
		return energy.Energetic
	default:
		return energy.Hyperactive
	}
}

// Description returns a human-readable description of this maneuver.
func (m EmergencyManeuver) Description() string {
	switch m {
	case ManeuverHardBrake:
		return "full-force emergency braking"
	case ManeuverSwerve:
		return "sharp evasive swerve"
	case ManeuverControlledSkid:
		return "deliberate controlled skid"
	default:
		return "180-degree J-turn reversal"
	}
}

// RequiresSkilledDriver reports whether only practiced drivers should
// attempt this maneuver.
func (m EmergencyManeuver) RequiresSkilledDriver() bool {
	return m == ManeuverControlledSkid || m == ManeuverJTurn
}

// AllEmergencyManeuvers returns every maneuver in ascending difficulty.
func AllEmergencyManeuvers() []EmergencyManeuver {
	return []EmergencyManeuver{
		ManeuverHardBrake, ManeuverSwerve, ManeuverControlledSkid, ManeuverJTurn,
	}
}

var maneuverNames = []string{"hard_brake", "swerve", "controlled_skid", "j_turn"}

// String returns the display name for this maneuver.
func (m EmergencyManeuver) String() string {
	switch m {
	case ManeuverHardBrake:
		return "Hard Brake"
	case ManeuverSwerve:
		return "Swerve"
	case ManeuverControlledSkid:
		return "Controlled Skid"
	default:
		return "J-Turn"
	}
}

// ParseEmergencyManeuver converts free text to an EmergencyManeuver, falling
// back to DefaultEmergencyManeuver when the input is unrecognizable.
func ParseEmergencyManeuver(s string) EmergencyManeuver {
	switch normalize(s) {
	case "hard_brake", "brake", "emergency_brake":
		return ManeuverHardBrake
	case "swerve", "evade":
		return ManeuverSwerve
	case "controlled_skid", "skid", "drift":
		return ManeuverControlledSkid
	case "j_turn", "jturn", "reverse_turn":
		return ManeuverJTurn
	}
	if i, ok := closest(normalize(s), maneuverNames); ok {
		return AllEmergencyManeuvers()[i]
	}
	return DefaultEmergencyManeuver
}
