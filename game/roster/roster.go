package roster

import (
	"errors"
	"fmt"
	"strings"
)

// Competition identifiers accepted in a roster.
const (
	CompetitionTriathlon   = "triathlon"
	CompetitionRelay       = "relay"
	CompetitionVehicleRace = "vehicle-race"
	CompetitionUnified     = "unified"
)

// ErrInvalidRoster wraps all validation failures.
var ErrInvalidRoster = errors.New("invalid roster")

// animal and vehicle kinds accepted in an entrant spec.
var knownKinds = map[string]bool{
	"dog": true, "duck": true, "eagle": true, "penguin": true,
	"snake": true, "whale": true,
	"car": true, "motorcycle": true, "truck": true, "airplane": true,
	"helicopter": true, "ship": true, "amphibious": true,
}

// Roster is a full competition line-up as loaded from YAML.
type Roster struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Competition string        `yaml:"competition"`
	Entrants    []EntrantSpec `yaml:"entrants"`
	Teams       []TeamSpec    `yaml:"teams"`
}

// EntrantSpec describes how to construct one entrant. Which attributes
// matter depends on the kind; unused ones are ignored.
type EntrantSpec struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Energy string `yaml:"energy,omitempty"`

	// Animal attributes.
	Breed   string `yaml:"breed,omitempty"`
	Aquatic bool   `yaml:"aquatic,omitempty"`

	// Vehicle attributes.
	Manufacturer string  `yaml:"manufacturer,omitempty"`
	Year         int     `yaml:"year,omitempty"`
	Class        string  `yaml:"class,omitempty"`
	Engine       string  `yaml:"engine,omitempty"`
	Cylinders    int     `yaml:"cylinders,omitempty"`
	Displacement float64 `yaml:"displacement,omitempty"`
	BatteryKWH   int     `yaml:"battery_kwh,omitempty"`
	EngineCC     int     `yaml:"engine_cc,omitempty"`
	PayloadKG    int     `yaml:"payload_kg,omitempty"`
	WingspanM    int     `yaml:"wingspan_m,omitempty"`
	RotorM       int     `yaml:"rotor_m,omitempty"`
	TonnageT     int     `yaml:"tonnage_t,omitempty"`
	Hull         string  `yaml:"hull,omitempty"`
}

// TeamSpec names a team's three legs by entrant name.
type TeamSpec struct {
	Name  string `yaml:"name"`
	Land  string `yaml:"land"`
	Water string `yaml:"water"`
	Air   string `yaml:"air"`
}

// Validate checks structural consistency: known competition, unique
// entrant names, known kinds, and team references that resolve. It does
// not check capability fit; the factory and competitions do that with
// typed errors.
func (r *Roster) Validate() error {
	var problems []string

	if strings.TrimSpace(r.Name) == "" {
		problems = append(problems, "roster name is required")
	}

	switch r.Competition {
	case CompetitionTriathlon, CompetitionRelay, CompetitionVehicleRace, CompetitionUnified:
	case "":
		problems = append(problems, "competition is required")
	default:
		problems = append(problems, fmt.Sprintf("unknown competition %q", r.Competition))
	}

	if len(r.Entrants) == 0 {
		problems = append(problems, "at least one entrant is required")
	}

	seen := make(map[string]bool, len(r.Entrants))
	for i, e := range r.Entrants {
		if strings.TrimSpace(e.Name) == "" {
			problems = append(problems, fmt.Sprintf("entrant %d: name is required", i))
			continue
		}
		if seen[e.Name] {
			problems = append(problems, fmt.Sprintf("duplicate entrant name %q", e.Name))
		}
		seen[e.Name] = true

		if !knownKinds[strings.ToLower(e.Kind)] {
			problems = append(problems, fmt.Sprintf("entrant %q: unknown kind %q", e.Name, e.Kind))
		}
	}

	teamEvents := r.Competition == CompetitionRelay ||
		r.Competition == CompetitionVehicleRace ||
		r.Competition == CompetitionUnified
	if teamEvents && len(r.Teams) == 0 {
		problems = append(problems, fmt.Sprintf("competition %q requires at least one team", r.Competition))
	}

	teamNames := make(map[string]bool, len(r.Teams))
	for i, t := range r.Teams {
		if strings.TrimSpace(t.Name) == "" {
			problems = append(problems, fmt.Sprintf("team %d: name is required", i))
		}
		if teamNames[t.Name] {
			problems = append(problems, fmt.Sprintf("duplicate team name %q", t.Name))
		}
		teamNames[t.Name] = true

		for leg, entrant := range map[string]string{"land": t.Land, "water": t.Water, "air": t.Air} {
			if entrant == "" {
				problems = append(problems, fmt.Sprintf("team %q: %s leg is required", t.Name, leg))
			} else if !seen[entrant] {
				problems = append(problems, fmt.Sprintf("team %q: %s leg references unknown entrant %q", t.Name, leg, entrant))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRoster, strings.Join(problems, "; "))
	}
	return nil
}

// Entrant returns the spec with the given name.
func (r *Roster) Entrant(name string) (EntrantSpec, bool) {
	for _, e := range r.Entrants {
		if e.Name == name {
			return e, true
		}
	}
	return EntrantSpec{}, false
}
