// Command validate checks every roster YAML file in a directory. It checks:
//   - YAML structure and required fields
//   - Unique entrant names, known kinds, and team references that resolve
//   - Buildability: every entrant spec must construct an actual entrant
//   - Eligibility: triathlon entrants and team legs must be capable of
//     their discipline, so a run would not skip them
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fieldday-games/fieldday/game/competition"
	"github.com/fieldday-games/fieldday/game/roster"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateRoster loads and validates a single roster YAML file. It performs
// structural checks, then builds every entrant and checks capability fit for
// the competition the roster names.
func validateRoster(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var r roster.Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid YAML: %v", err))
		return result
	}

	if err := r.Validate(); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	eligibility := validateEligibility(&r)
	if !eligibility.Valid {
		result.Valid = false
	}
	result.Errors = append(result.Errors, eligibility.Errors...)

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", r.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Competition: %s", r.Competition))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Entrants: %d", len(r.Entrants)))
		if len(r.Teams) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Teams: %d", len(r.Teams)))
		}
	}

	return result
}

// validateEligibility builds every entrant and checks that the roster's
// competition can actually use them: triathletes need all three disciplines,
// and each team leg needs the matching capability.
func validateEligibility(r *roster.Roster) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	built := make(map[string]*roster.Entrant, len(r.Entrants))
	for _, spec := range r.Entrants {
		e, err := roster.Build(spec)
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Entrant %q cannot be built: %v", spec.Name, err))
			continue
		}
		built[spec.Name] = e
	}
	if !result.Valid {
		return result
	}

	switch r.Competition {
	case roster.CompetitionTriathlon:
		for _, spec := range r.Entrants {
			if missing := missingDisciplines(built[spec.Name].Profile); len(missing) > 0 {
				result.Valid = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("Entrant %q cannot enter a triathlon: cannot %s",
						spec.Name, strings.Join(missing, ", ")))
			}
		}
		if result.Valid {
			result.Errors = append(result.Errors,
				fmt.Sprintf("✓ Eligibility: all %d entrants can walk, swim and fly", len(r.Entrants)))
		}

	case roster.CompetitionRelay, roster.CompetitionVehicleRace, roster.CompetitionUnified:
		for _, t := range r.Teams {
			for _, leg := range teamLegs(r.Competition, t) {
				// An any-of test: the unified land leg takes walkers or drivers.
				if built[leg.entrant].Profile&leg.need == 0 {
					result.Valid = false
					result.Errors = append(result.Errors,
						fmt.Sprintf("Team %q: %s leg %q cannot %s", t.Name, leg.name, leg.entrant, leg.verb))
				}
			}
		}
		if result.Valid {
			result.Errors = append(result.Errors,
				fmt.Sprintf("✓ Eligibility: all %d teams have capable legs", len(r.Teams)))
		}
	}

	return result
}

func missingDisciplines(profile competition.Capability) []string {
	var missing []string
	if !profile.Has(competition.CanWalk) {
		missing = append(missing, "walk")
	}
	if !profile.Has(competition.CanSwim) {
		missing = append(missing, "swim")
	}
	if !profile.Has(competition.CanFly) {
		missing = append(missing, "fly")
	}
	return missing
}

type legRequirement struct {
	name    string
	entrant string
	need    competition.Capability
	verb    string
}

// teamLegs maps a team's three legs to the capability each one requires.
// The relay runs on animals, the vehicle race on machines, and the unified
// race takes either kind of land mover.
func teamLegs(comp string, t roster.TeamSpec) []legRequirement {
	land := legRequirement{name: "land", entrant: t.Land, need: competition.CanWalk, verb: "walk"}
	switch comp {
	case roster.CompetitionVehicleRace:
		land.need, land.verb = competition.CanDrive, "drive"
	case roster.CompetitionUnified:
		land.need, land.verb = competition.CanWalk|competition.CanDrive, "move over land"
	}
	return []legRequirement{
		land,
		{name: "water", entrant: t.Water, need: competition.CanSwim, verb: "swim"},
		{name: "air", entrant: t.Air, need: competition.CanFly, verb: "fly"},
	}
}

// main scans a roster directory for *.yaml files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
func main() {
	rosterDir := "rosters"
	if len(os.Args) > 1 {
		rosterDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(rosterDir, "*.yaml"))
	if err != nil {
		fmt.Printf("Error finding roster files: %v\n", err)
		os.Exit(1)
	}
	more, err := filepath.Glob(filepath.Join(rosterDir, "*.yml"))
	if err != nil {
		fmt.Printf("Error finding roster files: %v\n", err)
		os.Exit(1)
	}
	files = append(files, more...)
	sort.Strings(files)

	allValid := true
	for _, file := range files {
		result := validateRoster(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All rosters are valid!")
	} else {
		fmt.Println("❌ Some rosters have errors")
		os.Exit(1)
	}
}
