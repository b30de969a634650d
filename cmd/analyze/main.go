// Command analyze prints quick, human-readable heuristics about the CSV
// reports a competition run writes. It summarizes per-participant leg
// counts, penalties and energy spend, and highlights participants who
// never completed a leg.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/fieldday-games/fieldday/game/energy"
)

// legRow is a light struct for reading legs.csv produced by a run.
type legRow struct {
	Run         string `csv:"run"`
	Participant string `csv:"participant"`
	Category    string `csv:"category"`
	Activity    string `csv:"activity"`
	StartEnergy string `csv:"start_energy"`
	EndEnergy   string `csv:"end_energy"`
	Completed   bool   `csv:"completed"`
	Outcome     string `csv:"outcome"`
	Penalty     int    `csv:"penalty"`
	Capability  int    `csv:"capability"`
}

// standingRow is a light struct for reading standings.csv.
type standingRow struct {
	Run       string `csv:"run"`
	Rank      int    `csv:"rank"`
	Name      string `csv:"name"`
	Category  string `csv:"category"`
	Completed int    `csv:"completed"`
	Score     int    `csv:"score"`
	Penalty   int    `csv:"penalty"`
}

// participantSummary aggregates one participant's legs.
type participantSummary struct {
	Name        string
	Category    string
	Attempted   int
	Completed   int
	Penalty     int
	EnergySpent int
}

func main() {
	dir := "reports"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	fmt.Printf("\n=== Analyzing %s ===\n", filepath.Join(dir, "legs.csv"))
	analyzeLegs(filepath.Join(dir, "legs.csv"))

	fmt.Printf("\n=== Analyzing %s ===\n", filepath.Join(dir, "standings.csv"))
	analyzeStandings(filepath.Join(dir, "standings.csv"))
}

func analyzeLegs(path string) {
	rows, err := readCSV[legRow](path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}
	if len(rows) == 0 {
		fmt.Println("No legs recorded")
		return
	}

	summaries := summarizeLegs(rows)
	fmt.Printf("Run: %s\n", rows[0].Run)
	fmt.Printf("Legs: %d\n", len(rows))
	fmt.Printf("Participants: %d\n", len(summaries))

	for _, s := range summaries {
		fmt.Printf("  %-20s %-12s %d/%d legs, penalty %d, energy spent %d\n",
			s.Name, s.Category, s.Completed, s.Attempted, s.Penalty, s.EnergySpent)
	}

	var stuck []string
	for _, s := range summaries {
		if s.Completed == 0 {
			stuck = append(stuck, s.Name)
		}
	}
	if len(stuck) > 0 {
		fmt.Printf("⚠️  WARNING: %d participants never completed a leg!\n", len(stuck))
		for _, name := range stuck {
			fmt.Printf("   Stuck: %s\n", name)
		}
	} else {
		fmt.Printf("✅ Every participant completed at least one leg\n")
	}
}

func analyzeStandings(path string) {
	rows, err := readCSV[standingRow](path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}
	if len(rows) == 0 {
		fmt.Println("No standings recorded")
		return
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Rank < rows[j].Rank })
	for _, s := range rows {
		fmt.Printf("  #%d %-20s score %d, penalty %d\n", s.Rank, s.Name, s.Score, s.Penalty)
	}

	spread := rows[0].Score - rows[len(rows)-1].Score
	fmt.Printf("Score spread: %d\n", spread)
	if spread == 0 && len(rows) > 1 {
		fmt.Printf("⚠️  WARNING: the field is tied, the ranking is arbitrary\n")
	}
}

// summarizeLegs groups legs by participant, in order of first appearance.
func summarizeLegs(rows []legRow) []participantSummary {
	index := make(map[string]int)
	var summaries []participantSummary

	for _, row := range rows {
		i, ok := index[row.Participant]
		if !ok {
			i = len(summaries)
			index[row.Participant] = i
			summaries = append(summaries, participantSummary{
				Name:     row.Participant,
				Category: row.Category,
			})
		}

		s := &summaries[i]
		s.Attempted++
		if row.Completed {
			s.Completed++
		}
		s.Penalty += row.Penalty
		s.EnergySpent += levelOrdinal(row.StartEnergy) - levelOrdinal(row.EndEnergy)
	}
	return summaries
}

func levelOrdinal(name string) int {
	return int(energy.ParseLevel(name))
}

func readCSV[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []T
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
