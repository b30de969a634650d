package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/fieldday-games/fieldday/game/competition"
	"github.com/fieldday-games/fieldday/game/service"
)

// legRecord is the CSV shape of a leg: energies rendered as level names
// rather than ordinals.
type legRecord struct {
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

// standingRecord is the CSV shape of one final-table row.
type standingRecord struct {
	Run       string `csv:"run"`
	Rank      int    `csv:"rank"`
	Name      string `csv:"name"`
	Category  string `csv:"category"`
	Completed int    `csv:"completed"`
	Score     int    `csv:"score"`
	Penalty   int    `csv:"penalty"`
}

// WriteLegsCSV writes every leg of the run as CSV with a header row.
func WriteLegsCSV(w io.Writer, run *service.Run) error {
	records := make([]legRecord, 0, len(run.Legs))
	for _, leg := range run.Legs {
		records = append(records, toLegRecord(run.ID, leg))
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing legs: %w", err)
	}
	return nil
}

// WriteStandingsCSV writes the final table as CSV with a header row.
func WriteStandingsCSV(w io.Writer, run *service.Run) error {
	records := make([]standingRecord, 0, len(run.Standings))
	for _, s := range run.Standings {
		records = append(records, standingRecord{
			Run:       run.ID,
			Rank:      s.Rank,
			Name:      s.Name,
			Category:  s.Category,
			Completed: s.Completed,
			Score:     s.Score,
			Penalty:   s.Penalty,
		})
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing standings: %w", err)
	}
	return nil
}

func toLegRecord(runID string, leg competition.Leg) legRecord {
	outcome := leg.Message
	if !leg.Completed() {
		outcome = leg.Failure
	}
	return legRecord{
		Run:         runID,
		Participant: leg.Participant,
		Category:    leg.Category,
		Activity:    leg.Activity,
		StartEnergy: leg.StartEnergy.String(),
		EndEnergy:   leg.EndEnergy.String(),
		Completed:   leg.Completed(),
		Outcome:     outcome,
		Penalty:     leg.Penalty,
		Capability:  leg.Capability,
	}
}
