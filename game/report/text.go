package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fieldday-games/fieldday/game/service"
)

// WriteText renders a run for the terminal: the standings, the winner,
// every leg, and whoever could not enter.
func WriteText(w io.Writer, run *service.Run) error {
	title := fmt.Sprintf("%s - %s (run %s)", run.Roster, run.Competition, run.ID)
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", title, strings.Repeat("=", len(title))); err != nil {
		return err
	}

	fmt.Fprintf(w, "%-4s %-20s %-22s %-9s %-7s %s\n",
		"Rank", "Name", "Category", "Completed", "Score", "Penalty")
	for _, s := range run.Standings {
		fmt.Fprintf(w, "%-4d %-20s %-22s %-9d %-7d %d\n",
			s.Rank, s.Name, s.Category, s.Completed, s.Score, s.Penalty)
	}

	if run.Winner != "" {
		fmt.Fprintf(w, "\nWinner: %s\n", run.Winner)
	}

	if len(run.Legs) > 0 {
		fmt.Fprintf(w, "\nLegs:\n")
		for _, leg := range run.Legs {
			fmt.Fprintf(w, "  %s\n", leg)
		}
	}

	if len(run.Skipped) > 0 {
		fmt.Fprintf(w, "\nDid not enter:\n")
		for _, skip := range run.Skipped {
			fmt.Fprintf(w, "  %s: %s\n", skip.Name, skip.Reason)
		}
	}

	return nil
}
