package service

import (
	"time"

	"github.com/fieldday-games/fieldday/game/competition"
)

// Standing is one row of a run's final table.
type Standing struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Completed int    `json:"completed"`
	Score     int    `json:"score"`
	Penalty   int    `json:"penalty"`
}

// Skip records an entrant or team that could not enter the event.
type Skip struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Run is one finished competition: the roster it came from, the final
// standings, and every leg that was attempted.
type Run struct {
	ID             string            `json:"id"`
	Roster         string            `json:"roster"`
	Competition    string            `json:"competition"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	Standings      []Standing        `json:"standings"`
	Legs           []competition.Leg `json:"legs"`
	Winner         string            `json:"winner,omitempty"`
	Skipped        []Skip            `json:"skipped,omitempty"`
}
