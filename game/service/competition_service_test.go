package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fieldday-games/fieldday/game/roster"
)

func newTestService(t *testing.T) CompetitionService {
	t.Helper()
	rosters, err := roster.NewManager("")
	if err != nil {
		t.Fatalf("roster manager: %v", err)
	}
	return NewCompetitionService(rosters, NewManager(), nil)
}

// fixedRosters serves one hand-built roster under any name.
type fixedRosters struct {
	roster *roster.Roster
}

func (f fixedRosters) LoadRoster(string) (*roster.Roster, error) { return f.roster, nil }
func (f fixedRosters) ListRosters() ([]*roster.Roster, error)    { return []*roster.Roster{f.roster}, nil }
func (f fixedRosters) GetDefault() *roster.Roster                { return f.roster }

func TestRunCompetitionDefaultTriathlon(t *testing.T) {
	svc := newTestService(t)

	run, err := svc.RunCompetition(context.Background(), "default")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if run.ID == "" {
		t.Error("run should get an ID")
	}
	if run.Competition != roster.CompetitionTriathlon {
		t.Errorf("competition = %q", run.Competition)
	}
	if len(run.Standings) != 4 {
		t.Fatalf("standings = %d, want 4", len(run.Standings))
	}
	// Three legs per entrant.
	if len(run.Legs) != 12 {
		t.Errorf("legs = %d, want 12", len(run.Legs))
	}
	if run.Winner != "Quackers" {
		t.Errorf("winner = %q, want the freshest duck", run.Winner)
	}
	if len(run.Skipped) != 0 {
		t.Errorf("skipped = %+v, want none", run.Skipped)
	}

	got, err := svc.GetRun(context.Background(), run.ID)
	if err != nil || got.ID != run.ID {
		t.Errorf("GetRun = %v, %v", got, err)
	}
}

func TestRunCompetitionSkipsIneligibleEntrants(t *testing.T) {
	r := &roster.Roster{
		Name:        "mixed",
		Competition: roster.CompetitionTriathlon,
		Entrants: []roster.EntrantSpec{
			{Name: "Quackers", Kind: "duck", Energy: "hyperactive"},
			{Name: "Moby", Kind: "whale", Energy: "hyperactive"},
		},
	}
	svc := NewCompetitionService(fixedRosters{roster: r}, NewManager(), nil)

	run, err := svc.RunCompetition(context.Background(), "mixed")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(run.Standings) != 1 {
		t.Errorf("standings = %d, want 1", len(run.Standings))
	}
	if len(run.Skipped) != 1 || run.Skipped[0].Name != "Moby" {
		t.Fatalf("skipped = %+v, want Moby", run.Skipped)
	}
	if !strings.Contains(run.Skipped[0].Reason, "swim") {
		t.Errorf("reason = %q", run.Skipped[0].Reason)
	}
}

func TestRunCompetitionUnifiedTeams(t *testing.T) {
	r := &roster.Roster{
		Name:        "unified",
		Competition: roster.CompetitionUnified,
		Entrants: []roster.EntrantSpec{
			{Name: "Rex", Kind: "dog", Breed: "Husky", Energy: "hyperactive"},
			{Name: "Moby", Kind: "whale", Energy: "hyperactive"},
			{Name: "Talon", Kind: "eagle", Energy: "hyperactive"},
			{Name: "Roadster", Kind: "car", Manufacturer: "Tesla", Year: 2023, Energy: "hyperactive"},
			{Name: "Waddles", Kind: "penguin", Energy: "hyperactive"},
			{Name: "Flaps", Kind: "duck", Energy: "hyperactive"},
		},
		Teams: []roster.TeamSpec{
			{Name: "Wild Ones", Land: "Rex", Water: "Moby", Air: "Talon"},
			{Name: "Hybrid", Land: "Roadster", Water: "Waddles", Air: "Flaps"},
			{Name: "Grounded", Land: "Rex", Water: "Moby", Air: "Waddles"},
		},
	}
	svc := NewCompetitionService(fixedRosters{roster: r}, NewManager(), nil)

	run, err := svc.RunCompetition(context.Background(), "unified")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// Two teams race; the penguin cannot fly the third's air leg.
	if len(run.Standings) != 2 {
		t.Errorf("standings = %d, want 2", len(run.Standings))
	}
	if len(run.Skipped) != 1 || run.Skipped[0].Name != "Grounded" {
		t.Errorf("skipped = %+v, want Grounded", run.Skipped)
	}
}

func TestRunCompetitionRejectsInvalidRoster(t *testing.T) {
	r := &roster.Roster{Name: "broken", Competition: "decathlon"}
	svc := NewCompetitionService(fixedRosters{roster: r}, NewManager(), nil)

	if _, err := svc.RunCompetition(context.Background(), "broken"); !errors.Is(err, roster.ErrInvalidRoster) {
		t.Errorf("err = %v, want ErrInvalidRoster", err)
	}
}

func TestRunCompetitionHonorsContext(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.RunCompetition(ctx, "default"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestDescribeEntrant(t *testing.T) {
	svc := newTestService(t)

	desc, err := svc.DescribeEntrant(context.Background(), "default", "Quackers")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if !strings.Contains(desc, "Quackers") || !strings.Contains(desc, "capabilities") {
		t.Errorf("description = %q", desc)
	}

	if _, err := svc.DescribeEntrant(context.Background(), "default", "Nobody"); err == nil {
		t.Error("expected error for unknown entrant")
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	run := &Run{Roster: "default", Competition: roster.CompetitionTriathlon}
	if err := m.Add(run); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(run.ID) != 4 {
		t.Errorf("ID = %q, want 4 hex characters", run.ID)
	}
	if m.Count() != 1 {
		t.Errorf("count = %d, want 1", m.Count())
	}

	// Case-insensitive lookup, same as session IDs.
	if _, err := m.Get(strings.ToUpper(run.ID)); err != nil {
		t.Errorf("get upper-case: %v", err)
	}

	if err := m.Delete(run.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Get(run.ID); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("err = %v, want ErrRunNotFound", err)
	}
}

func TestManagerCleanupExpiredRuns(t *testing.T) {
	m := NewManager()

	old := &Run{Roster: "old"}
	if err := m.Add(old); err != nil {
		t.Fatal(err)
	}
	old.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	fresh := &Run{Roster: "fresh"}
	if err := m.Add(fresh); err != nil {
		t.Fatal(err)
	}

	if removed := m.CleanupExpiredRuns(time.Hour); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if m.Count() != 1 {
		t.Errorf("count = %d, want 1", m.Count())
	}
}
