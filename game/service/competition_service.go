package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fieldday-games/fieldday/game/competition"
	"github.com/fieldday-games/fieldday/game/roster"
)

// CompetitionService defines all competition-related operations.
type CompetitionService interface {
	// Running events
	RunCompetition(ctx context.Context, rosterName string) (*Run, error)

	// Run management
	GetRun(ctx context.Context, runID string) (*Run, error)
	ListRuns(ctx context.Context) ([]*Run, error)
	DeleteRun(ctx context.Context, runID string) error

	// Rosters
	ListRosters(ctx context.Context) ([]*roster.Roster, error)
	LoadRoster(ctx context.Context, rosterName string) (*roster.Roster, error)
	DescribeEntrant(ctx context.Context, rosterName, entrantName string) (string, error)
}

// RosterStore provides the rosters a service can run.
type RosterStore interface {
	LoadRoster(name string) (*roster.Roster, error)
	ListRosters() ([]*roster.Roster, error)
	GetDefault() *roster.Roster
}

// RunStore stores finished runs.
type RunStore interface {
	Add(run *Run) error
	Get(id string) (*Run, error)
	List() []*Run
	Delete(id string) error
}

type competitionService struct {
	rosters RosterStore
	runs    RunStore
	log     *slog.Logger
}

// NewCompetitionService creates a service over the given stores. A nil
// logger falls back to slog.Default.
func NewCompetitionService(rosters RosterStore, runs RunStore, log *slog.Logger) CompetitionService {
	if log == nil {
		log = slog.Default()
	}
	return &competitionService{rosters: rosters, runs: runs, log: log}
}

// RunCompetition loads and validates a roster, builds its entrants,
// runs the named event, and stores the run.
func (s *competitionService) RunCompetition(ctx context.Context, rosterName string) (*Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := s.rosters.LoadRoster(rosterName)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster %q: %w", rosterName, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	entrants, err := roster.BuildAll(r)
	if err != nil {
		return nil, err
	}

	run := &Run{Roster: r.Name, Competition: r.Competition}
	s.log.Info("running competition",
		"roster", r.Name, "competition", r.Competition, "entrants", len(entrants))

	switch r.Competition {
	case roster.CompetitionTriathlon:
		s.runTriathlon(run, r, entrants)
	case roster.CompetitionRelay:
		s.runRelay(run, r, entrants)
	case roster.CompetitionVehicleRace:
		s.runVehicleRace(run, r, entrants)
	case roster.CompetitionUnified:
		s.runUnified(run, r, entrants)
	default:
		return nil, fmt.Errorf("%w: unknown competition %q", roster.ErrInvalidRoster, r.Competition)
	}

	if err := s.runs.Add(run); err != nil {
		return nil, fmt.Errorf("failed to store run: %w", err)
	}
	s.log.Info("competition finished", "run", run.ID, "winner", run.Winner)
	return run, nil
}

func (s *competitionService) runTriathlon(run *Run, r *roster.Roster, entrants map[string]*roster.Entrant) {
	event := competition.NewTriathlon()
	for _, spec := range r.Entrants {
		e := entrants[spec.Name]
		p, ok := e.Mover.(competition.Triathlete)
		if !ok {
			s.skip(run, spec.Name, fmt.Sprintf("cannot enter triathlon: has %s, needs walk+swim+fly", e.Profile))
			continue
		}
		result := event.AddParticipant(p)
		run.Legs = append(run.Legs, result.Walk, result.Swim, result.Fly)
	}

	for i, result := range event.Rankings() {
		run.Standings = append(run.Standings, Standing{
			Rank:      i + 1,
			Name:      result.Participant,
			Category:  result.Species,
			Completed: result.CompletedStages,
			Score:     result.Score(),
			Penalty:   result.TimePenalty,
		})
	}
	if winner, ok := event.Winner(); ok {
		run.Winner = winner.Participant
	}
}

func (s *competitionService) runRelay(run *Run, r *roster.Roster, entrants map[string]*roster.Entrant) {
	event := competition.NewRelayCompetition()
	for _, spec := range r.Teams {
		swimmer, okW := entrants[spec.Water].Mover.(competition.RelaySwimmer)
		walker, okL := entrants[spec.Land].Mover.(competition.RelayWalker)
		flyer, okA := entrants[spec.Air].Mover.(competition.RelayFlyer)
		if !okW || !okL || !okA {
			s.skip(run, spec.Name, "relay legs require an animal swimmer, walker and flyer")
			continue
		}
		result := competition.NewRelayTeam(spec.Name, swimmer, walker, flyer).Race()
		run.Legs = append(run.Legs, result.SwimLeg, result.WalkLeg, result.FlyLeg)
		event.AddTeamResult(result)
	}

	for i, result := range event.Rankings() {
		run.Standings = append(run.Standings, Standing{
			Rank:      i + 1,
			Name:      result.Team,
			Category:  "Relay Team",
			Completed: result.CompletedLegs,
			Score:     result.Score(),
			Penalty:   result.TimePenalty,
		})
	}
	if winner, ok := event.Winner(); ok {
		run.Winner = winner.Team
	}
}

func (s *competitionService) runVehicleRace(run *Run, r *roster.Roster, entrants map[string]*roster.Entrant) {
	event := competition.NewVehicleRace()
	for _, spec := range r.Teams {
		driver, okL := entrants[spec.Land].Mover.(competition.RaceDriver)
		swimmer, okW := entrants[spec.Water].Mover.(competition.RaceSwimmer)
		flyer, okA := entrants[spec.Air].Mover.(competition.RaceFlyer)
		if !okL || !okW || !okA {
			s.skip(run, spec.Name, "race legs require a driving, a water-capable and a flying vehicle")
			continue
		}
		result := competition.NewVehicleRaceTeam(spec.Name, driver, swimmer, flyer).Race()
		run.Legs = append(run.Legs, result.LandLeg, result.WaterLeg, result.AirLeg)
		event.AddTeamResult(result)
	}

	for i, result := range event.Rankings() {
		run.Standings = append(run.Standings, Standing{
			Rank:      i + 1,
			Name:      result.Team,
			Category:  "Vehicle Team",
			Completed: result.CompletedLegs,
			Score:     result.Score(),
			Penalty:   result.TimePenalty,
		})
	}
	if winner, ok := event.Winner(); ok {
		run.Winner = winner.Team
	}
}

func (s *competitionService) runUnified(run *Run, r *roster.Roster, entrants map[string]*roster.Entrant) {
	event := competition.NewUnifiedRace()
	for _, spec := range r.Teams {
		landMover, okL := entrants[spec.Land].LandMover()
		swimmer, okW := entrants[spec.Water].Swimmer()
		flyer, okA := entrants[spec.Air].Flyer()
		if !okL || !okW || !okA {
			s.skip(run, spec.Name, "unified legs require a land mover, a swimmer and a flyer")
			continue
		}
		team, err := competition.NewUnifiedRaceTeam(spec.Name, landMover, swimmer, flyer)
		if err != nil {
			s.skip(run, spec.Name, err.Error())
			continue
		}
		result := team.Race()
		run.Legs = append(run.Legs, result.LandLeg, result.WaterLeg, result.AirLeg)
		event.AddTeamResult(result)
	}

	for i, result := range event.Rankings() {
		run.Standings = append(run.Standings, Standing{
			Rank:      i + 1,
			Name:      result.Team,
			Category:  "Unified Team",
			Completed: result.CompletedLegs,
			Score:     result.Score(),
		})
	}
	if winner, ok := event.Winner(); ok {
		run.Winner = winner.Team
	}
}

func (s *competitionService) skip(run *Run, name, reason string) {
	s.log.Warn("skipping entrant", "name", name, "reason", reason)
	run.Skipped = append(run.Skipped, Skip{Name: name, Reason: reason})
}

// GetRun retrieves a stored run.
func (s *competitionService) GetRun(ctx context.Context, runID string) (*Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.runs.Get(runID)
}

// ListRuns returns all stored runs.
func (s *competitionService) ListRuns(ctx context.Context) ([]*Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.runs.List(), nil
}

// DeleteRun removes a stored run.
func (s *competitionService) DeleteRun(ctx context.Context, runID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.runs.Delete(runID)
}

// ListRosters returns every available roster.
func (s *competitionService) ListRosters(ctx context.Context) ([]*roster.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.rosters.ListRosters()
}

// LoadRoster loads one roster by name.
func (s *competitionService) LoadRoster(ctx context.Context, rosterName string) (*roster.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.rosters.LoadRoster(rosterName)
}

// DescribeEntrant builds one entrant and returns its self-description.
func (s *competitionService) DescribeEntrant(ctx context.Context, rosterName, entrantName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r, err := s.rosters.LoadRoster(rosterName)
	if err != nil {
		return "", err
	}
	spec, ok := r.Entrant(entrantName)
	if !ok {
		return "", fmt.Errorf("entrant %q not in roster %q", entrantName, r.Name)
	}
	e, err := roster.Build(spec)
	if err != nil {
		return "", err
	}

	described, ok := e.Mover.(interface{ Description() string })
	if !ok {
		return "", fmt.Errorf("entrant %q has no description", entrantName)
	}
	return fmt.Sprintf("%s (capabilities: %s)", described.Description(), e.Profile), nil
}
