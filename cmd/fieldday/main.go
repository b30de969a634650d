// Command fieldday runs energy-gated movement competitions from YAML
// rosters: animal triathlons, relay races, vehicle races, and the
// unified race over the shared land-movement abstraction.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/fieldday-games/fieldday/game/report"
	"github.com/fieldday-games/fieldday/game/roster"
	"github.com/fieldday-games/fieldday/game/service"
)

const (
	Version = "1.0.0"
	AppName = "Field Day"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cmd := &cli.Command{
		Name:    "fieldday",
		Usage:   "run energy-gated movement competitions",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rosters",
				Usage:   "directory containing roster YAML files",
				Sources: cli.EnvVars("ROSTER_DIR"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			runCommand(),
			rosterCommand(),
			describeCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newService wires the roster store, run store and logger from the
// root flags.
func newService(cmd *cli.Command) (service.CompetitionService, error) {
	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	rosters, err := roster.NewManager(cmd.String("rosters"))
	if err != nil {
		return nil, err
	}
	return service.NewCompetitionService(rosters, service.NewManager(), logger), nil
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run the competition a roster names and print the results",
		ArgsUsage: "[roster]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Usage: "directory for CSV output (legs.csv, standings.csv)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			name := cmd.Args().First()
			if name == "" {
				name = "default"
			}

			run, err := svc.RunCompetition(ctx, name)
			if err != nil {
				return err
			}

			if err := report.WriteText(os.Stdout, run); err != nil {
				return err
			}

			if dir := cmd.String("output"); dir != "" {
				return writeCSVReports(dir, run)
			}
			return nil
		},
	}
}

func writeCSVReports(dir string, run *service.Run) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	legs, err := os.Create(filepath.Join(dir, "legs.csv"))
	if err != nil {
		return err
	}
	defer legs.Close()
	if err := report.WriteLegsCSV(legs, run); err != nil {
		return err
	}

	standings, err := os.Create(filepath.Join(dir, "standings.csv"))
	if err != nil {
		return err
	}
	defer standings.Close()
	return report.WriteStandingsCSV(standings, run)
}

func rosterCommand() *cli.Command {
	return &cli.Command{
		Name:  "roster",
		Usage: "inspect and validate rosters",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list available rosters",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					svc, err := newService(cmd)
					if err != nil {
						return err
					}
					rosters, err := svc.ListRosters(ctx)
					if err != nil {
						return err
					}
					for _, r := range rosters {
						fmt.Printf("%-20s %-14s %2d entrants  %s\n",
							r.Name, r.Competition, len(r.Entrants), r.Description)
					}
					return nil
				},
			},
			{
				Name:      "validate",
				Usage:     "check a roster for structural problems",
				ArgsUsage: "<roster>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					svc, err := newService(cmd)
					if err != nil {
						return err
					}
					r, err := svc.LoadRoster(ctx, cmd.Args().First())
					if err != nil {
						return err
					}
					if err := r.Validate(); err != nil {
						return err
					}
					fmt.Printf("roster %q is valid: %s with %d entrants\n",
						r.Name, r.Competition, len(r.Entrants))
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "print a roster's entrants and teams",
				ArgsUsage: "<roster>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					svc, err := newService(cmd)
					if err != nil {
						return err
					}
					r, err := svc.LoadRoster(ctx, cmd.Args().First())
					if err != nil {
						return err
					}
					fmt.Printf("%s (%s): %s\n\nEntrants:\n", r.Name, r.Competition, r.Description)
					for _, e := range r.Entrants {
						energy := e.Energy
						if energy == "" {
							energy = "normal"
						}
						fmt.Printf("  %-20s %-12s energy=%s\n", e.Name, e.Kind, energy)
					}
					if len(r.Teams) > 0 {
						fmt.Printf("\nTeams:\n")
						for _, t := range r.Teams {
							fmt.Printf("  %-20s land=%s water=%s air=%s\n", t.Name, t.Land, t.Water, t.Air)
						}
					}
					return nil
				},
			},
		},
	}
}

func describeCommand() *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Usage:     "describe one entrant and its capabilities",
		ArgsUsage: "<roster> <entrant>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 2 {
				return fmt.Errorf("usage: describe <roster> <entrant>")
			}
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			desc, err := svc.DescribeEntrant(ctx, cmd.Args().Get(0), cmd.Args().Get(1))
			if err != nil {
				return err
			}
			fmt.Println(desc)
			return nil
		},
	}
}
