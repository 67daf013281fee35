package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

type migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
	Down(ctx context.Context) (*goose.MigrationResult, error)
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
}

type migratorOpener func(context.Context) (migrator, func(), error)

func newMigrateCommand(open migratorOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(open, func(cmd *cobra.Command, m migrator) error {
				results, err := m.Up(cmd.Context())
				if err != nil {
					return err
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date.")
				}
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", describe(r))
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(open, func(cmd *cobra.Command, m migrator) error {
				r, err := m.Down(cmd.Context())
				if errors.Is(err, goose.ErrNoNextVersion) {
					fmt.Fprintln(cmd.OutOrStdout(), "No migration to roll back.")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s\n", describe(r))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the state of every migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(open, func(cmd *cobra.Command, m migrator) error {
				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED\tFILE")
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Local().Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return tw.Flush()
			}),
		},
	)
	return cmd
}

func withMigrator(open migratorOpener, run func(*cobra.Command, migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		m, cleanup, err := open(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()
		return run(cmd, m)
	}
}

func describe(r *goose.MigrationResult) string {
	if r == nil || r.Source == nil {
		return "migration"
	}
	return fmt.Sprintf("%d %s (%s)", r.Source.Version, r.Source.Path, r.Duration.Round(time.Millisecond))
}
