package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pg "tradelens/internal/adapters/postgres"
	"tradelens/internal/config"
	"tradelens/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Postgres schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withMigrator(func(ctx context.Context, cmd *cobra.Command, m *pg.Migrator, log *zap.Logger) error {
				results, err := m.Up(ctx)
				for _, r := range results {
					log.Info("migration applied", zap.Int64("version", r.Source.Version), zap.String("path", r.Source.Path), zap.Duration("took", r.Duration))
				}
				if errors.Is(err, goose.ErrNoNextVersion) {
					return nil
				}
				if err == nil && len(results) == 0 {
					log.Info("schema is up to date")
				}
				return err
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: withMigrator(func(ctx context.Context, cmd *cobra.Command, m *pg.Migrator, log *zap.Logger) error {
				r, err := m.Down(ctx)
				if err != nil {
					return err
				}
				log.Info("migration rolled back", zap.Int64("version", r.Source.Version), zap.String("path", r.Source.Path))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			RunE: withMigrator(func(ctx context.Context, cmd *cobra.Command, m *pg.Migrator, _ *zap.Logger) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return tw.Flush()
			}),
		},
	)
	return cmd
}

type migrateFunc func(ctx context.Context, cmd *cobra.Command, m *pg.Migrator, log *zap.Logger) error

func withMigrator(fn migrateFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("%w: database_url is required to migrate", config.ErrInvalidConfig)
		}
		log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		m, err := pg.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer func() { _ = m.Close() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()
		return fn(ctx, cmd, m, log.Named("migrate"))
	}
}
