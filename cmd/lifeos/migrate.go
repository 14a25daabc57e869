// ABOUTME: CLI command for migrating a SQLite database into the configured backend.
// ABOUTME: Typically used to move local data into PostgreSQL.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/config"
	"github.com/harperreed/lifeos/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateFrom   string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy a SQLite database into the configured backend",
	Long: `Copy every expense, workout session and exercise from a SQLite database
into the configured backend.

This is the way to move local data into PostgreSQL: point the config at the
postgres server, then migrate from the old SQLite file.

IMPORTANT:

  - Records keep their IDs, so migrating the same data twice fails
  - The copy runs in one transaction; a failure writes nothing
  - Run with --dry-run first to see what would be migrated

USAGE:

  lifeos config set backend postgres
  lifeos migrate --from ~/.local/share/lifeos/lifeos.db --dry-run
  lifeos migrate --from ~/.local/share/lifeos/lifeos.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == "" {
			return fmt.Errorf("--from is required")
		}

		src, err := storage.Open(config.ExpandPath(migrateFrom))
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer src.Close()

		out := cmd.OutOrStdout()
		if migrateDryRun {
			color.New(color.FgYellow).Fprintln(out, "Dry run mode - no changes will be made")
			fmt.Fprintln(out)
		}

		summary, err := storage.MigrateData(cmd.Context(), src, repo, migrateDryRun)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		verb := "Migrated"
		if migrateDryRun {
			verb = "Would migrate"
		}
		success(cmd, "%s %d expenses, %d sessions and %d exercises to %s",
			verb, summary.Expenses, summary.Sessions, summary.Exercises, cfg.GetBackend())
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source SQLite database path")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
