// ABOUTME: Root Cobra command for lifeos CLI.
// ABOUTME: Handles config, storage and tool registry lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/lifeos/internal/config"
	"github.com/harperreed/lifeos/internal/logger"
	"github.com/harperreed/lifeos/internal/storage"
	"github.com/harperreed/lifeos/internal/tools"
	"github.com/spf13/cobra"
)

var (
	dbPath  string
	verbose bool

	cfg      *config.Config
	repo     storage.Repository
	registry *tools.Registry
)

var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "Personal expense and workout tracker",
	Long: `Lifeos tracks what you spend and how you train.

WHAT IT TRACKS:

  Expenses   amount, category, optional description, transaction date
  Workouts   sessions per day (e.g. "Leg Day") holding individual exercises
             with optional duration, sets, reps, weight and distance

QUICK START:

  $ lifeos init                                   # Create the tables
  $ lifeos expense add 5.50 Food --desc "Coffee"  # Log an expense
  $ lifeos expense summary                        # Spending per category this month
  $ lifeos workout log Running Cardio --distance 5 --session "Morning Run"
  $ lifeos workout list                           # Sessions with their exercises

TOOLS:

  Every operation is also a named tool with a JSON schema.

  $ lifeos tools                                  # Show the catalog
  $ lifeos call get_spending_summary '{"start_date":"2024-05-01","end_date":"2024-05-31"}'

MCP INTEGRATION:

  Run 'lifeos mcp' to serve the tools over stdio to Claude Desktop or other
  MCP-compatible assistants, or 'lifeos serve' to expose them over HTTP at /mcp.

  {
    "mcpServers": {
      "lifeos": { "command": "lifeos", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  SQLite at ~/.local/share/lifeos/lifeos.db by default. Set "backend":
  "postgres" in ~/.config/lifeos/config.json (or LIFEOS_BACKEND=postgres)
  to use PostgreSQL instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsStorage(cmd) {
			return nil
		}

		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dbPath != "" {
			loaded.DBPath = dbPath
		}
		cfg = loaded

		env := cfg.GetEnv()
		if !verbose && !isServerCommand(cmd) {
			env = "quiet"
		}
		logger.Init(env)

		if repo != nil {
			_ = repo.Close()
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		registry, err = tools.NewRegistry(tools.NewService(repo))
		if err != nil {
			return fmt.Errorf("failed to build tool registry: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo == nil {
			return nil
		}
		err := repo.Close()
		repo = nil
		return err
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// needsStorage reports whether cmd touches the database.
func needsStorage(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "install-skill", "completion", "config":
			return false
		}
	}
	return cmd.Runnable() && cmd.HasParent()
}

func isServerCommand(cmd *cobra.Command) bool {
	return cmd == mcpCmd || cmd == serveCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log tool calls to stderr")
}
