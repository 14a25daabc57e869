// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"os/signal"
	"syscall"

	"github.com/harperreed/lifeos/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log and query your expenses and
workouts through a standardized protocol. The server communicates via
stdin/stdout; logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "lifeos": {
        "command": "lifeos",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  log_expense           Log a new financial transaction
  get_expenses          List expenses in a date range
  delete_expense        Delete an expense by ID
  get_spending_summary  Total spending per category
  log_exercise          Log an exercise into a workout session
  get_workouts          List sessions with their exercises
  delete_exercise       Delete a single exercise by ID
  get_workout_summary   Total duration and distance

AVAILABLE RESOURCES:

  lifeos://today    Today's expenses and workouts
  lifeos://month    Spending and workout totals for this month`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(registry)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
