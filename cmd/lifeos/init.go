// ABOUTME: CLI command for creating the database tables.
// ABOUTME: Opening storage applies the schema, so this only confirms it.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database tables",
	Long: `Create the expense and workout tables if they do not already exist.

Safe to run more than once. Every other command also creates missing
tables on startup.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.Ping(cmd.Context()); err != nil {
			return fmt.Errorf("database unreachable: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Database tables created successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
