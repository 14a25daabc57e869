// ABOUTME: CLI commands for exporting and importing lifeos data.
// ABOUTME: Supports JSON, YAML, and XLSX export formats; imports JSON.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
	exportUntil  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export expenses and workouts",
	Long: `Export expenses and workout sessions in various formats.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export with expenses grouped by category
  xlsx   Spreadsheet with an Expenses and a Workouts sheet (requires -o)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include data on or after this date (YYYY-MM-DD)
  --until        Only include data on or before this date (YYYY-MM-DD)

EXAMPLES:

  lifeos export json                        # Export all data as JSON
  lifeos export json -o backup.json         # Save to file
  lifeos export yaml --since 2024-01-01     # Export data from 2024 onward
  lifeos export xlsx -o lifeos.xlsx         # Spreadsheet`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "xlsx"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		if format == "xlsx" && exportOutput == "" {
			return fmt.Errorf("xlsx export requires --output")
		}

		r, err := exportRange(exportSince, exportUntil)
		if err != nil {
			return err
		}

		all, err := repo.GetAllData(cmd.Context(), r)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch format {
		case "json":
			data, err = storage.ExportJSON(all)
		case "yaml":
			data, err = storage.ExportYAML(all)
		case "xlsx":
			var buf bytes.Buffer
			err = storage.ExportXLSX(all, &buf)
			data = buf.Bytes()
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or xlsx)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			success(cmd, "Exported %d expenses and %d sessions to %s", len(all.Expenses), len(all.Sessions), exportOutput)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON export",
	Long: `Import expenses and workout sessions from a previously exported JSON file.

The import runs in a single transaction. Records keep their IDs, so
importing entries that already exist fails and nothing is written.

EXAMPLES:

  lifeos import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		raw, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		data, err := storage.ImportJSON(raw)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		if err := repo.ImportData(cmd.Context(), data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		success(cmd, "Imported %d expenses and %d sessions from %s", len(data.Expenses), len(data.Sessions), filename)
		return nil
	},
}

// exportRange parses optional --since and --until bounds.
func exportRange(since, until string) (storage.DateRange, error) {
	var r storage.DateRange
	if since != "" {
		d, err := models.ParseDate(since)
		if err != nil {
			return r, fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", since)
		}
		r.From = d
	}
	if until != "" {
		d, err := models.ParseDate(until)
		if err != nil {
			return r, fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", until)
		}
		r.To = d
	}
	return r, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data on or after date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportUntil, "until", "", "only include data on or before date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
