// ABOUTME: CLI commands for the raw tool catalog.
// ABOUTME: Lists tool schemas and invokes any tool with JSON arguments.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tool catalog",
	Long: `List every tool with its description and parameters.

These are the same tools served by 'lifeos mcp' and 'lifeos serve'.
Required parameters are marked with *.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)
		bold := color.New(color.Bold)

		for i, t := range registry.Tools() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, bold.Sprint(t.Name))
			fmt.Fprintf(out, "  %s\n", firstLine(t.Description))

			required := make(map[string]bool)
			for _, name := range t.InputSchema.Required {
				required[name] = true
			}
			for _, name := range sortedProperties(t.InputSchema) {
				prop := t.InputSchema.Properties[name]
				marker := " "
				if required[name] {
					marker = "*"
				}
				fmt.Fprintf(out, "  %s %s %s %s\n",
					marker,
					padRight(name, 18),
					padRight(schemaType(prop), 16),
					faint.Sprint(prop.Description))
			}
		}
		return nil
	},
}

var callCmd = &cobra.Command{
	Use:   "call <tool> [json-args]",
	Short: "Invoke a tool with JSON arguments",
	Long: `Invoke a tool by name with a JSON object of arguments and print its result.

Arguments may be passed inline or as "-" to read them from stdin. Omitting
them sends an empty object. Structured results print as indented JSON.

EXAMPLES:

  lifeos call log_expense '{"amount":5.5,"category":"Food","transaction_date":"2024-05-01"}'
  lifeos call get_workout_summary '{"start_date":"2024-06-01","end_date":"2024-06-30"}'
  echo '{"expense_id":"..."}' | lifeos call delete_expense -`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := "{}"
		if len(args) == 2 {
			raw = args[1]
		}
		if raw == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read arguments: %w", err)
			}
			raw = string(data)
		}

		res := registry.Call(cmd.Context(), args[0], json.RawMessage(raw))
		if res.IsError() {
			return errors.New(res.Text())
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Text())
		return nil
	},
}

func sortedProperties(s *jsonschema.Schema) []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func schemaType(s *jsonschema.Schema) string {
	if s.Type != "" {
		return s.Type
	}
	return strings.Join(s.Types, "|")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
}
