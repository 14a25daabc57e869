// ABOUTME: Shared helpers for CLI commands.
// ABOUTME: Calls registry tools, renders their results and formats columns.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/tools"
	"github.com/spf13/cobra"
)

// callTool encodes args as JSON and dispatches them through the registry.
// Any error result, including not-found, comes back as an error carrying
// the tool's own message so the command exits non-zero.
func callTool(cmd *cobra.Command, name string, args any) (tools.Result, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return tools.Result{}, fmt.Errorf("encode arguments: %w", err)
	}

	res := registry.Call(cmd.Context(), name, raw)
	if res.Err != nil {
		return res, errors.New(res.Err.Message)
	}
	return res, nil
}

// decodeValue converts a structured result value into out.
func decodeValue(res tools.Result, out any) error {
	raw, err := json.Marshal(res.Value)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

// monthRange fills empty bounds with the first of the current month and today.
func monthRange(from, to string) (string, string) {
	now := time.Now()
	if from == "" {
		from = models.DateOf(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)).String()
	}
	if to == "" {
		to = models.Today().String()
	}
	return from, to
}

// defaultDate returns d, or today's date when d is empty.
func defaultDate(d string) string {
	if d == "" {
		return models.Today().String()
	}
	return d
}

func success(cmd *cobra.Command, format string, a ...any) {
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ "+format+"\n", a...)
}

func removed(cmd *cobra.Command, format string, a ...any) {
	color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ "+format+"\n", a...)
}

// truncate and padRight count runes so multibyte text is never cut mid-rune.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
