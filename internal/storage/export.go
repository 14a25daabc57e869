// ABOUTME: Export and import functionality for expenses and workouts.
// ABOUTME: Supports JSON, YAML, and XLSX export formats; imports JSON.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format.
type ExportData struct {
	Version    string                   `json:"version" yaml:"version"`
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool       string                   `json:"tool" yaml:"tool"`
	Expenses   []*models.Expense        `json:"expenses" yaml:"expenses"`
	Sessions   []*models.WorkoutSession `json:"sessions" yaml:"sessions"`
}

// GetAllData retrieves every expense and session (with exercises) in range.
func (d *DB) GetAllData(ctx context.Context, r DateRange) (*ExportData, error) {
	expenses, err := d.ListExpenses(ctx, ExpenseFilter{DateRange: r})
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	sessions, err := d.ListSessions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
		Tool:       "lifeos",
		Expenses:   expenses,
		Sessions:   sessions,
	}, nil
}

// ImportData restores an export in a single transaction. Records keep their
// IDs, so importing into a store that already holds them fails.
func (d *DB) ImportData(ctx context.Context, data *ExportData) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		for _, e := range data.Expenses {
			if err := d.createExpense(ctx, tx, e); err != nil {
				return fmt.Errorf("import expense %s: %w", e.ID, err)
			}
		}

		for _, ws := range data.Sessions {
			if err := d.createSession(ctx, tx, ws); err != nil {
				return fmt.Errorf("import session %s: %w", ws.ID, err)
			}
			for i := range ws.Exercises {
				ex := ws.Exercises[i]
				ex.SessionID = ws.ID
				if err := d.createExercise(ctx, tx, &ex); err != nil {
					return fmt.Errorf("import exercise %s: %w", ex.ID, err)
				}
			}
		}
		return nil
	})
}

// ExportJSON renders data as indented JSON.
func ExportJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON parses a JSON export.
func ImportJSON(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &data, nil
}

// ExportYAML renders data as YAML with expenses grouped by category.
func ExportYAML(data *ExportData) ([]byte, error) {
	yamlData := struct {
		Version    string                   `yaml:"version"`
		ExportedAt string                   `yaml:"exported_at"`
		Tool       string                   `yaml:"tool"`
		Expenses   map[string][]yamlExpense `yaml:"expenses"`
		Sessions   []*models.WorkoutSession `yaml:"sessions"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Expenses:   make(map[string][]yamlExpense),
		Sessions:   data.Sessions,
	}

	for _, e := range data.Expenses {
		ye := yamlExpense{
			ID:     e.ID.String()[:8],
			Date:   e.TransactionDate.String(),
			Amount: e.Amount,
		}
		if e.Description != nil {
			ye.Description = *e.Description
		}
		yamlData.Expenses[e.Category] = append(yamlData.Expenses[e.Category], ye)
	}

	return yaml.Marshal(yamlData)
}

type yamlExpense struct {
	ID          string  `yaml:"id"`
	Date        string  `yaml:"date"`
	Amount      float64 `yaml:"amount"`
	Description string  `yaml:"description,omitempty"`
}

// ExportXLSX writes an Expenses sheet and a Workouts sheet to w.
func ExportXLSX(data *ExportData, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const expenseSheet = "Expenses"
	const workoutSheet = "Workouts"

	if err := f.SetSheetName("Sheet1", expenseSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(workoutSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	expenseHeaders := []any{"ID", "Date", "Amount", "Category", "Description"}
	if err := writeRow(f, expenseSheet, 1, expenseHeaders); err != nil {
		return err
	}
	_ = f.SetCellStyle(expenseSheet, "A1", "E1", headerStyle)

	row := 2
	total := 0.0
	for _, e := range data.Expenses {
		description := ""
		if e.Description != nil {
			description = *e.Description
		}
		values := []any{e.ID.String(), e.TransactionDate.String(), e.Amount, e.Category, description}
		if err := writeRow(f, expenseSheet, row, values); err != nil {
			return err
		}
		total += e.Amount
		row++
	}
	if err := writeRow(f, expenseSheet, row, []any{"Total", "", total}); err != nil {
		return err
	}

	workoutHeaders := []any{"Session ID", "Date", "Session", "Exercise ID", "Exercise", "Category",
		"Duration (min)", "Sets", "Reps", "Weight (kg)", "Distance (km)"}
	if err := writeRow(f, workoutSheet, 1, workoutHeaders); err != nil {
		return err
	}
	_ = f.SetCellStyle(workoutSheet, "A1", "K1", headerStyle)

	row = 2
	for _, ws := range data.Sessions {
		if len(ws.Exercises) == 0 {
			if err := writeRow(f, workoutSheet, row, []any{ws.ID.String(), ws.WorkoutDate.String(), ws.SessionName}); err != nil {
				return err
			}
			row++
			continue
		}
		for _, ex := range ws.Exercises {
			values := []any{
				ws.ID.String(), ws.WorkoutDate.String(), ws.SessionName,
				ex.ID.String(), ex.ExerciseName, ex.Category,
				cellInt(ex.DurationMinutes), cellInt(ex.Sets), cellInt(ex.Reps),
				cellFloat(ex.WeightKg), cellFloat(ex.DistanceKm),
			}
			if err := writeRow(f, workoutSheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func cellInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func cellFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
