// ABOUTME: Expense and workout operations exposed as tools.
// ABOUTME: Parses caller arguments, runs them against a Repository, and types failures.
package tools

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/storage"
)

// Service runs the tool operations against an explicitly supplied store.
type Service struct {
	repo storage.Repository
}

// NewService creates a Service backed by repo.
func NewService(repo storage.Repository) *Service {
	return &Service{repo: repo}
}

// Tool arguments. Field tags double as the published input schema.

type LogExpenseArgs struct {
	Amount          float64 `json:"amount" jsonschema:"The exact cost of the expense (e.g. 5.50)"`
	Category        string  `json:"category" jsonschema:"Broad category (e.g. 'Food' or 'Fitness')"`
	Description     *string `json:"description,omitempty" jsonschema:"Specific details (e.g. 'Protein shake')"`
	TransactionDate string  `json:"transaction_date" jsonschema:"The date in YYYY-MM-DD format"`
}

type GetExpensesArgs struct {
	StartDate string  `json:"start_date" jsonschema:"The beginning date in YYYY-MM-DD format"`
	EndDate   string  `json:"end_date" jsonschema:"The ending date in YYYY-MM-DD format"`
	Category  *string `json:"category,omitempty" jsonschema:"Optional filter by a specific category like 'Food' or 'Fitness'"`
}

type DeleteExpenseArgs struct {
	ExpenseID string `json:"expense_id" jsonschema:"The UUID string of the expense to delete"`
}

// RangeArgs is the input of the range-only queries.
type RangeArgs struct {
	StartDate string `json:"start_date" jsonschema:"The beginning date in YYYY-MM-DD format"`
	EndDate   string `json:"end_date" jsonschema:"The ending date in YYYY-MM-DD format"`
}

type LogExerciseArgs struct {
	ExerciseName    string   `json:"exercise_name" jsonschema:"The specific movement (e.g. 'Bench Press' or 'Running')"`
	Category        string   `json:"category" jsonschema:"Broad category ('Strength' or 'Cardio' etc.)"`
	WorkoutDate     string   `json:"workout_date" jsonschema:"Date in YYYY-MM-DD format"`
	SessionName     *string  `json:"session_name,omitempty" jsonschema:"The overarching workout name (e.g. 'Leg Day'). Defaults to 'Daily Workout' if not specified"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" jsonschema:"Duration in minutes"`
	Sets            *int     `json:"sets,omitempty" jsonschema:"Number of sets"`
	Reps            *int     `json:"reps,omitempty" jsonschema:"Repetitions per set"`
	WeightKg        *float64 `json:"weight_kg,omitempty" jsonschema:"Load in kilograms"`
	DistanceKm      *float64 `json:"distance_km,omitempty" jsonschema:"Distance in kilometres"`
}

type DeleteExerciseArgs struct {
	ExerciseID string `json:"exercise_id" jsonschema:"The UUID string of the exercise log to delete"`
}

// Tool results.

// ExpenseRecord is the flat expense shape returned by get_expenses.
type ExpenseRecord struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
}

// SessionRecord is a workout session with its exercises nested.
type SessionRecord struct {
	SessionID   string           `json:"session_id"`
	SessionName string           `json:"session_name"`
	Date        string           `json:"date"`
	Exercises   []ExerciseRecord `json:"exercises"`
}

// ExerciseRecord keeps every metric key; unset metrics are null.
type ExerciseRecord struct {
	ExerciseID string   `json:"exercise_id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Duration   *int     `json:"duration"`
	Sets       *int     `json:"sets"`
	Reps       *int     `json:"reps"`
	WeightKg   *float64 `json:"weight_kg"`
	DistanceKm *float64 `json:"distance_km"`
}

// WorkoutSummary always carries both totals, zero when nothing matched.
type WorkoutSummary struct {
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
	TotalDistanceKm      float64 `json:"total_distance_km"`
}

// LogExpense records a new expense.
func (s *Service) LogExpense(ctx context.Context, args LogExpenseArgs) (string, error) {
	const op = "log expense"

	date, err := models.ParseDate(args.TransactionDate)
	if err != nil {
		return "", invalidDate(op, "transaction_date", args.TransactionDate, err)
	}

	e := models.NewExpense(args.Amount, args.Category, date).WithDescription(optionalString(args.Description))
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return "", storeFailure(op, err)
	}

	return fmt.Sprintf("Successfully logged %s expense of $%.2f.", e.Category, e.Amount), nil
}

// GetExpenses lists expenses in the inclusive range, optionally narrowed to
// categories containing args.Category.
func (s *Service) GetExpenses(ctx context.Context, args GetExpensesArgs) ([]ExpenseRecord, error) {
	const op = "retrieve expenses"

	r, err := parseRange(op, args.StartDate, args.EndDate)
	if err != nil {
		return nil, err
	}

	expenses, err := s.repo.ListExpenses(ctx, storage.ExpenseFilter{DateRange: r, Category: optionalString(args.Category)})
	if err != nil {
		return nil, storeFailure(op, err)
	}

	records := make([]ExpenseRecord, 0, len(expenses))
	for _, e := range expenses {
		records = append(records, ExpenseRecord{
			ID:          e.ID.String(),
			Date:        e.TransactionDate.String(),
			Amount:      e.Amount,
			Category:    e.Category,
			Description: e.Description,
		})
	}
	return records, nil
}

// DeleteExpense removes one expense by its UUID.
func (s *Service) DeleteExpense(ctx context.Context, args DeleteExpenseArgs) (string, error) {
	const op = "delete expense"

	id, err := uuid.Parse(args.ExpenseID)
	if err != nil {
		return "", &Error{
			Kind:    KindInvalidIdentifier,
			Message: "Error: Invalid ID format. Please use get_expenses to find the exact UUID.",
			Err:     err,
		}
	}

	e, err := s.repo.GetExpense(ctx, id)
	if err == nil {
		err = s.repo.DeleteExpense(ctx, id)
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", &Error{
				Kind:    KindNotFound,
				Message: fmt.Sprintf("Error: No expense found with ID %s.", args.ExpenseID),
				Err:     err,
			}
		}
		return "", storeFailure(op, err)
	}

	return fmt.Sprintf("Successfully deleted the %s expense for %s.", e.Category, formatAmount(e.Amount)), nil
}

// SpendingSummary totals spending per category. Categories with no
// expenses in range are absent.
func (s *Service) SpendingSummary(ctx context.Context, args RangeArgs) (map[string]float64, error) {
	const op = "calculate summary"

	r, err := parseRange(op, args.StartDate, args.EndDate)
	if err != nil {
		return nil, err
	}

	summary, err := s.repo.SumExpensesByCategory(ctx, r)
	if err != nil {
		return nil, storeFailure(op, err)
	}
	return summary, nil
}

// LogExercise records an exercise, appending it to the session for the
// date and name, which is created on first use.
func (s *Service) LogExercise(ctx context.Context, args LogExerciseArgs) (string, error) {
	const op = "log exercise"

	date, err := models.ParseDate(args.WorkoutDate)
	if err != nil {
		return "", invalidDate(op, "workout_date", args.WorkoutDate, err)
	}

	ex := models.NewExerciseLog(args.ExerciseName, args.Category)
	ex.DurationMinutes = args.DurationMinutes
	ex.Sets = args.Sets
	ex.Reps = args.Reps
	ex.WeightKg = args.WeightKg
	ex.DistanceKm = args.DistanceKm

	ws, err := s.repo.LogExercise(ctx, date, optionalString(args.SessionName), ex)
	if err != nil {
		return "", storeFailure(op, err)
	}

	return fmt.Sprintf("Successfully logged %s to '%s' on %s.", ex.ExerciseName, ws.SessionName, ws.WorkoutDate), nil
}

// GetWorkouts lists sessions in range with their exercises nested.
func (s *Service) GetWorkouts(ctx context.Context, args RangeArgs) ([]SessionRecord, error) {
	const op = "retrieve workouts"

	r, err := parseRange(op, args.StartDate, args.EndDate)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.ListSessions(ctx, r)
	if err != nil {
		return nil, storeFailure(op, err)
	}

	records := make([]SessionRecord, 0, len(sessions))
	for _, ws := range sessions {
		rec := SessionRecord{
			SessionID:   ws.ID.String(),
			SessionName: ws.SessionName,
			Date:        ws.WorkoutDate.String(),
			Exercises:   make([]ExerciseRecord, 0, len(ws.Exercises)),
		}
		for _, ex := range ws.Exercises {
			rec.Exercises = append(rec.Exercises, ExerciseRecord{
				ExerciseID: ex.ID.String(),
				Name:       ex.ExerciseName,
				Category:   ex.Category,
				Duration:   ex.DurationMinutes,
				Sets:       ex.Sets,
				Reps:       ex.Reps,
				WeightKg:   ex.WeightKg,
				DistanceKm: ex.DistanceKm,
			})
		}
		records = append(records, rec)
	}
	return records, nil
}

// DeleteExercise removes one exercise by its UUID. Its session stays.
func (s *Service) DeleteExercise(ctx context.Context, args DeleteExerciseArgs) (string, error) {
	const op = "delete exercise"

	id, err := uuid.Parse(args.ExerciseID)
	if err != nil {
		return "", &Error{
			Kind:    KindInvalidIdentifier,
			Message: "Error: Invalid ID format. Use get_workouts to find the exact UUID.",
			Err:     err,
		}
	}

	ex, err := s.repo.GetExercise(ctx, id)
	if err == nil {
		err = s.repo.DeleteExercise(ctx, id)
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", &Error{
				Kind:    KindNotFound,
				Message: fmt.Sprintf("Error: No exercise found with ID %s.", args.ExerciseID),
				Err:     err,
			}
		}
		return "", storeFailure(op, err)
	}

	return fmt.Sprintf("Successfully deleted the exercise: %s.", ex.ExerciseName), nil
}

// WorkoutSummary totals duration and distance for exercises whose session
// date is in range.
func (s *Service) WorkoutSummary(ctx context.Context, args RangeArgs) (WorkoutSummary, error) {
	const op = "calculate workout summary"

	r, err := parseRange(op, args.StartDate, args.EndDate)
	if err != nil {
		return WorkoutSummary{}, err
	}

	totals, err := s.repo.SumExercises(ctx, r)
	if err != nil {
		return WorkoutSummary{}, storeFailure(op, err)
	}

	return WorkoutSummary{
		TotalDurationMinutes: totals.DurationMinutes,
		TotalDistanceKm:      totals.DistanceKm,
	}, nil
}

func parseRange(op, start, end string) (storage.DateRange, error) {
	from, err := models.ParseDate(start)
	if err != nil {
		return storage.DateRange{}, invalidDate(op, "start_date", start, err)
	}
	to, err := models.ParseDate(end)
	if err != nil {
		return storage.DateRange{}, invalidDate(op, "end_date", end, err)
	}
	return storage.DateRange{From: from, To: to}, nil
}

// formatAmount renders the shortest decimal form, keeping one fractional
// digit for whole numbers (20 -> "20.0", 5.5 -> "5.5").
// optionalString maps an absent or null argument to "", which every
// optional string treats as unset.
func optionalString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}
