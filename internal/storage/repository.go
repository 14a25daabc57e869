// ABOUTME: Repository interface for expense and workout storage.
// ABOUTME: Defines the contract the tool operations run against.
package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/harperreed/lifeos/internal/models"
)

// DateRange bounds a query inclusively. A zero From or To leaves that side open.
type DateRange struct {
	From models.Date
	To   models.Date
}

// ExpenseFilter narrows ListExpenses.
type ExpenseFilter struct {
	DateRange
	// Category matches case-insensitively as a substring when non-empty.
	Category string
}

// WorkoutTotals aggregates exercise metrics over a date range.
type WorkoutTotals struct {
	DurationMinutes float64
	DistanceKm      float64
}

// Repository defines the storage interface for expenses and workouts.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Expense operations
	CreateExpense(ctx context.Context, e *models.Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]*models.Expense, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	SumExpensesByCategory(ctx context.Context, r DateRange) (map[string]float64, error)

	// Workout operations
	LogExercise(ctx context.Context, date models.Date, sessionName string, ex *models.ExerciseLog) (*models.WorkoutSession, error)
	ListSessions(ctx context.Context, r DateRange) ([]*models.WorkoutSession, error)
	GetExercise(ctx context.Context, id uuid.UUID) (*models.ExerciseLog, error)
	DeleteExercise(ctx context.Context, id uuid.UUID) error
	SumExercises(ctx context.Context, r DateRange) (*WorkoutTotals, error)

	// Export/Import
	GetAllData(ctx context.Context, r DateRange) (*ExportData, error)
	ImportData(ctx context.Context, data *ExportData) error

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
}

var _ Repository = (*DB)(nil)
