// ABOUTME: WorkoutSession and ExerciseLog models for fitness tracking.
// ABOUTME: A session groups the exercises logged under one date and name.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSessionName is used when an exercise is logged without a session name.
const DefaultSessionName = "Daily Workout"

// WorkoutSession is the parent record for exercises done on one date.
type WorkoutSession struct {
	ID          uuid.UUID     `json:"id" yaml:"id"`
	SessionName string        `json:"session_name" yaml:"session_name"`
	WorkoutDate Date          `json:"workout_date" yaml:"workout_date"`
	CreatedAt   time.Time     `json:"created_at" yaml:"created_at"`
	Exercises   []ExerciseLog `json:"exercises,omitempty" yaml:"exercises,omitempty"` // Populated when fetching full sessions
}

// NewWorkoutSession creates a new WorkoutSession. An empty name falls back
// to DefaultSessionName.
func NewWorkoutSession(name string, date Date) *WorkoutSession {
	if name == "" {
		name = DefaultSessionName
	}
	return &WorkoutSession{
		ID:          uuid.New(),
		SessionName: name,
		WorkoutDate: date,
		CreatedAt:   time.Now().UTC(),
	}
}

// ExerciseLog is a single movement within a session. All metrics are
// optional and independent of the category.
type ExerciseLog struct {
	ID              uuid.UUID `json:"id" yaml:"id"`
	SessionID       uuid.UUID `json:"session_id" yaml:"session_id"`
	ExerciseName    string    `json:"exercise_name" yaml:"exercise_name"`
	Category        string    `json:"category" yaml:"category"`
	DurationMinutes *int      `json:"duration_minutes" yaml:"duration_minutes,omitempty"`
	Sets            *int      `json:"sets" yaml:"sets,omitempty"`
	Reps            *int      `json:"reps" yaml:"reps,omitempty"`
	WeightKg        *float64  `json:"weight_kg" yaml:"weight_kg,omitempty"`
	DistanceKm      *float64  `json:"distance_km" yaml:"distance_km,omitempty"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// NewExerciseLog creates a new ExerciseLog. SessionID is assigned when the
// owning session is resolved.
func NewExerciseLog(name, category string) *ExerciseLog {
	return &ExerciseLog{
		ID:           uuid.New(),
		ExerciseName: name,
		Category:     category,
		CreatedAt:    time.Now().UTC(),
	}
}

// WithDuration sets the duration in minutes.
func (e *ExerciseLog) WithDuration(minutes int) *ExerciseLog {
	e.DurationMinutes = &minutes
	return e
}

// WithSetsReps sets the strength metrics.
func (e *ExerciseLog) WithSetsReps(sets, reps int) *ExerciseLog {
	e.Sets = &sets
	e.Reps = &reps
	return e
}

// WithWeight sets the load in kilograms.
func (e *ExerciseLog) WithWeight(kg float64) *ExerciseLog {
	e.WeightKg = &kg
	return e
}

// WithDistance sets the distance in kilometres.
func (e *ExerciseLog) WithDistance(km float64) *ExerciseLog {
	e.DistanceKm = &km
	return e
}
