// ABOUTME: Tests for Expense, WorkoutSession, ExerciseLog and Date.
// ABOUTME: Validates constructors, builders, and date parsing/scanning.
package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-05-01", false},
		{"2024-02-29", false},
		{"2023-02-29", true},
		{"2024-5-1", true},
		{"05/01/2024", true},
		{"", true},
		{"2024-05-01T10:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, d.String())
		})
	}
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2024-06-01"))
	assert.Equal(t, "2024-06-01", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-02")))
	assert.Equal(t, "2024-06-02", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-06-03", d.String())

	require.NoError(t, d.Scan("2024-06-04T00:00:00Z"))
	assert.Equal(t, "2024-06-04", d.String())

	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("not a date"))
}

func TestDateOrdering(t *testing.T) {
	a, _ := ParseDate("2024-01-01")
	b := a.AddDays(1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, "2024-01-02", b.String())
}

func TestDateJSON(t *testing.T) {
	d, _ := ParseDate("2024-05-01")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-05-01"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}

func TestNewExpense(t *testing.T) {
	d, _ := ParseDate("2024-05-01")
	e := NewExpense(20.0, "Transport", d).WithDescription("gas")

	assert.NotEmpty(t, e.ID.String())
	assert.Equal(t, 20.0, e.Amount)
	assert.Equal(t, "Transport", e.Category)
	require.NotNil(t, e.Description)
	assert.Equal(t, "gas", *e.Description)
	assert.False(t, e.CreatedAt.IsZero())

	e.WithDescription("")
	assert.Nil(t, e.Description)
}

func TestNewWorkoutSessionDefaultName(t *testing.T) {
	d, _ := ParseDate("2024-06-01")

	assert.Equal(t, DefaultSessionName, NewWorkoutSession("", d).SessionName)
	assert.Equal(t, "Morning Run", NewWorkoutSession("Morning Run", d).SessionName)
}

func TestExerciseLogBuilders(t *testing.T) {
	ex := NewExerciseLog("Bench Press", "Strength").
		WithSetsReps(3, 8).
		WithWeight(80).
		WithDuration(20)

	require.NotNil(t, ex.Sets)
	require.NotNil(t, ex.Reps)
	require.NotNil(t, ex.WeightKg)
	require.NotNil(t, ex.DurationMinutes)
	assert.Equal(t, 3, *ex.Sets)
	assert.Equal(t, 8, *ex.Reps)
	assert.Equal(t, 80.0, *ex.WeightKg)
	assert.Equal(t, 20, *ex.DurationMinutes)
	assert.Nil(t, ex.DistanceKm)
}
