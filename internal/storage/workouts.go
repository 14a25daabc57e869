// ABOUTME: WorkoutSession and ExerciseLog operations for relational storage.
// ABOUTME: Find-or-create of sessions is atomic via the unique (date, name) index.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/lifeos/internal/models"
)

const (
	sessionColumns  = `id, session_name, workout_date, created_at`
	exerciseColumns = `id, session_id, exercise_name, category, duration_minutes, sets, reps, weight_kg, distance_km, created_at`
)

// LogExercise resolves the session for (date, sessionName), creating it if
// absent, and stores ex under it. Both steps share one transaction.
func (d *DB) LogExercise(ctx context.Context, date models.Date, sessionName string, ex *models.ExerciseLog) (*models.WorkoutSession, error) {
	var ws *models.WorkoutSession

	err := d.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		ws, err = d.findOrCreateSession(ctx, tx, models.NewWorkoutSession(sessionName, date))
		if err != nil {
			return err
		}

		ex.SessionID = ws.ID
		return d.createExercise(ctx, tx, ex)
	})
	if err != nil {
		return nil, err
	}

	return ws, nil
}

// findOrCreateSession inserts candidate unless a session with the same date
// and name exists, then returns whichever row owns that pair.
func (d *DB) findOrCreateSession(ctx context.Context, q queryer, candidate *models.WorkoutSession) (*models.WorkoutSession, error) {
	insert := `
		INSERT INTO workout_sessions (id, session_name, workout_date, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (workout_date, session_name) DO NOTHING
	`
	_, err := q.ExecContext(ctx, d.rebind(insert),
		candidate.ID.String(),
		candidate.SessionName,
		candidate.WorkoutDate.String(),
		formatTimestamp(candidate.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("create workout session: %w", err)
	}

	ws, err := d.findSession(ctx, q, candidate.WorkoutDate, candidate.SessionName)
	if err != nil {
		return nil, fmt.Errorf("resolve workout session: %w", err)
	}
	return ws, nil
}

// findSession looks up the session for an exact (date, name) pair.
func (d *DB) findSession(ctx context.Context, q queryer, date models.Date, sessionName string) (*models.WorkoutSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM workout_sessions WHERE workout_date = ? AND session_name = ?`
	ws, err := scanSession(q.QueryRowContext(ctx, d.rebind(query), date.String(), sessionName))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session %q on %s: %w", sessionName, date, ErrNotFound)
		}
		return nil, fmt.Errorf("find workout session: %w", err)
	}
	return ws, nil
}

// ListSessions retrieves sessions in range with their exercises attached.
// Sessions are ordered by date then name; exercises by insertion.
func (d *DB) ListSessions(ctx context.Context, r DateRange) ([]*models.WorkoutSession, error) {
	conds, args := r.conditions("workout_date", nil, nil)
	query := `SELECT ` + sessionColumns + ` FROM workout_sessions` + whereClause(conds) +
		` ORDER BY workout_date ASC, session_name ASC`

	rows, err := d.db.QueryContext(ctx, d.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list workout sessions: %w", err)
	}

	var sessions []*models.WorkoutSession
	byID := make(map[uuid.UUID]*models.WorkoutSession)
	for rows.Next() {
		ws, err := scanSession(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("list workout sessions: %w", err)
		}
		ws.Exercises = []models.ExerciseLog{}
		sessions = append(sessions, ws)
		byID[ws.ID] = ws
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("list workout sessions: %w", err)
	}
	rows.Close()

	if len(sessions) == 0 {
		return sessions, nil
	}

	// One join fetches every child in range instead of a query per session.
	exConds, exArgs := r.conditions("s.workout_date", nil, nil)
	exQuery := `SELECT e.id, e.session_id, e.exercise_name, e.category, e.duration_minutes,
			e.sets, e.reps, e.weight_kg, e.distance_km, e.created_at
		FROM exercise_logs e
		JOIN workout_sessions s ON s.id = e.session_id` + whereClause(exConds) +
		` ORDER BY e.created_at ASC, e.id ASC`

	exRows, err := d.db.QueryContext(ctx, d.rebind(exQuery), exArgs...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		ex, err := scanExercise(exRows)
		if err != nil {
			return nil, fmt.Errorf("list exercises: %w", err)
		}
		if ws, ok := byID[ex.SessionID]; ok {
			ws.Exercises = append(ws.Exercises, *ex)
		}
	}

	return sessions, exRows.Err()
}

// GetExercise retrieves an exercise log by ID.
func (d *DB) GetExercise(ctx context.Context, id uuid.UUID) (*models.ExerciseLog, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercise_logs WHERE id = ?`
	ex, err := scanExercise(d.db.QueryRowContext(ctx, d.rebind(query), id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return ex, nil
}

// DeleteExercise removes a single exercise. The owning session is kept
// even when this was its last exercise.
func (d *DB) DeleteExercise(ctx context.Context, id uuid.UUID) error {
	result, err := d.db.ExecContext(ctx, d.rebind("DELETE FROM exercise_logs WHERE id = ?"), id.String())
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}

	return nil
}

// SumExercises totals duration and distance of exercises whose session
// falls in range. Absent metrics are skipped; no rows yields zeros.
func (d *DB) SumExercises(ctx context.Context, r DateRange) (*WorkoutTotals, error) {
	conds, args := r.conditions("s.workout_date", nil, nil)
	query := `SELECT COALESCE(SUM(e.duration_minutes), 0), COALESCE(SUM(e.distance_km), 0)
		FROM exercise_logs e
		JOIN workout_sessions s ON s.id = e.session_id` + whereClause(conds)

	var totals WorkoutTotals
	err := d.db.QueryRowContext(ctx, d.rebind(query), args...).Scan(&totals.DurationMinutes, &totals.DistanceKm)
	if err != nil {
		return nil, fmt.Errorf("sum exercises: %w", err)
	}
	return &totals, nil
}

func (d *DB) createSession(ctx context.Context, q queryer, ws *models.WorkoutSession) error {
	query := `
		INSERT INTO workout_sessions (id, session_name, workout_date, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := q.ExecContext(ctx, d.rebind(query),
		ws.ID.String(),
		ws.SessionName,
		ws.WorkoutDate.String(),
		formatTimestamp(ws.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create workout session: %w", err)
	}
	return nil
}

func (d *DB) createExercise(ctx context.Context, q queryer, ex *models.ExerciseLog) error {
	query := `
		INSERT INTO exercise_logs (id, session_id, exercise_name, category,
			duration_minutes, sets, reps, weight_kg, distance_km, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := q.ExecContext(ctx, d.rebind(query),
		ex.ID.String(),
		ex.SessionID.String(),
		ex.ExerciseName,
		ex.Category,
		ex.DurationMinutes,
		ex.Sets,
		ex.Reps,
		ex.WeightKg,
		ex.DistanceKm,
		formatTimestamp(ex.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

func scanSession(row rowScanner) (*models.WorkoutSession, error) {
	var ws models.WorkoutSession
	var createdAt timestamp

	if err := row.Scan(&ws.ID, &ws.SessionName, &ws.WorkoutDate, &createdAt); err != nil {
		return nil, err
	}
	ws.CreatedAt = createdAt.t

	return &ws, nil
}

func scanExercise(row rowScanner) (*models.ExerciseLog, error) {
	var ex models.ExerciseLog
	var duration, sets, reps sql.NullInt64
	var weight, distance sql.NullFloat64
	var createdAt timestamp

	err := row.Scan(&ex.ID, &ex.SessionID, &ex.ExerciseName, &ex.Category,
		&duration, &sets, &reps, &weight, &distance, &createdAt)
	if err != nil {
		return nil, err
	}

	ex.DurationMinutes = nullInt(duration)
	ex.Sets = nullInt(sets)
	ex.Reps = nullInt(reps)
	ex.WeightKg = nullFloat(weight)
	ex.DistanceKm = nullFloat(distance)
	ex.CreatedAt = createdAt.t

	return &ex, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
