// ABOUTME: Schema definition and initialization for both dialects.
// ABOUTME: Defines expenses, workout_sessions (parent) and exercise_logs (child).
package storage

import (
	"context"
	"fmt"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		amount REAL NOT NULL,
		category TEXT NOT NULL,
		description TEXT,
		transaction_date TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS workout_sessions (
		id TEXT PRIMARY KEY,
		session_name TEXT NOT NULL,
		workout_date TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS exercise_logs (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES workout_sessions(id),
		exercise_name TEXT NOT NULL,
		category TEXT NOT NULL,
		duration_minutes INTEGER,
		sets INTEGER,
		reps INTEGER,
		weight_kg REAL,
		distance_km REAL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_transaction_date ON expenses(transaction_date)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_workout_sessions_date_name ON workout_sessions(workout_date, session_name)`,
	`CREATE INDEX IF NOT EXISTS idx_exercise_logs_session ON exercise_logs(session_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS expenses (
		id UUID PRIMARY KEY,
		amount DOUBLE PRECISION NOT NULL,
		category VARCHAR(50) NOT NULL,
		description TEXT,
		transaction_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS workout_sessions (
		id UUID PRIMARY KEY,
		session_name VARCHAR(100) NOT NULL,
		workout_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS exercise_logs (
		id UUID PRIMARY KEY,
		session_id UUID NOT NULL REFERENCES workout_sessions(id),
		exercise_name VARCHAR(100) NOT NULL,
		category VARCHAR(50) NOT NULL,
		duration_minutes INTEGER,
		sets INTEGER,
		reps INTEGER,
		weight_kg DOUBLE PRECISION,
		distance_km DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_transaction_date ON expenses(transaction_date)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_workout_sessions_date_name ON workout_sessions(workout_date, session_name)`,
	`CREATE INDEX IF NOT EXISTS idx_exercise_logs_session ON exercise_logs(session_id)`,
}

// initSchema creates the tables and indexes if they do not exist.
func (d *DB) initSchema(ctx context.Context) error {
	stmts := sqliteSchema
	if d.dialect == dialectPostgres {
		stmts = postgresSchema
	}
	for _, stmt := range stmts {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute schema: %w", err)
		}
	}
	return nil
}
