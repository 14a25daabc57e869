// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides isolated per-test SQLite stores and date helpers.
package storage

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "lifeos.db"))
	require.NoError(t, err, "open database")
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func dateRange(t *testing.T, from, to string) DateRange {
	t.Helper()
	return DateRange{From: mustDate(t, from), To: mustDate(t, to)}
}
