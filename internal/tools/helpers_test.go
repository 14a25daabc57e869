// ABOUTME: Shared fixtures for tool tests.
// ABOUTME: Each test gets its own SQLite store in a temp directory.
package tools

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/lifeos/internal/logger"
	"github.com/harperreed/lifeos/internal/storage"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*Service, *storage.DB) {
	t.Helper()
	logger.Init("test")

	db, err := storage.Open(filepath.Join(t.TempDir(), "lifeos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewService(db), db
}

func setupRegistry(t *testing.T) (*Registry, *storage.DB) {
	t.Helper()
	svc, db := setupService(t)

	reg, err := NewRegistry(svc)
	require.NoError(t, err)
	return reg, db
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }
