// ABOUTME: Data migration between lifeos storage backends.
// ABOUTME: Copies expenses, sessions, and exercises from source to destination.

package storage

import (
	"context"
	"fmt"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Expenses  int
	Sessions  int
	Exercises int
}

// MigrateData copies all data from src to dst in one destination
// transaction. Records keep their IDs, so the destination should not already
// hold them. With dryRun set nothing is written and the summary reports what
// would have been copied.
func MigrateData(ctx context.Context, src, dst Repository, dryRun bool) (*MigrateSummary, error) {
	data, err := src.GetAllData(ctx, DateRange{})
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	summary := &MigrateSummary{
		Expenses: len(data.Expenses),
		Sessions: len(data.Sessions),
	}
	for _, ws := range data.Sessions {
		summary.Exercises += len(ws.Exercises)
	}

	if dryRun {
		return summary, nil
	}

	if err := dst.ImportData(ctx, data); err != nil {
		return nil, fmt.Errorf("write destination: %w", err)
	}
	return summary, nil
}
