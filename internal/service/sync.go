package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Qodor04/gula-cli/internal/provider/sheetsync"
)

type SyncPullReport struct {
	Pulled  int
	Import  *ImportReport
	Warning string
}

// SyncPush uploads the full local archive to the configured remote backend.
// A push failure is reported to the caller; the local archive is already
// durable and is never rolled back.
func SyncPush(ctx context.Context, db *sql.DB, client *sheetsync.Client) (int, error) {
	history, err := History(db)
	if err != nil {
		return 0, err
	}
	records := make([]sheetsync.Record, 0, len(history))
	for _, r := range history {
		records = append(records, sheetsync.Record{
			Date:               r.Date,
			TotalSugarG:        r.TotalSugarG,
			GovernmentalLimitG: r.GovernmentalLimitG,
			AssociationLimitG:  r.AssociationLimitG,
		})
	}
	if err := client.Push(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// SyncPull merges the remote archive into the local one. Remote failures
// degrade to an empty pull with a warning; local records always win over
// remote ones for the same date.
func SyncPull(ctx context.Context, db *sql.DB, client *sheetsync.Client) (*SyncPullReport, error) {
	report := &SyncPullReport{Import: &ImportReport{}}

	remote, err := client.Pull(ctx)
	if err != nil {
		report.Warning = fmt.Sprintf("remote history unavailable, continuing with local data: %v", err)
		return report, nil
	}

	records := make([]ExportRecord, 0, len(remote))
	for _, r := range remote {
		records = append(records, ExportRecord{
			Date:               r.Date,
			TotalSugarG:        r.TotalSugarG,
			GovernmentalLimitG: r.GovernmentalLimitG,
			AssociationLimitG:  r.AssociationLimitG,
		})
	}
	imported, err := ImportHistory(db, records, ImportModeSkip)
	if err != nil {
		report.Warning = fmt.Sprintf("remote history malformed, continuing with local data: %v", err)
		return report, nil
	}
	report.Pulled = len(records)
	report.Import = imported
	return report, nil
}
