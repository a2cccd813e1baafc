package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Qodor04/gula-cli/internal/model"
)

type ArchiveResult struct {
	Archived      bool
	Record        *model.DailyRecord
	ClearedEvents int64
}

// ArchiveDay closes out a day: it folds the ledger total and the limits in
// effect into a daily record, then clears the ledger. A day with zero intake
// or no saved profile is reset without writing a record. Archiving the same
// date again overwrites the earlier record.
func ArchiveDay(db *sql.DB, date string) (*ArchiveResult, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	total, err := DayTotal(db, date)
	if err != nil {
		return nil, err
	}
	profile, err := CurrentProfile(db)
	if err != nil {
		return nil, err
	}

	result := &ArchiveResult{}
	if total > 0 && profile != nil {
		limits := ResolveLimits(profile)
		association := 0.0
		if limits.AssociationKnown {
			association = limits.AssociationG
		}
		if _, err := db.Exec(`
INSERT INTO daily_records(date, total_sugar_g, governmental_limit_g, association_limit_g, archived_at)
VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(date) DO UPDATE SET
  total_sugar_g=excluded.total_sugar_g,
  governmental_limit_g=excluded.governmental_limit_g,
  association_limit_g=excluded.association_limit_g,
  archived_at=excluded.archived_at
`, date, total, limits.GovernmentalG, association); err != nil {
			return nil, fmt.Errorf("archive day %s: %w", date, err)
		}
		result.Archived = true
		record, err := RecordForDate(db, date)
		if err != nil {
			return nil, err
		}
		result.Record = record
	}

	cleared, err := ClearDay(db, date)
	if err != nil {
		return nil, err
	}
	result.ClearedEvents = cleared
	return result, nil
}

type HistoryFilter struct {
	FromDate string
	ToDate   string
}

// History returns every archived day, ascending by date.
func History(db *sql.DB) ([]model.DailyRecord, error) {
	return HistoryRange(db, HistoryFilter{})
}

// HistoryRange returns archived days within the filter's inclusive date
// bounds, ascending by date. Empty bounds are open-ended.
func HistoryRange(db *sql.DB, filter HistoryFilter) ([]model.DailyRecord, error) {
	query := `
SELECT date, total_sugar_g, governmental_limit_g, association_limit_g, archived_at
FROM daily_records
`
	var conditions []string
	var args []any
	if filter.FromDate != "" {
		if _, err := time.Parse(dateLayout, filter.FromDate); err != nil {
			return nil, fmt.Errorf("invalid from date %q (expected YYYY-MM-DD)", filter.FromDate)
		}
		conditions = append(conditions, "date >= ?")
		args = append(args, filter.FromDate)
	}
	if filter.ToDate != "" {
		if _, err := time.Parse(dateLayout, filter.ToDate); err != nil {
			return nil, fmt.Errorf("invalid to date %q (expected YYYY-MM-DD)", filter.ToDate)
		}
		conditions = append(conditions, "date <= ?")
		args = append(args, filter.ToDate)
	}
	if len(conditions) > 0 {
		query += "WHERE " + strings.Join(conditions, " AND ") + "\n"
	}
	query += "ORDER BY date ASC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily records: %w", err)
	}
	defer rows.Close()

	records := make([]model.DailyRecord, 0)
	for rows.Next() {
		r, err := scanDailyRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily records: %w", err)
	}
	return records, nil
}

// RecordForDate returns the archived record for a date, or nil when absent.
func RecordForDate(db *sql.DB, date string) (*model.DailyRecord, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	row := db.QueryRow(`
SELECT date, total_sugar_g, governmental_limit_g, association_limit_g, archived_at
FROM daily_records
WHERE date = ?
`, date)
	r, err := scanDailyRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func scanDailyRecord(scan func(...any) error) (*model.DailyRecord, error) {
	var r model.DailyRecord
	var archivedAtRaw string
	if err := scan(&r.Date, &r.TotalSugarG, &r.GovernmentalLimitG, &r.AssociationLimitG, &archivedAtRaw); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan daily record: %w", err)
	}
	t, err := time.Parse("2006-01-02 15:04:05", archivedAtRaw)
	if err != nil {
		return nil, fmt.Errorf("parse archived_at for record %s: %w", r.Date, err)
	}
	r.ArchivedAt = t
	return &r, nil
}
