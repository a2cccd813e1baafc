package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type ExportProfile struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	Sex      string  `json:"sex"`
	WeightKg float64 `json:"weight_kg"`
	Category string  `json:"category"`
}

type ExportRecord struct {
	Date               string  `json:"date"`
	TotalSugarG        float64 `json:"total_sugar_g"`
	GovernmentalLimitG float64 `json:"governmental_limit_g"`
	AssociationLimitG  float64 `json:"association_limit_g"`
}

type ExportEvent struct {
	FoodKey    string  `json:"food_key"`
	FoodName   string  `json:"food_name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	SugarG     float64 `json:"sugar_g"`
	ConsumedAt string  `json:"consumed_at"`
}

type ExportData struct {
	Profile     *ExportProfile `json:"profile,omitempty"`
	History     []ExportRecord `json:"history"`
	TodayEvents []ExportEvent  `json:"today_events"`
}

type ImportMode string

const (
	ImportModeSkip    ImportMode = "skip"
	ImportModeReplace ImportMode = "replace"
)

type ImportReport struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

// ExportSnapshot captures the profile, the archive, and the current day's
// ledger as a portable snapshot.
func ExportSnapshot(db *sql.DB) (*ExportData, error) {
	out := &ExportData{History: []ExportRecord{}, TodayEvents: []ExportEvent{}}

	profile, err := CurrentProfile(db)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		out.Profile = &ExportProfile{
			Name:     profile.Name,
			Age:      profile.Age,
			Sex:      profile.Sex,
			WeightKg: profile.WeightKg,
			Category: profile.Category,
		}
	}

	history, err := History(db)
	if err != nil {
		return nil, err
	}
	for _, r := range history {
		out.History = append(out.History, ExportRecord{
			Date:               r.Date,
			TotalSugarG:        r.TotalSugarG,
			GovernmentalLimitG: r.GovernmentalLimitG,
			AssociationLimitG:  r.AssociationLimitG,
		})
	}

	events, err := ListDay(db, "")
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		out.TodayEvents = append(out.TodayEvents, ExportEvent{
			FoodKey:    e.FoodKey,
			FoodName:   e.FoodName,
			Quantity:   e.Quantity,
			Unit:       e.Unit,
			SugarG:     e.SugarG,
			ConsumedAt: e.ConsumedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// ImportHistory merges archived records into the local archive. Mode "skip"
// keeps existing dates, "replace" overwrites them. Malformed records are hard
// errors; nothing is partially applied.
func ImportHistory(db *sql.DB, records []ExportRecord, mode ImportMode) (*ImportReport, error) {
	switch mode {
	case ImportModeSkip, ImportModeReplace:
	case "":
		mode = ImportModeSkip
	default:
		return nil, fmt.Errorf("invalid import mode %q (expected skip or replace)", mode)
	}

	for _, r := range records {
		if _, err := time.Parse(dateLayout, strings.TrimSpace(r.Date)); err != nil {
			return nil, fmt.Errorf("invalid record date %q (expected YYYY-MM-DD)", r.Date)
		}
		if r.TotalSugarG < 0 || r.GovernmentalLimitG <= 0 || r.AssociationLimitG < 0 {
			return nil, fmt.Errorf("invalid record for %s: totals and limits must be non-negative, governmental limit positive", r.Date)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin import tx: %w", err)
	}

	report := &ImportReport{}
	for _, r := range records {
		date := strings.TrimSpace(r.Date)
		existing, err := recordExists(tx, date)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		if existing && mode == ImportModeSkip {
			report.Skipped++
			continue
		}
		if _, err := tx.Exec(`
INSERT INTO daily_records(date, total_sugar_g, governmental_limit_g, association_limit_g, archived_at)
VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(date) DO UPDATE SET
  total_sugar_g=excluded.total_sugar_g,
  governmental_limit_g=excluded.governmental_limit_g,
  association_limit_g=excluded.association_limit_g,
  archived_at=excluded.archived_at
`, date, round2(r.TotalSugarG), r.GovernmentalLimitG, r.AssociationLimitG); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("import record for %s: %w", date, err)
		}
		if existing {
			report.Updated++
		} else {
			report.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import tx: %w", err)
	}
	return report, nil
}

func recordExists(tx *sql.Tx, date string) (bool, error) {
	var one int
	err := tx.QueryRow(`SELECT 1 FROM daily_records WHERE date = ?`, date).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check record for %s: %w", date, err)
	}
	return true, nil
}
