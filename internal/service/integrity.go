package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Qodor04/gula-cli/internal/catalog"
	"github.com/Qodor04/gula-cli/internal/model"
)

type IntegrityIssue struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// CheckIntegrity scans the database for rows that should not exist under the
// core invariants: negative sugar events, events for foods dropped from the
// catalog, malformed record dates, and profiles with a stale derived category.
func CheckIntegrity(db *sql.DB) ([]IntegrityIssue, error) {
	issues := make([]IntegrityIssue, 0)

	rows, err := db.Query(`SELECT id, food_key, sugar_g FROM intake_events`)
	if err != nil {
		return nil, fmt.Errorf("scan intake events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var foodKey string
		var sugar float64
		if err := rows.Scan(&id, &foodKey, &sugar); err != nil {
			return nil, fmt.Errorf("scan intake event row: %w", err)
		}
		if sugar < 0 {
			issues = append(issues, IntegrityIssue{Kind: "negative_sugar", Detail: fmt.Sprintf("event %d has sugar %g", id, sugar)})
		}
		if _, ok := catalog.Lookup(foodKey); !ok {
			issues = append(issues, IntegrityIssue{Kind: "unknown_food", Detail: fmt.Sprintf("event %d references %q which is not in the catalog", id, foodKey)})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate intake events: %w", err)
	}

	dateRows, err := db.Query(`SELECT date FROM daily_records`)
	if err != nil {
		return nil, fmt.Errorf("scan daily records: %w", err)
	}
	defer dateRows.Close()
	for dateRows.Next() {
		var date string
		if err := dateRows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan daily record date: %w", err)
		}
		if _, err := time.Parse(dateLayout, date); err != nil {
			issues = append(issues, IntegrityIssue{Kind: "malformed_date", Detail: fmt.Sprintf("daily record key %q is not YYYY-MM-DD", date)})
		}
	}
	if err := dateRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily records: %w", err)
	}

	profile, err := CurrentProfile(db)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		if want := DeriveCategory(profile.Age, profile.Sex); profile.Category != want {
			issues = append(issues, IntegrityIssue{Kind: "stale_category", Detail: fmt.Sprintf("profile category %q does not match derived %q", profile.Category, want)})
		}
		if profile.Sex != model.SexMale && profile.Sex != model.SexFemale {
			issues = append(issues, IntegrityIssue{Kind: "invalid_sex", Detail: fmt.Sprintf("profile sex %q is not a known value", profile.Sex)})
		}
	}

	return issues, nil
}
