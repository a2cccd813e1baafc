package service

import (
	"database/sql"

	"github.com/Qodor04/gula-cli/internal/model"
)

type DayStatus struct {
	Date                   string              `json:"date"`
	TotalSugarG            float64             `json:"total_sugar_g"`
	Events                 []model.IntakeEvent `json:"events"`
	Limits                 Limits              `json:"limits"`
	OverGovernmental       bool                `json:"over_governmental"`
	OverAssociation        bool                `json:"over_association"`
	RemainingGovernmentalG float64             `json:"remaining_governmental_g"`
	RemainingAssociationG  float64             `json:"remaining_association_g,omitempty"`
	HasProfile             bool                `json:"has_profile"`
}

// DaySummary composes the ledger total with the limits in effect for a
// day-report view.
func DaySummary(db *sql.DB, date string) (*DayStatus, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	events, err := ListDay(db, date)
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

	limits := ResolveLimits(profile)
	status := &DayStatus{
		Date:                   date,
		TotalSugarG:            total,
		Events:                 events,
		Limits:                 limits,
		HasProfile:             profile != nil,
		OverGovernmental:       total > limits.GovernmentalG,
		RemainingGovernmentalG: round2(limits.GovernmentalG - total),
	}
	if limits.AssociationKnown {
		status.OverAssociation = total > limits.AssociationG
		status.RemainingAssociationG = round2(limits.AssociationG - total)
	}
	return status, nil
}

// Greeting picks the Indonesian time-of-day salutation for an hour of the day.
func Greeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Selamat Pagi"
	case hour >= 12 && hour < 15:
		return "Selamat Siang"
	case hour >= 15 && hour < 19:
		return "Selamat Sore"
	default:
		return "Selamat Malam"
	}
}
