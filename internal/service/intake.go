package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Qodor04/gula-cli/internal/catalog"
	"github.com/Qodor04/gula-cli/internal/model"
)

type AddIntakeInput struct {
	Food     string
	Quantity float64
	Unit     string
	Consumed time.Time
}

// AddIntake converts a reported consumption into grams of sugar and appends it
// to the day's ledger. Recording requires a saved profile.
func AddIntake(db *sql.DB, in AddIntakeInput) (*model.IntakeEvent, error) {
	profile, err := CurrentProfile(db)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoProfile
	}

	food, ok := catalog.Lookup(in.Food)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFood, in.Food)
	}
	mass, err := ConvertToGrams(food, in.Quantity, in.Unit)
	if err != nil {
		return nil, err
	}
	sugar := SugarGrams(food, mass)
	if in.Consumed.IsZero() {
		in.Consumed = time.Now()
	}

	res, err := db.Exec(`
INSERT INTO intake_events(food_key, food_name, quantity, unit, sugar_g, consumed_at)
VALUES(?, ?, ?, ?, ?, ?)
`, food.Key, food.DisplayName(), in.Quantity, normalizeUnit(in.Unit), sugar, in.Consumed.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert intake event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("resolve inserted event id: %w", err)
	}

	return &model.IntakeEvent{
		ID:         id,
		FoodKey:    food.Key,
		FoodName:   food.DisplayName(),
		Quantity:   in.Quantity,
		Unit:       normalizeUnit(in.Unit),
		SugarG:     sugar,
		ConsumedAt: in.Consumed,
	}, nil
}

// ListDay returns the day's events in insertion order.
func ListDay(db *sql.DB, date string) ([]model.IntakeEvent, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	start, end, err := dayBounds(date)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
SELECT id, food_key, food_name, quantity, unit, sugar_g, consumed_at
FROM intake_events
WHERE consumed_at >= ? AND consumed_at < ?
ORDER BY id ASC
`, start, end)
	if err != nil {
		return nil, fmt.Errorf("list intake events: %w", err)
	}
	defer rows.Close()

	events := make([]model.IntakeEvent, 0)
	for rows.Next() {
		var e model.IntakeEvent
		var consumedAtRaw string
		if err := rows.Scan(&e.ID, &e.FoodKey, &e.FoodName, &e.Quantity, &e.Unit, &e.SugarG, &consumedAtRaw); err != nil {
			return nil, fmt.Errorf("scan intake event: %w", err)
		}
		consumedAt, err := time.Parse(time.RFC3339, consumedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse consumed_at for event %d: %w", e.ID, err)
		}
		e.ConsumedAt = consumedAt
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate intake events: %w", err)
	}
	return events, nil
}

// DayTotal sums the day's recorded sugar, 0 when the ledger is empty.
func DayTotal(db *sql.DB, date string) (float64, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return 0, err
	}
	start, end, err := dayBounds(date)
	if err != nil {
		return 0, err
	}
	var total float64
	err = db.QueryRow(`
SELECT IFNULL(SUM(sugar_g), 0) FROM intake_events
WHERE consumed_at >= ? AND consumed_at < ?
`, start, end).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum intake events: %w", err)
	}
	return round2(total), nil
}

// ClearDay deletes the day's ledger and reports how many events were removed.
func ClearDay(db *sql.DB, date string) (int64, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return 0, err
	}
	start, end, err := dayBounds(date)
	if err != nil {
		return 0, err
	}
	res, err := db.Exec(`
DELETE FROM intake_events WHERE consumed_at >= ? AND consumed_at < ?
`, start, end)
	if err != nil {
		return 0, fmt.Errorf("clear intake events: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read cleared event count: %w", err)
	}
	return affected, nil
}
