package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/Qodor04/gula-cli/internal/db"
	"github.com/Qodor04/gula-cli/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gula.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func saveAdultMaleProfile(t *testing.T, sqldb *sql.DB) {
	t.Helper()
	if _, err := service.SaveProfile(sqldb, service.SaveProfileInput{
		Name:     "Budi",
		Age:      30,
		Sex:      "male",
		WeightKg: 70,
	}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
}

func addIntakeAt(t *testing.T, sqldb *sql.DB, food string, qty float64, unit string, consumed time.Time) {
	t.Helper()
	in := service.AddIntakeInput{Food: food, Quantity: qty, Unit: unit, Consumed: consumed}
	if _, err := service.AddIntake(sqldb, in); err != nil {
		t.Fatalf("add intake %s: %v", food, err)
	}
}
