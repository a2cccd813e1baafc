package service_test

import (
	"testing"
	"time"

	"github.com/Qodor04/gula-cli/internal/service"
)

func TestArchiveDayWritesRecordAndClearsLedger(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()
	saveAdultMaleProfile(t, sqldb)

	day := time.Date(2026, 8, 29, 8, 0, 0, 0, time.Local)
	// teh manis 1 gelas = 20.00, gula merah 1 sendok makan = 85*15/100 = 12.75
	addIntakeAt(t, sqldb, "teh manis", 1, "gelas", day)
	addIntakeAt(t, sqldb, "gula merah", 1, "sendok makan", day.Add(time.Hour))

	result, err := service.ArchiveDay(sqldb, "2026-08-29")
	if err != nil {
		t.Fatalf("archive day: %v", err)
	}
	if !result.Archived || result.Record == nil {
		t.Fatalf("expected archived record, got %+v", result)
	}
	if result.Record.TotalSugarG != 32.75 {
		t.Fatalf("archived total = %g, want 32.75", result.Record.TotalSugarG)
	}
	if result.Record.GovernmentalLimitG != 50 || result.Record.AssociationLimitG != 36 {
		t.Fatalf("archived limits = %g/%g, want 50/36", result.Record.GovernmentalLimitG, result.Record.AssociationLimitG)
	}
	if result.ClearedEvents != 2 {
		t.Fatalf("cleared %d events, want 2", result.ClearedEvents)
	}

	events, err := service.ListDay(sqldb, "2026-08-29")
	if err != nil {
		t.Fatalf("list day: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("ledger should be empty after archive, got %d events", len(events))
	}
}

func TestArchiveDayScenarioTotals(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()
	saveAdultMaleProfile(t, sqldb)

	day := time.Date(2026, 8, 29, 8, 0, 0, 0, time.Local)
	// gula pasir is 100 g sugar per 100 g, so gram quantities map 1:1.
	addIntakeAt(t, sqldb, "gula pasir", 20, "gram", day)
	addIntakeAt(t, sqldb, "gula pasir", 15.5, "gram", day.Add(time.Hour))
	addIntakeAt(t, sqldb, "gula pasir", 5.25, "gram", day.Add(2*time.Hour))

	result, err := service.ArchiveDay(sqldb, "2026-08-29")
	if err != nil {
		t.Fatalf("archive day: %v", err)
	}
	if result.Record.TotalSugarG != 40.75 {
		t.Fatalf("archived total = %g, want 40.75", result.Record.TotalSugarG)
	}
	if result.Record.GovernmentalLimitG != 50 || result.Record.AssociationLimitG != 36 {
		t.Fatalf("archived limits = %g/%g, want 50/36", result.Record.GovernmentalLimitG, result.Record.AssociationLimitG)
	}
	events, err := service.ListDay(sqldb, "2026-08-29")
	if err != nil {
		t.Fatalf("list day: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("ledger should be empty after archive, got %d events", len(events))
	}
}

func TestArchiveDayZeroIntakeWritesNothingButClears(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()
	saveAdultMaleProfile(t, sqldb)

	result, err := service.ArchiveDay(sqldb, "2026-08-29")
	if err != nil {
		t.Fatalf("archive day: %v", err)
	}
	if result.Archived || result.Record != nil {
		t.Fatalf("zero-intake day must not be archived, got %+v", result)
	}
	record, err := service.RecordForDate(sqldb, "2026-08-29")
	if err != nil {
		t.Fatalf("record for date: %v", err)
	}
	if record != nil {
		t.Fatalf("no record should exist for an empty day, got %+v", record)
	}
}

func TestArchiveDayWithoutProfileSkipsRecordButClears(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	// Seed a ledger row directly: AddIntake would refuse without a profile.
	if _, err := sqldb.Exec(`
INSERT INTO intake_events(food_key, food_name, quantity, unit, sugar_g, consumed_at)
VALUES('apel', 'Apel', 1, 'buah', 18.72, ?)
`, time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local).Format(time.RFC3339)); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	result, err := service.ArchiveDay(sqldb, "2026-08-29")
	if err != nil {
		t.Fatalf("archive day: %v", err)
	}
	if result.Archived {
		t.Fatalf("archive without profile should skip the record")
	}
	if result.ClearedEvents != 1 {
		t.Fatalf("ledger must be cleared even when archival is skipped, cleared %d", result.ClearedEvents)
	}
}

func TestReArchiveOverwritesSameDate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()
	saveAdultMaleProfile(t, sqldb)

	day := time.Date(2026, 8, 29, 8, 0, 0, 0, time.Local)
	addIntakeAt(t, sqldb, "teh manis", 1, "gelas", day)
	if _, err := service.ArchiveDay(sqldb, "2026-08-29"); err != nil {
		t.Fatalf("first archive: %v", err)
	}

	addIntakeAt(t, sqldb, "apel", 1, "buah", day.Add(2*time.Hour))
	if _, err := service.ArchiveDay(sqldb, "2026-08-29"); err != nil {
		t.Fatalf("second archive: %v", err)
	}

	history, err := service.History(sqldb)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("re-archiving must overwrite, got %d records", len(history))
	}
	if history[0].TotalSugarG != 18.72 {
		t.Fatalf("overwritten total = %g, want 18.72", history[0].TotalSugarG)
	}
}

func TestHistorySortedAscendingByDate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()
	saveAdultMaleProfile(t, sqldb)

	for _, date := range []string{"2026-08-29", "2026-08-27", "2026-08-28"} {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			t.Fatalf("parse %s: %v", date, err)
		}
		addIntakeAt(t, sqldb, "apel", 1, "buah", day.Add(10*time.Hour))
		if _, err := service.ArchiveDay(sqldb, date); err != nil {
			t.Fatalf("archive %s: %v", date, err)
		}
	}

	history, err := service.History(sqldb)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 records, got %d", len(history))
	}
	for i, want := range []string{"2026-08-27", "2026-08-28", "2026-08-29"} {
		if history[i].Date != want {
			t.Fatalf("history[%d].Date = %s, want %s", i, history[i].Date, want)
		}
	}
}

func TestHistoryRangeFiltersByDate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()
	saveAdultMaleProfile(t, sqldb)

	for _, date := range []string{"2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28"} {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			t.Fatalf("parse %s: %v", date, err)
		}
		addIntakeAt(t, sqldb, "apel", 1, "buah", day.Add(10*time.Hour))
		if _, err := service.ArchiveDay(sqldb, date); err != nil {
			t.Fatalf("archive %s: %v", date, err)
		}
	}

	records, err := service.HistoryRange(sqldb, service.HistoryFilter{
		FromDate: "2026-08-26",
		ToDate:   "2026-08-27",
	})
	if err != nil {
		t.Fatalf("history range: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records in range, got %d", len(records))
	}
	if records[0].Date != "2026-08-26" || records[1].Date != "2026-08-27" {
		t.Fatalf("range bounds are inclusive, got %s..%s", records[0].Date, records[1].Date)
	}

	fromOnly, err := service.HistoryRange(sqldb, service.HistoryFilter{FromDate: "2026-08-27"})
	if err != nil {
		t.Fatalf("history from: %v", err)
	}
	if len(fromOnly) != 2 || fromOnly[0].Date != "2026-08-27" {
		t.Fatalf("open-ended upper bound: got %d records starting %s", len(fromOnly), fromOnly[0].Date)
	}

	if _, err := service.HistoryRange(sqldb, service.HistoryFilter{FromDate: "27/08/2026"}); err == nil {
		t.Fatalf("expected error for malformed from date")
	}
}

func TestHistoryReportsMalformedArchivedAt(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	if _, err := sqldb.Exec(`
INSERT INTO daily_records(date, total_sugar_g, governmental_limit_g, association_limit_g, archived_at)
VALUES('2026-08-29', 32.75, 50, 36, 'not-a-timestamp')
`); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	if _, err := service.History(sqldb); err == nil {
		t.Fatalf("expected error for unparseable archived_at")
	}
	if _, err := service.RecordForDate(sqldb, "2026-08-29"); err == nil {
		t.Fatalf("expected error for unparseable archived_at")
	}
}
