package service_test

import (
	"testing"
	"time"

	"github.com/Qodor04/gula-cli/internal/service"
)

func TestExportSnapshotRoundTripsHistory(t *testing.T) {
	t.Parallel()
	source := newTestDB(t)
	defer source.Close()
	saveAdultMaleProfile(t, source)

	day := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	addIntakeAt(t, source, "apel", 1, "buah", day)
	if _, err := service.ArchiveDay(source, "2026-08-28"); err != nil {
		t.Fatalf("archive: %v", err)
	}
	addIntakeAt(t, source, "pisang", 1, "buah", time.Now())

	snapshot, err := service.ExportSnapshot(source)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if snapshot.Profile == nil || snapshot.Profile.Name != "Budi" {
		t.Fatalf("expected exported profile, got %+v", snapshot.Profile)
	}
	if len(snapshot.History) != 1 || snapshot.History[0].TotalSugarG != 18.72 {
		t.Fatalf("unexpected exported history: %+v", snapshot.History)
	}
	if len(snapshot.TodayEvents) != 1 || snapshot.TodayEvents[0].FoodKey != "pisang" {
		t.Fatalf("unexpected exported events: %+v", snapshot.TodayEvents)
	}

	target := newTestDB(t)
	defer target.Close()
	report, err := service.ImportHistory(target, snapshot.History, service.ImportModeSkip)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Inserted != 1 || report.Updated != 0 || report.Skipped != 0 {
		t.Fatalf("unexpected import report: %+v", report)
	}

	history, err := service.History(target)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Date != "2026-08-28" || history[0].TotalSugarG != 18.72 ||
		history[0].GovernmentalLimitG != 50 || history[0].AssociationLimitG != 36 {
		t.Fatalf("round trip lost data: %+v", history)
	}
}

func TestImportHistoryModes(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	first := []service.ExportRecord{{Date: "2026-08-28", TotalSugarG: 10, GovernmentalLimitG: 50, AssociationLimitG: 25}}
	if _, err := service.ImportHistory(sqldb, first, service.ImportModeSkip); err != nil {
		t.Fatalf("seed import: %v", err)
	}

	conflicting := []service.ExportRecord{{Date: "2026-08-28", TotalSugarG: 99, GovernmentalLimitG: 50, AssociationLimitG: 36}}

	report, err := service.ImportHistory(sqldb, conflicting, service.ImportModeSkip)
	if err != nil {
		t.Fatalf("skip import: %v", err)
	}
	if report.Skipped != 1 {
		t.Fatalf("expected skip, got %+v", report)
	}
	record, err := service.RecordForDate(sqldb, "2026-08-28")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if record.TotalSugarG != 10 {
		t.Fatalf("skip mode must keep the local record, got %g", record.TotalSugarG)
	}

	report, err = service.ImportHistory(sqldb, conflicting, service.ImportModeReplace)
	if err != nil {
		t.Fatalf("replace import: %v", err)
	}
	if report.Updated != 1 {
		t.Fatalf("expected update, got %+v", report)
	}
	record, err = service.RecordForDate(sqldb, "2026-08-28")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if record.TotalSugarG != 99 {
		t.Fatalf("replace mode must overwrite, got %g", record.TotalSugarG)
	}
}

func TestImportHistoryRejectsMalformedRecords(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	bad := [][]service.ExportRecord{
		{{Date: "29-08-2026", TotalSugarG: 10, GovernmentalLimitG: 50}},
		{{Date: "2026-08-29", TotalSugarG: -1, GovernmentalLimitG: 50}},
		{{Date: "2026-08-29", TotalSugarG: 10, GovernmentalLimitG: 0}},
	}
	for i, records := range bad {
		if _, err := service.ImportHistory(sqldb, records, service.ImportModeSkip); err == nil {
			t.Errorf("case %d: expected error for %+v", i, records)
		}
	}
	history, err := service.History(sqldb)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("failed imports must not write records, got %d", len(history))
	}
}
