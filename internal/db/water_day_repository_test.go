package db

import (
	"path/filepath"
	"testing"

	"github.com/patrykmns/droply/internal/models"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "droply-db-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return NewRepositories(database)
}

func TestWaterDayFindMissingDate(t *testing.T) {
	repos := newTestRepositories(t)

	_, found, err := repos.WaterDays.FindByDate("2025-03-10")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found {
		t.Fatal("expected no row for unrecorded date")
	}
}

func TestWaterDayUpsertReplacesAmount(t *testing.T) {
	repos := newTestRepositories(t)

	if err := repos.WaterDays.Upsert(&models.WaterDay{Date: "2025-03-10", Amount: 250}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := repos.WaterDays.Upsert(&models.WaterDay{Date: "2025-03-10", Amount: 500}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	entry, found, err := repos.WaterDays.FindByDate("2025-03-10")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !found {
		t.Fatal("expected row after upsert")
	}
	if entry.Amount != 500 {
		t.Fatalf("expected replaced amount 500, got %d", entry.Amount)
	}
}

func TestWaterDayListRecentNewestFirst(t *testing.T) {
	repos := newTestRepositories(t)

	for _, day := range []models.WaterDay{
		{Date: "2025-03-08", Amount: 2000},
		{Date: "2025-03-10", Amount: 500},
		{Date: "2025-03-09", Amount: 1800},
	} {
		entry := day
		if err := repos.WaterDays.Upsert(&entry); err != nil {
			t.Fatalf("seed %s: %v", day.Date, err)
		}
	}

	recent, err := repos.WaterDays.ListRecent(2)
	if err != nil {
		t.Fatalf("list recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(recent))
	}
	if recent[0].Date != "2025-03-10" || recent[1].Date != "2025-03-09" {
		t.Fatalf("expected newest first, got %s then %s", recent[0].Date, recent[1].Date)
	}

	all, err := repos.WaterDays.ListAll()
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(all))
	}
}

func TestPreferenceSetGetDelete(t *testing.T) {
	repos := newTestRepositories(t)

	if _, found, err := repos.Preferences.Get("daily_goal"); err != nil || found {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}

	if err := repos.Preferences.Set("daily_goal", "2000"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := repos.Preferences.Set("daily_goal", "2450"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	value, found, err := repos.Preferences.Get("daily_goal")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !found || value != "2450" {
		t.Fatalf("expected 2450, got %q found=%v", value, found)
	}

	if err := repos.Preferences.Delete("daily_goal"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found, err := repos.Preferences.Get("daily_goal"); err != nil || found {
		t.Fatalf("expected deleted key, found=%v err=%v", found, err)
	}
}
