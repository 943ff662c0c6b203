package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/patrykmns/droply/internal/models"
	"github.com/patrykmns/droply/internal/services"
	"gorm.io/gorm"
)

func seedWaterDay(t *testing.T, database *gorm.DB, daysAgo int, amount int) string {
	t.Helper()
	date := models.DateKey(time.Now().UTC().AddDate(0, 0, -daysAgo))
	entry := models.WaterDay{Date: date, Amount: amount}
	if err := database.Create(&entry).Error; err != nil {
		t.Fatalf("seed water day %s: %v", date, err)
	}
	return date
}

func TestHistoryDefaultWindow(t *testing.T) {
	app, database := newTestApp(t)
	seedWaterDay(t, database, 1, 1800)
	seedWaterDay(t, database, 3, 2000)

	response := performJSON(t, app, http.MethodGet, "/api/history", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	payload := struct {
		Days []services.DayAmount `json:"days"`
	}{}
	decodeJSONBody(t, response, &payload)
	if len(payload.Days) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(payload.Days))
	}
	for i := 1; i < len(payload.Days); i++ {
		if payload.Days[i-1].Date >= payload.Days[i].Date {
			t.Fatalf("expected oldest-first ordering, got %s before %s", payload.Days[i-1].Date, payload.Days[i].Date)
		}
	}
}

func TestHistoryPadsMissingDays(t *testing.T) {
	app, database := newTestApp(t)
	seeded := seedWaterDay(t, database, 1, 1500)

	response := performJSON(t, app, http.MethodGet, "/api/history?days=3", nil)
	payload := struct {
		Days []services.DayAmount `json:"days"`
	}{}
	decodeJSONBody(t, response, &payload)

	if len(payload.Days) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(payload.Days))
	}
	found := false
	for _, day := range payload.Days {
		if day.Date == seeded {
			found = true
			if day.Amount != 1500 {
				t.Fatalf("expected 1500 on %s, got %d", seeded, day.Amount)
			}
		} else if day.Amount != 0 {
			t.Fatalf("expected zero padding on %s, got %d", day.Date, day.Amount)
		}
	}
	if !found {
		t.Fatalf("seeded day %s missing from window", seeded)
	}
}

func TestHistoryRejectsBadWindow(t *testing.T) {
	app, _ := newTestApp(t)

	for _, query := range []string{"days=0", "days=-5", "days=400", "days=week"} {
		response := performJSON(t, app, http.MethodGet, "/api/history?"+query, nil)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", query, response.StatusCode)
		}
	}
}

func TestAllHistoryReturnsEveryRecordedDay(t *testing.T) {
	app, database := newTestApp(t)
	seedWaterDay(t, database, 0, 500)
	seedWaterDay(t, database, 40, 2000)

	response := performJSON(t, app, http.MethodGet, "/api/history/all", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	payload := struct {
		Days []models.WaterDay `json:"days"`
	}{}
	decodeJSONBody(t, response, &payload)
	if len(payload.Days) != 2 {
		t.Fatalf("expected 2 recorded days, got %d", len(payload.Days))
	}
}
