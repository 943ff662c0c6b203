package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestAddWaterAccumulates(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/water", fiber.Map{"amount": 250})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	payload := map[string]int{}
	decodeJSONBody(t, response, &payload)
	if payload["added"] != 250 {
		t.Fatalf("expected added 250, got %d", payload["added"])
	}

	today := fetchToday(t, app)
	if today["amount"].(float64) != 250 {
		t.Fatalf("expected today amount 250, got %v", today["amount"])
	}
}

func TestAddWaterInvalidAmount(t *testing.T) {
	app, _ := newTestApp(t)

	for _, amount := range []int{0, -10} {
		response := performJSON(t, app, http.MethodPost, "/api/water", fiber.Map{"amount": amount})
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("amount %d: expected 400, got %d", amount, response.StatusCode)
		}
	}
}

func TestAddWaterCooldownReturnsTooManyRequests(t *testing.T) {
	app, _ := newTestApp(t)

	first := performJSON(t, app, http.MethodPost, "/api/water", fiber.Map{"amount": 250})
	if first.StatusCode != http.StatusOK {
		t.Fatalf("first add: expected 200, got %d", first.StatusCode)
	}

	second := performJSON(t, app, http.MethodPost, "/api/water", fiber.Map{"amount": 250})
	if second.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("second add: expected 429, got %d", second.StatusCode)
	}

	today := fetchToday(t, app)
	if today["amount"].(float64) != 250 {
		t.Fatalf("rejected add must not change the total, got %v", today["amount"])
	}
}

func TestQuickAddUsesDefaultAmount(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/water/quick", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	payload := map[string]int{}
	decodeJSONBody(t, response, &payload)
	if payload["added"] != 250 {
		t.Fatalf("expected default quick add 250, got %d", payload["added"])
	}
}

func TestTileAddBypassesCooldown(t *testing.T) {
	app, _ := newTestApp(t)

	if response := performJSON(t, app, http.MethodPost, "/api/water", fiber.Map{"amount": 250}); response.StatusCode != http.StatusOK {
		t.Fatalf("add: expected 200, got %d", response.StatusCode)
	}
	if response := performJSON(t, app, http.MethodPost, "/api/tile/add", nil); response.StatusCode != http.StatusOK {
		t.Fatalf("tile add during cooldown: expected 200, got %d", response.StatusCode)
	}

	today := fetchToday(t, app)
	if today["amount"].(float64) != 500 {
		t.Fatalf("expected total 500, got %v", today["amount"])
	}
}

func TestUndoWaterRemovesLastDelta(t *testing.T) {
	app, _ := newTestApp(t)

	if response := performJSON(t, app, http.MethodPost, "/api/water", fiber.Map{"amount": 300}); response.StatusCode != http.StatusOK {
		t.Fatalf("add: expected 200, got %d", response.StatusCode)
	}

	response := performJSON(t, app, http.MethodPost, "/api/water/undo", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("undo: expected 200, got %d", response.StatusCode)
	}
	payload := map[string]int{}
	decodeJSONBody(t, response, &payload)
	if payload["undone"] != 300 {
		t.Fatalf("expected undone 300, got %d", payload["undone"])
	}

	today := fetchToday(t, app)
	if today["amount"].(float64) != 0 {
		t.Fatalf("expected total back at 0, got %v", today["amount"])
	}
}

func TestUndoWaterWithoutPendingDelta(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/water/undo", nil)
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", response.StatusCode)
	}
}

func TestResetWaterZeroesToday(t *testing.T) {
	app, _ := newTestApp(t)

	if response := performJSON(t, app, http.MethodPost, "/api/water", fiber.Map{"amount": 700}); response.StatusCode != http.StatusOK {
		t.Fatalf("add: expected 200, got %d", response.StatusCode)
	}
	if response := performJSON(t, app, http.MethodPost, "/api/water/reset", nil); response.StatusCode != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", response.StatusCode)
	}

	today := fetchToday(t, app)
	if today["amount"].(float64) != 0 {
		t.Fatalf("expected 0 after reset, got %v", today["amount"])
	}
	if undo := performJSON(t, app, http.MethodPost, "/api/water/undo", nil); undo.StatusCode != http.StatusConflict {
		t.Fatalf("undo after reset: expected 409, got %d", undo.StatusCode)
	}
}

func TestTodayReportsGoalProgress(t *testing.T) {
	app, _ := newTestApp(t)

	today := fetchToday(t, app)
	if today["amount"].(float64) != 0 {
		t.Fatalf("expected amount 0, got %v", today["amount"])
	}
	if today["goal"].(float64) != 2000 {
		t.Fatalf("expected default goal 2000, got %v", today["goal"])
	}
	if today["goal_met"].(bool) {
		t.Fatal("expected goal not met on empty day")
	}

	if response := performJSON(t, app, http.MethodPost, "/api/reminder/custom", fiber.Map{"amount": 2000}); response.StatusCode != http.StatusOK {
		t.Fatalf("add: expected 200, got %d", response.StatusCode)
	}

	today = fetchToday(t, app)
	if !today["goal_met"].(bool) {
		t.Fatal("expected goal met")
	}
	if today["progress"].(float64) != 1 {
		t.Fatalf("expected progress capped at 1, got %v", today["progress"])
	}
	if today["streak"].(float64) != 1 {
		t.Fatalf("expected streak 1, got %v", today["streak"])
	}
}

func fetchToday(t *testing.T, app *fiber.App) map[string]any {
	t.Helper()

	response := performJSON(t, app, http.MethodGet, "/api/today", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("today: expected 200, got %d", response.StatusCode)
	}
	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	return payload
}
