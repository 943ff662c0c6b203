package services

import (
	"testing"

	"github.com/patrykmns/droply/internal/i18n"
	"github.com/patrykmns/droply/internal/models"
)

func newTestCatalog(t *testing.T, pick func(n int) int) *MotivationCatalog {
	t.Helper()
	catalog := NewMotivationCatalog(loadTestI18N(t), i18n.LangPL)
	if pick != nil {
		catalog.pick = pick
	}
	return catalog
}

func TestBuildFreshReminderIsLocalized(t *testing.T) {
	catalog := newTestCatalog(t, func(n int) int { return 0 })

	reminder := catalog.Build(0, models.GenderFemale, 250)

	if reminder.Title == "" || reminder.Title == "reminder.f.fresh.1.title" {
		t.Fatalf("expected localized title, got %q", reminder.Title)
	}
	if reminder.Body == "" {
		t.Fatal("expected non-empty body")
	}
	if reminder.QuickAddAmount != 250 {
		t.Fatalf("expected quick add 250, got %d", reminder.QuickAddAmount)
	}
}

func TestBuildFallsBackToFactWhenVariantHasNoBody(t *testing.T) {
	// Female fresh variant 4 carries no body of its own.
	catalog := newTestCatalog(t, func(n int) int {
		if n == len(femaleFreshVariants) {
			return 3
		}
		return 0
	})

	reminder := catalog.Build(0, models.GenderFemale, 250)

	fact := catalog.i18n.Translate(i18n.LangPL, "reminder.fact.1")
	if reminder.Body != fact {
		t.Fatalf("expected fact body %q, got %q", fact, reminder.Body)
	}
}

func TestBuildEscalatesWithMissedCount(t *testing.T) {
	catalog := newTestCatalog(t, func(n int) int { return 0 })

	nudge := catalog.Build(1, models.GenderMale, 250)
	expectedNudge := catalog.i18n.Translate(i18n.LangPL, maleNudge.titleKey)
	if nudge.Title != expectedNudge {
		t.Fatalf("missed 1: expected nudge title %q, got %q", expectedNudge, nudge.Title)
	}

	expectedOverdue := catalog.i18n.Translate(i18n.LangPL, maleOverdue.titleKey)
	for _, missed := range []int{2, 3, 10} {
		overdue := catalog.Build(missed, models.GenderMale, 250)
		if overdue.Title != expectedOverdue {
			t.Fatalf("missed %d: expected overdue title %q, got %q", missed, expectedOverdue, overdue.Title)
		}
	}
}

func TestBuildPhrasesByGender(t *testing.T) {
	catalog := newTestCatalog(t, func(n int) int { return 0 })

	female := catalog.Build(1, models.GenderFemale, 250)
	male := catalog.Build(1, models.GenderMale, 250)

	if female.Title == male.Title {
		t.Fatalf("expected gendered wording to differ, both %q", female.Title)
	}
}
