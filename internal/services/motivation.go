package services

import (
	"math/rand"

	"github.com/patrykmns/droply/internal/i18n"
	"github.com/patrykmns/droply/internal/models"
)

// messageVariant pairs locale keys for a reminder title and body. An
// empty body key means "use a random hydration fact".
type messageVariant struct {
	titleKey string
	bodyKey  string
}

var femaleFreshVariants = []messageVariant{
	{"reminder.f.fresh.1.title", "reminder.f.fresh.1.body"},
	{"reminder.f.fresh.2.title", "reminder.f.fresh.2.body"},
	{"reminder.f.fresh.3.title", "reminder.f.fresh.3.body"},
	{"reminder.f.fresh.4.title", ""},
	{"reminder.f.fresh.5.title", "reminder.f.fresh.5.body"},
}

var maleFreshVariants = []messageVariant{
	{"reminder.m.fresh.1.title", ""},
	{"reminder.m.fresh.2.title", "reminder.m.fresh.2.body"},
	{"reminder.m.fresh.3.title", "reminder.m.fresh.3.body"},
}

var femaleNudge = messageVariant{"reminder.f.nudge.title", "reminder.f.nudge.body"}
var femaleOverdue = messageVariant{"reminder.f.overdue.title", "reminder.f.overdue.body"}
var maleNudge = messageVariant{"reminder.m.nudge.title", "reminder.m.nudge.body"}
var maleOverdue = messageVariant{"reminder.m.overdue.title", "reminder.m.overdue.body"}

var factKeys = []string{
	"reminder.fact.1",
	"reminder.fact.2",
	"reminder.fact.3",
	"reminder.fact.4",
}

// MotivationCatalog picks the reminder wording: playful on the first
// miss of the day, increasingly pointed as misses accumulate, phrased
// for the configured gender.
type MotivationCatalog struct {
	i18n     *i18n.Manager
	language string
	pick     func(n int) int
}

func NewMotivationCatalog(manager *i18n.Manager, language string) *MotivationCatalog {
	return &MotivationCatalog{
		i18n:     manager,
		language: language,
		pick:     rand.Intn,
	}
}

func (catalog *MotivationCatalog) Build(missedCount int, gender string, quickAddAmount int) Reminder {
	variant := catalog.selectVariant(missedCount, gender)

	title := catalog.i18n.Translate(catalog.language, variant.titleKey)
	body := ""
	if variant.bodyKey == "" {
		body = catalog.i18n.Translate(catalog.language, factKeys[catalog.pick(len(factKeys))])
	} else {
		body = catalog.i18n.Translate(catalog.language, variant.bodyKey)
	}

	return Reminder{
		Title:          title,
		Body:           body,
		QuickAddAmount: quickAddAmount,
	}
}

func (catalog *MotivationCatalog) selectVariant(missedCount int, gender string) messageVariant {
	female := gender == models.GenderFemale

	switch {
	case missedCount == 0 && female:
		return femaleFreshVariants[catalog.pick(len(femaleFreshVariants))]
	case missedCount == 0:
		return maleFreshVariants[catalog.pick(len(maleFreshVariants))]
	case missedCount == 1 && female:
		return femaleNudge
	case missedCount == 1:
		return maleNudge
	case female:
		return femaleOverdue
	default:
		return maleOverdue
	}
}
