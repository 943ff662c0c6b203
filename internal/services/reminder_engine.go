package services

import (
	"context"
	"log"
	"time"

	"github.com/patrykmns/droply/internal/models"
)

type EngineDayReader interface {
	FindByDate(date string) (models.WaterDay, bool, error)
}

type EnginePreferences interface {
	DailyGoal() int
	QuickAddAmount() int
	Gender() string
	MissedReminders() int
	SetMissedReminders(value int) error
}

type Rescheduler interface {
	Reschedule(ctx context.Context) (time.Time, error)
}

// ReminderEngine is the delivery handler behind the alarm clock: it
// decides, each time the alarm fires, whether to present a reminder or
// skip it, and always hands control back to the scheduler. Two states:
// idle (no alarm pending) and armed.
type ReminderEngine struct {
	days      EngineDayReader
	prefs     EnginePreferences
	scheduler Rescheduler
	notifier  Notifier
	catalog   *MotivationCatalog
	location  *time.Location
	now       func() time.Time
}

func NewReminderEngine(days EngineDayReader, prefs EnginePreferences, scheduler Rescheduler, notifier Notifier, catalog *MotivationCatalog, location *time.Location) *ReminderEngine {
	if location == nil {
		location = time.Local
	}
	return &ReminderEngine{
		days:      days,
		prefs:     prefs,
		scheduler: scheduler,
		notifier:  notifier,
		catalog:   catalog,
		location:  location,
		now:       time.Now,
	}
}

// Start arms the initial alarm from persisted state. The in-process
// timer does not survive restarts the way an OS alarm would, so every
// start recomputes the schedule.
func (engine *ReminderEngine) Start(ctx context.Context) {
	if _, err := engine.scheduler.Reschedule(ctx); err != nil {
		log.Printf("reminder engine: initial schedule failed: %v", err)
	}
}

// HandleFire runs on alarm delivery. Goal already met: suppress the
// reminder and fold the schedule to the next wake window. Otherwise
// count the miss, present the reminder, and reschedule.
func (engine *ReminderEngine) HandleFire(ctx context.Context) {
	now := engine.now().In(engine.location)

	entry, found, err := engine.days.FindByDate(models.DateKey(now))
	if err != nil {
		log.Printf("reminder engine: read today failed: %v", err)
		engine.reschedule(ctx)
		return
	}
	currentAmount := 0
	if found {
		currentAmount = entry.Amount
	}

	if currentAmount >= engine.prefs.DailyGoal() {
		engine.reschedule(ctx)
		return
	}

	missedCount := engine.prefs.MissedReminders()
	reminder := engine.catalog.Build(missedCount, engine.prefs.Gender(), engine.prefs.QuickAddAmount())

	if err := engine.prefs.SetMissedReminders(missedCount + 1); err != nil {
		log.Printf("reminder engine: bump missed counter failed: %v", err)
	}

	if err := engine.notifier.Notify(ctx, reminder); err != nil {
		log.Printf("reminder engine: notify failed: %v", err)
	}

	engine.reschedule(ctx)
}

func (engine *ReminderEngine) reschedule(ctx context.Context) {
	if _, err := engine.scheduler.Reschedule(ctx); err != nil {
		log.Printf("reminder engine: reschedule failed: %v", err)
	}
}
