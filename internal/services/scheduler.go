package services

import (
	"context"
	"log"
	"time"

	"github.com/patrykmns/droply/internal/models"
)

const (
	// Reminder spacing bounds in minutes.
	minReminderInterval = 30
	maxReminderInterval = 180

	// Sleep hours below this are treated as past midnight (e.g. going
	// to bed at 2 AM still belongs to the current day's window).
	earlySleepBoundaryHour = 5

	// Delay after wake-up before the first morning reminder, so the
	// user has time to drink before being nagged.
	wakeUpGraceMinutes = 90
)

// ComputeInterval returns the wait in minutes until the next reminder,
// spacing reminders evenly across the remaining awake time in
// proportion to the remaining thirst. Zero means "no more reminders
// today": the goal is met or the sleep boundary has passed.
func ComputeInterval(currentAmount int, dailyGoal int, quickAddAmount int, sleepHour int, now time.Time) int {
	remaining := dailyGoal - currentAmount
	if remaining <= 0 {
		return 0
	}

	portionsLeft := float64(remaining) / float64(quickAddAmount)
	if portionsLeft <= 0 {
		return minReminderInterval
	}

	sleepInMinutes := sleepHour * 60
	if sleepHour < earlySleepBoundaryHour {
		sleepInMinutes += 24 * 60
	}

	minutesLeftToday := sleepInMinutes - (now.Hour()*60 + now.Minute())
	if minutesLeftToday <= 0 {
		return 0
	}

	interval := int(float64(minutesLeftToday) / portionsLeft)
	if interval < minReminderInterval {
		return minReminderInterval
	}
	if interval > maxReminderInterval {
		return maxReminderInterval
	}
	return interval
}

// ResolveTriggerTime turns an interval into an absolute trigger time.
// When the interval would fire during the sleep window, or the goal is
// already met (interval 0), the trigger folds forward to the next
// wake-up plus a 90-minute grace. The cycle is never cancelled
// outright.
func ResolveTriggerTime(intervalMinutes int, wakeUpHour int, sleepHour int, now time.Time) time.Time {
	isGoalMet := intervalMinutes == 0
	isNightNow := isNightHour(now.Hour(), wakeUpHour, sleepHour)

	planned := now.Add(time.Duration(intervalMinutes) * time.Minute)
	willBeNight := isNightHour(planned.Hour(), wakeUpHour, sleepHour)

	if isNightNow || willBeNight || isGoalMet {
		morning := time.Date(now.Year(), now.Month(), now.Day(), wakeUpHour, 0, 0, 0, now.Location())
		if now.After(morning) {
			morning = morning.AddDate(0, 0, 1)
		}
		return morning.Add(wakeUpGraceMinutes * time.Minute)
	}

	return planned
}

func isNightHour(hour int, wakeUpHour int, sleepHour int) bool {
	return hour >= sleepHour || hour < wakeUpHour
}

type SchedulerDayReader interface {
	FindByDate(date string) (models.WaterDay, bool, error)
}

type SchedulerPreferences interface {
	DailyGoal() int
	QuickAddAmount() int
	WakeUpHour() int
	SleepHour() int
	SetNextAlarm(at time.Time) error
}

// AlarmClock is the external one-shot wake-up facility. Arming replaces
// any previously armed alarm for the same identity, never adds one.
type AlarmClock interface {
	Arm(at time.Time) error
	Cancel()
}

type Toaster interface {
	Toastf(key string, args ...any)
}

// ReminderScheduler is the single point of truth for when the user gets
// reminded next. Every intake-changing event reschedules through it.
type ReminderScheduler struct {
	days     SchedulerDayReader
	prefs    SchedulerPreferences
	alarm    AlarmClock
	toasts   Toaster
	location *time.Location
	now      func() time.Time
}

func NewReminderScheduler(days SchedulerDayReader, prefs SchedulerPreferences, alarm AlarmClock, toasts Toaster, location *time.Location) *ReminderScheduler {
	if location == nil {
		location = time.Local
	}
	return &ReminderScheduler{
		days:     days,
		prefs:    prefs,
		alarm:    alarm,
		toasts:   toasts,
		location: location,
		now:      time.Now,
	}
}

// Reschedule recomputes the next trigger from current state, persists
// it for display, and re-arms the alarm. Safe to call repeatedly and
// concurrently: the last computed arm wins.
func (scheduler *ReminderScheduler) Reschedule(ctx context.Context) (time.Time, error) {
	now := scheduler.now().In(scheduler.location)

	entry, found, err := scheduler.days.FindByDate(models.DateKey(now))
	if err != nil {
		return time.Time{}, err
	}
	currentAmount := 0
	if found {
		currentAmount = entry.Amount
	}

	dailyGoal := scheduler.prefs.DailyGoal()
	interval := ComputeInterval(currentAmount, dailyGoal, scheduler.prefs.QuickAddAmount(), scheduler.prefs.SleepHour(), now)
	trigger := ResolveTriggerTime(interval, scheduler.prefs.WakeUpHour(), scheduler.prefs.SleepHour(), now)

	if err := scheduler.prefs.SetNextAlarm(trigger); err != nil {
		return time.Time{}, err
	}

	if err := scheduler.alarm.Arm(trigger); err != nil {
		// Known soft failure: the previous arm, if any, stays in
		// effect and no retry is attempted this cycle.
		log.Printf("scheduler: arm alarm at %s failed: %v", trigger.Format(time.RFC3339), err)
	}

	if scheduler.toasts != nil {
		if currentAmount >= dailyGoal {
			scheduler.toasts.Toastf("toast.goal_met")
		} else if interval > 0 {
			scheduler.toasts.Toastf("toast.next_reminder", interval)
		}
	}

	return trigger, nil
}
