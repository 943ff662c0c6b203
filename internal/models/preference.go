package models

import "time"

const (
	GenderMale   = "M"
	GenderFemale = "K"
)

const (
	ActivityNone   = "NONE"
	ActivityLow    = "LOW"
	ActivityMedium = "MEDIUM"
	ActivityHigh   = "HIGH"
)

const (
	PrefDailyGoal       = "daily_goal"
	PrefQuickAddAmount  = "quick_add_amount"
	PrefWakeUpHour      = "wake_up_hour"
	PrefSleepHour       = "sleep_hour"
	PrefUserGender      = "user_gender"
	PrefUserActivity    = "user_activity"
	PrefUserWeight      = "user_weight"
	PrefMissedReminders = "missed_reminders_count"
	PrefNextAlarmTime   = "next_alarm_time"
)

const (
	DefaultDailyGoal      = 2000
	DefaultQuickAddAmount = 250
	DefaultWakeUpHour     = 8
	DefaultSleepHour      = 22
	DefaultUserWeight     = 70
)

// Preference is a single persisted scalar setting. Typed access goes
// through services.PreferenceService; rows store everything as text.
type Preference struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func ValidGender(value string) bool {
	return value == GenderMale || value == GenderFemale
}

func ValidActivity(value string) bool {
	switch value {
	case ActivityNone, ActivityLow, ActivityMedium, ActivityHigh:
		return true
	default:
		return false
	}
}
