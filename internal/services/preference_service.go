package services

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/patrykmns/droply/internal/models"
)

type PreferenceStore interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
}

// PreferenceService is the typed front of the persisted settings bag.
// Missing or unparsable values fall back to defaults; a missing key is
// never an error. Writers go through this service only, one writer per
// key.
type PreferenceService struct {
	store PreferenceStore
}

func NewPreferenceService(store PreferenceStore) *PreferenceService {
	return &PreferenceService{store: store}
}

func (service *PreferenceService) DailyGoal() int {
	return service.intValue(models.PrefDailyGoal, models.DefaultDailyGoal)
}

func (service *PreferenceService) SetDailyGoal(value int) error {
	return service.setInt(models.PrefDailyGoal, value)
}

func (service *PreferenceService) QuickAddAmount() int {
	return service.intValue(models.PrefQuickAddAmount, models.DefaultQuickAddAmount)
}

func (service *PreferenceService) SetQuickAddAmount(value int) error {
	return service.setInt(models.PrefQuickAddAmount, value)
}

func (service *PreferenceService) WakeUpHour() int {
	return service.intValue(models.PrefWakeUpHour, models.DefaultWakeUpHour)
}

func (service *PreferenceService) SetWakeUpHour(value int) error {
	return service.setInt(models.PrefWakeUpHour, value)
}

func (service *PreferenceService) SleepHour() int {
	return service.intValue(models.PrefSleepHour, models.DefaultSleepHour)
}

func (service *PreferenceService) SetSleepHour(value int) error {
	return service.setInt(models.PrefSleepHour, value)
}

func (service *PreferenceService) Gender() string {
	value := service.stringValue(models.PrefUserGender, models.GenderMale)
	if !models.ValidGender(value) {
		return models.GenderMale
	}
	return value
}

func (service *PreferenceService) SetGender(value string) error {
	return service.store.Set(models.PrefUserGender, value)
}

func (service *PreferenceService) Activity() string {
	value := service.stringValue(models.PrefUserActivity, models.ActivityNone)
	if !models.ValidActivity(value) {
		return models.ActivityNone
	}
	return value
}

func (service *PreferenceService) SetActivity(value string) error {
	return service.store.Set(models.PrefUserActivity, value)
}

func (service *PreferenceService) Weight() int {
	return service.intValue(models.PrefUserWeight, models.DefaultUserWeight)
}

func (service *PreferenceService) SetWeight(value int) error {
	return service.setInt(models.PrefUserWeight, value)
}

func (service *PreferenceService) MissedReminders() int {
	return service.intValue(models.PrefMissedReminders, 0)
}

func (service *PreferenceService) SetMissedReminders(value int) error {
	return service.setInt(models.PrefMissedReminders, value)
}

func (service *PreferenceService) SetNextAlarm(at time.Time) error {
	return service.store.Set(models.PrefNextAlarmTime, strconv.FormatInt(at.UnixMilli(), 10))
}

// NextAlarmTime reports the most recently persisted trigger time. It is
// advisory display state; the armed alarm clock is the operative timer.
func (service *PreferenceService) NextAlarmTime() (time.Time, bool) {
	raw, ok, err := service.store.Get(models.PrefNextAlarmTime)
	if err != nil {
		log.Printf("preferences: read %s failed: %v", models.PrefNextAlarmTime, err)
		return time.Time{}, false
	}
	if !ok {
		return time.Time{}, false
	}
	millis, parseErr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if parseErr != nil || millis <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}

func (service *PreferenceService) intValue(key string, fallback int) int {
	raw, ok, err := service.store.Get(key)
	if err != nil {
		log.Printf("preferences: read %s failed: %v", key, err)
		return fallback
	}
	if !ok {
		return fallback
	}
	parsed, parseErr := strconv.Atoi(strings.TrimSpace(raw))
	if parseErr != nil {
		return fallback
	}
	return parsed
}

func (service *PreferenceService) stringValue(key string, fallback string) string {
	raw, ok, err := service.store.Get(key)
	if err != nil {
		log.Printf("preferences: read %s failed: %v", key, err)
		return fallback
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	return strings.TrimSpace(raw)
}

func (service *PreferenceService) setInt(key string, value int) error {
	return service.store.Set(key, strconv.Itoa(value))
}
