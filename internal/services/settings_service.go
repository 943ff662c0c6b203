package services

import (
	"context"
	"errors"

	"github.com/patrykmns/droply/internal/models"
)

var ErrInvalidSettings = errors.New("invalid settings input")

type Settings struct {
	DailyGoal      int    `json:"daily_goal"`
	QuickAddAmount int    `json:"quick_add_amount"`
	WakeUpHour     int    `json:"wake_up_hour"`
	SleepHour      int    `json:"sleep_hour"`
	Weight         int    `json:"weight"`
	Gender         string `json:"gender"`
	Activity       string `json:"activity"`
}

type SettingsPreferences interface {
	DailyGoal() int
	SetDailyGoal(value int) error
	QuickAddAmount() int
	SetQuickAddAmount(value int) error
	WakeUpHour() int
	SetWakeUpHour(value int) error
	SleepHour() int
	SetSleepHour(value int) error
	Weight() int
	SetWeight(value int) error
	Gender() string
	SetGender(value string) error
	Activity() string
	SetActivity(value string) error
}

// SettingsService loads and saves the editable profile. Saving changes
// the remaining amount semantics, so it ends with a reschedule.
type SettingsService struct {
	prefs     SettingsPreferences
	scheduler Rescheduler
}

func NewSettingsService(prefs SettingsPreferences, scheduler Rescheduler) *SettingsService {
	return &SettingsService{
		prefs:     prefs,
		scheduler: scheduler,
	}
}

func (service *SettingsService) Load() Settings {
	return Settings{
		DailyGoal:      service.prefs.DailyGoal(),
		QuickAddAmount: service.prefs.QuickAddAmount(),
		WakeUpHour:     service.prefs.WakeUpHour(),
		SleepHour:      service.prefs.SleepHour(),
		Weight:         service.prefs.Weight(),
		Gender:         service.prefs.Gender(),
		Activity:       service.prefs.Activity(),
	}
}

func (service *SettingsService) Save(ctx context.Context, settings Settings) error {
	if err := ValidateSettings(settings); err != nil {
		return err
	}

	writes := []error{
		service.prefs.SetDailyGoal(settings.DailyGoal),
		service.prefs.SetQuickAddAmount(settings.QuickAddAmount),
		service.prefs.SetWakeUpHour(settings.WakeUpHour),
		service.prefs.SetSleepHour(settings.SleepHour),
		service.prefs.SetWeight(settings.Weight),
		service.prefs.SetGender(settings.Gender),
		service.prefs.SetActivity(settings.Activity),
	}
	for _, err := range writes {
		if err != nil {
			return err
		}
	}

	_, err := service.scheduler.Reschedule(ctx)
	return err
}

func ValidateSettings(settings Settings) error {
	if settings.DailyGoal <= 0 || settings.QuickAddAmount <= 0 || settings.Weight <= 0 {
		return ErrInvalidSettings
	}
	if settings.WakeUpHour < 0 || settings.WakeUpHour > 23 {
		return ErrInvalidSettings
	}
	if settings.SleepHour < 0 || settings.SleepHour > 23 {
		return ErrInvalidSettings
	}
	if !models.ValidGender(settings.Gender) {
		return ErrInvalidSettings
	}
	if !models.ValidActivity(settings.Activity) {
		return ErrInvalidSettings
	}
	return nil
}
