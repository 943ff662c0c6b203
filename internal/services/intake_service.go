package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/patrykmns/droply/internal/models"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// CooldownError is a rate limit, not a failure: another add landed less
// than a minute ago.
type CooldownError struct {
	SecondsLeft int
}

func (err *CooldownError) Error() string {
	return fmt.Sprintf("add cooldown active: %d seconds left", err.SecondsLeft)
}

const addCooldown = 60 * time.Second

type IntakeDayStore interface {
	FindByDate(date string) (models.WaterDay, bool, error)
	Upsert(entry *models.WaterDay) error
}

type IntakePreferences interface {
	QuickAddAmount() int
	SetMissedReminders(value int) error
}

// IntakeService owns today's running total. Every mutation replaces the
// whole row (last write wins) and ends with a reschedule, so the next
// alarm always reflects the latest known state. Undo state lives in
// memory only: one level, cleared by reset.
type IntakeService struct {
	days      IntakeDayStore
	prefs     IntakePreferences
	scheduler Rescheduler
	toasts    Toaster
	location  *time.Location
	now       func() time.Time

	mu          sync.Mutex
	lastDrinkAt time.Time
	lastAdded   int
}

func NewIntakeService(days IntakeDayStore, prefs IntakePreferences, scheduler Rescheduler, toasts Toaster, location *time.Location) *IntakeService {
	if location == nil {
		location = time.Local
	}
	return &IntakeService{
		days:      days,
		prefs:     prefs,
		scheduler: scheduler,
		toasts:    toasts,
		location:  location,
		now:       time.Now,
	}
}

// Add records an intake from the main surface, enforcing the
// double-tap cooldown.
func (service *IntakeService) Add(ctx context.Context, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	now := service.now()
	service.mu.Lock()
	if !service.lastDrinkAt.IsZero() {
		elapsed := now.Sub(service.lastDrinkAt)
		if elapsed < addCooldown {
			secondsLeft := int((addCooldown - elapsed).Seconds())
			service.mu.Unlock()
			if service.toasts != nil {
				service.toasts.Toastf("toast.cooldown", secondsLeft)
			}
			return &CooldownError{SecondsLeft: secondsLeft}
		}
	}
	service.mu.Unlock()

	return service.AddDirect(ctx, amount)
}

// AddDirect records an intake without the cooldown gate. Reminder
// response actions and the quick tile land here: dismissing a
// notification should never be rate limited.
func (service *IntakeService) AddDirect(ctx context.Context, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	now := service.now().In(service.location)
	date := models.DateKey(now)

	entry, found, err := service.days.FindByDate(date)
	if err != nil {
		return err
	}
	currentAmount := 0
	if found {
		currentAmount = entry.Amount
	}

	if err := service.days.Upsert(&models.WaterDay{Date: date, Amount: currentAmount + amount}); err != nil {
		return err
	}

	service.mu.Lock()
	service.lastAdded = amount
	service.lastDrinkAt = service.now()
	service.mu.Unlock()

	if err := service.prefs.SetMissedReminders(0); err != nil {
		return err
	}

	if service.toasts != nil {
		service.toasts.Toastf("toast.added", amount)
	}

	_, err = service.scheduler.Reschedule(ctx)
	return err
}

// QuickAdd adds the configured fixed amount and reports how much was
// added.
func (service *IntakeService) QuickAdd(ctx context.Context) (int, error) {
	amount := service.prefs.QuickAddAmount()
	if err := service.AddDirect(ctx, amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// Undo subtracts exactly the last-added delta, floored at zero.
func (service *IntakeService) Undo(ctx context.Context) (int, error) {
	service.mu.Lock()
	undoneAmount := service.lastAdded
	service.mu.Unlock()

	if undoneAmount <= 0 {
		return 0, ErrNothingToUndo
	}

	now := service.now().In(service.location)
	date := models.DateKey(now)

	entry, found, err := service.days.FindByDate(date)
	if err != nil {
		return 0, err
	}
	currentAmount := 0
	if found {
		currentAmount = entry.Amount
	}

	newAmount := currentAmount - undoneAmount
	if newAmount < 0 {
		newAmount = 0
	}
	if err := service.days.Upsert(&models.WaterDay{Date: date, Amount: newAmount}); err != nil {
		return 0, err
	}

	service.mu.Lock()
	service.lastAdded = 0
	service.lastDrinkAt = time.Time{}
	service.mu.Unlock()

	if service.toasts != nil {
		service.toasts.Toastf("toast.undone", undoneAmount)
	}

	if _, err := service.scheduler.Reschedule(ctx); err != nil {
		return 0, err
	}
	return undoneAmount, nil
}

// Reset zeroes today's counter and clears undo state.
func (service *IntakeService) Reset(ctx context.Context) error {
	now := service.now().In(service.location)

	if err := service.days.Upsert(&models.WaterDay{Date: models.DateKey(now), Amount: 0}); err != nil {
		return err
	}

	service.mu.Lock()
	service.lastAdded = 0
	service.lastDrinkAt = time.Time{}
	service.mu.Unlock()

	_, err := service.scheduler.Reschedule(ctx)
	return err
}

// Today reports the current cumulative amount; a missing row is zero,
// never an error.
func (service *IntakeService) Today(ctx context.Context) (int, error) {
	now := service.now().In(service.location)
	entry, found, err := service.days.FindByDate(models.DateKey(now))
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	return entry.Amount, nil
}

// LastAdded reports the pending undo delta, zero when nothing can be
// undone.
func (service *IntakeService) LastAdded() int {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.lastAdded
}
