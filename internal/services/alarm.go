package services

import (
	"errors"
	"sync"
	"time"
)

var ErrAlarmUnbound = errors.New("alarm clock has no fire handler bound")

// TimerAlarmClock models the OS alarm facility with an in-process
// one-shot timer. A single logical alarm identity: re-arming stops the
// previous timer first, so concurrent reschedules converge to whoever
// armed last. Unlike an OS alarm it does not survive process restarts;
// the reminder engine re-arms from persisted state on start.
type TimerAlarmClock struct {
	mu    sync.Mutex
	timer *time.Timer
	fire  func()
}

func NewTimerAlarmClock() *TimerAlarmClock {
	return &TimerAlarmClock{}
}

// Bind sets the callback invoked when the alarm fires. The callback
// runs on its own goroutine.
func (clock *TimerAlarmClock) Bind(fire func()) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.fire = fire
}

func (clock *TimerAlarmClock) Arm(at time.Time) error {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	if clock.fire == nil {
		return ErrAlarmUnbound
	}

	if clock.timer != nil {
		clock.timer.Stop()
	}

	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}
	clock.timer = time.AfterFunc(delay, clock.fire)
	return nil
}

func (clock *TimerAlarmClock) Cancel() {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	if clock.timer != nil {
		clock.timer.Stop()
		clock.timer = nil
	}
}
