package services

import (
	"context"
	"errors"
)

// Reminder is one presented nag. QuickAddAmount feeds the "add a
// glass" response action hint.
type Reminder struct {
	Title          string
	Body           string
	QuickAddAmount int
}

type Notifier interface {
	Notify(ctx context.Context, reminder Reminder) error
}

// MultiNotifier fans a reminder out to every configured channel. A
// failing channel does not stop the others.
type MultiNotifier struct {
	notifiers []Notifier
}

func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

func (multi *MultiNotifier) Notify(ctx context.Context, reminder Reminder) error {
	var failures []error
	for _, notifier := range multi.notifiers {
		if err := notifier.Notify(ctx, reminder); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
