package services

import (
	"context"
	"sync"
	"time"

	"github.com/patrykmns/droply/internal/i18n"
)

const (
	FeedKindReminder = "reminder"
	FeedKindToast    = "toast"
)

const feedLimit = 50

type FeedMessage struct {
	Kind           string    `json:"kind"`
	Title          string    `json:"title,omitempty"`
	Body           string    `json:"body"`
	QuickAddAmount int       `json:"quick_add_amount,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// MessageFeed is the bounded queue the presentation layer polls for
// reminders and toast messages. Background tasks push here instead of
// reaching into any UI context directly.
type MessageFeed struct {
	mu       sync.Mutex
	messages []FeedMessage
	i18n     *i18n.Manager
	language string
	now      func() time.Time
}

func NewMessageFeed(manager *i18n.Manager, language string) *MessageFeed {
	return &MessageFeed{
		i18n:     manager,
		language: language,
		now:      time.Now,
	}
}

func (feed *MessageFeed) Notify(ctx context.Context, reminder Reminder) error {
	feed.push(FeedMessage{
		Kind:           FeedKindReminder,
		Title:          reminder.Title,
		Body:           reminder.Body,
		QuickAddAmount: reminder.QuickAddAmount,
		CreatedAt:      feed.now(),
	})
	return nil
}

// Toastf appends a localized toast built from a message key.
func (feed *MessageFeed) Toastf(key string, args ...any) {
	body := key
	if feed.i18n != nil {
		body = feed.i18n.Translatef(feed.language, key, args...)
	}
	feed.push(FeedMessage{
		Kind:      FeedKindToast,
		Body:      body,
		CreatedAt: feed.now(),
	})
}

// Drain returns all pending messages and empties the feed. The
// presentation layer consumes messages exactly once.
func (feed *MessageFeed) Drain() []FeedMessage {
	feed.mu.Lock()
	defer feed.mu.Unlock()

	drained := feed.messages
	feed.messages = nil
	if drained == nil {
		drained = []FeedMessage{}
	}
	return drained
}

// ClearReminders drops pending reminder entries, keeping toasts. Used
// by the reminder response actions, which dismiss whatever is
// presented before re-adding.
func (feed *MessageFeed) ClearReminders() {
	feed.mu.Lock()
	defer feed.mu.Unlock()

	kept := feed.messages[:0]
	for _, message := range feed.messages {
		if message.Kind != FeedKindReminder {
			kept = append(kept, message)
		}
	}
	feed.messages = kept
}

func (feed *MessageFeed) push(message FeedMessage) {
	feed.mu.Lock()
	defer feed.mu.Unlock()

	feed.messages = append(feed.messages, message)
	if len(feed.messages) > feedLimit {
		feed.messages = feed.messages[len(feed.messages)-feedLimit:]
	}
}
