package api

import (
	"time"

	"github.com/patrykmns/droply/internal/db"
	"github.com/patrykmns/droply/internal/i18n"
	"github.com/patrykmns/droply/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db       *gorm.DB
	location *time.Location
	i18n     *i18n.Manager

	repositories *db.Repositories
	preferences  *services.PreferenceService
	scheduler    *services.ReminderScheduler
	engine       *services.ReminderEngine
	intake       *services.IntakeService
	settings     *services.SettingsService
	history      *services.HistoryService
	feed         *services.MessageFeed
}

// HandlerConfig carries the collaborators owned by main: the alarm
// clock lifecycle, the outbound notifier, and the message feed shared
// with the presentation routes.
type HandlerConfig struct {
	DB       *gorm.DB
	Location *time.Location
	I18N     *i18n.Manager
	Alarm    services.AlarmClock
	Notifier services.Notifier
	Feed     *services.MessageFeed
}
