package api

import (
	"errors"
	"time"

	"github.com/patrykmns/droply/internal/db"
	"github.com/patrykmns/droply/internal/services"
)

func NewHandler(config HandlerConfig) (*Handler, error) {
	if config.DB == nil {
		return nil, errors.New("handler requires a database")
	}
	if config.I18N == nil {
		return nil, errors.New("handler requires an i18n manager")
	}

	location := config.Location
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:       config.DB,
		location: location,
		i18n:     config.I18N,
		feed:     config.Feed,
	}
	handler.wireDependencies(config)
	return handler, nil
}

func (handler *Handler) wireDependencies(config HandlerConfig) {
	handler.repositories = db.NewRepositories(handler.db)
	handler.preferences = services.NewPreferenceService(handler.repositories.Preferences)

	handler.scheduler = services.NewReminderScheduler(
		handler.repositories.WaterDays,
		handler.preferences,
		config.Alarm,
		handler.feed,
		handler.location,
	)

	catalog := services.NewMotivationCatalog(handler.i18n, handler.i18n.DefaultLanguage())
	handler.engine = services.NewReminderEngine(
		handler.repositories.WaterDays,
		handler.preferences,
		handler.scheduler,
		config.Notifier,
		catalog,
		handler.location,
	)

	handler.intake = services.NewIntakeService(
		handler.repositories.WaterDays,
		handler.preferences,
		handler.scheduler,
		handler.feed,
		handler.location,
	)
	handler.settings = services.NewSettingsService(handler.preferences, handler.scheduler)
	handler.history = services.NewHistoryService(handler.repositories.WaterDays, handler.location)
}

// Engine exposes the delivery handler so main can bind it to the alarm
// clock and start the reminder cycle.
func (handler *Handler) Engine() *services.ReminderEngine {
	return handler.engine
}
