package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/patrykmns/droply/internal/api"
	"github.com/patrykmns/droply/internal/db"
	"github.com/patrykmns/droply/internal/i18n"
	"github.com/patrykmns/droply/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "Local"))
	time.Local = location

	dbPath := getEnv("DB_PATH", filepath.Join("data", "droply.db"))
	port := getEnv("PORT", "8080")
	defaultLanguage := getEnv("DEFAULT_LANGUAGE", "pl")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	i18nManager, err := i18n.NewManager(defaultLanguage, filepath.Join("internal", "i18n", "locales"))
	if err != nil {
		log.Fatalf("i18n init failed: %v", err)
	}

	feed := services.NewMessageFeed(i18nManager, i18nManager.DefaultLanguage())
	alarmClock := services.NewTimerAlarmClock()
	telegram := services.NewTelegramNotifier()
	notifier := services.NewMultiNotifier(feed, telegram)

	handler, err := api.NewHandler(api.HandlerConfig{
		DB:       database,
		Location: location,
		I18N:     i18nManager,
		Alarm:    alarmClock,
		Notifier: notifier,
		Feed:     feed,
	})
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Droply",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	engine := handler.Engine()
	alarmClock.Bind(func() { engine.HandleFire(lifecycleCtx) })
	engine.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		alarmClock.Cancel()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Droply listening on http://0.0.0.0:%s (db: %s, tz: %s, telegram: %v)", port, dbPath, location.String(), telegram.Enabled())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
