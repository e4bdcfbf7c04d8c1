package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/rowanleith/whelpline/internal/api"
	"github.com/rowanleith/whelpline/internal/db"
	"github.com/rowanleith/whelpline/internal/services"
)

const minSecretKeyLength = 32

const reminderRegenerationInterval = 6 * time.Hour

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "whelpline.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := parseBoolEnv("COOKIE_SECURE", false)

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	forecastConfig := forecastConfigFromEnv()
	handler, err := api.NewHandler(database, secretKey, location, cookieSecure, forecastConfig)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Whelpline",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	startReminderRegeneration(lifecycleCtx, database, forecastConfig, location)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Whelpline listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// startReminderRegeneration refreshes every user's derived reminders on a
// fixed interval until the lifecycle context is cancelled. The first pass
// runs shortly after startup so a restarted instance does not wait six
// hours to catch up.
func startReminderRegeneration(ctx context.Context, database *gorm.DB, config services.ForecastConfig, location *time.Location) {
	repositories := db.NewRepositories(database)
	forecast := services.NewForecastEngine(
		repositories.Dogs,
		repositories.HeatCycles,
		repositories.BreedingPlans,
		repositories.Litters,
		location,
		config,
	)
	reminders := services.NewReminderService(
		repositories.Dogs,
		repositories.Litters,
		repositories.Reminders,
		forecast,
		location,
	)

	regenerateAll := func() {
		userIDs, err := repositories.Users.ListIDs()
		if err != nil {
			log.Printf("reminders: listing users failed: %v", err)
			return
		}
		for _, userID := range userIDs {
			if ctx.Err() != nil {
				return
			}
			written, err := reminders.Regenerate(ctx, userID, time.Now().In(location))
			if err != nil {
				log.Printf("reminders: regeneration for user %d failed: %v", userID, err)
				continue
			}
			log.Printf("reminders: regenerated %d for user %d", written, userID)
		}
	}

	go func() {
		startup := time.NewTimer(time.Minute)
		defer startup.Stop()
		select {
		case <-startup.C:
			regenerateAll()
		case <-ctx.Done():
			return
		}

		ticker := time.NewTicker(reminderRegenerationInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				regenerateAll()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func forecastConfigFromEnv() services.ForecastConfig {
	config := services.ForecastConfig{
		PreferUnified:  parseBoolEnv("FORECAST_UNIFIED", true),
		CompareResults: parseBoolEnv("FORECAST_COMPARE", false),
	}
	if raw := os.Getenv("FORECAST_TIMEOUT_MS"); raw != "" {
		if millis, err := strconv.Atoi(raw); err == nil && millis > 0 {
			config.Timeout = time.Duration(millis) * time.Millisecond
		} else {
			log.Printf("invalid FORECAST_TIMEOUT_MS %q, using default", raw)
		}
	}
	return config
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY must be set")
	}
	switch secret {
	case "change_me_in_production", "replace_with_at_least_32_random_characters":
		return "", errors.New("SECRET_KEY still holds a placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters, got %d", minSecretKeyLength, len(secret))
	}
	return secret, nil
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

func parseBoolEnv(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("invalid %s %q, using %v", key, raw, fallback)
		return fallback
	}
	return value
}
