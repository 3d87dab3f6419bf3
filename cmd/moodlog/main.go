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
	"github.com/moodlog/moodlog/internal/api"
	"github.com/moodlog/moodlog/internal/db"
	"github.com/moodlog/moodlog/internal/logging"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "moodlog.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"

	zlog := logging.New(getEnv("LOG_LEVEL", "info"))
	defer func() { _ = zlog.Sync() }()

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		zlog.Fatalw("database init failed", "path", dbPath, "error", err)
	}

	handler := api.NewHandler(database, secretKey, location, cookieSecure, zlog)

	app := fiber.New(fiber.Config{
		AppName:               "MoodLog",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zlog.Errorw("server shutdown failed", "error", err)
		}
	}()

	zlog.Infow("listening", "addr", "http://0.0.0.0:"+port, "db", dbPath, "tz", location.String())
	if err := app.Listen(":" + port); err != nil {
		zlog.Fatalw("server exited", "error", err)
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
