package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tattooparlor/internal/config"
	"tattooparlor/internal/database"
	"tattooparlor/internal/pkg/logging"
	"tattooparlor/internal/session"
)

// session_cleanup deletes expired web sessions from the SQL store. Run it
// from cron when the server's own sweep is not enough.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel).With("job", "session_cleanup")

	if cfg.SessionStore != config.StoreDB {
		logger.Info("session store expires keys itself, nothing to do", "store", cfg.SessionStore)
		return
	}

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("db connect failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := session.NewGormStore(db).DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("cleanup web_sessions failed", "error", err)
		os.Exit(1)
	}
	logger.Info("session cleanup completed", "web_sessions", n)
}
