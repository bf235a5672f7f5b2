package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"tattooparlor/internal/pkg/logging"
)

const pgUniqueViolation = "23505"

// Connect opens postgres for postgres:// DSNs and sqlite (modernc driver) otherwise.
func Connect(dsn string, logger *logging.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}
	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logger.Info("connecting to postgres")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	logger.Info("using sqlite for local development", "dsn", dsn)

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
	if err != nil {
		return nil, err
	}

	// sqlite allows one writer; :memory: databases are also per-connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// IsUniqueViolation reports whether err is a unique-key violation on either driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
