package data

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool sizing. Ingest writes fan out from a small worker pool and reads are
// report-window queries, so a modest pool is enough.
const (
	maxOpenConns    = 16
	maxIdleConns    = 4
	connMaxLifetime = time.Hour
)

// MustMySQL opens the signal store or dies trying.
func MustMySQL(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(normalizeDSN(dsn)), &gorm.Config{
		Logger: logger.New(log.Default(), logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return db
}

// normalizeDSN appends the driver parameters the signal store depends on:
// parseTime for the created/updated columns, utf8mb4 so signal text keeps
// full unicode. Parameters the operator set explicitly are left alone.
func normalizeDSN(dsn string) string {
	defaults := []struct{ key, val string }{
		{"parseTime", "true"},
		{"charset", "utf8mb4"},
		{"collation", "utf8mb4_unicode_ci"},
	}
	for _, p := range defaults {
		if strings.Contains(dsn, p.key+"=") {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + p.key + "=" + p.val
	}
	return dsn
}
