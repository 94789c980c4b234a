package db

import (
	"log"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "tuneeng_backend/internal/feature/auth/domain/entity"
	contactentity "tuneeng_backend/internal/feature/contact/domain/entity"
)

// Config selects the database backend. DatabaseURL takes precedence;
// when it is empty the app falls back to a local SQLite file so it works
// out of the box.
type Config struct {
	DatabaseURL string
	SQLitePath  string
}

// Dialector returns the gorm dialector for the configured backend.
func Dialector(cfg Config) gorm.Dialector {
	if cfg.DatabaseURL != "" {
		return postgres.Open(cfg.DatabaseURL)
	}
	path := cfg.SQLitePath
	if path == "" {
		path = "tuneeng.db"
	}
	slog.Warn("DATABASE_URL not set, using local SQLite database", "path", path)
	return sqlite.Open(path)
}

// Open connects to the database, retrying for up to 60 seconds, and runs
// schema migration. It terminates the process on a connection failure
// because the server cannot serve requests without its store.
func Open(cfg Config) *gorm.DB {
	dialector := Dialector(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if err := db.AutoMigrate(
		&authentity.User{},
		&contactentity.Submission{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
