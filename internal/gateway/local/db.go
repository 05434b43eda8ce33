// Package local implements the gateway contract with an embedded GORM/
// SQLite database. It stands in for the managed data backend during
// development and tests, and therefore owns everything the managed service
// owns in production: row persistence, server-side vote aggregates,
// uniqueness of votes per (idea, user), auth sessions and the auth-state
// change feed. Application code never imports GORM; it sees only the
// gateway interface.
package local

import (
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
)

// OpenSQLite opens (or creates) the backing SQLite database and applies
// PRAGMAs and pool settings suitable for a single-process deployment.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if the parent directory does not exist (instead of a
	// confusing sqlite "out of memory (14)" later).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Trace row operations alongside HTTP spans.
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// AutoMigrate creates or updates the backend tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Profile{},
		&domain.Category{},
		&domain.Idea{},
		&domain.Vote{},
		&domain.Comment{},
		&domain.Notification{},
		&domain.ReviewCycle{},
	)
}

// Seed inserts the default categories and an initial review cycle when the
// respective tables are empty. It is safe to call on every startup.
func Seed(db *gorm.DB, now time.Time) error {
	var n int64
	if err := db.Model(&domain.Category{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		defaults := []domain.Category{
			{ID: newID(), Name: "Process", Color: "#6366f1", Icon: "workflow", CreatedAt: now},
			{ID: newID(), Name: "Product", Color: "#22c55e", Icon: "package", CreatedAt: now},
			{ID: newID(), Name: "Workplace", Color: "#f59e0b", Icon: "building", CreatedAt: now},
			{ID: newID(), Name: "Technology", Color: "#0ea5e9", Icon: "cpu", CreatedAt: now},
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&domain.ReviewCycle{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		cycle := domain.ReviewCycle{
			CycleNumber: 1,
			StartDate:   now,
			EndDate:     now.AddDate(0, 3, 0),
			ReviewDate:  now.AddDate(0, 3, -7),
			Status:      "active",
			CreatedAt:   now,
		}
		if err := db.Create(&cycle).Error; err != nil {
			return err
		}
	}
	return nil
}
