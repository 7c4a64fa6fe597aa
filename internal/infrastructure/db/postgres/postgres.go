// Package postgres implements the repositories on GORM over PostgreSQL.
// Ownership scoping is uniform: every query on an owned row carries a
// user_id predicate, so a row belonging to another user is indistinguishable
// from a missing one.
package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// Connect opens the database and migrates the schema. TranslateError maps
// driver errors (duplicate key in particular) onto gorm's sentinel errors.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Application{},
		&domain.Contact{},
		&domain.Note{},
		&domain.TimelineEvent{},
		&domain.File{},
	); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}

	return db, nil
}
