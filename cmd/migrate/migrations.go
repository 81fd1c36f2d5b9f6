package main

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mogith007/skillswap/internal/auth"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/repository"
)

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addSearchIndexes,
	}
	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}
	return nil
}

// addSearchIndexes backs the case-insensitive member and admin searches.
func addSearchIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_users_location_lower ON users (LOWER(location))`,
		`CREATE INDEX IF NOT EXISTS idx_users_name_lower ON users (LOWER(name))`,
		`CREATE INDEX IF NOT EXISTS idx_chats_last_message ON chats (last_message_at DESC)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create search index: %w", err)
		}
	}
	return nil
}

// seedAdmin creates the configured admin account once; an existing row is left alone.
func seedAdmin(ctx context.Context, admins repository.AdminRepository, hasher *auth.Hasher, email, password string) (bool, error) {
	if email == "" {
		return false, nil
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return false, err
	}
	return admins.Ensure(ctx, &models.Admin{Email: email, PasswordHash: hash})
}
