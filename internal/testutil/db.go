// Package testutil provides in-memory stores for package tests.
package testutil

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/pkg/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB opens a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(t.Name()))
	db, err := database.Open(context.Background(), sqlite.Open(dsn), database.Options{MaxRetries: 1})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// one connection keeps the shared in-memory database alive and serialises writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// CreateUser inserts a PUBLIC user with the given name and a derived email.
func CreateUser(t *testing.T, db *gorm.DB, name string, opts ...func(*models.User)) *models.User {
	t.Helper()
	u := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", url.PathEscape(name)),
		PasswordHash: "x",
	}
	for _, o := range opts {
		o(u)
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

// Private marks a user created with CreateUser as PRIVATE.
func Private(u *models.User) { u.ProfileType = models.ProfilePrivate }

// Located sets the user's location.
func Located(loc string) func(*models.User) {
	return func(u *models.User) { u.Location = &loc }
}
