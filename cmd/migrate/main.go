package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mogith007/skillswap/internal/auth"
	"github.com/mogith007/skillswap/internal/repository"
	"github.com/mogith007/skillswap/pkg/config"
	"github.com/mogith007/skillswap/pkg/database"
	"github.com/mogith007/skillswap/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, database.Options{Verbose: true})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := runMigrations(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	created, err := seedAdmin(ctx, repository.NewAdminRepository(db), auth.NewHasher(cfg.BcryptCost), cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatal("admin seed failed", zap.Error(err))
	}
	if created {
		log.Info("admin account created", zap.String("email", cfg.AdminEmail))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
