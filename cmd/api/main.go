package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mogith007/skillswap/internal/api"
	"github.com/mogith007/skillswap/internal/api/handlers"
	"github.com/mogith007/skillswap/internal/auth"
	"github.com/mogith007/skillswap/internal/queue/tasks"
	"github.com/mogith007/skillswap/internal/repository"
	"github.com/mogith007/skillswap/internal/services"
	"github.com/mogith007/skillswap/pkg/config"
	"github.com/mogith007/skillswap/pkg/database"
	"github.com/mogith007/skillswap/pkg/logger"

	_ "github.com/mogith007/skillswap/docs"
)

// @title           SkillSwap API
// @version         1.0
// @description     Skill exchange marketplace: members, skills, swap requests, ratings and chat.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting skillswap api",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, database.Options{Verbose: cfg.IsDevelopment()})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	swapRepo := repository.NewSwapRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Redis backs token revocation and the reset-mail queue. Without it both
	// degrade: logout is client-side only and reset requests are just logged.
	var denylist auth.Denylist
	var notifier services.ResetNotifier
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("redis connection failed", zap.Error(err))
		}
		defer rdb.Close()
		denylist = auth.NewRedisDenylist(rdb)

		queue := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer queue.Close()
		notifier = tasks.NewDispatcher(queue)
	} else {
		log.Warn("REDIS_ADDR not set: token revocation and reset emails are disabled")
	}

	authSvc := services.NewAuthService(
		userRepo,
		adminRepo,
		auth.NewHasher(cfg.BcryptCost),
		auth.NewIssuer(cfg.JWTSecret, cfg.JWTExpiresIn, cfg.ResetTokenTTL),
		denylist,
		notifier,
	)

	router := api.NewRouter(api.Dependencies{
		Authenticator:  authSvc,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,

		HealthHandler: handlers.NewHealthHandler(func(ctx context.Context) error { return database.Ping(ctx, db) }),
		AuthHandler:   handlers.NewAuthHandler(authSvc),
		UserHandler:   handlers.NewUserHandler(services.NewUserService(userRepo, skillRepo, ratingRepo)),
		SkillHandler:  handlers.NewSkillHandler(services.NewSkillService(skillRepo)),
		SwapHandler:   handlers.NewSwapHandler(services.NewSwapService(userRepo, swapRepo)),
		RatingHandler: handlers.NewRatingHandler(services.NewRatingService(userRepo, swapRepo, ratingRepo)),
		AdminHandler:  handlers.NewAdminHandler(authSvc, services.NewAdminService(userRepo, swapRepo, ratingRepo, skillRepo)),
		ChatHandler:   handlers.NewChatHandler(services.NewChatService(userRepo, swapRepo, chatRepo)),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
