package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"tuneeng_backend/internal/app/di"
	"tuneeng_backend/internal/app/router"
	authadapters "tuneeng_backend/internal/feature/auth/adapters"
	authentity "tuneeng_backend/internal/feature/auth/domain/entity"
	authhandler "tuneeng_backend/internal/feature/auth/transport/handler"
	authusecase "tuneeng_backend/internal/feature/auth/usecase"
	contactadapters "tuneeng_backend/internal/feature/contact/adapters"
	contacthandler "tuneeng_backend/internal/feature/contact/transport/handler"
	contactusecase "tuneeng_backend/internal/feature/contact/usecase"
	leaderboardhandler "tuneeng_backend/internal/feature/leaderboard/transport/handler"
	leaderboardusecase "tuneeng_backend/internal/feature/leaderboard/usecase"
	practicehandler "tuneeng_backend/internal/feature/practice/transport/handler"
	practiceusecase "tuneeng_backend/internal/feature/practice/usecase"
	profilehandler "tuneeng_backend/internal/feature/profile/transport/handler"
	profileusecase "tuneeng_backend/internal/feature/profile/usecase"
	trackerhandler "tuneeng_backend/internal/feature/tracker/transport/handler"
	trackerusecase "tuneeng_backend/internal/feature/tracker/usecase"
	usershandler "tuneeng_backend/internal/feature/users/transport/handler"
	usersusecase "tuneeng_backend/internal/feature/users/usecase"
	"tuneeng_backend/internal/platform/config"
	platformdb "tuneeng_backend/internal/platform/db"
	jwtmw "tuneeng_backend/internal/platform/jwt"
	platformredis "tuneeng_backend/internal/platform/redis"
	"tuneeng_backend/internal/shared/ratelimiter"
)

const leaderboardCacheTTL = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db := platformdb.Open(platformdb.Config{
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
	})

	var rdb *redisv9.Client
	if tmp, err := platformredis.NewClient(cfg.RedisAddr(), cfg.RedisPassword); err != nil {
		if !errors.Is(err, platformredis.ErrNotConfigured) {
			slog.Warn("redis unavailable, running without cache", "error", err)
		}
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close redis client", "error", err)
			}
		}()
	}

	// Repositories
	userRepo := authadapters.NewUserGorm(db)
	submissionRepo := contactadapters.NewSubmissionGorm(db)
	leaderboardRepo := di.NewLeaderboardRepository(rdb, leaderboardCacheTTL)

	// Token plumbing
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL())
	tokenVal := jwtmw.NewValidator(cfg.JWTSecret)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	usersUC := usersusecase.NewUsersUsecase(userRepo)
	practiceUC := practiceusecase.NewPracticeUsecase()
	leaderboardUC := leaderboardusecase.NewLeaderboardUsecase(leaderboardRepo)
	profileUC := profileusecase.NewProfileUsecase(userRepo)
	trackerUC := trackerusecase.NewTrackerUsecase()
	contactUC := contactusecase.NewContactUsecase(submissionRepo)

	seedDemoUser(authUC)

	r := router.New(router.Deps{
		Auth:        authhandler.NewAuthHandler(authUC),
		Users:       usershandler.NewUsersHandler(usersUC),
		Practice:    practicehandler.NewPracticeHandler(practiceUC),
		Leaderboard: leaderboardhandler.NewLeaderboardHandler(leaderboardUC),
		Profile:     profilehandler.NewProfileHandler(profileUC),
		Tracker:     trackerhandler.NewTrackerHandler(trackerUC),
		Contact:     contacthandler.NewContactHandler(contactUC),

		TokenValidator: tokenVal,
		RateLimiter:    ratelimiter.New(),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

type registrar interface {
	Register(ctx context.Context, email, password, fullName, username string) (*authentity.User, error)
}

// seedDemoUser registers a fixed account so development logins work out of
// the box. An already-seeded database is left alone.
func seedDemoUser(auth registrar) {
	_, err := auth.Register(context.Background(), "demo.user@example.com", "DemoPass123!", "Demo User", "demouser")
	switch {
	case err == nil:
		slog.Info("seeded demo user", "email", "demo.user@example.com")
	case errors.Is(err, authusecase.ErrEmailAlreadyExists):
		slog.Info("demo user already exists", "email", "demo.user@example.com")
	default:
		slog.Warn("failed to seed demo user", "error", err)
	}
}
