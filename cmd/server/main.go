// @title			BodySync API
// @version		1.0
// @description	REST API for tracking users, fitness activities, workouts, nutrition and goals.
// @host			localhost:3000
// @BasePath		/api
//
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/kukuhtri1999/BodySync/internal/api"
	"github.com/kukuhtri1999/BodySync/internal/api/handler"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
	"github.com/kukuhtri1999/BodySync/internal/core/service"
	"github.com/kukuhtri1999/BodySync/internal/infrastructure/db/mongo"
	"github.com/kukuhtri1999/BodySync/internal/infrastructure/db/postgres"
	"github.com/kukuhtri1999/BodySync/internal/infrastructure/db/redis"
	"github.com/kukuhtri1999/BodySync/internal/infrastructure/queue"
	"github.com/kukuhtri1999/BodySync/internal/pkg/config"
	"github.com/kukuhtri1999/BodySync/internal/pkg/token"
	"github.com/kukuhtri1999/BodySync/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "bodysync",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Relational storage ---
	db, err := postgres.Connect(ctx, postgres.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	log.Info().Msg("database migrated")

	health := map[string]handler.Pinger{"postgres": sqlDB.PingContext}

	// --- Idempotency store ---
	var idem ports.IdempotencyStore = redis.NopIdempotencyStore{}
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		idem = redis.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)
		health["redis"] = redis.Ping(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotency store enabled")
	}

	// --- Audit trail ---
	var audit ports.AuditRecorder = queue.NopRecorder{}
	var dispatcher *queue.AuditDispatcher
	if cfg.Mongo.URI != "" {
		client, mdb, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = mongo.Disconnect(client, shutdownTimeout) }()

		repo := mongo.NewAuditRepository(mdb)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
		dispatcher = queue.NewAuditDispatcher(cfg.Audit.Workers, repo, log)
		// Workers outlive the signal so requests drained by Shutdown still
		// get their events written.
		dispatcher.Start(context.WithoutCancel(ctx))
		audit = dispatcher
		health["mongo"] = mongo.Ping(client)
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit trail enabled")
	}

	// --- Services ---
	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)
	users := postgres.NewUserRepository(db)

	e := api.NewRouter(api.Deps{
		Auth:       service.NewAuthService(users, tokens, audit, log),
		Users:      service.NewUserService(users, audit, log),
		Activities: service.NewActivityService(postgres.NewActivityRepository(db), idem, audit, log),
		Workouts:   service.NewWorkoutService(postgres.NewWorkoutRepository(db), idem, audit, log),
		Nutrition:  service.NewNutritionService(postgres.NewNutritionRepository(db), idem, audit, log),
		Goals:      service.NewGoalService(postgres.NewGoalRepository(db), idem, audit, log),
		Tokens:     tokens,
		Health:     health,
		Log:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if dispatcher != nil {
		if err := dispatcher.Stop(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("audit queue not fully drained")
		}
	}
	return nil
}
