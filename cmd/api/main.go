package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sismin/backoffice-api/internal/api"
	"github.com/sismin/backoffice-api/internal/core/rotation"
	"github.com/sismin/backoffice-api/internal/infrastructure/config"
	mongorepo "github.com/sismin/backoffice-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sismin/backoffice-api/internal/infrastructure/db/redis"
	"github.com/sismin/backoffice-api/internal/infrastructure/notifier"
	"github.com/sismin/backoffice-api/pkg/logger"

	_ "github.com/sismin/backoffice-api/docs"
)

// @title        Mining Back-Office API
// @version      1.0
// @description  Multi-tenant back-office for mining concessions: employees, expenses, payroll with weekly payer rotation, documents, and notifications.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	epoch, err := cfg.Payroll.EpochDate()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid payroll epoch")
	}

	// --- Connections ---
	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Indexes ---
	for name, ensure := range map[string]func(context.Context) error{
		"users":         mongorepo.NewUserRepository(db).EnsureIndexes,
		"employees":     mongorepo.NewEmployeeRepository(db).EnsureIndexes,
		"expenses":      mongorepo.NewExpenseRepository(db).EnsureIndexes,
		"payrolls":      mongorepo.NewPayrollRepository(db).EnsureIndexes,
		"documents":     mongorepo.NewDocumentRepository(db).EnsureIndexes,
		"notifications": mongorepo.NewNotificationRepository(db).EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Background reminder worker ---
	worker := notifier.NewReminderWorker(
		mongorepo.NewDocumentRepository(db),
		mongorepo.NewNotificationRepository(db),
		redisdb.NewReminderDedup(rdb),
		cfg.Reminder.Interval,
		cfg.Reminder.Lookahead,
		log,
	)
	worker.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, api.RouterConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  7 * 24 * time.Hour,
		Rotation: rotation.Config{
			Rotation:     cfg.Payroll.Rotation,
			Epoch:        epoch,
			NoRotation:   cfg.Payroll.NoRotation,
			FixedPayerID: cfg.Payroll.FixedPayer,
		},
	}, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
