package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/sms-dispatch/internal/cache/redis"
	"github.com/oggyb/sms-dispatch/internal/config"
	"github.com/oggyb/sms-dispatch/internal/db/gormdb"
	"github.com/oggyb/sms-dispatch/internal/handler"
	"github.com/oggyb/sms-dispatch/internal/logger"
	groupRepo "github.com/oggyb/sms-dispatch/internal/repository/gorm/group"
	routes "github.com/oggyb/sms-dispatch/internal/router"
	"github.com/oggyb/sms-dispatch/internal/server"
	"github.com/oggyb/sms-dispatch/internal/service"
	"github.com/oggyb/sms-dispatch/internal/sms"
)

// @title       SMS Dispatch API
// @version     1.0
// @description Sends SMS messages through a bearer-token HTTP provider and manages recipient groups.
// @BasePath    /
func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()

	if err := logger.Setup(logger.Config{Level: cfg.Log.Level, Filename: cfg.Log.Filename}); err != nil {
		logger.Fatalf("[Main] Invalid logging config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("[Main] %v", err)
	}

	// Init SMS provider client.
	smsClient, err := sms.New(
		cfg.SMS.APIToken,
		cfg.SMS.APIURL,
		sms.WithVerifyTLS(cfg.SMS.VerifyTLS),
		sms.WithTimeout(cfg.SMS.HTTPTimeout),
	)
	if err != nil {
		logger.Fatalf("[Main] Failed to create SMS client: %v", err)
	}
	if !cfg.SMS.VerifyTLS {
		logger.Warnf("[Main] TLS verification for the SMS provider is disabled.")
	}

	// Init cache.
	cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(rootCtx); err != nil {
		logger.Fatalf("[Main] Failed to connect to redis: %v", err)
	}
	defer cache.Close()

	// Init DB.
	db, err := gormdb.New(cfg.PostgresDSN())
	if err != nil {
		logger.Fatalf("[Main] Failed to connect db: %v", err)
	}
	if err := db.Migrate(&groupRepo.GroupModel{}); err != nil {
		logger.Fatalf("[Main] AutoMigrate failed: %v", err)
	}

	// Init repository and services.
	groups := groupRepo.NewRepository(db)
	smsSvc := service.NewSMSService(smsClient, groups, cache, cfg.Stats.TTL)

	// HTTP dependencies & server wiring.
	deps := routes.AppDeps{
		Home:  handler.NewHomeHandler(),
		SMS:   handler.NewSMSHandler(smsSvc),
		Group: handler.NewGroupHandler(smsSvc),
	}

	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("[Main] %s (%s) listening on %s", cfg.App.Name, cfg.App.Env, addr)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("[Main] HTTP server error: %v", err)
		}
	}()

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	logger.Infof("[Main] Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("[Main] HTTP server graceful shutdown failed: %v", err)
	} else {
		logger.Infof("[Main] HTTP server stopped.")
	}

	logger.Infof("[Main] Shutdown complete.")
}
