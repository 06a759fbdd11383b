package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymdesk-backend/config"
	"gymdesk-backend/internal/api"
	"gymdesk-backend/internal/database"
	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/services"
	"gymdesk-backend/internal/utils"
	"gymdesk-backend/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// @title gymdesk-backend API
// @version 1.0
// @description Admin API for gym membership records, plan renewals, invoices and reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.L().Sync() }()

	if err := bootstrap(cfg); err != nil {
		logger.L().Fatal("Startup failed", zap.Error(err))
	}

	reminders := startReminders(cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           api.NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.L().Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.L().Info("Shutting down")

	if reminders != nil {
		<-reminders.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("Graceful shutdown failed", zap.Error(err))
	}
}

// bootstrap connects the stores and installs the optional collaborators.
func bootstrap(cfg *config.Config) error {
	if _, err := database.Connect(cfg); err != nil {
		return err
	}
	if err := database.DB.AutoMigrate(&models.Member{}, &models.Sequence{}, &models.User{}); err != nil {
		return err
	}

	if cfg.RedisEnabled() {
		if err := database.ConnectRedis(cfg); err != nil {
			logger.L().Warn("Redis unavailable, running without cache and token denylist", zap.Error(err))
		}
	}

	if cfg.JWTSecret == "" {
		return utils.ErrTokenSecretMissing
	}
	utils.ConfigureTokens(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	services.Configure(cfg)

	if err := services.EnsureAdminUser(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return err
	}

	if cfg.SMTPEnabled() {
		services.SetMailer(services.NewSMTPMailer(cfg))
	} else {
		logger.L().Warn("SMTP not configured, e-mail endpoints will return 503")
	}

	if cfg.OSSEnabled() {
		archiver, err := services.NewOSSArchiver(cfg)
		if err != nil {
			return err
		}
		services.SetInvoiceArchiver(archiver)
	}
	return nil
}

func startReminders(cfg *config.Config) *cron.Cron {
	if !cfg.ReminderEnabled || !cfg.SMTPEnabled() {
		return nil
	}
	c, err := services.StartReminderScheduler(cfg.ReminderCron)
	if err != nil {
		logger.L().Error("Expiry reminders disabled", zap.Error(err))
		return nil
	}
	return c
}
