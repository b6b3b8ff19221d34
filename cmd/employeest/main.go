package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Employeest/employeest-be/internal/api/router"
	"github.com/Employeest/employeest-be/internal/pkg/config"
	"github.com/Employeest/employeest-be/internal/pkg/database"
	"github.com/Employeest/employeest-be/internal/pkg/logger"
	"github.com/Employeest/employeest-be/internal/scheduler"

	_ "github.com/Employeest/employeest-be/docs" // Swagger docs
)

// @title Employeest API
// @version 1.0
// @description Project and task tracking backend: projects, tasks, teams, work logs, dashboards and chart exports.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var (
	configFile = flag.String("config", "", "config file path (e.g. -config=configs/config.yaml)")
	version    = flag.Bool("version", false, "print version and exit")
)

const (
	appVersion = "1.0.0"
	appName    = "employeest-be"
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
	}

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Close()
	}()

	logger.Info(fmt.Sprintf("starting %s", appName),
		zap.String("version", appVersion),
		zap.String("config", configPath),
	)

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to init database", zap.Error(err))
	}
	defer func() {
		_ = database.Close()
	}()

	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.Database),
	)

	// database handle consumed by router.Setup
	cfg.DB = database.GetDB()

	taskScheduler := scheduler.NewScheduler(database.GetDB(), logger.Log)
	if err := taskScheduler.Start(cfg); err != nil {
		logger.Warn("failed to start scheduler", zap.Error(err))
	}
	// tokens that expired while the server was down
	if purged, err := taskScheduler.TriggerTokenPurge(); err != nil {
		logger.Warn("startup token purge failed", zap.Error(err))
	} else if purged > 0 {
		logger.Info("purged expired auth tokens at startup", zap.Int64("count", purged))
	}

	r := router.Setup(cfg, logger.Log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info(fmt.Sprintf("%s listening", cfg.Server.Name),
			zap.String("address", addr),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	taskScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}

// getConfigPath resolves the config file location.
// Priority: command line flag > environment variable > default path.
func getConfigPath() string {
	if *configFile != "" {
		return *configFile
	}
	if envConfig := os.Getenv("CONFIG_FILE"); envConfig != "" {
		return envConfig
	}
	return "configs/config.yaml"
}
