package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pedidos/cmd"
	httpin "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/adapters/out/postgres/productrepo"
	"pedidos/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		root.CreateGetStalePendingOrdersQueryHandler(),
		root.CreateCancelOrderCommandHandler(),
		configs.StaleOrderTTL,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true

	server := httpin.NewServer(
		root.CreateCreateOrderWithItemsCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreateCreateProductCommandHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetProductsQueryHandler(),
		root.Metrics(),
	)
	server.RegisterRoutes(e)

	go func() {
		if startErr := e.Start("0.0.0.0:" + configs.HTTPPort); startErr != nil {
			logger.Info("HTTP server stopped", "error", startErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	config := cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
	}

	if raw := os.Getenv("STALE_ORDER_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			logger.Error("STALE_ORDER_TTL is not a valid duration", "value", raw, "error", err)
			os.Exit(1)
		}
		config.StaleOrderTTL = ttl
	}

	return config
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	); err != nil {
		return nil, err
	}

	return gormDB, nil
}
