package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ticketing-service/src/internal/config"
	"ticketing-service/src/internal/delivery/http/middleware"
	"ticketing-service/src/pkg/log"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "TICKETING_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("wallet.topup.minimum", 10000)
	viperConfig.SetDefault("jwt.expire.hours", 168)

	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	config.LoadRedisConfig(viperConfig, logger)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator()
	app := config.NewFiber(viperConfig)
	app.Use(middleware.NewLogger())

	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
	})

	go func() {
		webPort := viperConfig.GetInt("web.port")
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("main", "Server ticketing-service is shutting down...", "graceful", "")

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing kafka producer: %v", err), "graceful", "")
		}
	}
	if err := app.Shutdown(); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
