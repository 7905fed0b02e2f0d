package config

import (
	"ticketing-service/src/internal/delivery/http"
	"ticketing-service/src/internal/delivery/http/middleware"
	"ticketing-service/src/internal/delivery/http/route"
	"ticketing-service/src/internal/gateway/messaging"
	"ticketing-service/src/internal/repository"
	"ticketing-service/src/internal/usecase"
	"ticketing-service/src/pkg/databases/mysql"
	kafkaPkg "ticketing-service/src/pkg/kafka"
	"ticketing-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       mysql.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafkaPkg.Producer
	Redis    redis.UniversalClient
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	userRepository := repository.NewUserRepository(config.DB)
	walletRepository := repository.NewWalletRepository(config.DB)
	eventRepository := repository.NewEventRepository(config.DB)
	ticketRepository := repository.NewTicketRepository(config.DB)
	transactionRepository := repository.NewTransactionRepository(config.DB)
	notificationRepository := repository.NewNotificationRepository(config.DB)
	purchaseRepository := repository.NewPurchaseRepository(config.DB)
	ticketProducer := messaging.NewTicketProducer(config.Producer, config.Log)
	walletProducer := messaging.NewWalletProducer(config.Producer, config.Log)

	// setup use cases
	authUseCase := usecase.NewAuthUseCase(
		config.Log,
		config.Validate,
		userRepository,
		config.Config,
	)
	walletUseCase := usecase.NewWalletUseCase(
		config.Log,
		config.Validate,
		walletRepository,
		transactionRepository,
		purchaseRepository,
		config.Config,
		config.Redis,
		walletProducer,
	)
	eventUseCase := usecase.NewEventUseCase(
		config.Log,
		config.Validate,
		eventRepository,
		config.Redis,
	)
	purchaseUseCase := usecase.NewPurchaseUseCase(
		config.Log,
		config.Validate,
		userRepository,
		walletRepository,
		eventRepository,
		purchaseRepository,
		config.Config,
		config.Redis,
		ticketProducer,
	)
	ticketUseCase := usecase.NewTicketUseCase(
		config.Log,
		config.Validate,
		ticketRepository,
	)
	notificationUseCase := usecase.NewNotificationUseCase(
		config.Log,
		config.Validate,
		notificationRepository,
	)

	// setup controllers
	authController := http.NewAuthController(authUseCase, config.Log)
	walletController := http.NewWalletController(walletUseCase, config.Log)
	eventController := http.NewEventController(eventUseCase, config.Log)
	ticketController := http.NewTicketController(purchaseUseCase, ticketUseCase, config.Log)
	notificationController := http.NewNotificationController(notificationUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	routeConfig := route.RouteConfig{
		App:                    config.App,
		AuthController:         authController,
		WalletController:       walletController,
		EventController:        eventController,
		TicketController:       ticketController,
		NotificationController: notificationController,
		AuthMiddleware:         authMiddleware,
	}
	routeConfig.Setup()
}
