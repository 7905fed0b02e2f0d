package route

import (
	"ticketing-service/src/internal/delivery/http"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                    *fiber.App
	AuthController         *http.AuthController
	WalletController       *http.WalletController
	EventController        *http.EventController
	TicketController       *http.TicketController
	NotificationController *http.NotificationController
	AuthMiddleware         fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupPublicRoute()
	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupPublicRoute() {
	c.App.Post("/auth/v1/register", c.AuthController.Register)
	c.App.Post("/auth/v1/login", c.AuthController.Login)
	c.App.Get("/events/v1", c.EventController.ListEvents)
	c.App.Get("/events/v1/:id", c.EventController.GetEvent)
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	c.App.Get("/users/v1/profile", c.AuthController.GetProfile)
	c.App.Put("/users/v1/profile", c.AuthController.UpdateProfile)

	c.App.Get("/wallets/v1", c.WalletController.GetBalances)
	c.App.Post("/wallets/v1/topup", c.WalletController.TopUp)
	c.App.Get("/wallets/v1/:type/transactions", c.WalletController.GetTransactions)

	c.App.Post("/events/v1", c.EventController.CreateEvent)
	c.App.Put("/events/v1/:id", c.EventController.UpdateEvent)

	c.App.Post("/tickets/v1/purchase", c.TicketController.Purchase)
	c.App.Get("/tickets/v1", c.TicketController.ListTickets)
	c.App.Get("/tickets/v1/trade", c.TicketController.TradeHistory)
	c.App.Post("/tickets/v1/:id/send", c.TicketController.SendTicket)

	c.App.Get("/notifications/v1", c.NotificationController.ListNotifications)
	c.App.Put("/notifications/v1/read", c.NotificationController.MarkRead)
}
