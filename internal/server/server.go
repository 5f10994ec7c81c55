// Package server exposes the layout optimization engine over HTTP.
// Transport is deliberately thin: it decodes the request contract, runs
// one session, and encodes the result. The engine itself is stateless
// between calls, so concurrent requests need no coordination.
package server

import (
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/vastuhome/layoutengine/internal/config"
)

// New builds the fiber application with middleware and routes.
func New(cfg config.Config, log *charmlog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		AppName:      "Layout Engine",
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	h := &Handler{defaults: cfg.Settings(), log: log}

	api := app.Group("/api/v1")
	api.Post("/optimize", h.Optimize)

	return app
}
