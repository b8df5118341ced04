package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invoicr/invoicr/internal/application/generator"
	"github.com/invoicr/invoicr/pkg/logger"
)

// RouterDeps holds the router's dependencies.
type RouterDeps struct {
	Generator *generator.Service
	OutputDir string
	JWTSecret string
	Log       *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log))

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	einvoices := api.Group("/einvoice")
	handler := NewEInvoiceHandler(deps.Generator, deps.OutputDir)
	einvoices.Get("/formats", handler.Formats)
	einvoices.Get("/countries", handler.Countries)
	einvoices.Post("/validate", handler.Validate)
	einvoices.Post("/generate", handler.Generate)
}
