package middleware

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

const devOrigin = "http://localhost:3000"

// Config customises the middleware registration pipeline.
type Config struct {
	Logger        *zerolog.Logger
	AllowedOrigin string
}

// Register attaches the common middlewares used across the API.
func Register(app *fiber.App, cfg Config) {
	requestLogger := zerolog.New(io.Discard)
	if cfg.Logger != nil {
		requestLogger = *cfg.Logger
	}

	app.Use(recover.New())
	app.Use(CorrelationID())
	app.Use(Observability(requestLogger))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(cfg.AllowedOrigin),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "POST,OPTIONS",
	}))
}

// allowedOrigins always admits the local dev origin alongside the configured one.
func allowedOrigins(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" || origin == devOrigin {
		return devOrigin
	}
	return origin + "," + devOrigin
}
