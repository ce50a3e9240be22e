package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"siswaku_backend/internals/middlewares/logger"
)

// SetupMiddlewares: pasang middleware dasar dengan urutan yang benar
// (recovery paling luar, lalu logging, CORS, rate limit).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
