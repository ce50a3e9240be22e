package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"siswaku_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS.
// Default terbuka; batasi lewat CORS_ALLOW_ORIGINS kalau domain frontend
// sudah fix (pisahkan dengan koma).
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: configs.GetEnv("CORS_ALLOW_ORIGINS", "*"),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}
