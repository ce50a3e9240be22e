package routes

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	databases "siswaku_backend/internals/databases"
	"siswaku_backend/internals/docstore"
)

// collectionLister: kemampuan opsional store (hanya GormStore yang punya).
type collectionLister interface {
	Collections(ctx context.Context) ([]string, error)
}

func BaseRoutes(app *fiber.App, store docstore.Store) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Student Result Management API 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if databases.DB == nil {
			dbStatus = "Not configured (in-memory store)"
		} else if databases.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})

	// Endpoint diagnosa koneksi + isi store
	app.Get("/test", func(c *fiber.Ctx) error {
		resp := fiber.Map{
			"backend":           "running",
			"database":          "not available",
			"connection_status": "not connected",
			"db_host_set":       os.Getenv("DB_HOST") != "",
			"db_name_set":       os.Getenv("DB_NAME") != "",
			"collections":       []string{},
		}

		if databases.DB != nil {
			if err := databases.Ping(); err != nil {
				resp["database"] = "connected but error: " + err.Error()
			} else {
				resp["database"] = "connected & working"
				resp["connection_status"] = "connected"
			}
		}

		if lister, ok := store.(collectionLister); ok {
			names, err := lister.Collections(c.UserContext())
			if err == nil {
				if len(names) > 10 {
					names = names[:10]
				}
				resp["collections"] = names

				counts := fiber.Map{}
				for _, name := range names {
					if cnt, err := store.CountMatching(c.UserContext(), name, nil); err == nil {
						counts[name] = cnt
					}
				}
				resp["document_counts"] = counts
			}
		}

		return c.JSON(resp)
	})
}
