// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"siswaku_backend/internals/docstore"
	"siswaku_backend/internals/features/academics/service"
	routeDetails "siswaku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, store docstore.Store) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, store)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Academic routes...")
	svc := service.NewAcademicService(store)
	api := app.Group("/api")
	routeDetails.AcademicRoutes(api, svc)
}
