package details

import (
	"github.com/gofiber/fiber/v2"

	"siswaku_backend/internals/features/academics/controller"
	"siswaku_backend/internals/features/academics/service"
)

// AcademicRoutes: endpoint student/course/result/transcript di bawah /api.
func AcademicRoutes(api fiber.Router, svc *service.AcademicService) {
	studentCtrl := controller.NewStudentController(svc)
	courseCtrl := controller.NewCourseController(svc)
	resultCtrl := controller.NewResultController(svc)
	transcriptCtrl := controller.NewTranscriptController(svc)

	// ===================== STUDENTS =====================
	api.Post("/students", studentCtrl.Create)
	api.Get("/students", studentCtrl.List)
	api.Get("/students/:student_id/transcript", transcriptCtrl.Get)

	// ===================== COURSES =====================
	api.Post("/courses", courseCtrl.Create)
	api.Get("/courses", courseCtrl.List)

	// ===================== RESULTS =====================
	api.Post("/results", resultCtrl.Create)
	api.Get("/results", resultCtrl.List)
}
