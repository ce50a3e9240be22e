package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"siswaku_backend/internals/features/academics/dto"
	"siswaku_backend/internals/features/academics/model"
	"siswaku_backend/internals/features/academics/service"
	helper "siswaku_backend/internals/helpers"
)

type ResultController struct {
	Service  *service.AcademicService
	validate *validator.Validate
}

func NewResultController(svc *service.AcademicService) *ResultController {
	return &ResultController{
		Service:  svc,
		validate: validator.New(),
	}
}

/*
=========================================================

	CREATE
	POST /api/results
	Validasi referensi student/course ada di service,
	controller hanya parse & validasi bentuk.

=========================================================
*/
func (h *ResultController) Create(c *fiber.Ctx) error {
	var req dto.CreateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID, err := model.ParseStudentID(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format student_id tidak valid")
	}
	courseID, err := model.ParseCourseID(req.CourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format course_id tidak valid")
	}

	rec, err := h.Service.RecordResult(c.UserContext(), studentID, courseID, req.Marks)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonCreated(c, "Result berhasil dicatat", dto.FromRecordedResult(*rec))
}

/*
=========================================================

	LIST
	GET /api/results?student_id=

=========================================================
*/
func (h *ResultController) List(c *fiber.Ctx) error {
	var studentID *model.StudentID
	if raw := c.Query("student_id"); raw != "" {
		id, err := model.ParseStudentID(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format student_id tidak valid")
		}
		studentID = &id
	}

	records, err := h.Service.ListResults(c.UserContext(), studentID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonList(c, "", dto.FromResultRecords(records))
}
