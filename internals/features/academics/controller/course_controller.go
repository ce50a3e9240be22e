package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"siswaku_backend/internals/features/academics/dto"
	"siswaku_backend/internals/features/academics/service"
	helper "siswaku_backend/internals/helpers"
)

type CourseController struct {
	Service  *service.AcademicService
	validate *validator.Validate
}

func NewCourseController(svc *service.AcademicService) *CourseController {
	return &CourseController{
		Service:  svc,
		validate: validator.New(),
	}
}

/*
=========================================================

	CREATE
	POST /api/courses

=========================================================
*/
func (h *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	id, err := h.Service.CreateCourse(c.UserContext(), req.ToModel())
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonCreated(c, "Course berhasil dibuat", dto.CreatedResponse{ID: id.String()})
}

/*
=========================================================

	LIST
	GET /api/courses

=========================================================
*/
func (h *CourseController) List(c *fiber.Ctx) error {
	records, err := h.Service.ListCourses(c.UserContext())
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonList(c, "", dto.FromCourseRecords(records))
}
