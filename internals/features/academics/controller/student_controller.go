package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"siswaku_backend/internals/features/academics/dto"
	"siswaku_backend/internals/features/academics/service"
	helper "siswaku_backend/internals/helpers"
)

type StudentController struct {
	Service  *service.AcademicService
	validate *validator.Validate
}

func NewStudentController(svc *service.AcademicService) *StudentController {
	return &StudentController{
		Service:  svc,
		validate: validator.New(),
	}
}

/*
=========================================================

	CREATE
	POST /api/students

=========================================================
*/
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	id, err := h.Service.CreateStudent(c.UserContext(), req.ToModel())
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonCreated(c, "Student berhasil dibuat", dto.CreatedResponse{ID: id.String()})
}

/*
=========================================================

	LIST
	GET /api/students

=========================================================
*/
func (h *StudentController) List(c *fiber.Ctx) error {
	records, err := h.Service.ListStudents(c.UserContext())
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonList(c, "", dto.FromStudentRecords(records))
}
