package controller

import (
	"github.com/gofiber/fiber/v2"

	"siswaku_backend/internals/features/academics/dto"
	"siswaku_backend/internals/features/academics/model"
	"siswaku_backend/internals/features/academics/service"
	helper "siswaku_backend/internals/helpers"
)

type TranscriptController struct {
	Service *service.AcademicService
}

func NewTranscriptController(svc *service.AcademicService) *TranscriptController {
	return &TranscriptController{Service: svc}
}

/*
=========================================================

	GET
	GET /api/students/:student_id/transcript

=========================================================
*/
func (h *TranscriptController) Get(c *fiber.Ctx) error {
	studentID, err := model.ParseStudentID(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format student_id tidak valid")
	}

	transcript, err := h.Service.GetTranscript(c.UserContext(), studentID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, "", dto.FromTranscriptModel(*transcript))
}
