package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"siswaku_backend/internals/features/academics/service"
	helper "siswaku_backend/internals/helpers"
)

// writeServiceError: mapping error service → response HTTP.
func writeServiceError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return helper.JsonError(c, fiber.StatusBadRequest, ve.Message)
	}

	var nfe *service.NotFoundError
	if errors.As(err, &nfe) {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMessage(nfe.Entity))
	}

	// error store dipropagasi apa adanya → fatal untuk request ini saja
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

func notFoundMessage(entity string) string {
	switch entity {
	case "student":
		return "Student tidak ditemukan"
	case "course":
		return "Course tidak ditemukan"
	default:
		return entity + " tidak ditemukan"
	}
}
