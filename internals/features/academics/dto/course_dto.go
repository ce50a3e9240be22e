package dto

import (
	"strings"

	"siswaku_backend/internals/features/academics/model"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type CreateCourseRequest struct {
	Code  string `json:"code"  validate:"required,max=20"`
	Title string `json:"title" validate:"required,max=160"`
	// credits boleh 0 (mis. mata kuliah audit), tidak boleh negatif
	Credits float64 `json:"credits" validate:"gte=0"`
}

func (r *CreateCourseRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Title = strings.TrimSpace(r.Title)
}

func (r CreateCourseRequest) ToModel() model.CourseModel {
	return model.CourseModel{
		CourseCode:    r.Code,
		CourseTitle:   r.Title,
		CourseCredits: r.Credits,
	}
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type CourseResponse struct {
	ID      string  `json:"id"`
	Code    string  `json:"code"`
	Title   string  `json:"title"`
	Credits float64 `json:"credits"`
}

func FromCourseRecord(rec model.CourseRecord) CourseResponse {
	return CourseResponse{
		ID:      rec.ID.String(),
		Code:    rec.CourseCode,
		Title:   rec.CourseTitle,
		Credits: rec.CourseCredits,
	}
}

func FromCourseRecords(recs []model.CourseRecord) []CourseResponse {
	out := make([]CourseResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromCourseRecord(rec))
	}
	return out
}
