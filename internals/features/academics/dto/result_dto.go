package dto

import (
	"strings"

	"siswaku_backend/internals/features/academics/model"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type CreateResultRequest struct {
	StudentID string  `json:"student_id" validate:"required,uuid"`
	CourseID  string  `json:"course_id"  validate:"required,uuid"`
	Marks     float64 `json:"marks"      validate:"gte=0,lte=100"`
}

func (r *CreateResultRequest) Normalize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.CourseID = strings.TrimSpace(r.CourseID)
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

// ResultCreatedResponse: id + grade hasil hitung, supaya caller bisa langsung
// menampilkan tanpa harus re-read.
type ResultCreatedResponse struct {
	ID         string  `json:"id"`
	Grade      string  `json:"grade"`
	GradePoint float64 `json:"grade_point"`
}

func FromRecordedResult(rec model.ResultRecord) ResultCreatedResponse {
	return ResultCreatedResponse{
		ID:         rec.ID.String(),
		Grade:      rec.ResultGrade,
		GradePoint: rec.ResultGradePoint,
	}
}

type ResultResponse struct {
	ID         string  `json:"id"`
	StudentID  string  `json:"student_id"`
	CourseID   string  `json:"course_id"`
	Marks      float64 `json:"marks"`
	Grade      string  `json:"grade"`
	GradePoint float64 `json:"grade_point"`
}

func FromResultRecord(rec model.ResultRecord) ResultResponse {
	return ResultResponse{
		ID:         rec.ID.String(),
		StudentID:  rec.ResultStudentID,
		CourseID:   rec.ResultCourseID,
		Marks:      rec.ResultMarks,
		Grade:      rec.ResultGrade,
		GradePoint: rec.ResultGradePoint,
	}
}

func FromResultRecords(recs []model.ResultRecord) []ResultResponse {
	out := make([]ResultResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromResultRecord(rec))
	}
	return out
}
