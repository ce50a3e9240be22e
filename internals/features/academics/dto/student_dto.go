package dto

import (
	"strings"

	"siswaku_backend/internals/features/academics/model"
)

/* =========================================================
   0) helpers
   ========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// CreatedResponse: balasan standar endpoint create (id opaque string).
type CreatedResponse struct {
	ID string `json:"id"`
}

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type CreateStudentRequest struct {
	FirstName  string  `json:"first_name"  validate:"required,max=100"`
	LastName   string  `json:"last_name"   validate:"required,max=100"`
	RollNumber string  `json:"roll_number" validate:"required,max=50"`
	ClassName  string  `json:"class_name"  validate:"required,max=100"`
	Year       int     `json:"year"        validate:"required,gte=1900,lte=2100"`
	Email      *string `json:"email"       validate:"omitempty,email"`
}

// Normalize: rapikan input sebelum divalidasi.
func (r *CreateStudentRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.RollNumber = strings.TrimSpace(r.RollNumber)
	r.ClassName = strings.TrimSpace(r.ClassName)
	r.Email = trimPtr(r.Email)
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentFirstName:  r.FirstName,
		StudentLastName:   r.LastName,
		StudentRollNumber: r.RollNumber,
		StudentClassName:  r.ClassName,
		StudentYear:       r.Year,
		StudentEmail:      r.Email,
	}
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type StudentResponse struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	RollNumber string  `json:"roll_number"`
	ClassName  string  `json:"class_name"`
	Year       int     `json:"year"`
	Email      *string `json:"email,omitempty"`
}

func FromStudentRecord(rec model.StudentRecord) StudentResponse {
	return StudentResponse{
		ID:         rec.ID.String(),
		FirstName:  rec.StudentFirstName,
		LastName:   rec.StudentLastName,
		RollNumber: rec.StudentRollNumber,
		ClassName:  rec.StudentClassName,
		Year:       rec.StudentYear,
		Email:      rec.StudentEmail,
	}
}

func FromStudentRecords(recs []model.StudentRecord) []StudentResponse {
	out := make([]StudentResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromStudentRecord(rec))
	}
	return out
}
