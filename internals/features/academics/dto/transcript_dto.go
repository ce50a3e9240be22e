package dto

import "siswaku_backend/internals/features/academics/model"

type TranscriptStudent struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	RollNumber string `json:"roll_number"`
	ClassName  string `json:"class_name"`
	Year       int    `json:"year"`
}

type TranscriptItem struct {
	CourseCode  string  `json:"course_code"`
	CourseTitle string  `json:"course_title"`
	Credits     float64 `json:"credits"`
	Marks       float64 `json:"marks"`
	Grade       string  `json:"grade"`
	GradePoint  float64 `json:"grade_point"`
}

type TranscriptResponse struct {
	Student TranscriptStudent `json:"student"`
	GPA     float64           `json:"gpa"`
	Results []TranscriptItem  `json:"results"`
	// warning non-fatal, mis. result yang coursenya sudah hilang
	Warnings []string `json:"warnings,omitempty"`
}

func FromTranscriptModel(t model.TranscriptModel) TranscriptResponse {
	items := make([]TranscriptItem, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, TranscriptItem{
			CourseCode:  it.CourseCode,
			CourseTitle: it.CourseTitle,
			Credits:     it.Credits,
			Marks:       it.Marks,
			Grade:       it.Grade,
			GradePoint:  it.GradePoint,
		})
	}

	return TranscriptResponse{
		Student: TranscriptStudent{
			ID:         t.Student.ID.String(),
			FirstName:  t.Student.StudentFirstName,
			LastName:   t.Student.StudentLastName,
			RollNumber: t.Student.StudentRollNumber,
			ClassName:  t.Student.StudentClassName,
			Year:       t.Student.StudentYear,
		},
		GPA:      t.GPA,
		Results:  items,
		Warnings: t.Warnings,
	}
}
