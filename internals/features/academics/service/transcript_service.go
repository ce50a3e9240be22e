package service

import (
	"context"
	"fmt"

	"siswaku_backend/internals/features/academics/grading"
	"siswaku_backend/internals/features/academics/model"
)

/*
=========================================================

	GET TRANSCRIPT
	Read-only. Student dicek dulu sebelum ambil result,
	jadi student tanpa result tetap dapat transkrip
	kosong (GPA 0.0), bukan error.

	Join result→course bersifat inner join: item yang
	coursenya sudah hilang dari store tidak ikut dihitung,
	tapi dilaporkan lewat Warnings supaya tidak diam-diam.

=========================================================
*/
func (s *AcademicService) GetTranscript(ctx context.Context, studentID model.StudentID) (*model.TranscriptModel, error) {
	student, err := s.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, &NotFoundError{Entity: "student"}
	}

	results, err := s.ListResults(ctx, &studentID)
	if err != nil {
		return nil, err
	}

	var (
		totalPoints  float64
		totalCredits float64
		items        = make([]model.TranscriptItemModel, 0, len(results))
		warnings     []string
	)

	for _, r := range results {
		courseID, err := model.ParseCourseID(r.ResultCourseID)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("result %s: course id %q tidak valid, item dilewati", r.ID, r.ResultCourseID))
			continue
		}

		course, err := s.findCourse(ctx, courseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			warnings = append(warnings, fmt.Sprintf("course %s tidak ditemukan, item dilewati", r.ResultCourseID))
			continue
		}

		totalPoints += r.ResultGradePoint * course.CourseCredits
		totalCredits += course.CourseCredits

		items = append(items, model.TranscriptItemModel{
			CourseCode:  course.CourseCode,
			CourseTitle: course.CourseTitle,
			Credits:     course.CourseCredits,
			Marks:       r.ResultMarks,
			Grade:       r.ResultGrade,
			GradePoint:  r.ResultGradePoint,
		})
	}

	gpa := 0.0
	if totalCredits > 0 {
		gpa = grading.RoundGPA(totalPoints / totalCredits)
	}

	return &model.TranscriptModel{
		Student:  *student,
		GPA:      gpa,
		Items:    items,
		Warnings: warnings,
	}, nil
}
