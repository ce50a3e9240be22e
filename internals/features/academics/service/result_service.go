package service

import (
	"context"

	"siswaku_backend/internals/docstore"
	"siswaku_backend/internals/features/academics/grading"
	"siswaku_backend/internals/features/academics/model"
)

/*
=========================================================

	RECORD RESULT
	Urutan validasi: marks → student ada → course ada.
	Grade & grade_point dihitung sekali lalu disimpan.

=========================================================
*/
func (s *AcademicService) RecordResult(ctx context.Context, studentID model.StudentID, courseID model.CourseID, marks float64) (*model.ResultRecord, error) {
	if marks < 0 || marks > 100 {
		return nil, newValidationError("marks harus berada di rentang 0-100, dapat %v", marks)
	}

	student, err := s.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, &NotFoundError{Entity: "student"}
	}

	course, err := s.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, &NotFoundError{Entity: "course"}
	}

	grade, gradePoint := grading.Calculate(marks)

	m := model.ResultModel{
		ResultStudentID:  studentID.String(),
		ResultCourseID:   courseID.String(),
		ResultMarks:      marks,
		ResultGrade:      grade,
		ResultGradePoint: gradePoint,
	}
	id, err := s.store.Insert(ctx, docstore.CollectionResult, m)
	if err != nil {
		return nil, err
	}

	return &model.ResultRecord{ID: model.ResultID(id), ResultModel: m}, nil
}

// ListResults: semua result, atau hanya milik satu student kalau difilter.
func (s *AcademicService) ListResults(ctx context.Context, studentID *model.StudentID) ([]model.ResultRecord, error) {
	var filter docstore.Filter
	if studentID != nil {
		filter = docstore.Filter{"student_id": studentID.String()}
	}

	docs, err := s.store.FindMany(ctx, docstore.CollectionResult, filter)
	if err != nil {
		return nil, err
	}

	records := make([]model.ResultRecord, 0, len(docs))
	for _, d := range docs {
		var m model.ResultModel
		if err := d.Decode(&m); err != nil {
			return nil, err
		}
		records = append(records, model.ResultRecord{ID: model.ResultID(d.ID), ResultModel: m})
	}
	return records, nil
}
