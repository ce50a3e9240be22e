package service

import (
	"context"

	"siswaku_backend/internals/docstore"
	"siswaku_backend/internals/features/academics/model"
)

func (s *AcademicService) CreateCourse(ctx context.Context, m model.CourseModel) (model.CourseID, error) {
	id, err := s.store.Insert(ctx, docstore.CollectionCourse, m)
	if err != nil {
		return model.CourseID{}, err
	}
	return model.CourseID(id), nil
}

func (s *AcademicService) ListCourses(ctx context.Context) ([]model.CourseRecord, error) {
	docs, err := s.store.FindMany(ctx, docstore.CollectionCourse, nil)
	if err != nil {
		return nil, err
	}

	records := make([]model.CourseRecord, 0, len(docs))
	for _, d := range docs {
		var m model.CourseModel
		if err := d.Decode(&m); err != nil {
			return nil, err
		}
		records = append(records, model.CourseRecord{ID: model.CourseID(d.ID), CourseModel: m})
	}
	return records, nil
}

// findCourse: resolve course by id, (nil, nil) kalau tidak ada.
func (s *AcademicService) findCourse(ctx context.Context, id model.CourseID) (*model.CourseRecord, error) {
	doc, err := s.store.FindByID(ctx, docstore.CollectionCourse, id.UUID())
	if err != nil || doc == nil {
		return nil, err
	}
	var m model.CourseModel
	if err := doc.Decode(&m); err != nil {
		return nil, err
	}
	return &model.CourseRecord{ID: id, CourseModel: m}, nil
}
