package service

import (
	"context"

	"siswaku_backend/internals/docstore"
	"siswaku_backend/internals/features/academics/model"
)

func (s *AcademicService) CreateStudent(ctx context.Context, m model.StudentModel) (model.StudentID, error) {
	id, err := s.store.Insert(ctx, docstore.CollectionStudent, m)
	if err != nil {
		return model.StudentID{}, err
	}
	return model.StudentID(id), nil
}

func (s *AcademicService) ListStudents(ctx context.Context) ([]model.StudentRecord, error) {
	docs, err := s.store.FindMany(ctx, docstore.CollectionStudent, nil)
	if err != nil {
		return nil, err
	}

	records := make([]model.StudentRecord, 0, len(docs))
	for _, d := range docs {
		var m model.StudentModel
		if err := d.Decode(&m); err != nil {
			return nil, err
		}
		records = append(records, model.StudentRecord{ID: model.StudentID(d.ID), StudentModel: m})
	}
	return records, nil
}

// findStudent: resolve student by id, (nil, nil) kalau tidak ada.
func (s *AcademicService) findStudent(ctx context.Context, id model.StudentID) (*model.StudentRecord, error) {
	doc, err := s.store.FindByID(ctx, docstore.CollectionStudent, id.UUID())
	if err != nil || doc == nil {
		return nil, err
	}
	var m model.StudentModel
	if err := doc.Decode(&m); err != nil {
		return nil, err
	}
	return &model.StudentRecord{ID: id, StudentModel: m}, nil
}
