package service

import (
	"siswaku_backend/internals/docstore"
)

// AcademicService: inti student/course/result/transcript di atas document
// store. Stateless — aman dipakai concurrent, koordinasi diserahkan ke store.
type AcademicService struct {
	store docstore.Store
}

func NewAcademicService(store docstore.Store) *AcademicService {
	return &AcademicService{store: store}
}
