package model

import "siswaku_backend/internals/docstore"

// CourseModel: bentuk payload dokumen di koleksi "course".
type CourseModel struct {
	CourseCode    string  `json:"code"`
	CourseTitle   string  `json:"title"`
	CourseCredits float64 `json:"credits"`
}

func (CourseModel) Collection() string { return docstore.CollectionCourse }

// CourseRecord: dokumen course + id dari store.
type CourseRecord struct {
	ID CourseID
	CourseModel
}
