package model

import "siswaku_backend/internals/docstore"

// ResultModel: bentuk payload dokumen di koleksi "result".
// Grade & grade_point dihitung sekali saat create, tidak pernah dihitung ulang.
// Referensi student/course disimpan sebagai string id (opaque di boundary).
type ResultModel struct {
	ResultStudentID  string  `json:"student_id"`
	ResultCourseID   string  `json:"course_id"`
	ResultMarks      float64 `json:"marks"`
	ResultGrade      string  `json:"grade"`
	ResultGradePoint float64 `json:"grade_point"`
}

func (ResultModel) Collection() string { return docstore.CollectionResult }

// ResultRecord: dokumen result + id dari store.
type ResultRecord struct {
	ID ResultID
	ResultModel
}
