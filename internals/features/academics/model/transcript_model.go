package model

// TranscriptModel: view turunan, dirakit ulang setiap request dari state
// result + course terkini. Tidak pernah dipersist.
type TranscriptModel struct {
	Student  StudentRecord
	GPA      float64
	Items    []TranscriptItemModel
	Warnings []string
}

// TranscriptItemModel: satu baris transkrip (result yang sudah di-join course).
type TranscriptItemModel struct {
	CourseCode  string
	CourseTitle string
	Credits     float64
	Marks       float64
	Grade       string
	GradePoint  float64
}
