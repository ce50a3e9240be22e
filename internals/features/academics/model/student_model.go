package model

import "siswaku_backend/internals/docstore"

// StudentModel: bentuk payload dokumen di koleksi "student".
// Immutable setelah create — tidak ada endpoint update/delete.
type StudentModel struct {
	StudentFirstName  string  `json:"first_name"`
	StudentLastName   string  `json:"last_name"`
	StudentRollNumber string  `json:"roll_number"`
	StudentClassName  string  `json:"class_name"`
	StudentYear       int     `json:"year"`
	StudentEmail      *string `json:"email,omitempty"`
}

func (StudentModel) Collection() string { return docstore.CollectionStudent }

// StudentRecord: dokumen student + id dari store.
type StudentRecord struct {
	ID StudentID
	StudentModel
}
