package docstore

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// Nama koleksi yang dipakai fitur akademik.
const (
	CollectionStudent = "student"
	CollectionCourse  = "course"
	CollectionResult  = "result"
)

// Filter: equality match pada field payload. Kosong = ambil semua.
type Filter map[string]string

// Document: satu dokumen tersimpan, id + payload JSON mentah.
type Document struct {
	ID   uuid.UUID
	Data []byte
}

func (d Document) Decode(out any) error {
	return sonic.Unmarshal(d.Data, out)
}

// Store: kontrak penyimpanan dokumen per koleksi.
// FindByID mengembalikan (nil, nil) kalau dokumen tidak ada.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (uuid.UUID, error)
	FindByID(ctx context.Context, collection string, id uuid.UUID) (*Document, error)
	FindMany(ctx context.Context, collection string, filter Filter) ([]Document, error)
	CountMatching(ctx context.Context, collection string, filter Filter) (int64, error)
}
