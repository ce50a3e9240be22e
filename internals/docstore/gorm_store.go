package docstore

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DocumentModel: baris tabel documents, payload disimpan sebagai JSONB.
type DocumentModel struct {
	DocumentID         uuid.UUID      `gorm:"column:document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"document_id"`
	DocumentCollection string         `gorm:"column:document_collection;type:varchar(64);not null;index:idx_documents_collection" json:"document_collection"`
	DocumentPayload    datatypes.JSON `gorm:"column:document_payload;type:jsonb;not null" json:"document_payload"`
	DocumentCreatedAt  time.Time      `gorm:"column:document_created_at;type:timestamptz;not null;default:now()" json:"document_created_at"`
}

func (DocumentModel) TableName() string { return "documents" }

// GormStore: implementasi Store di atas PostgreSQL (GORM + JSONB).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&DocumentModel{})
}

func (s *GormStore) Insert(ctx context.Context, collection string, doc any) (uuid.UUID, error) {
	payload, err := sonic.Marshal(doc)
	if err != nil {
		return uuid.Nil, err
	}

	m := DocumentModel{
		DocumentCollection: collection,
		DocumentPayload:    datatypes.JSON(payload),
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return uuid.Nil, err
	}
	return m.DocumentID, nil
}

func (s *GormStore) FindByID(ctx context.Context, collection string, id uuid.UUID) (*Document, error) {
	var m DocumentModel
	err := s.db.WithContext(ctx).
		Where("document_collection = ? AND document_id = ?", collection, id).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Document{ID: m.DocumentID, Data: []byte(m.DocumentPayload)}, nil
}

func (s *GormStore) FindMany(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	var rows []DocumentModel
	if err := s.query(ctx, collection, filter).
		Order("document_created_at ASC, document_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(rows))
	for _, m := range rows {
		docs = append(docs, Document{ID: m.DocumentID, Data: []byte(m.DocumentPayload)})
	}
	return docs, nil
}

func (s *GormStore) CountMatching(ctx context.Context, collection string, filter Filter) (int64, error) {
	var cnt int64
	if err := s.query(ctx, collection, filter).
		Model(&DocumentModel{}).
		Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

// Collections: daftar nama koleksi yang sudah terisi (untuk endpoint diagnosa).
func (s *GormStore) Collections(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.WithContext(ctx).
		Model(&DocumentModel{}).
		Distinct().
		Order("document_collection ASC").
		Pluck("document_collection", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (s *GormStore) query(ctx context.Context, collection string, filter Filter) *gorm.DB {
	q := s.db.WithContext(ctx).Where("document_collection = ?", collection)
	for field, value := range filter {
		// equality match pada field payload (JSONB ->> text)
		q = q.Where("document_payload ->> ? = ?", field, value)
	}
	return q
}
