package docstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// MemoryStore: implementasi Store in-memory (untuk test & dev tanpa DB).
// Urutan insert dipertahankan per koleksi.
type MemoryStore struct {
	rwLock      sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, doc any) (uuid.UUID, error) {
	payload, err := sonic.Marshal(doc)
	if err != nil {
		return uuid.Nil, err
	}

	s.rwLock.Lock()
	defer s.rwLock.Unlock()

	id := uuid.New()
	s.collections[collection] = append(s.collections[collection], Document{ID: id, Data: payload})
	return id, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, collection string, id uuid.UUID) (*Document, error) {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()

	for _, d := range s.collections[collection] {
		if d.ID == id {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) FindMany(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()

	docs := make([]Document, 0)
	for _, d := range s.collections[collection] {
		ok, err := matches(d, filter)
		if err != nil {
			return nil, err
		}
		if ok {
			docs = append(docs, d)
		}
	}
	return docs, nil
}

func (s *MemoryStore) CountMatching(ctx context.Context, collection string, filter Filter) (int64, error) {
	docs, err := s.FindMany(ctx, collection, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

// Delete: hapus dokumen by id. Tidak ada di kontrak Store — dipakai test untuk
// mensimulasikan course yang hilang dari store.
func (s *MemoryStore) Delete(collection string, id uuid.UUID) bool {
	s.rwLock.Lock()
	defer s.rwLock.Unlock()

	docs := s.collections[collection]
	for i, d := range docs {
		if d.ID == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return true
		}
	}
	return false
}

func matches(d Document, filter Filter) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}
	var fields map[string]any
	if err := sonic.Unmarshal(d.Data, &fields); err != nil {
		return false, err
	}
	for field, want := range filter {
		got, ok := fields[field]
		if !ok || fmt.Sprintf("%v", got) != want {
			return false, nil
		}
	}
	return true, nil
}
