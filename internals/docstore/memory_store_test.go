package docstore_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siswaku_backend/internals/docstore"
)

type payload struct {
	StudentID string  `json:"student_id"`
	Marks     float64 `json:"marks"`
}

func TestMemoryStoreInsertAndFindByID(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	id, err := store.Insert(ctx, "result", payload{StudentID: "s1", Marks: 80})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	doc, err := store.FindByID(ctx, "result", id)
	require.NoError(t, err)
	require.NotNil(t, doc)

	var got payload
	require.NoError(t, doc.Decode(&got))
	assert.Equal(t, "s1", got.StudentID)
	assert.Equal(t, 80.0, got.Marks)
}

func TestMemoryStoreFindByIDAbsent(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	doc, err := store.FindByID(ctx, "student", uuid.New())
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryStoreFindManyFilter(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	_, err := store.Insert(ctx, "result", payload{StudentID: "s1", Marks: 70})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "result", payload{StudentID: "s2", Marks: 90})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "result", payload{StudentID: "s1", Marks: 55})
	require.NoError(t, err)

	all, err := store.FindMany(ctx, "result", nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	s1, err := store.FindMany(ctx, "result", docstore.Filter{"student_id": "s1"})
	require.NoError(t, err)
	require.Len(t, s1, 2)

	// urutan insert dipertahankan
	var first payload
	require.NoError(t, s1[0].Decode(&first))
	assert.Equal(t, 70.0, first.Marks)

	cnt, err := store.CountMatching(ctx, "result", docstore.Filter{"student_id": "s2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	id, err := store.Insert(ctx, "course", payload{StudentID: "x"})
	require.NoError(t, err)

	assert.True(t, store.Delete("course", id))
	assert.False(t, store.Delete("course", id))

	doc, err := store.FindByID(ctx, "course", id)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryStoreCollectionsIsolated(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	_, err := store.Insert(ctx, "student", payload{StudentID: "a"})
	require.NoError(t, err)

	docs, err := store.FindMany(ctx, "course", nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
