package store

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/craftline/website-be/internal/admin/domain"
	"github.com/craftline/website-be/shared/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*JobStore, *kvstore.MemStore) {
	kv := kvstore.NewMemStore()
	return NewJobStore(kv, DefaultKey, slog.Default()), kv
}

func TestList_Empty(t *testing.T) {
	s, _ := newTestStore()

	records := s.List()
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestList_CorruptData(t *testing.T) {
	s, kv := newTestStore()
	require.NoError(t, kv.Set(DefaultKey, []byte("{not json")))

	assert.Empty(t, s.List())
}

func TestUpsert_CreateAndRoundTrip(t *testing.T) {
	s, _ := newTestStore()

	rec := domain.JobRecord{
		ID:          s.GenerateID(),
		Title:       "Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Build things",
		PostedDate:  domain.Today(),
	}
	require.NoError(t, s.Upsert(rec))

	records := s.List()
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])
}

func TestUpsert_DistinctIDs(t *testing.T) {
	s, _ := newTestStore()

	ids := map[string]bool{}
	for _, title := range []string{"Engineer", "Designer", "Writer"} {
		rec := domain.JobRecord{ID: s.GenerateID(), Title: title}
		require.NoError(t, s.Upsert(rec))
		ids[rec.ID] = true
	}

	records := s.List()
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.True(t, ids[rec.ID])
	}
}

func TestUpsert_ExistingIDKeepsCountAndPosition(t *testing.T) {
	s, _ := newTestStore()

	first := domain.JobRecord{ID: "A", Title: "First"}
	second := domain.JobRecord{ID: "B", Title: "Second"}
	require.NoError(t, s.Upsert(first))
	require.NoError(t, s.Upsert(second))

	first.Title = "First, revised"
	require.NoError(t, s.Upsert(first))

	records := s.List()
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].ID)
	assert.Equal(t, "First, revised", records[0].Title)
	assert.Equal(t, "B", records[1].ID)
}

func TestUpsert_WriteFailure(t *testing.T) {
	s, kv := newTestStore()
	kv.SetErr = errors.New("quota exceeded")

	err := s.Upsert(domain.JobRecord{ID: "A", Title: "Engineer"})
	require.Error(t, err)

	var perr *domain.PersistenceError
	assert.ErrorAs(t, err, &perr)
	assert.Empty(t, s.List())
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore()

	require.NoError(t, s.Upsert(domain.JobRecord{ID: "A", Title: "First"}))
	require.NoError(t, s.Upsert(domain.JobRecord{ID: "B", Title: "Second"}))

	removed, err := s.Delete("A")
	require.NoError(t, err)
	assert.True(t, removed)

	records := s.List()
	require.Len(t, records, 1)
	assert.Equal(t, "B", records[0].ID)

	// A second delete of the same id is a no-op
	removed, err = s.Delete("A")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDelete_WriteFailure(t *testing.T) {
	s, kv := newTestStore()
	require.NoError(t, s.Upsert(domain.JobRecord{ID: "A", Title: "First"}))

	kv.SetErr = errors.New("disk full")
	_, err := s.Delete("A")

	var perr *domain.PersistenceError
	assert.ErrorAs(t, err, &perr)
}

func TestGenerateID_Unique(t *testing.T) {
	s, _ := newTestStore()

	assert.NotEqual(t, s.GenerateID(), s.GenerateID())
}

func TestContains(t *testing.T) {
	s, _ := newTestStore()
	require.NoError(t, s.Upsert(domain.JobRecord{ID: "A"}))

	assert.True(t, s.Contains("A"))
	assert.False(t, s.Contains("B"))
}
