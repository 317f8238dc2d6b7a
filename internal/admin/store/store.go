// Package store implements the persisted job-listing collection behind the
// admin panel. Records live as one JSON array under a fixed key in a
// key-value byte store; order is insertion order and stays stable across
// upserts.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/craftline/website-be/internal/admin/domain"
	"github.com/craftline/website-be/shared/kvstore"
	"github.com/google/uuid"
)

// DefaultKey is the key the job listing array is stored under
const DefaultKey = "jobs"

// JobStore owns the canonical list of job records and their persistence
type JobStore struct {
	kv     kvstore.Store
	key    string
	logger *slog.Logger
}

// NewJobStore creates a JobStore over the given key-value store
func NewJobStore(kv kvstore.Store, key string, logger *slog.Logger) *JobStore {
	if key == "" {
		key = DefaultKey
	}
	return &JobStore{
		kv:     kv,
		key:    key,
		logger: logger,
	}
}

// List returns all records in insertion order. Missing or unparseable
// persisted data degrades to an empty list; it is logged, never surfaced.
func (s *JobStore) List() []domain.JobRecord {
	data, err := s.kv.Get(s.key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			s.logger.Warn("Failed to read job records, treating store as empty",
				slog.String("key", s.key),
				slog.Any("error", err),
			)
		}
		return []domain.JobRecord{}
	}

	var records []domain.JobRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("Corrupt job records, treating store as empty",
			slog.String("key", s.key),
			slog.Any("error", err),
		)
		return []domain.JobRecord{}
	}

	if records == nil {
		records = []domain.JobRecord{}
	}
	return records
}

// Upsert replaces the record matching rec.ID in place, or appends when no
// record carries that id. Returns a *domain.PersistenceError when the
// underlying write fails.
func (s *JobStore) Upsert(rec domain.JobRecord) error {
	records := s.List()

	replaced := false
	for i := range records {
		if records[i].ID == rec.ID {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}

	if err := s.save(records); err != nil {
		return domain.NewPersistenceError("upsert", err)
	}

	s.logger.Debug("Job record saved",
		slog.String("id", rec.ID),
		slog.Bool("replaced", replaced),
	)
	return nil
}

// Delete removes the record with the given id and reports whether a removal
// occurred. A missing id is a no-op, not an error.
func (s *JobStore) Delete(id string) (bool, error) {
	records := s.List()

	for i := range records {
		if records[i].ID == id {
			records = append(records[:i], records[i+1:]...)
			if err := s.save(records); err != nil {
				return false, domain.NewPersistenceError("delete", err)
			}

			s.logger.Debug("Job record deleted",
				slog.String("id", id),
			)
			return true, nil
		}
	}

	return false, nil
}

// Contains reports whether a record with the given id is currently stored
func (s *JobStore) Contains(id string) bool {
	for _, rec := range s.List() {
		if rec.ID == id {
			return true
		}
	}
	return false
}

// GenerateID returns a new identifier unique against all stored ids at
// call time.
func (s *JobStore) GenerateID() string {
	for {
		id := uuid.New().String()
		if !s.Contains(id) {
			return id
		}
	}
}

func (s *JobStore) save(records []domain.JobRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.kv.Set(s.key, data)
}
