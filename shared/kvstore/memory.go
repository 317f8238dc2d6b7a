package kvstore

// MemStore is an in-memory Store used by tests. SetErr, when non-nil, is
// returned by every Set call to exercise write-failure paths.
type MemStore struct {
	values map[string][]byte

	SetErr error
}

// NewMemStore returns an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

// Get returns the value stored under key
func (s *MemStore) Get(key string) ([]byte, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key
func (s *MemStore) Set(key string, value []byte) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

// Delete removes key
func (s *MemStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}
