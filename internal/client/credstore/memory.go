package credstore

import "context"

// MemoryStore keeps the token in process memory. Suitable for tests and for
// sessions that should not outlive the process.
type MemoryStore struct {
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(_ context.Context) (string, error) {
	return s.token, nil
}

func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.token = token
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.token = ""
	return nil
}
