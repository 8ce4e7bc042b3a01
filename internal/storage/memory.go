package storage

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// MemoryStore is the fallback used when the SQLite file cannot be opened.
// Values are kept as JSON strings so serialization behaves identically to
// the persistent store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
	log  *slog.Logger
}

func NewMemoryStore(log *slog.Logger) *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
		log:  log,
	}
}

func (s *MemoryStore) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("failed to serialize value", "key", key, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = string(data)
}

func (s *MemoryStore) Get(key string, dest any) bool {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.log.Error("failed to parse stored value", "key", key, "error", err)
		return false
	}

	return true
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]string)
}

func (s *MemoryStore) KeysWithPrefix(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	return keys
}

func (s *MemoryStore) Close() error {
	return nil
}
