// internal/store/localstore.go
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// LocalStore persists named JSON slots to disk, one file per slot. It is
// the server-side stand-in for browser local storage: a handful of named
// values that survive restarts, nothing more.
type LocalStore struct {
	mu  sync.Mutex
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

// Put serializes v as JSON into the named slot, replacing any prior value.
func (s *LocalStore) Put(slot string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", slot, err)
	}
	if err := os.WriteFile(s.path(slot), data, 0o644); err != nil {
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	return nil
}

// Get reads the named slot into v. The second return value reports
// whether the slot exists.
func (s *LocalStore) Get(slot string, v interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read slot %s: %w", slot, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("unmarshal slot %s: %w", slot, err)
	}
	return true, nil
}

// Delete removes the named slot. Deleting an absent slot is a no-op.
func (s *LocalStore) Delete(slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(slot)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete slot %s: %w", slot, err)
	}
	return nil
}
