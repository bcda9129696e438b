/*
Copyright © 2025 ExistTV Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package favorites persists the set of favorite channel ids. Core logic
// depends only on the Store interface, so any storage backend can stand in
// during tests.
package favorites

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

// Store persists the favorite channel ids as one opaque blob, read once at
// startup and overwritten wholesale on every save.
type Store interface {
	Load() ([]string, error)
	Save(ids []string) error
}

// FileStore keeps the ids in a single JSON array on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("favorites file %s is corrupt: %w", s.path, err)
	}
	return ids, nil
}

func (s *FileStore) Save(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// MemoryStore is a Store backed by process memory, for tests.
type MemoryStore struct {
	ids   []string
	Saves int
}

func NewMemoryStore(ids []string) *MemoryStore {
	return &MemoryStore{ids: append([]string{}, ids...)}
}

func (s *MemoryStore) Load() ([]string, error) {
	return append([]string{}, s.ids...), nil
}

func (s *MemoryStore) Save(ids []string) error {
	s.ids = append([]string{}, ids...)
	s.Saves++
	return nil
}

// Set is the in-memory favorites set. A nil Set behaves as empty. The
// revision counter grows on every mutation so that downstream caches can
// key on it.
type Set struct {
	ids map[string]struct{}
	rev uint64
}

func NewSet(ids []string) *Set {
	s := &Set{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s *Set) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

// Toggle flips membership and reports whether the id is now a favorite.
func (s *Set) Toggle(id string) bool {
	s.rev++
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// IDs returns the members sorted, for deterministic persistence.
func (s *Set) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

func (s *Set) Revision() uint64 {
	if s == nil {
		return 0
	}
	return s.rev
}
