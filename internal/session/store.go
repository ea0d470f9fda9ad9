package session

import (
	"sync"

	"github.com/amanshaikhx1/Auto-Dashboard/domain/core"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/table"
	apperrors "github.com/amanshaikhx1/Auto-Dashboard/internal/errors"
)

// Entry couples a dataset with the metrics computed from its current
// mappings. Both are replaced together so readers never observe a dataset
// with stale metrics.
type Entry struct {
	Dataset *table.ProcessedDataset
	Metrics table.Metrics
}

// Store keeps processed datasets in memory for the lifetime of the process.
// All operations are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[core.DatasetID]Entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[core.DatasetID]Entry)}
}

// Put stores or replaces the entry for a dataset.
func (s *Store) Put(ds *table.ProcessedDataset, metrics table.Metrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[ds.ID] = Entry{Dataset: ds, Metrics: metrics}
}

// Get returns the entry for a dataset id.
func (s *Store) Get(id core.DatasetID) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	if !ok {
		return Entry{}, apperrors.NotFound("dataset " + string(id))
	}
	return entry, nil
}

// Delete removes a dataset. Deleting an unknown id is a no-op.
func (s *Store) Delete(id core.DatasetID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len reports the number of stored datasets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
