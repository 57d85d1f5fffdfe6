package postgres

import (
	"context"
	"sync"

	"github.com/weatherlookup/backend/internal/domain"
)

// MemoryRepository implements domain.SearchLogRepository in process memory.
// Used when no database is configured and in tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []domain.SearchLogEntry
	nextID  int64
}

var _ domain.SearchLogRepository = (*MemoryRepository)(nil)

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Save appends the entry and assigns it an ID
func (r *MemoryRepository) Save(ctx context.Context, entry domain.SearchLogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, entry)
	return nil
}

// Recent returns up to limit entries, newest first
func (r *MemoryRepository) Recent(ctx context.Context, limit int) ([]domain.SearchLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}

	out := make([]domain.SearchLogEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}
