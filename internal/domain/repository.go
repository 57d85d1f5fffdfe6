package domain

import "context"

// SearchLogRepository defines the interface for search audit persistence.
// The domain owns the interface; storage packages implement it.
type SearchLogRepository interface {
	// Save appends one entry
	Save(ctx context.Context, entry SearchLogEntry) error

	// Recent returns the newest entries first, at most limit of them
	Recent(ctx context.Context, limit int) ([]SearchLogEntry, error)
}
