package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weatherlookup/backend/internal/domain"
)

const createSearchLogsTable = `
	CREATE TABLE IF NOT EXISTS search_logs (
		id            BIGSERIAL PRIMARY KEY,
		city          VARCHAR(100) NOT NULL,
		city_found    VARCHAR(100),
		country       VARCHAR(10),
		success       BOOLEAN NOT NULL,
		error_message VARCHAR(255),
		ip_address    VARCHAR(45) NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// SearchLogRepository implements domain.SearchLogRepository
type SearchLogRepository struct {
	pool *pgxpool.Pool
}

var _ domain.SearchLogRepository = (*SearchLogRepository)(nil)

// NewSearchLogRepository creates a new PostgreSQL repository
func NewSearchLogRepository(pool *pgxpool.Pool) *SearchLogRepository {
	return &SearchLogRepository{pool: pool}
}

// Migrate creates the search_logs table if it does not exist
func (r *SearchLogRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createSearchLogsTable); err != nil {
		return fmt.Errorf("postgres: failed to create search_logs: %w", err)
	}
	return nil
}

// Save persists a search log entry to PostgreSQL
func (r *SearchLogRepository) Save(ctx context.Context, entry domain.SearchLogEntry) error {
	query := `
		INSERT INTO search_logs (
			city, city_found, country, success, error_message, ip_address, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.City, nullable(entry.CityFound), nullable(entry.Country), entry.Success,
		nullable(entry.ErrorMessage), entry.IPAddress, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save search log: %w", err)
	}

	return nil
}

// Recent retrieves the newest search logs from PostgreSQL
func (r *SearchLogRepository) Recent(ctx context.Context, limit int) ([]domain.SearchLogEntry, error) {
	query := `
		SELECT id, city, city_found, country, success, error_message, ip_address, created_at
		FROM search_logs
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query search logs: %w", err)
	}
	defer rows.Close()

	var results []domain.SearchLogEntry
	for rows.Next() {
		var e domain.SearchLogEntry
		err := rows.Scan(
			&e.ID, &e.City, &e.CityFound, &e.Country, &e.Success, &e.ErrorMessage, &e.IPAddress, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan search log row: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read search logs: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *SearchLogRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

// nullable maps a nil or empty optional column to SQL NULL
func nullable(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
