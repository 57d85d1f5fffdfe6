package domain

import "time"

// SearchLogEntry is one audited lookup attempt. Entries are append-only.
type SearchLogEntry struct {
	ID           int64     `json:"id"`
	City         string    `json:"city"`
	CityFound    *string   `json:"cityFound"`
	Country      *string   `json:"country"`
	Success      bool      `json:"success"`
	ErrorMessage *string   `json:"errorMessage"`
	IPAddress    string    `json:"ipAddress"`
	CreatedAt    time.Time `json:"createdAt"`
}
