package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/weatherlookup/backend/internal/domain"
	"github.com/weatherlookup/backend/pkg/utils"
)

// Column widths of the search_logs table
const (
	maxCityLen    = 100
	maxCountryLen = 10
	maxErrorLen   = 255
	maxIPLen      = 45

	auditWriteTimeout = 5 * time.Second
)

// AuditLogger records every lookup attempt. Write failures never reach the caller.
type AuditLogger struct {
	repo domain.SearchLogRepository
	log  *zap.Logger
	now  func() time.Time
}

// NewAuditLogger creates a new audit logger backed by repo
func NewAuditLogger(repo domain.SearchLogRepository, log *zap.Logger) *AuditLogger {
	return &AuditLogger{
		repo: repo,
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// LogSuccess records a resolved lookup
func (a *AuditLogger) LogSuccess(ctx context.Context, city, ip, cityFound, country string) {
	a.write(ctx, domain.SearchLogEntry{
		City:      city,
		CityFound: optional(utils.Truncate(cityFound, maxCityLen)),
		Country:   optional(utils.Truncate(country, maxCountryLen)),
		Success:   true,
		IPAddress: ip,
	})
}

// LogFailure records a failed lookup with the error's message
func (a *AuditLogger) LogFailure(ctx context.Context, city, ip, message string) {
	msg := utils.Truncate(message, maxErrorLen)
	a.write(ctx, domain.SearchLogEntry{
		City:         city,
		Success:      false,
		ErrorMessage: &msg,
		IPAddress:    ip,
	})
}

func (a *AuditLogger) write(ctx context.Context, entry domain.SearchLogEntry) {
	entry.City = utils.Truncate(entry.City, maxCityLen)
	entry.IPAddress = utils.Truncate(entry.IPAddress, maxIPLen)
	entry.CreatedAt = a.now()

	// Request cancellation must not drop the row.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()

	if err := a.repo.Save(writeCtx, entry); err != nil {
		a.log.Error("failed to save search log",
			zap.String("city", entry.City),
			zap.Bool("success", entry.Success),
			zap.Error(err),
		)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
