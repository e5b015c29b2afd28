package ports

import (
	"context"

	"github.com/journalapp/admin-service/internal/core/domain"
)

// AuditRepository persists the admin audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditRecorder accepts audit entries for asynchronous persistence.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
