package ports

import (
	"context"

	"github.com/journalapp/admin-service/internal/core/domain"
)

// PerformActionInput is the DTO passed from the transport layer to AdminService.
type PerformActionInput struct {
	ActionType string
	User       domain.User
	RequestID  string
}

// AdminService defines the administrative use cases.
type AdminService interface {
	// ListUsers returns every user. An empty store yields domain.ErrNoUsers.
	ListUsers(ctx context.Context) ([]domain.User, error)
	PerformUserAction(ctx context.Context, input PerformActionInput) (ActionResult, error)
	ClearCache(ctx context.Context) error
	CacheEntries(ctx context.Context) (map[string]string, error)
}
