package ports

import (
	"context"

	"github.com/journalapp/admin-service/internal/core/domain"
)

// ActionResult is what a user action hands back to the transport layer.
// Body is optional; a nil Body means no response payload.
type ActionResult struct {
	Status int
	Body   any
}

// UserAction performs one administrative mutation against a user record.
// Implementations hold no mutable state and are safe for concurrent use.
type UserAction interface {
	Execute(ctx context.Context, user domain.User) (ActionResult, error)
}

// ActionResolver maps an action token to its UserAction.
type ActionResolver interface {
	Resolve(token string) (UserAction, error)
}
