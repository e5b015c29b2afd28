package ports

import (
	"context"

	"github.com/journalapp/admin-service/internal/core/domain"
)

// UserStore is the persistence collaborator the admin use cases and the
// user actions delegate to.
type UserStore interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	CreateAdmin(ctx context.Context, user domain.User) (*domain.User, error)
	PromoteExisting(ctx context.Context, userName string) error
}
