package ports

import (
	"context"

	"github.com/journalapp/admin-service/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByUserName(ctx context.Context, userName string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// AddRole adds role to the user's role set. Returns domain.ErrUserNotFound
	// when no user matches userName.
	AddRole(ctx context.Context, userName, role string) error
}
