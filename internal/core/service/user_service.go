package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/journalapp/admin-service/internal/core/domain"
	"github.com/journalapp/admin-service/internal/core/ports"
)

// UserService implements ports.UserStore on top of a UserRepository.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	log        zerolog.Logger
}

func NewUserService(repo ports.UserRepository, bcryptCost int, log zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, bcryptCost: bcryptCost, log: log}
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}
	return users, nil
}

// CreateAdmin stores user as a new account holding both the user and admin
// roles. The plain password, when present, is replaced by its bcrypt hash.
func (s *UserService) CreateAdmin(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.Password = ""
	user.Roles = []string{domain.RoleUser, domain.RoleAdmin}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	created, err := s.repo.Create(ctx, &user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_name", created.UserName).Msg("admin user created")
	return created, nil
}

// PromoteExisting adds the admin role to the user named userName.
func (s *UserService) PromoteExisting(ctx context.Context, userName string) error {
	if err := s.repo.AddRole(ctx, userName, domain.RoleAdmin); err != nil {
		return err
	}
	s.log.Info().Str("user_name", userName).Msg("user promoted to admin")
	return nil
}
