// Package action implements the administrative user actions and the registry
// that resolves an action token to its handler.
package action

import (
	"context"
	"fmt"
	"net/http"

	"github.com/journalapp/admin-service/internal/core/domain"
	"github.com/journalapp/admin-service/internal/core/ports"
)

// CreateAdmin creates a new user holding the admin role.
type CreateAdmin struct {
	store ports.UserStore
}

func NewCreateAdmin(store ports.UserStore) *CreateAdmin {
	return &CreateAdmin{store: store}
}

func (a *CreateAdmin) Execute(ctx context.Context, user domain.User) (ports.ActionResult, error) {
	created, err := a.store.CreateAdmin(ctx, user)
	if err != nil {
		return ports.ActionResult{}, fmt.Errorf("create admin: %w", err)
	}
	return ports.ActionResult{Status: http.StatusCreated, Body: created.Sanitized()}, nil
}

// UpgradeToAdmin grants the admin role to an existing user, looked up by
// username. Only UserName is read from the incoming record.
type UpgradeToAdmin struct {
	store ports.UserStore
}

func NewUpgradeToAdmin(store ports.UserStore) *UpgradeToAdmin {
	return &UpgradeToAdmin{store: store}
}

func (a *UpgradeToAdmin) Execute(ctx context.Context, user domain.User) (ports.ActionResult, error) {
	if err := a.store.PromoteExisting(ctx, user.UserName); err != nil {
		return ports.ActionResult{}, fmt.Errorf("upgrade to admin: %w", err)
	}
	return ports.ActionResult{Status: http.StatusOK}, nil
}
