package action

import (
	"slices"

	"github.com/journalapp/admin-service/internal/core/domain"
	"github.com/journalapp/admin-service/internal/core/ports"
)

// Registry maps action tokens to their UserAction. It is populated at
// startup and read-only afterwards, so Resolve needs no locking. The zero
// value is an empty registry.
type Registry struct {
	actions map[domain.ActionType]ports.UserAction
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[domain.ActionType]ports.UserAction)}
}

// NewDefaultRegistry wires the built-in actions against store.
func NewDefaultRegistry(store ports.UserStore) *Registry {
	r := NewRegistry()
	r.Register(domain.ActionCreate, NewCreateAdmin(store))
	r.Register(domain.ActionUpgrade, NewUpgradeToAdmin(store))
	return r
}

// Register binds token to a. Tokens are normalised the same way Resolve
// normalises them; a later registration replaces an earlier one.
func (r *Registry) Register(token domain.ActionType, a ports.UserAction) {
	if r.actions == nil {
		r.actions = make(map[domain.ActionType]ports.UserAction)
	}
	r.actions[domain.ParseActionType(string(token))] = a
}

// Resolve returns the action bound to token, ignoring case.
// Unknown tokens yield *domain.InvalidActionTypeError.
func (r *Registry) Resolve(token string) (ports.UserAction, error) {
	a, ok := r.actions[domain.ParseActionType(token)]
	if !ok {
		return nil, &domain.InvalidActionTypeError{Token: token}
	}
	return a, nil
}

// Tokens lists the registered tokens in sorted order.
func (r *Registry) Tokens() []domain.ActionType {
	out := make([]domain.ActionType, 0, len(r.actions))
	for t := range r.actions {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
