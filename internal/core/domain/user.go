package domain

import (
	"errors"
	"slices"
	"time"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrNoUsers      = errors.New("no users found")
)

// User models an account managed through the admin surface.
type User struct {
	ID                string    `json:"id,omitempty"`
	UserName          string    `json:"userName"`
	Email             string    `json:"email,omitempty"`
	Password          string    `json:"password,omitempty"`
	PasswordHash      string    `json:"-"`
	Roles             []string  `json:"roles,omitempty"`
	SentimentAnalysis bool      `json:"sentimentAnalysis"`
	CreatedAt         time.Time `json:"createdAt,omitzero"`
	UpdatedAt         time.Time `json:"updatedAt,omitzero"`
}

// HasRole reports whether the user carries role.
func (u User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// Sanitized returns a copy safe to serialise: the plain password is dropped.
func (u User) Sanitized() User {
	u.Password = ""
	u.PasswordHash = ""
	u.Roles = slices.Clone(u.Roles)
	return u
}
