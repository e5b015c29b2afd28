package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ActionType is the token naming an administrative user action.
type ActionType string

const (
	ActionCreate  ActionType = "create"
	ActionUpgrade ActionType = "upgrade"
)

// ParseActionType normalises a raw token. Tokens are case-insensitive;
// surrounding whitespace is kept, so " create " is not a known token.
func ParseActionType(raw string) ActionType {
	return ActionType(strings.ToLower(raw))
}

var ErrInvalidActionType = errors.New("invalid action type")

// InvalidActionTypeError carries the token that failed to resolve.
type InvalidActionTypeError struct {
	Token string
}

func (e *InvalidActionTypeError) Error() string {
	return fmt.Sprintf("invalid action type: %s", e.Token)
}

func (e *InvalidActionTypeError) Is(target error) bool {
	return target == ErrInvalidActionType
}
