package domain

import "time"

// AuditOutcome is the result recorded for an administrative action.
type AuditOutcome string

const (
	OutcomeSucceeded AuditOutcome = "succeeded"
	OutcomeFailed    AuditOutcome = "failed"
	OutcomeRejected  AuditOutcome = "rejected"
)

// AuditEntry records one administrative action performed against a user.
type AuditEntry struct {
	ID         string
	Action     ActionType
	UserName   string
	Outcome    AuditOutcome
	Error      string
	RequestID  string
	OccurredAt time.Time
}
