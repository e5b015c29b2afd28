package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/journalapp/admin-service/internal/api/metrics"
	"github.com/journalapp/admin-service/internal/core/domain"
	"github.com/journalapp/admin-service/internal/core/ports"
)

type adminService struct {
	users   ports.UserStore
	actions ports.ActionResolver
	cache   ports.AppCache
	audit   ports.AuditRecorder
	log     zerolog.Logger
}

// NewAdminService returns an AdminService implementation.
func NewAdminService(
	users ports.UserStore,
	actions ports.ActionResolver,
	cache ports.AppCache,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) ports.AdminService {
	return &adminService{
		users:   users,
		actions: actions,
		cache:   cache,
		audit:   audit,
		log:     log,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}

	out := make([]domain.User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	return out, nil
}

// PerformUserAction resolves the requested action and runs it. An unknown
// token is rejected before any collaborator is touched.
func (s *adminService) PerformUserAction(ctx context.Context, in ports.PerformActionInput) (ports.ActionResult, error) {
	actionType := domain.ParseActionType(in.ActionType)
	start := time.Now()

	action, err := s.actions.Resolve(in.ActionType)
	if err != nil {
		metrics.UserActionsTotal.WithLabelValues("unknown", string(domain.OutcomeRejected)).Inc()
		s.record(in, actionType, domain.OutcomeRejected, err)
		return ports.ActionResult{}, err
	}

	res, err := action.Execute(ctx, in.User)
	metrics.UserActionDuration.WithLabelValues(string(actionType)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UserActionsTotal.WithLabelValues(string(actionType), string(domain.OutcomeFailed)).Inc()
		s.record(in, actionType, domain.OutcomeFailed, err)
		return ports.ActionResult{}, err
	}

	metrics.UserActionsTotal.WithLabelValues(string(actionType), string(domain.OutcomeSucceeded)).Inc()
	s.record(in, actionType, domain.OutcomeSucceeded, nil)

	s.log.Info().
		Str("action", string(actionType)).
		Str("user_name", in.User.UserName).
		Int("status", res.Status).
		Msg("user action performed")

	return res, nil
}

func (s *adminService) ClearCache(ctx context.Context) error {
	if err := s.cache.Reset(ctx); err != nil {
		metrics.CacheResetsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("clear app cache: %w", err)
	}
	metrics.CacheResetsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Msg("app cache cleared")
	return nil
}

func (s *adminService) CacheEntries(ctx context.Context) (map[string]string, error) {
	entries, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("read app cache: %w", err)
	}
	return entries, nil
}

func (s *adminService) record(in ports.PerformActionInput, actionType domain.ActionType, outcome domain.AuditOutcome, cause error) {
	if s.audit == nil {
		return
	}
	entry := domain.AuditEntry{
		ID:         uuid.NewString(),
		Action:     actionType,
		UserName:   in.User.UserName,
		Outcome:    outcome,
		RequestID:  in.RequestID,
		OccurredAt: time.Now().UTC(),
	}
	if cause != nil {
		entry.Error = cause.Error()
		var invalid *domain.InvalidActionTypeError
		if errors.As(cause, &invalid) {
			entry.Action = domain.ActionType(invalid.Token)
		}
	}
	s.audit.Record(entry)
}
