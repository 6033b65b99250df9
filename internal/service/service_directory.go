package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/storegate/gateway/internal/logger"
	"github.com/storegate/gateway/internal/upstream"
	"github.com/storegate/gateway/models"
)

type directoryService struct {
	provider upstream.DirectoryProvider
	security SecurityService
	observer Observer
	logger   *logger.Logger
}

// NewDirectoryService returns the user directory service. The security
// service is used by Login to issue session tokens.
func NewDirectoryService(provider upstream.DirectoryProvider, security SecurityService, observer Observer, log *logger.Logger) DirectoryService {
	return &directoryService{
		provider: provider,
		security: security,
		observer: observer,
		logger:   componentLogger(log, "directory"),
	}
}

func (s *directoryService) ListUsers(ctx context.Context, query models.UserQuery) ([]models.User, upstream.Status, error) {
	start := time.Now()
	users, status, err := s.provider.Users(ctx)
	s.observer.ObserveCall("list_users", outcomeOf(status.Success(), err), time.Since(start))
	if err != nil {
		return nil, status, fmt.Errorf("list users: %w", err)
	}
	// Limit and Skip are accepted for contract stability but not applied
	// to the collection.
	_ = query
	return users, status, nil
}

func (s *directoryService) UserByID(ctx context.Context, id int) (models.User, upstream.Status, error) {
	start := time.Now()
	user, status, err := s.provider.UserByID(ctx, id)
	s.observer.ObserveCall("user_by_id", outcomeOf(status.Success(), err), time.Since(start))
	if err != nil {
		return models.User{}, status, fmt.Errorf("user by id: %w", err)
	}
	return user, status, nil
}

func (s *directoryService) Login(ctx context.Context, login models.LoginRequest) (models.User, upstream.Status, error) {
	start := time.Now()
	user, status, err := s.provider.Login(ctx, login)
	if err != nil {
		s.observer.ObserveCall("login", "fatal", time.Since(start))
		return models.User{}, status, fmt.Errorf("login: %w", err)
	}
	if !status.Success() || user.ID == 0 {
		// Every failed exchange collapses to Unauthorized. No token is
		// issued for an absent user.
		s.observer.ObserveCall("login", "upstream_error", time.Since(start))
		return models.User{}, upstream.Status(http.StatusUnauthorized), nil
	}

	// The login endpoint omits the role, so merge it from the full user
	// record. A failed follow-up leaves the role absent rather than
	// failing the login.
	full, fullStatus, err := s.provider.UserByID(ctx, user.ID)
	if err == nil && fullStatus.Success() {
		user.Role = full.Role
	} else {
		s.logger.Warn().Int("user_id", user.ID).Msg("role lookup after login failed")
	}

	token, err := s.security.IssueToken(user)
	if err != nil {
		s.observer.ObserveCall("login", "fatal", time.Since(start))
		return models.User{}, status, ErrTokenCreationFailed
	}
	user.Token = token

	s.observer.ObserveCall("login", "success", time.Since(start))
	return user, status, nil
}
