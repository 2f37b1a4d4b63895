package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// AuthService coordinates the login and refresh-token flows.
type AuthService struct {
	accounts   repository.AccountRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, accounts repository.AccountRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		accounts:   accounts,
		tokens:     auth.NewTokenManager(cfg),
		dispatcher: dispatcher,
	}
}

// Login verifies credentials and issues an access/refresh token pair. There
// is no lockout or attempt counting.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", "", apperrors.NewAuthFailure("User not found")
		}
		return "", "", err
	}

	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return "", "", apperrors.NewAuthFailure("Invalid credentials")
	}

	access, refresh, err := s.tokens.IssueTokenPair(account.ID, account.DisplayName)
	if err != nil {
		return "", "", err
	}

	s.publish(ctx, events.EventLoginSucceeded, account.ID, events.LoginSucceededPayload{
		Username: account.Username,
	})
	return access, refresh, nil
}

// Refresh exchanges a valid refresh token for a new access token minted from
// the refresh token's claims, without touching storage.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", apperrors.NewForbidden("Invalid refresh token")
	}
	return s.tokens.IssueAccessToken(claims.AccountID, claims.DisplayName)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, accountID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		AccountID: accountID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
