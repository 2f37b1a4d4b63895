package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// AccountService applies account mutations. All self-scoped operations take
// the account id from the verified token's claims, never from request input.
type AccountService struct {
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(accounts repository.AccountRepository, dispatcher events.Dispatcher, bcryptCost int) *AccountService {
	return &AccountService{
		accounts:   accounts,
		dispatcher: dispatcher,
		bcryptCost: bcryptCost,
	}
}

// Create registers a new account after a combined uniqueness lookup. When
// one candidate record collides on both fields, the username conflict wins.
func (s *AccountService) Create(ctx context.Context, displayName, username, password string) (*domain.Account, error) {
	existing, err := s.accounts.FindByUsernameOrDisplayName(ctx, username, displayName)
	if err == nil {
		if existing.Username == username {
			return nil, apperrors.NewConflict("Username already exists")
		}
		return nil, apperrors.NewConflict("Display name already exists")
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		DisplayName:  displayName,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, mapConflict(err)
	}

	s.publish(ctx, events.EventAccountCreated, account.ID, events.AccountCreatedPayload{
		Username:    account.Username,
		DisplayName: account.DisplayName,
	})
	return account, nil
}

// GetSelf fetches the authenticated account's record.
func (s *AccountService) GetSelf(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Account not found")
		}
		return nil, err
	}
	return account, nil
}

// UpdateSelf overwrites each updatable field only when the request carries a
// non-empty value for it; absent and empty fields are left untouched.
func (s *AccountService) UpdateSelf(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetSelf(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var updated []string
	if req.DisplayName.Set() {
		account.DisplayName = req.DisplayName.Value
		updated = append(updated, "displayName")
	}
	if req.Username.Set() {
		account.Username = req.Username.Value
		updated = append(updated, "username")
	}
	if req.Password.Set() {
		hash, err := auth.HashPassword(req.Password.Value, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
		updated = append(updated, "password")
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Account not found")
		}
		return nil, mapConflict(err)
	}

	if len(updated) > 0 {
		s.publish(ctx, events.EventAccountUpdated, account.ID, events.AccountUpdatedPayload{
			UpdatedFields: updated,
		})
	}
	return account, nil
}

// DeleteSelf removes the authenticated account and returns the deleted
// record for the confirmation response.
func (s *AccountService) DeleteSelf(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.GetSelf(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.Delete(ctx, accountID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Account not found")
		}
		return nil, err
	}

	s.publish(ctx, events.EventAccountDeleted, account.ID, events.AccountDeletedPayload{
		Username: account.Username,
	})
	return account, nil
}

// mapConflict translates the repository's unique-index sentinels into the
// same conflict shape as the pre-insert check, so the loser of a create race
// sees a regular conflict rather than a store error.
func mapConflict(err error) error {
	switch err {
	case repository.ErrUsernameTaken:
		return apperrors.NewConflict("Username already exists")
	case repository.ErrDisplayNameTaken:
		return apperrors.NewConflict("Display name already exists")
	}
	return err
}

func (s *AccountService) publish(ctx context.Context, eventType events.EventType, accountID string, payload interface{}) {
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
