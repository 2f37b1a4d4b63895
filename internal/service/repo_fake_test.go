package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/repository"
)

// fakeAccountRepo is an in-memory stand-in for the Postgres repository. It
// mirrors the store's unique indexes so conflict paths behave like the real
// thing.
type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Username == account.Username {
			return repository.ErrUsernameTaken
		}
		if existing.DisplayName == account.DisplayName {
			return repository.ErrDisplayNameTaken
		}
	}

	account.ID = uuid.NewString()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	stored := *account
	r.accounts[account.ID] = &stored
	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, existing := range r.accounts {
		if id == account.ID {
			continue
		}
		if existing.Username == account.Username {
			return repository.ErrUsernameTaken
		}
		if existing.DisplayName == account.DisplayName {
			return repository.ErrDisplayNameTaken
		}
	}

	account.UpdatedAt = time.Now()
	stored := *account
	r.accounts[account.ID] = &stored
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.accounts, id)
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.Username == username {
			copied := *account
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAccountRepo) FindByUsernameOrDisplayName(_ context.Context, username, displayName string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var displayNameMatch *domain.Account
	for _, account := range r.accounts {
		if account.Username == username {
			copied := *account
			return &copied, nil
		}
		if account.DisplayName == displayName {
			displayNameMatch = account
		}
	}
	if displayNameMatch != nil {
		copied := *displayNameMatch
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}
