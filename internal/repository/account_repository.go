package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/account-service/internal/domain"
)

// Uniqueness violations reported by the store's unique indexes. The
// application-level lookup-then-insert check remains racy; these make the
// losing insert fail deterministically.
var (
	ErrUsernameTaken    = errors.New("username already exists")
	ErrDisplayNameTaken = errors.New("display name already exists")
)

// AccountRepository defines persistence access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByUsernameOrDisplayName(ctx context.Context, username, displayName string) (*domain.Account, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (id, display_name, username, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at`

	account.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx, query,
		account.ID,
		account.DisplayName,
		account.Username,
		account.PasswordHash,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	return mapUniqueViolation(err)
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	const query = `
        UPDATE accounts SET display_name=$1, username=$2, password_hash=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		account.DisplayName,
		account.Username,
		account.PasswordHash,
		account.ID,
	).Scan(&account.UpdatedAt)
	return mapUniqueViolation(err)
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const query = `
        SELECT id, display_name, username, password_hash, created_at, updated_at
        FROM accounts WHERE id=$1`

	return r.scanOne(ctx, query, id)
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	const query = `
        SELECT id, display_name, username, password_hash, created_at, updated_at
        FROM accounts WHERE username=$1`

	return r.scanOne(ctx, query, username)
}

// FindByUsernameOrDisplayName performs the combined uniqueness lookup used
// before insert. Username matches sort first so the caller reports the
// username collision when both fields collide.
func (r *accountRepository) FindByUsernameOrDisplayName(ctx context.Context, username, displayName string) (*domain.Account, error) {
	const query = `
        SELECT id, display_name, username, password_hash, created_at, updated_at
        FROM accounts WHERE username=$1 OR display_name=$2
        ORDER BY (username=$1) DESC
        LIMIT 1`

	return r.scanOne(ctx, query, username, displayName)
}

func (r *accountRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&account.ID,
		&account.DisplayName,
		&account.Username,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

// mapUniqueViolation translates SQLSTATE 23505 into the matching sentinel by
// constraint name.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	switch pgErr.ConstraintName {
	case "accounts_username_key":
		return ErrUsernameTaken
	case "accounts_display_name_key":
		return ErrDisplayNameTaken
	}
	return err
}
