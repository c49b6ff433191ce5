package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tsblog-backend/internal/domains/identity"
)

// postgresRepository implements identity.Repository on the identity
// database pool. Writes go through identity.Tx so registration can
// roll the whole principal back on a partial failure.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) identity.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Begin(ctx context.Context) (identity.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin identity transaction: %w", err)
	}
	return &postgresTx{tx: tx}, nil
}

const identityColumns = `
	id, username, email, phone, first_name, last_name, scope,
	password_hash, created_at, updated_at
`

func scanIdentity(row pgx.Row) (*identity.Identity, error) {
	var ident identity.Identity
	err := row.Scan(
		&ident.ID,
		&ident.Username,
		&ident.Email,
		&ident.Phone,
		&ident.FirstName,
		&ident.LastName,
		&ident.Scope,
		&ident.PasswordHash,
		&ident.CreatedAt,
		&ident.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrIdentityNotFound
		}
		return nil, err
	}
	return &ident, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE id = $1`
	return scanIdentity(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*identity.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE username = $1`
	return scanIdentity(r.pool.QueryRow(ctx, query, username))
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE email = $1`
	return scanIdentity(r.pool.QueryRow(ctx, query, email))
}

func (r *postgresRepository) Any(ctx context.Context) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM identities)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check identities exist: %w", err)
	}
	return exists, nil
}

// postgresTx implements identity.Tx on a pgx transaction.
type postgresTx struct {
	tx pgx.Tx
}

func (t *postgresTx) CreateIdentity(ctx context.Context, ident *identity.Identity) error {
	now := time.Now().UTC()
	ident.CreatedAt = now
	ident.UpdatedAt = now

	query := `
		INSERT INTO identities (
			id, username, email, phone, first_name, last_name, scope,
			password_hash, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := t.tx.Exec(ctx, query,
		ident.ID,
		ident.Username,
		ident.Email,
		ident.Phone,
		ident.FirstName,
		ident.LastName,
		ident.Scope,
		ident.PasswordHash,
		ident.CreatedAt,
		ident.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return identity.ErrUsernameTaken
			}
			return identity.ErrEmailTaken
		}
		return fmt.Errorf("insert identity: %w", err)
	}

	return nil
}

func (t *postgresTx) AttachClaims(ctx context.Context, identityID uuid.UUID, claims []identity.Claim) error {
	query := `
		INSERT INTO identity_claims (id, identity_id, claim_type, claim_value)
		VALUES ($1, $2, $3, $4)
	`
	for _, claim := range claims {
		if _, err := t.tx.Exec(ctx, query, uuid.New(), identityID, claim.Type, claim.Value); err != nil {
			return fmt.Errorf("attach claim %s: %w", claim.Type, err)
		}
	}
	return nil
}

func (t *postgresTx) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := t.tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM identities WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}
	return exists, nil
}

func (t *postgresTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *postgresTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
