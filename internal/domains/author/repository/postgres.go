package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tsblog-backend/internal/domains/author"
	"tsblog-backend/internal/infrastructure/cache"
)

// authorCacheTTL bounds staleness of the cached author row. The
// article-creation gate reads through this cache, so transitions
// invalidate eagerly rather than waiting for expiry.
const authorCacheTTL = 10 * time.Minute

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) author.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

const authorColumns = `
	id, identity_id, title, username, email, phone, first_name,
	last_name, photo_id, photo_url, status, created_at, updated_at
`

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(
		&a.ID,
		&a.IdentityID,
		&a.Title,
		&a.Username,
		&a.Email,
		&a.Phone,
		&a.FirstName,
		&a.LastName,
		&a.PhotoID,
		&a.PhotoURL,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, err
	}
	return &a, nil
}

func cacheKeyByID(id uuid.UUID) string {
	return "author:" + id.String()
}

func cacheKeyByIdentity(identityID uuid.UUID) string {
	return "author:identity:" + identityID.String()
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO authors (
			id, identity_id, title, username, email, phone, first_name,
			last_name, photo_id, photo_url, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	tag, err := r.pool.Exec(ctx, query,
		a.ID, a.IdentityID, a.Title, a.Username, a.Email, a.Phone,
		a.FirstName, a.LastName, a.PhotoID, a.PhotoURL, a.Status,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrNothingWritten
	}
	return nil
}

// FindByID resolves through the cache first (cache-aside).
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	var a author.Author
	if found, err := r.cache.Get(ctx, cacheKeyByID(id), &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`
	found, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKeyByID(id), found, authorCacheTTL)
	return found, nil
}

// FindByIdentity is the lookup the article-creation gate uses, so it
// shares the cache-aside treatment.
func (r *postgresRepository) FindByIdentity(ctx context.Context, identityID uuid.UUID) (*author.Author, error) {
	var a author.Author
	if found, err := r.cache.Get(ctx, cacheKeyByIdentity(identityID), &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE identity_id = $1`
	found, err := scanAuthor(r.pool.QueryRow(ctx, query, identityID))
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKeyByIdentity(identityID), found, authorCacheTTL)
	return found, nil
}

func (r *postgresRepository) FetchAll(ctx context.Context) ([]author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		authors = append(authors, *a)
	}
	return authors, rows.Err()
}

func (r *postgresRepository) FetchArticles(ctx context.Context, authorID uuid.UUID) ([]author.ArticleSummary, error) {
	query := `
		SELECT id, title, description, content, updated_at
		FROM articles
		WHERE author_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("fetch author articles: %w", err)
	}
	defer rows.Close()

	var summaries []author.ArticleSummary
	for rows.Next() {
		var s author.ArticleSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Content, &s.DateModified); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) error {
	a.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE authors
		SET title = $2, first_name = $3, last_name = $4,
			photo_id = $5, photo_url = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		a.ID, a.Title, a.FirstName, a.LastName, a.PhotoID, a.PhotoURL, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	r.invalidate(ctx, a.ID, a.IdentityID)
	return nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status author.Status) error {
	// Fetch first so the identity-keyed cache entry can be dropped too.
	a, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	query := `UPDATE authors SET status = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update author status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	r.invalidate(ctx, a.ID, a.IdentityID)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	a, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	r.invalidate(ctx, a.ID, a.IdentityID)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id, identityID uuid.UUID) {
	_ = r.cache.Delete(ctx, cacheKeyByID(id))
	_ = r.cache.Delete(ctx, cacheKeyByIdentity(identityID))
}
