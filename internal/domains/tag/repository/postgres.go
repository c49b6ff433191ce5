package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tsblog-backend/internal/domains/tag"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) tag.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, t *tag.Tag) error {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.pool.Exec(ctx,
		`INSERT INTO tags (id, title, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Title, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return mapConstraint(err, fmt.Errorf("insert tag: %w", err))
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*tag.Tag, error) {
	var t tag.Tag
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, created_at, updated_at FROM tags WHERE id = $1`, id,
	).Scan(&t.ID, &t.Title, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tag.ErrTagNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepository) FetchAll(ctx context.Context) ([]tag.Tag, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, created_at, updated_at FROM tags ORDER BY title`,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch tags: %w", err)
	}
	defer rows.Close()

	var tags []tag.Tag
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.Title, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, t *tag.Tag) error {
	t.UpdatedAt = time.Now().UTC()

	ct, err := r.pool.Exec(ctx,
		`UPDATE tags SET title = $2, updated_at = $3 WHERE id = $1`,
		t.ID, t.Title, t.UpdatedAt,
	)
	if err != nil {
		return mapConstraint(err, fmt.Errorf("update tag: %w", err))
	}
	if ct.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}
	return nil
}

// mapConstraint folds a unique violation on the title index into the
// domain error; everything else passes through wrapped.
func mapConstraint(err, wrapped error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return tag.ErrTitleTaken
	}
	return wrapped
}
