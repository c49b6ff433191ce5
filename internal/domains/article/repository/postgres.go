package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tsblog-backend/internal/domains/article"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) article.Repository {
	return &postgresRepository{pool: pool}
}

const articleColumns = `
	id, author_id, title, description, content, caption_id, caption_url,
	created_at, updated_at
`

func scanArticle(row pgx.Row) (*article.Article, error) {
	var a article.Article
	err := row.Scan(
		&a.ID,
		&a.AuthorID,
		&a.Title,
		&a.Description,
		&a.Content,
		&a.CaptionID,
		&a.CaptionURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create writes the article row and its tag attachments in one
// transaction.
func (r *postgresRepository) Create(ctx context.Context, a *article.Article) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin article insert: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO articles (
			id, author_id, title, description, content, caption_id,
			caption_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	tag, err := tx.Exec(ctx, query,
		a.ID, a.AuthorID, a.Title, a.Description, a.Content,
		a.CaptionID, a.CaptionURL, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return article.ErrNothingWritten
	}

	if err := replaceTags(ctx, tx, a.ID, a.Tags); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	a, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if a.Tags, err = r.fetchTags(ctx, a.ID); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *postgresRepository) FetchAll(ctx context.Context) ([]article.Article, error) {
	return r.fetch(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY updated_at DESC`)
}

func (r *postgresRepository) FetchByAuthor(ctx context.Context, authorID uuid.UUID) ([]article.Article, error) {
	return r.fetch(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE author_id = $1 ORDER BY updated_at DESC`,
		authorID,
	)
}

func (r *postgresRepository) fetch(ctx context.Context, query string, args ...interface{}) ([]article.Article, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}
	defer rows.Close()

	var articles []article.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range articles {
		if articles[i].Tags, err = r.fetchTags(ctx, articles[i].ID); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *article.Article) error {
	a.UpdatedAt = time.Now().UTC()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin article update: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE articles
		SET title = $2, description = $3, content = $4,
			caption_id = $5, caption_url = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, query,
		a.ID, a.Title, a.Description, a.Content, a.CaptionID, a.CaptionURL, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return article.ErrArticleNotFound
	}

	if err := replaceTags(ctx, tx, a.ID, a.Tags); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return article.ErrArticleNotFound
	}
	return nil
}

func (r *postgresRepository) fetchTags(ctx context.Context, articleID uuid.UUID) ([]string, error) {
	query := `
		SELECT t.title
		FROM tags t
		JOIN article_tags at ON at.tag_id = t.id
		WHERE at.article_id = $1
		ORDER BY t.title
	`
	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("fetch article tags: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

// replaceTags rewrites the article's tag attachments. Unknown titles
// are created on the fly; the join rows are replaced wholesale.
func replaceTags(ctx context.Context, tx pgx.Tx, articleID uuid.UUID, titles []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM article_tags WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("clear article tags: %w", err)
	}

	for _, title := range titles {
		var tagID uuid.UUID
		err := tx.QueryRow(ctx, `
			INSERT INTO tags (id, title, created_at, updated_at)
			VALUES ($1, $2, $3, $3)
			ON CONFLICT (title) DO UPDATE SET title = EXCLUDED.title
			RETURNING id
		`, uuid.New(), title, time.Now().UTC()).Scan(&tagID)
		if err != nil {
			return fmt.Errorf("upsert tag %q: %w", title, err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)`,
			articleID, tagID,
		); err != nil {
			return fmt.Errorf("attach tag %q: %w", title, err)
		}
	}
	return nil
}
