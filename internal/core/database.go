package core

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/clock"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/oid"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/resync"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

var (
	// Lazy-load ensuring a single connection pool
	storeOnce      resync.Once
	storeSingleton *SQLiteStore
)

var _ ArticleStore = (*SQLiteStore)(nil)

// SQLClient provides a common interface between sql.DB and sql.Tx to make methods compatible with both.
type SQLClient interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// SQLiteStore persists articles in a SQLite database.
type SQLiteStore struct {
	client *sql.DB
}

// CurrentStore returns the store of the current blog directory (.blog/database.db).
func CurrentStore() *SQLiteStore {
	storeOnce.Do(func() {
		path := CurrentConfig().DatabasePath()
		store, err := OpenSQLiteStore(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open database %s: %v\n", path, err)
			os.Exit(1)
		}
		storeSingleton = store
	})
	return storeSingleton
}

// OpenSQLiteStore opens the database and applies pending migrations.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	instance, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		db.Close()
		return nil, err
	}

	// Run migrations
	d, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error while reading migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", d, "sqlite3", instance)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error while initializing migrations: %w", err)
	}
	err = m.Up() // Create/Update table schema_migrations
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		db.Close()
		return nil, fmt.Errorf("error while running migrations: %w", err)
	}
	CurrentLogger().Debugf("💾 Opened database %s", path)

	return &SQLiteStore{client: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.client.Close()
}

// Client returns the client to use to query the database.
func (s *SQLiteStore) Client() SQLClient {
	return s.client
}

/* Queries */

func (s *SQLiteStore) SelectArticlesByTitleMatch(ctx context.Context, query, lang string, limit int) ([]ArticleSummary, error) {
	return queryArticleSummaries(ctx, s.client, `
		WHERE a.status = ? AND t.language = ? AND LOWER(t.title) LIKE LOWER(?) ESCAPE '\'
		ORDER BY a.published_at DESC, a.slug
		LIMIT ?`,
		StatusPublished, lang, likeContains(query), limit)
}

func (s *SQLiteStore) SelectPublishedArticles(ctx context.Context, lang string, limit int) ([]ArticleSummary, error) {
	return queryArticleSummaries(ctx, s.client, `
		WHERE a.status = ? AND t.language = ?
		ORDER BY a.published_at DESC, a.slug
		LIMIT ?`,
		StatusPublished, lang, limit)
}

func (s *SQLiteStore) SelectArticlesBySlugs(ctx context.Context, slugs []string, lang string) ([]ArticleState, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	args := []any{lang}
	for _, slug := range slugs {
		args = append(args, slug)
	}
	rows, err := s.client.QueryContext(ctx, fmt.Sprintf(`
		SELECT
			a.slug,
			COALESCE(t.title, ''),
			a.status
		FROM articles a
		LEFT JOIN article_translations t ON t.article_id = a.id AND t.language = ?
		WHERE a.slug IN (%s);`, placeholders(len(slugs))), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ArticleState
	for rows.Next() {
		var state ArticleState
		if err := rows.Scan(&state.Slug, &state.Title, &state.Status); err != nil {
			return nil, err
		}
		result = append(result, state)
	}
	return result, rows.Err()
}

func (s *SQLiteStore) SelectArticleBySlug(ctx context.Context, slug, lang string) (*Article, error) {
	var a Article
	var publishedAt string
	var createdAt string
	var updatedAt string
	var content string

	// Query for a value based on a single row.
	err := s.client.QueryRowContext(ctx, `
		SELECT
			a.id,
			a.slug,
			a.status,
			a.published_at,
			a.created_at,
			t.updated_at,
			t.language,
			t.title,
			t.content
		FROM articles a
		JOIN article_translations t ON t.article_id = a.id
		WHERE a.slug = ? AND t.language = ?;`, slug, lang).
		Scan(
			&a.OID,
			&a.Slug,
			&a.Status,
			&publishedAt,
			&createdAt,
			&updatedAt,
			&a.Language,
			&a.Title,
			&content,
		)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	a.Content = markdown.Document(content)
	a.PublishedAt = timeFromSQL(publishedAt)
	a.CreatedAt = timeFromSQL(createdAt)
	a.UpdatedAt = timeFromSQL(updatedAt)
	return &a, nil
}

// CountArticles returns the total number of translations.
func (s *SQLiteStore) CountArticles(ctx context.Context) (int, error) {
	var count int
	if err := s.client.QueryRowContext(ctx, `SELECT count(*) FROM article_translations`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

/* Updates */

// SaveArticle inserts or updates the article and its translation inside a single transaction.
func (s *SQLiteStore) SaveArticle(ctx context.Context, article *Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	tx, err := s.client.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := clock.Now()
	article.UpdatedAt = now
	if article.Published() && article.PublishedAt.IsZero() {
		article.PublishedAt = now
	}

	var existingID string
	var createdAt string
	err = tx.QueryRowContext(ctx, `SELECT id, created_at FROM articles WHERE slug = ?`, article.Slug).Scan(&existingID, &createdAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if article.OID.IsNil() {
			article.OID = oid.New()
		}
		article.CreatedAt = now
		if err := insertArticle(ctx, tx, article); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		article.OID = oid.ParseOrNil(existingID)
		article.CreatedAt = timeFromSQL(createdAt)
		if err := updateArticle(ctx, tx, article); err != nil {
			return err
		}
	}

	if err := upsertTranslation(ctx, tx, article); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	CurrentLogger().Debugf("💾 Saved %s", article)
	return nil
}

func insertArticle(ctx context.Context, client SQLClient, a *Article) error {
	query := `
		INSERT INTO articles(
			id,
			slug,
			status,
			published_at,
			created_at,
			updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err := client.ExecContext(ctx, query,
		a.OID.String(),
		a.Slug,
		a.Status,
		timeToSQL(a.PublishedAt),
		timeToSQL(a.CreatedAt),
		timeToSQL(a.UpdatedAt),
	)
	return err
}

func updateArticle(ctx context.Context, client SQLClient, a *Article) error {
	query := `
		UPDATE articles
		SET
			status = ?,
			published_at = ?,
			updated_at = ?
		WHERE id = ?;
	`
	_, err := client.ExecContext(ctx, query,
		a.Status,
		timeToSQL(a.PublishedAt),
		timeToSQL(a.UpdatedAt),
		a.OID.String(),
	)
	return err
}

func upsertTranslation(ctx context.Context, client SQLClient, a *Article) error {
	query := `
		INSERT INTO article_translations(
			id,
			article_id,
			language,
			title,
			content,
			created_at,
			updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (article_id, language) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			updated_at = excluded.updated_at;
	`
	// A translation id only depends on its article and language
	_, err := client.ExecContext(ctx, query,
		oid.NewFromBytes([]byte(a.OID.String()+"/"+a.Language)).String(),
		a.OID.String(),
		a.Language,
		a.Title,
		a.Content.String(),
		timeToSQL(a.UpdatedAt),
		timeToSQL(a.UpdatedAt),
	)
	return err
}

/* SQL Helpers */

func queryArticleSummaries(ctx context.Context, client SQLClient, clauses string, args ...any) ([]ArticleSummary, error) {
	var result []ArticleSummary

	rows, err := client.QueryContext(ctx, fmt.Sprintf(`
		SELECT
			a.slug,
			t.title,
			t.content
		FROM articles a
		JOIN article_translations t ON t.article_id = a.id
		%s;`, strings.TrimSpace(clauses)), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary ArticleSummary
		var content string
		if err := rows.Scan(&summary.Slug, &summary.Title, &content); err != nil {
			return nil, err
		}
		summary.Content = markdown.Document(content)
		result = append(result, summary)
	}
	return result, rows.Err()
}
