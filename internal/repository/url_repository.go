package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/Siddarth2230/hashlink/internal/models"
	"github.com/Siddarth2230/hashlink/pkg/metrics"
)

var (
	ErrNotFound    = errors.New("url not found")
	ErrDuplicateID = errors.New("url id already exists")
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS urls (
    id          BIGINT PRIMARY KEY,
    short_code  TEXT NOT NULL UNIQUE,
    long_url    TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL,
    expires_at  TIMESTAMPTZ
)`

type URLRepository struct {
	db *sql.DB
}

func NewURLRepository(db *sql.DB) *URLRepository {
	return &URLRepository{db: db}
}

// EnsureSchema creates the urls table if it doesn't exist.
func (r *URLRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

// Save inserts url with its pre-assigned ID. A taken ID returns ErrDuplicateID.
func (r *URLRepository) Save(ctx context.Context, url *models.URL) error {
	defer observe("save", time.Now())

	query := `
        INSERT INTO urls (id, short_code, long_url, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	var expiresAt sql.NullTime
	if url.ExpiresAt != nil {
		expiresAt = sql.NullTime{Time: *url.ExpiresAt, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query, url.ID, url.ShortCode, url.LongURL, url.CreatedAt, expiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		log.Printf("Error saving URL id=%d: %v", url.ID, err)
		return err
	}
	return nil
}

// FindByID returns the row for id, expired or not. Missing rows return ErrNotFound.
func (r *URLRepository) FindByID(ctx context.Context, id int64) (*models.URL, error) {
	defer observe("find", time.Now())

	query := `
        SELECT id, short_code, long_url, created_at, expires_at
        FROM urls
        WHERE id = $1
	`

	var expiresAt sql.NullTime
	var url models.URL
	row := r.db.QueryRowContext(ctx, query, id)
	if err := row.Scan(&url.ID, &url.ShortCode, &url.LongURL, &url.CreatedAt, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.Printf("Error finding URL id=%d: %v", id, err)
		return nil, err
	}
	if expiresAt.Valid {
		url.ExpiresAt = &expiresAt.Time
	}
	return &url, nil
}

func (r *URLRepository) DeleteByID(ctx context.Context, id int64) error {
	defer observe("delete", time.Now())

	result, err := r.db.ExecContext(ctx, `DELETE FROM urls WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting id=%d: %v", id, err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error fetching rows affected for id=%d: %v", id, err)
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	log.Printf("Deleted url id=%d", id)
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func observe(operation string, start time.Time) {
	metrics.DatabaseQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
