package reviews

import (
	"context"
	"errors"
	"fmt"

	"folio/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("review not found")

type Store interface {
	Create(ctx context.Context, review *Review) error
	ListApproved(ctx context.Context) ([]Review, error)
	SetApproval(ctx context.Context, id string, approved bool) (*Review, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

// Create inserts the review and fills in the store-assigned id and timestamps.
func (r *Repository) Create(ctx context.Context, review *Review) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	query := `
        INSERT INTO reviews (name, review, rating, is_approved)
        VALUES ($1, $2, $3, $4)
        RETURNING id::text, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		review.Name,
		review.Review,
		review.Rating,
		review.IsApproved,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// ListApproved returns approved reviews, newest first. Never nil.
func (r *Repository) ListApproved(ctx context.Context) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	query := `
        SELECT id::text, name, review, rating, is_approved, created_at, updated_at
        FROM reviews
        WHERE is_approved
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	list := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.Review, &rv.Rating, &rv.IsApproved, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		list = append(list, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) SetApproval(ctx context.Context, id string, approved bool) (*Review, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	query := `
        UPDATE reviews
        SET is_approved = $2, updated_at = now()
        WHERE id = $1
        RETURNING id::text, name, review, rating, is_approved, created_at, updated_at
    `
	var rv Review
	err := r.db.QueryRow(ctx, query, id, approved).
		Scan(&rv.ID, &rv.Name, &rv.Review, &rv.Rating, &rv.IsApproved, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update review approval: %w", err)
	}
	return &rv, nil
}
