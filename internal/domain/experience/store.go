package experience

import (
	"context"
	"errors"
	"fmt"

	"folio/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("experience not found")

type Store interface {
	List(ctx context.Context) ([]Experience, error)
	Create(ctx context.Context, e *Experience) error
	Update(ctx context.Context, id string, patch Patch) (*Experience, error)
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

const columns = `id::text, role, company, duration, description, type, created_at, updated_at`

func scanExperience(row pgx.Row) (*Experience, error) {
	var e Experience
	if err := row.Scan(&e.ID, &e.Role, &e.Company, &e.Duration, &e.Description, &e.Type, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if e.Description == nil {
		e.Description = []string{}
	}
	return &e, nil
}

// List returns the timeline newest first.
func (r *Repository) List(ctx context.Context) ([]Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+columns+` FROM experience ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query experience: %w", err)
	}
	defer rows.Close()

	list := []Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience row: %w", err)
		}
		list = append(list, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) Create(ctx context.Context, e *Experience) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	if e.Description == nil {
		e.Description = []string{}
	}

	query := `
        INSERT INTO experience (role, company, duration, description, type)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id::text, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, e.Role, e.Company, e.Duration, e.Description, e.Type).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert experience: %w", err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, id string, patch Patch) (*Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var set db.Assignments
	if patch.Role != nil {
		set.Set("role", *patch.Role)
	}
	if patch.Company != nil {
		set.Set("company", *patch.Company)
	}
	if patch.Duration != nil {
		set.Set("duration", *patch.Duration)
	}
	if patch.Description != nil {
		set.Set("description", *patch.Description)
	}
	if patch.Type != nil {
		set.Set("type", *patch.Type)
	}

	query, args := set.Update("experience", id, columns)
	e, err := scanExperience(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return e, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	result, err := r.db.Exec(ctx, `DELETE FROM experience WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
