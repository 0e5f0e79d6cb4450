package projects

import (
	"context"
	"errors"
	"fmt"

	"folio/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("project not found")

type Store interface {
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, id string, patch Patch) (*Project, error)
	Delete(ctx context.Context, id string) (*Project, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

const columns = `id::text, title, description, technologies, live_url, github_url,
        featured, snapshot_url, image_url, sort_order, created_at, updated_at`

func scanProject(row pgx.Row) (*Project, error) {
	var p Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Technologies,
		&p.LiveURL,
		&p.GithubURL,
		&p.Featured,
		&p.SnapshotURL,
		&p.ImageURL,
		&p.Order,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return &p, nil
}

// List returns every project by display order, oldest first on ties.
func (r *Repository) List(ctx context.Context) ([]Project, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+columns+` FROM projects ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	list := []Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		list = append(list, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) Create(ctx context.Context, p *Project) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	if p.Technologies == nil {
		p.Technologies = []string{}
	}

	query := `
        INSERT INTO projects (title, description, technologies, live_url, github_url,
                              featured, snapshot_url, image_url, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id::text, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		p.Title,
		p.Description,
		p.Technologies,
		p.LiveURL,
		p.GithubURL,
		p.Featured,
		p.SnapshotURL,
		p.ImageURL,
		p.Order,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, id string, patch Patch) (*Project, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var set db.Assignments
	if patch.Title != nil {
		set.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		set.Set("description", *patch.Description)
	}
	if patch.Technologies != nil {
		set.Set("technologies", *patch.Technologies)
	}
	if patch.LiveURL != nil {
		set.Set("live_url", *patch.LiveURL)
	}
	if patch.GithubURL != nil {
		set.Set("github_url", *patch.GithubURL)
	}
	if patch.Featured != nil {
		set.Set("featured", *patch.Featured)
	}
	if patch.SnapshotURL != nil {
		set.Set("snapshot_url", *patch.SnapshotURL)
	}
	if patch.ImageURL != nil {
		set.Set("image_url", *patch.ImageURL)
	}
	if patch.Order != nil {
		set.Set("sort_order", *patch.Order)
	}

	query, args := set.Update("projects", id, columns)
	p, err := scanProject(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return p, nil
}

// Delete removes the project and returns it so callers can clean up its snapshot.
func (r *Repository) Delete(ctx context.Context, id string) (*Project, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	p, err := scanProject(r.db.QueryRow(ctx, `DELETE FROM projects WHERE id = $1 RETURNING `+columns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}
	return p, nil
}
