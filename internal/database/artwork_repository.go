package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/place-of-your-own/artworks/internal/models"
)

// ArtworkRepository handles artwork_library database operations
type ArtworkRepository struct {
	db *DB
}

// NewArtworkRepository creates a new ArtworkRepository
func NewArtworkRepository(db *DB) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

// ArtworkFilter narrows List results. Zero values mean "no constraint".
type ArtworkFilter struct {
	Theme     string
	IssueDate *time.Time
	Source    string // generated|sourced
	Approved  *bool
	Limit     int
}

const artworkColumns = `id, theme, issue_date, source, prompt, storage_path, tags, is_approved, approved_at, created_at`

// Create inserts one artwork row
func (r *ArtworkRepository) Create(ctx context.Context, a *models.Artwork) error {
	query := `
		INSERT INTO artwork_library (
			id, theme, issue_date, source, prompt, storage_path,
			tags, is_approved, approved_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Theme, a.IssueDate, a.Source, a.Prompt, a.StoragePath,
		pq.Array(a.Tags), a.IsApproved, a.ApprovedAt, a.CreatedAt,
	)

	return err
}

// GetByID retrieves an artwork by ID
func (r *ArtworkRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artwork_library WHERE id = $1`

	a := &models.Artwork{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Theme, &a.IssueDate, &a.Source, &a.Prompt, &a.StoragePath,
		pq.Array(&a.Tags), &a.IsApproved, &a.ApprovedAt, &a.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}

	return a, err
}

// List retrieves artwork matching the filter, newest first.
func (r *ArtworkRepository) List(ctx context.Context, filter ArtworkFilter) ([]*models.Artwork, error) {
	var conds []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Theme != "" {
		add("theme = $%d", filter.Theme)
	}
	if filter.IssueDate != nil {
		add("issue_date = $%d", *filter.IssueDate)
	}
	if filter.Source != "" {
		add("source = $%d", filter.Source)
	}
	if filter.Approved != nil {
		add("is_approved = $%d", *filter.Approved)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + artworkColumns + ` FROM artwork_library`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artworks []*models.Artwork
	for rows.Next() {
		a := &models.Artwork{}
		err := rows.Scan(
			&a.ID, &a.Theme, &a.IssueDate, &a.Source, &a.Prompt, &a.StoragePath,
			pq.Array(&a.Tags), &a.IsApproved, &a.ApprovedAt, &a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		artworks = append(artworks, a)
	}

	return artworks, rows.Err()
}

// Update changes approval state and/or tags. Approving stamps approved_at;
// revoking approval clears it. Returns ErrNotFound when the id matches no row.
func (r *ArtworkRepository) Update(ctx context.Context, id uuid.UUID, isApproved *bool, tags *[]string) (*models.Artwork, error) {
	var sets []string
	var args []interface{}

	set := func(expr string, arg interface{}) {
		args = append(args, arg)
		sets = append(sets, fmt.Sprintf(expr, len(args)))
	}

	if isApproved != nil {
		set("is_approved = $%d", *isApproved)
		if *isApproved {
			set("approved_at = $%d", time.Now())
		} else {
			sets = append(sets, "approved_at = NULL")
		}
	}
	if tags != nil {
		set("tags = $%d", pq.Array(*tags))
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE artwork_library SET %s WHERE id = $%d RETURNING `+artworkColumns,
		strings.Join(sets, ", "), len(args),
	)

	a := &models.Artwork{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&a.ID, &a.Theme, &a.IssueDate, &a.Source, &a.Prompt, &a.StoragePath,
		pq.Array(&a.Tags), &a.IsApproved, &a.ApprovedAt, &a.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}

	return a, err
}

// Delete removes an artwork row. Returns ErrNotFound when the id matches no row.
func (r *ArtworkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM artwork_library WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
