package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/uniscrape/internal/domain"
)

// UniversityRepository handles database operations for institutions.
type UniversityRepository struct {
	db *sqlx.DB
}

// NewUniversityRepository creates a new university repository.
func NewUniversityRepository(db *sqlx.DB) *UniversityRepository {
	return &UniversityRepository{db: db}
}

// Save upserts an institution record. Re-running a scrape overwrites the
// existing row, so the operation is idempotent by university_id.
func (r *UniversityRepository) Save(ctx context.Context, u domain.University) error {
	query := `
		INSERT OR REPLACE INTO universities
		(university_id, university_name, university_city, university_region,
		 university_website, university_email, university_phone,
		 university_ranking_national, university_ranking_world, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`

	_, err := r.db.ExecContext(
		ctx, query,
		u.ID, u.Name, u.City, u.Region,
		u.Website, u.Email, u.Phone,
		u.RankingNational, u.RankingWorld,
	)
	if err != nil {
		return fmt.Errorf("failed to save university %s: %w", u.ID, err)
	}

	return nil
}

// List returns all institutions ordered by identifier.
func (r *UniversityRepository) List(ctx context.Context) ([]domain.University, error) {
	query := `
		SELECT university_id, university_name, university_city, university_region,
		       university_website, university_email, university_phone,
		       university_ranking_national, university_ranking_world, last_updated
		FROM universities
		ORDER BY university_id
	`

	var universities []domain.University
	if err := r.db.SelectContext(ctx, &universities, query); err != nil {
		return nil, fmt.Errorf("failed to list universities: %w", err)
	}

	return universities, nil
}

// Count returns the number of institution rows.
func (r *UniversityRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM universities`); err != nil {
		return 0, fmt.Errorf("failed to count universities: %w", err)
	}
	return count, nil
}
