package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Statistics aggregates store contents for the stats command and run logs.
type Statistics struct {
	Universities int
	Courses      int
	// ByUniversity maps university display name to its programme count.
	// Universities without programmes are present with a zero count.
	ByUniversity []GroupCount
	// ByArea maps subject area to its programme count.
	ByArea []GroupCount
}

// GroupCount is one row of a grouped count, ordered as returned by the query.
type GroupCount struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

// StatsRepository computes aggregate statistics over the store.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a new statistics repository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Get computes the aggregate statistics in one pass.
func (r *StatsRepository) Get(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{}

	if err := r.db.GetContext(ctx, &stats.Universities,
		`SELECT COUNT(*) FROM universities`); err != nil {
		return nil, fmt.Errorf("failed to count universities: %w", err)
	}

	if err := r.db.GetContext(ctx, &stats.Courses,
		`SELECT COUNT(*) FROM degree_courses`); err != nil {
		return nil, fmt.Errorf("failed to count courses: %w", err)
	}

	// LEFT JOIN so institutions without any programme report zero.
	byUniversity := `
		SELECT u.university_name AS key, COUNT(c.degree_course_code) AS count
		FROM universities u
		LEFT JOIN degree_courses c ON u.university_id = c.university_id
		GROUP BY u.university_id
		ORDER BY u.university_id
	`
	if err := r.db.SelectContext(ctx, &stats.ByUniversity, byUniversity); err != nil {
		return nil, fmt.Errorf("failed to group courses by university: %w", err)
	}

	byArea := `
		SELECT course_area AS key, COUNT(*) AS count
		FROM degree_courses
		GROUP BY course_area
		ORDER BY course_area
	`
	if err := r.db.SelectContext(ctx, &stats.ByArea, byArea); err != nil {
		return nil, fmt.Errorf("failed to group courses by area: %w", err)
	}

	return stats, nil
}
