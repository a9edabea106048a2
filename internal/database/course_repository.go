package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/uniscrape/internal/domain"
)

// CourseRepository handles database operations for degree programmes.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// SaveAll upserts the given programme records inside one transaction.
// Conflicts on degree_course_code replace the existing row, so saving the
// same batch twice leaves the store unchanged.
func (r *CourseRepository) SaveAll(ctx context.Context, courses []domain.Course) error {
	if len(courses) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
		INSERT OR REPLACE INTO degree_courses
		(degree_course_code, degree_course_name, degree_course_language,
		 degree_course_period_years, degree_course_type, programme_access,
		 academic_year, course_area, remote_mode, tuition_fees,
		 website_university, website_course, university_id, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`

	for _, c := range courses {
		if _, execErr := tx.ExecContext(
			ctx, query,
			c.Code, c.Name, c.Language,
			c.PeriodYears, c.Type, c.ProgrammeAccess,
			c.AcademicYear, c.Area, c.RemoteMode, c.TuitionFees,
			c.WebsiteUni, c.WebsiteCourse, c.UniversityID,
		); execErr != nil {
			return fmt.Errorf("failed to save course %s: %w", c.Code, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("failed to commit course save: %w", commitErr)
	}

	return nil
}

// List returns all programmes ordered by code.
func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	query := `
		SELECT degree_course_code, degree_course_name, degree_course_language,
		       degree_course_period_years, degree_course_type, programme_access,
		       academic_year, course_area, remote_mode, tuition_fees,
		       website_university, website_course, university_id, last_updated
		FROM degree_courses
		ORDER BY degree_course_code
	`

	var courses []domain.Course
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return courses, nil
}

// Count returns the number of programme rows.
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM degree_courses`); err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}

// ListModules returns all learning modules. The table is reserved for future
// enrichment, so this is normally empty; exports still include it.
func (r *CourseRepository) ListModules(ctx context.Context) ([]domain.LearningModule, error) {
	query := `
		SELECT learning_code, learning_ssd, learning_cfu, learning_hour,
		       learning_language, learning_ref, degree_course_code,
		       university_id, semester
		FROM learning_modules
		ORDER BY learning_code
	`

	var modules []domain.LearningModule
	if err := r.db.SelectContext(ctx, &modules, query); err != nil {
		return nil, fmt.Errorf("failed to list learning modules: %w", err)
	}

	return modules, nil
}

// ListRequirements returns all admission requirements. Reserved for future
// enrichment, like ListModules.
func (r *CourseRepository) ListRequirements(ctx context.Context) ([]domain.AdmissionRequirement, error) {
	query := `
		SELECT requirement_id, requirement_type, requirement_description,
		       is_mandatory, degree_course_code
		FROM admission_requirements
		ORDER BY requirement_id
	`

	var requirements []domain.AdmissionRequirement
	if err := r.db.SelectContext(ctx, &requirements, query); err != nil {
		return nil, fmt.Errorf("failed to list admission requirements: %w", err)
	}

	return requirements, nil
}
