package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements creates the four normalized tables if they do not exist.
// learning_modules and admission_requirements are reserved for future
// enrichment; current scrapers never populate them.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS universities (
		university_id TEXT PRIMARY KEY,
		university_name TEXT NOT NULL,
		university_city TEXT,
		university_region TEXT,
		university_website TEXT,
		university_email TEXT,
		university_phone TEXT,
		university_ranking_national INTEGER,
		university_ranking_world INTEGER,
		last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS degree_courses (
		degree_course_code TEXT PRIMARY KEY,
		degree_course_name TEXT NOT NULL,
		degree_course_language TEXT,
		degree_course_period_years INTEGER,
		degree_course_type TEXT,
		programme_access TEXT,
		academic_year TEXT,
		course_area TEXT,
		remote_mode TEXT,
		tuition_fees TEXT,
		website_university TEXT,
		website_course TEXT,
		university_id TEXT,
		last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (university_id) REFERENCES universities(university_id)
	)`,
	`CREATE TABLE IF NOT EXISTS learning_modules (
		learning_code TEXT PRIMARY KEY,
		learning_ssd TEXT,
		learning_cfu INTEGER,
		learning_hour INTEGER,
		learning_language TEXT,
		learning_ref TEXT,
		degree_course_code TEXT,
		university_id TEXT,
		semester TEXT,
		FOREIGN KEY (degree_course_code) REFERENCES degree_courses(degree_course_code),
		FOREIGN KEY (university_id) REFERENCES universities(university_id)
	)`,
	`CREATE TABLE IF NOT EXISTS admission_requirements (
		requirement_id TEXT PRIMARY KEY,
		requirement_type TEXT,
		requirement_description TEXT,
		is_mandatory BOOLEAN,
		degree_course_code TEXT,
		FOREIGN KEY (degree_course_code) REFERENCES degree_courses(degree_course_code)
	)`,
}

// InitSchema creates the store's tables when absent. Safe to call on every
// startup.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
