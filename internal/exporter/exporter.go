// Package exporter writes store snapshots to JSON, CSV, and Excel files.
package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonesrussell/uniscrape/internal/database"
	"github.com/jonesrussell/uniscrape/internal/domain"
	"github.com/jonesrussell/uniscrape/internal/logger"
)

// timestampLayout names export files so successive runs never collide.
const timestampLayout = "20060102_150405"

// Snapshot is a full dump of the store at one point in time. Empty tables
// serialize as empty arrays rather than null.
type Snapshot struct {
	ExportDate   time.Time                     `json:"export_date"`
	Universities []domain.University           `json:"universities"`
	Courses      []domain.Course               `json:"degree_courses"`
	Modules      []domain.LearningModule       `json:"learning_modules"`
	Requirements []domain.AdmissionRequirement `json:"admission_requirements"`
}

// Exporter reads the store and writes snapshot files under the export
// directory, one subdirectory per format.
type Exporter struct {
	universities *database.UniversityRepository
	courses      *database.CourseRepository
	log          logger.Interface
	dir          string
}

// New creates an exporter writing under dir.
func New(
	universities *database.UniversityRepository,
	courses *database.CourseRepository,
	log logger.Interface,
	dir string,
) *Exporter {
	return &Exporter{
		universities: universities,
		courses:      courses,
		log:          log.WithComponent("exporter"),
		dir:          dir,
	}
}

// ExportAll writes every supported format and returns the written paths.
func (e *Exporter) ExportAll(ctx context.Context) ([]string, error) {
	snap, err := e.collect(ctx)
	if err != nil {
		return nil, err
	}

	var paths []string

	jsonPath, err := e.writeJSON(snap)
	if err != nil {
		return paths, err
	}
	paths = append(paths, jsonPath)

	csvPaths, err := e.writeCSV(snap)
	if err != nil {
		return paths, err
	}
	paths = append(paths, csvPaths...)

	excelPath, err := e.writeExcel(snap)
	if err != nil {
		return paths, err
	}
	paths = append(paths, excelPath)

	return paths, nil
}

// ExportJSON writes a JSON snapshot and returns its path.
func (e *Exporter) ExportJSON(ctx context.Context) (string, error) {
	snap, err := e.collect(ctx)
	if err != nil {
		return "", err
	}
	return e.writeJSON(snap)
}

// ExportCSV writes CSV files and returns their paths.
func (e *Exporter) ExportCSV(ctx context.Context) ([]string, error) {
	snap, err := e.collect(ctx)
	if err != nil {
		return nil, err
	}
	return e.writeCSV(snap)
}

// ExportExcel writes an Excel workbook and returns its path.
func (e *Exporter) ExportExcel(ctx context.Context) (string, error) {
	snap, err := e.collect(ctx)
	if err != nil {
		return "", err
	}
	return e.writeExcel(snap)
}

// collect reads the full store into a snapshot.
func (e *Exporter) collect(ctx context.Context) (*Snapshot, error) {
	universities, err := e.universities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect universities: %w", err)
	}

	courses, err := e.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect courses: %w", err)
	}

	modules, err := e.courses.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect learning modules: %w", err)
	}

	requirements, err := e.courses.ListRequirements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect admission requirements: %w", err)
	}

	if universities == nil {
		universities = []domain.University{}
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	if modules == nil {
		modules = []domain.LearningModule{}
	}
	if requirements == nil {
		requirements = []domain.AdmissionRequirement{}
	}

	e.log.Debug("collected snapshot",
		"universities", len(universities),
		"courses", len(courses))

	return &Snapshot{
		ExportDate:   time.Now(),
		Universities: universities,
		Courses:      courses,
		Modules:      modules,
		Requirements: requirements,
	}, nil
}

// ensureDir creates a format subdirectory under the export root.
func (e *Exporter) ensureDir(format string) (string, error) {
	dir := filepath.Join(e.dir, format)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}
	return dir, nil
}
