package exporter_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonesrussell/uniscrape/internal/database"
	"github.com/jonesrussell/uniscrape/internal/domain"
	"github.com/jonesrussell/uniscrape/internal/exporter"
	"github.com/jonesrussell/uniscrape/internal/logger"
)

func newTestExporter(t *testing.T) (*exporter.Exporter, string) {
	t.Helper()

	dir := t.TempDir()

	db, err := database.NewSQLiteConnection(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, database.InitSchema(ctx, db))

	universities := database.NewUniversityRepository(db)
	courses := database.NewCourseRepository(db)

	require.NoError(t, universities.Save(ctx, domain.University{
		ID:      "U1",
		Name:    "Test University",
		City:    "Testville",
		Website: "https://example.edu",
	}))
	require.NoError(t, courses.SaveAll(ctx, []domain.Course{
		{
			Code:         "U1_ECO_00000001",
			Name:         "BSc Economics",
			Language:     "English",
			PeriodYears:  3,
			Type:         domain.DegreeBachelor,
			AcademicYear: "2025/2026",
			Area:         "Economics",
			UniversityID: "U1",
		},
	}))

	exportDir := filepath.Join(dir, "exports")
	return exporter.New(universities, courses, logger.NewNoOp(), exportDir), exportDir
}

func TestExportJSONRoundTrip(t *testing.T) {
	t.Parallel()

	e, _ := newTestExporter(t)

	path, err := e.ExportJSON(context.Background())
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join("exports", "json"))

	snap, err := exporter.LoadSnapshot(path)
	require.NoError(t, err)

	require.Len(t, snap.Universities, 1)
	assert.Equal(t, "Test University", snap.Universities[0].Name)
	require.Len(t, snap.Courses, 1)
	assert.Equal(t, "BSc Economics", snap.Courses[0].Name)

	// Empty reserved tables serialize as empty arrays, not null.
	assert.NotNil(t, snap.Modules)
	assert.NotNil(t, snap.Requirements)
	assert.False(t, snap.ExportDate.IsZero())
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	e, _ := newTestExporter(t)

	paths, err := e.ExportCSV(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 2)

	universitiesFile, err := os.Open(paths[0])
	require.NoError(t, err)
	defer universitiesFile.Close()

	rows, err := csv.NewReader(universitiesFile).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "university_id", rows[0][0])
	assert.Equal(t, "U1", rows[1][0])

	coursesFile, err := os.Open(paths[1])
	require.NoError(t, err)
	defer coursesFile.Close()

	rows, err = csv.NewReader(coursesFile).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "degree_course_code", rows[0][0])
	assert.Equal(t, "U1_ECO_00000001", rows[1][0])
}

func TestExportExcel(t *testing.T) {
	t.Parallel()

	e, _ := newTestExporter(t)

	path, err := e.ExportExcel(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Universities", "Courses", "Learning Modules", "Admission Requirements"},
		f.GetSheetList())

	rows, err := f.GetRows("Courses")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "BSc Economics", rows[1][1])
}

func TestExportAll(t *testing.T) {
	t.Parallel()

	e, exportDir := newTestExporter(t)

	paths, err := e.ExportAll(context.Background())
	require.NoError(t, err)
	// One JSON file, two CSV files, one workbook.
	assert.Len(t, paths, 4)

	for _, sub := range []string{"json", "csv", "excel"} {
		entries, readErr := os.ReadDir(filepath.Join(exportDir, sub))
		require.NoError(t, readErr)
		assert.NotEmpty(t, entries)
	}
}
