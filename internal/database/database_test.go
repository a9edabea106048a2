package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/uniscrape/internal/database"
	"github.com/jonesrussell/uniscrape/internal/domain"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.InitSchema(context.Background(), db))
	return db
}

func testUniversity(id string) domain.University {
	return domain.University{
		ID:      id,
		Name:    "Test University " + id,
		City:    "Testville",
		Region:  "Test Region",
		Website: "https://example.edu",
	}
}

func testCourse(code, universityID string) domain.Course {
	return domain.Course{
		Code:         code,
		Name:         "Course " + code,
		Language:     "English",
		PeriodYears:  3,
		Type:         domain.DegreeBachelor,
		AcademicYear: "2025/2026",
		Area:         "Economics",
		UniversityID: universityID,
	}
}

func TestInitSchemaIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	// A second run over existing tables must not fail.
	require.NoError(t, database.InitSchema(context.Background(), db))
}

func TestUniversityRepositorySaveIsUpsert(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := database.NewUniversityRepository(db)
	ctx := context.Background()

	u := testUniversity("U1")
	require.NoError(t, repo.Save(ctx, u))

	u.Name = "Renamed University"
	require.NoError(t, repo.Save(ctx, u))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Renamed University", list[0].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCourseRepositorySaveAllIsIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.NewUniversityRepository(db).Save(ctx, testUniversity("U1")))

	repo := database.NewCourseRepository(db)
	courses := []domain.Course{
		testCourse("U1_AAA_00000001", "U1"),
		testCourse("U1_BBB_00000002", "U1"),
	}

	require.NoError(t, repo.SaveAll(ctx, courses))
	require.NoError(t, repo.SaveAll(ctx, courses))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCourseRepositorySaveAllEmpty(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	require.NoError(t, database.NewCourseRepository(db).SaveAll(context.Background(), nil))
}

func TestCourseRepositoryListOrdersByCode(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.NewUniversityRepository(db).Save(ctx, testUniversity("U1")))

	repo := database.NewCourseRepository(db)
	require.NoError(t, repo.SaveAll(ctx, []domain.Course{
		testCourse("U1_ZZZ_00000003", "U1"),
		testCourse("U1_AAA_00000001", "U1"),
	}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "U1_AAA_00000001", list[0].Code)
	assert.Equal(t, "U1_ZZZ_00000003", list[1].Code)
}

func TestReservedTablesAreEmpty(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := database.NewCourseRepository(db)
	ctx := context.Background()

	modules, err := repo.ListModules(ctx)
	require.NoError(t, err)
	assert.Empty(t, modules)

	requirements, err := repo.ListRequirements(ctx)
	require.NoError(t, err)
	assert.Empty(t, requirements)
}

func TestStatistics(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	universities := database.NewUniversityRepository(db)
	require.NoError(t, universities.Save(ctx, testUniversity("U1")))
	require.NoError(t, universities.Save(ctx, testUniversity("U2")))

	courses := database.NewCourseRepository(db)
	batch := []domain.Course{
		testCourse("U1_AAA_00000001", "U1"),
		testCourse("U1_BBB_00000002", "U1"),
		testCourse("U1_CCC_00000003", "U1"),
	}
	batch[2].Area = "Law"
	require.NoError(t, courses.SaveAll(ctx, batch))

	stats, err := database.NewStatsRepository(db).Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Universities)
	assert.Equal(t, 3, stats.Courses)

	// The institution without programmes still shows up with a zero count.
	require.Len(t, stats.ByUniversity, 2)
	assert.Equal(t, database.GroupCount{Key: "Test University U1", Count: 3}, stats.ByUniversity[0])
	assert.Equal(t, database.GroupCount{Key: "Test University U2", Count: 0}, stats.ByUniversity[1])

	require.Len(t, stats.ByArea, 2)
	assert.Equal(t, database.GroupCount{Key: "Economics", Count: 2}, stats.ByArea[0])
	assert.Equal(t, database.GroupCount{Key: "Law", Count: 1}, stats.ByArea[1])
}
