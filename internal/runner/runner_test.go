package runner_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/uniscrape/internal/config"
	"github.com/jonesrussell/uniscrape/internal/database"
	"github.com/jonesrussell/uniscrape/internal/logger"
	"github.com/jonesrussell/uniscrape/internal/runner"
)

func newTestRunner(t *testing.T) *runner.Runner {
	t.Helper()

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.InitSchema(context.Background(), db))

	cfg := &config.Config{
		Database: "unused",
		Timeout:  time.Second,
	}

	return runner.New(cfg, logger.NewNoOp(),
		database.NewUniversityRepository(db),
		database.NewCourseRepository(db))
}

func TestRunUnknownUniversityDoesNotAbort(t *testing.T) {
	t.Parallel()

	r := newTestRunner(t)

	stats, err := r.Run(context.Background(), []string{"oxford", "cambridge"})
	require.NoError(t, err)

	assert.NotEmpty(t, stats.RunID)
	assert.Equal(t, 2, stats.Attempted)
	assert.Equal(t, 2, stats.Failed)
	assert.Zero(t, stats.Succeeded)
	assert.Zero(t, stats.Courses)
}

func TestRunEmptyList(t *testing.T) {
	t.Parallel()

	r := newTestRunner(t)

	stats, err := r.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Zero(t, stats.Attempted)
	assert.GreaterOrEqual(t, stats.Duration, time.Duration(0))
}
