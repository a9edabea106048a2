// Package scraper extracts degree programme records from university websites.
// Each institution has its own scraper variant with site-specific candidate
// URLs, selector heuristics, and a fallback catalogue of known programmes.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonesrussell/uniscrape/internal/domain"
	"github.com/jonesrussell/uniscrape/internal/fetcher"
	"github.com/jonesrussell/uniscrape/internal/logger"
)

// ErrUnknownUniversity is returned when no scraper variant is registered for
// the requested institution key. Callers should check with errors.Is().
var ErrUnknownUniversity = errors.New("no scraper registered for university")

// Extraction limits shared by all scraper variants.
const (
	// maxCourses caps the result list per institution.
	maxCourses = 30
	// minCoursesFound stops candidate-URL scanning once reached.
	minCoursesFound = 5
)

// Scraper extracts data for a single institution.
type Scraper interface {
	// UniversityInfo returns the static, hand-authored institution record.
	UniversityInfo() domain.University
	// Courses fetches candidate listing pages and extracts programme records,
	// falling back to the known-programme catalogue when extraction yields
	// nothing.
	Courses(ctx context.Context) ([]domain.Course, error)
}

// Options carries the collaborators every scraper variant needs.
type Options struct {
	Fetcher fetcher.Fetcher
	Logger  logger.Interface
	// Delay is the pause between page fetches, used as crude rate limiting.
	Delay time.Duration
}

// New constructs the scraper variant registered under the given key.
func New(name string, opts Options) (Scraper, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bologna":
		return NewBologna(opts), nil
	case "lse":
		return NewLSE(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownUniversity, name)
	}
}

// Known returns the registered institution keys in stable order.
func Known() []string {
	return []string{"bologna", "lse"}
}

// sleep pauses for the configured delay, honoring context cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// dedupeCourses removes entries with a name seen earlier in the slice.
// Name comparison is case-sensitive exact match.
func dedupeCourses(courses []domain.Course) []domain.Course {
	seen := make(map[string]struct{}, len(courses))
	unique := make([]domain.Course, 0, len(courses))

	for _, course := range courses {
		if course.Name == "" {
			continue
		}
		if _, ok := seen[course.Name]; ok {
			continue
		}
		seen[course.Name] = struct{}{}
		unique = append(unique, course)
	}

	return unique
}

// capCourses truncates the list to the per-institution maximum.
func capCourses(courses []domain.Course) []domain.Course {
	if len(courses) > maxCourses {
		return courses[:maxCourses]
	}
	return courses
}
