// Package fetcher retrieves university pages as parsed HTML documents.
// Two implementations exist: a plain HTTP fetcher and a headless-browser
// fetcher for JavaScript-rendered pages.
package fetcher

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher retrieves a URL's rendered HTML as a parsed document.
// A failed fetch returns a nil document and an error; callers proceed to
// their next candidate URL rather than retrying the same request.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Closer is implemented by fetchers holding a long-lived session.
type Closer interface {
	Close() error
}

// Common errors returned by fetchers.
var (
	// ErrNotFound is returned when the server responds with 404.
	ErrNotFound = errors.New("page not found")
	// ErrBadStatus is returned for any other non-2xx response.
	ErrBadStatus = errors.New("unexpected http status")
)
