package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/uniscrape/internal/logger"
)

// DefaultUserAgent is sent with every direct fetch.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// maxResponseBodyBytes limits the size of fetched page responses.
const maxResponseBodyBytes = 10 * 1024 * 1024 // 10 MB

// HTTPFetcher fetches pages with a plain HTTP GET.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	log       logger.Interface
}

// NewHTTPFetcher creates a direct fetcher with the given request timeout.
func NewHTTPFetcher(timeout time.Duration, log logger.Interface) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: DefaultUserAgent,
		log:       log.WithComponent("fetcher"),
	}
}

// Fetch performs an HTTP GET and parses the response body.
// Non-2xx responses and transport errors are terminal for this URL; there is
// no retry.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %w", reqErr)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, doErr := f.client.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("http fetch: %w", doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, pageURL)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d for %s", ErrBadStatus, resp.StatusCode, pageURL)
	}

	limited := io.LimitReader(resp.Body, maxResponseBodyBytes)

	doc, parseErr := goquery.NewDocumentFromReader(limited)
	if parseErr != nil {
		return nil, fmt.Errorf("parse html: %w", parseErr)
	}

	f.log.Debug("page fetched", "url", pageURL, "status", resp.StatusCode)
	return doc, nil
}
