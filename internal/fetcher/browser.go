package fetcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/jonesrussell/uniscrape/internal/logger"
)

// Rendered fetch timing.
const (
	// settleDelay gives client-side scripts time to render after page load.
	settleDelay = 2 * time.Second
	// cookieDismissTimeout bounds the best-effort cookie banner lookup.
	cookieDismissTimeout = 2 * time.Second
)

// cookieAcceptSelector is the consent-banner accept button used by the sites
// we scrape (Civic Cookie Control).
const cookieAcceptSelector = "#ccc-notify-accept"

// BrowserFetcher drives a headless browser so JavaScript-rendered listings
// can be read. The browser is a single long-lived session; callers must
// Close it on every exit path.
type BrowserFetcher struct {
	browser *rod.Browser
	lc      *launcher.Launcher
	timeout time.Duration
	log     logger.Interface
}

// NewBrowserFetcher launches a browser and connects to it.
func NewBrowserFetcher(headless bool, timeout time.Duration, log logger.Interface) (*BrowserFetcher, error) {
	lc := launcher.New().
		Headless(headless).
		NoSandbox(true)

	controlURL, err := lc.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if connectErr := browser.Connect(); connectErr != nil {
		lc.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", connectErr)
	}

	return &BrowserFetcher{
		browser: browser,
		lc:      lc,
		timeout: timeout,
		log:     log.WithComponent("browser"),
	}, nil
}

// Fetch navigates to the URL, waits for client-side rendering to settle,
// dismisses the cookie-consent overlay if present, and parses the rendered
// markup.
func (f *BrowserFetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(f.timeout)

	if navErr := page.Navigate(pageURL); navErr != nil {
		return nil, fmt.Errorf("navigate: %w", navErr)
	}
	if loadErr := page.WaitLoad(); loadErr != nil {
		return nil, fmt.Errorf("wait load: %w", loadErr)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(settleDelay):
	}

	f.dismissCookieBanner(page, pageURL)

	html, htmlErr := page.HTML()
	if htmlErr != nil {
		return nil, fmt.Errorf("read rendered html: %w", htmlErr)
	}

	doc, parseErr := goquery.NewDocumentFromReader(strings.NewReader(html))
	if parseErr != nil {
		return nil, fmt.Errorf("parse html: %w", parseErr)
	}

	f.log.Debug("page rendered", "url", pageURL)
	return doc, nil
}

// dismissCookieBanner clicks the consent accept button if it exists.
// Best effort only; any failure is ignored.
func (f *BrowserFetcher) dismissCookieBanner(page *rod.Page, pageURL string) {
	el, err := page.Timeout(cookieDismissTimeout).Element(cookieAcceptSelector)
	if err != nil {
		return
	}

	if clickErr := el.Click(proto.InputMouseButtonLeft, 1); clickErr != nil {
		f.log.Debug("cookie banner click failed", "url", pageURL, "error", clickErr)
		return
	}

	f.log.Debug("cookie banner dismissed", "url", pageURL)
}

// Close shuts the browser session down and cleans up the launcher.
func (f *BrowserFetcher) Close() error {
	if f.browser == nil {
		return nil
	}

	err := f.browser.Close()
	f.lc.Cleanup()
	f.browser = nil

	if err != nil {
		return fmt.Errorf("close browser: %w", err)
	}
	return nil
}
