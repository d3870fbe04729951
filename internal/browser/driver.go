package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/IbrahimAyad/menuscraper/config"
	"github.com/IbrahimAyad/menuscraper/internal/scraper"
	"github.com/IbrahimAyad/menuscraper/logger"
	"github.com/IbrahimAyad/menuscraper/pkg/errors"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Resource types aborted by the request interceptor to cut page load time.
var blockedResourceTypes = map[network.ResourceType]bool{
	network.ResourceTypeImage:      true,
	network.ResourceTypeFont:       true,
	network.ResourceTypeStylesheet: true,
	network.ResourceTypeMedia:      true,
}

// Tracking hosts aborted regardless of resource type.
var blockedHostFragments = []string{
	"google-analytics.com", "googletagmanager.com", "doubleclick.net",
	"facebook.net", "hotjar.com", "segment.io", "fullstory.com",
}

// Driver owns the process-wide headless browser. The browser launches
// lazily on first use under a single-flight guard, each Render opens its
// own tab, and tabs run concurrently up to the configured page limit.
type Driver struct {
	cfg config.Config
	log *logger.Logger

	once        sync.Once
	initErr     error
	allocCancel context.CancelFunc
	browserCtx  context.Context
	browserStop context.CancelFunc

	pages chan struct{}
}

// NewDriver creates a driver without launching the browser.
func NewDriver(cfg config.Config) *Driver {
	return &Driver{
		cfg:   cfg,
		log:   logger.ForBrowser(),
		pages: make(chan struct{}, cfg.MaxConcurrentPages),
	}
}

// ensureBrowser launches the singleton browser exactly once. The error is
// remembered so later callers fail fast instead of racing to relaunch.
func (d *Driver) ensureBrowser() error {
	d.once.Do(func() {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", d.cfg.Headless),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(defaultUserAgent),
			chromedp.WindowSize(1366, 900),
		)

		allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
		browserCtx, browserStop := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

		// Run with no actions forces the browser process to start now
		if err := chromedp.Run(browserCtx); err != nil {
			browserStop()
			allocCancel()
			d.initErr = fmt.Errorf("failed to launch browser: %w", err)
			return
		}

		d.allocCancel = allocCancel
		d.browserCtx = browserCtx
		d.browserStop = browserStop
		d.log.Info().Bool("headless", d.cfg.Headless).Msg("Browser launched")
	})
	return d.initErr
}

// Render opens a fresh tab, navigates with the primary wait condition
// (retrying once with a more permissive one), waits for the
// platform-characteristic selector (proceeding anyway on timeout) and
// returns the settled DOM. The tab is always closed; the browser survives
// for the next request.
func (d *Driver) Render(ctx context.Context, url, waitSelector string) (*scraper.RenderResult, error) {
	if err := d.ensureBrowser(); err != nil {
		return nil, err
	}

	// Bounded page pool: unbounded tab growth under load is the failure
	// mode this guards against
	select {
	case d.pages <- struct{}{}:
		defer func() { <-d.pages }()
	case <-ctx.Done():
		return nil, errors.NewTimeout(url, "waiting for a free browser page", ctx.Err())
	}

	tabCtx, closeTab := chromedp.NewContext(d.browserCtx)
	defer closeTab()

	// Tie the tab to the caller's deadline
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		tabCtx, cancel = context.WithDeadline(tabCtx, deadline)
		defer cancel()
	}

	d.interceptRequests(tabCtx)

	result := &scraper.RenderResult{}

	if err := d.navigate(tabCtx, url, result); err != nil {
		return result, err
	}

	d.waitForSelector(tabCtx, url, waitSelector)

	var html string
	htmlCtx, cancel := context.WithTimeout(tabCtx, 10*time.Second)
	defer cancel()
	if err := chromedp.Run(htmlCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return result, errors.NewNavigation(url, "failed to capture rendered DOM", err)
	}
	result.HTML = html

	if d.cfg.CaptureScreenshots {
		result.ScreenshotPath = d.screenshot(tabCtx, url)
	}

	return result, nil
}

// navigate runs the primary navigation (domcontentloaded equivalent plus a
// bounded readiness poll) and falls back once to a permissive wait when the
// primary attempt throws.
func (d *Driver) navigate(tabCtx context.Context, url string, result *scraper.RenderResult) error {
	navCtx, cancel := context.WithTimeout(tabCtx, d.cfg.NavigationTimeout)
	primaryErr := chromedp.Run(navCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		pollReadyState(5*time.Second),
	)
	cancel()
	if primaryErr == nil {
		return nil
	}

	d.log.Warn().Str("url", url).Err(primaryErr).Msg("Primary navigation failed, retrying with permissive wait")
	result.Retries++

	retryCtx, cancel := context.WithTimeout(tabCtx, d.cfg.NavigationTimeout)
	defer cancel()
	retryErr := chromedp.Run(retryCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(3*time.Second),
	)
	if retryErr != nil {
		return errors.NewNavigation(url, "navigation failed after retry", retryErr)
	}
	return nil
}

// pollReadyState waits until document.readyState leaves "loading", bounded
// so a hung page cannot stall the scrape.
func pollReadyState(maxWait time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		deadline := time.Now().Add(maxWait)
		for time.Now().Before(deadline) {
			var state string
			if err := chromedp.Evaluate("document.readyState", &state).Do(ctx); err != nil {
				return err
			}
			if state == "interactive" || state == "complete" {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(200 * time.Millisecond):
			}
		}
		// Proceed with whatever loaded; partial content beats nothing
		return nil
	})
}

// waitForSelector blocks until the platform-characteristic selector shows
// up or its timeout elapses. A timeout is not fatal: the adapter extracts
// whatever is present at that moment.
func (d *Driver) waitForSelector(tabCtx context.Context, url, waitSelector string) {
	if waitSelector == "" || waitSelector == "body" {
		return
	}
	waitCtx, cancel := context.WithTimeout(tabCtx, d.cfg.SelectorWaitTimeout)
	defer cancel()
	if err := chromedp.Run(waitCtx, chromedp.WaitVisible(waitSelector, chromedp.ByQuery)); err != nil {
		d.log.Warn().
			Str("url", url).
			Str("selector", waitSelector).
			Err(err).
			Msg("Wait selector never appeared, extracting current DOM")
	}
}

// interceptRequests aborts image/font/stylesheet/media and tracking
// requests on the tab to reduce load time.
func (d *Driver) interceptRequests(tabCtx context.Context) {
	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		paused, ok := ev.(*fetch.EventRequestPaused)
		if !ok {
			return
		}
		go func() {
			c := chromedp.FromContext(tabCtx)
			ectx := cdp.WithExecutor(tabCtx, c.Target)
			if shouldBlock(paused) {
				_ = fetch.FailRequest(paused.RequestID, network.ErrorReasonBlockedByClient).Do(ectx)
				return
			}
			_ = fetch.ContinueRequest(paused.RequestID).Do(ectx)
		}()
	})

	if err := chromedp.Run(tabCtx, fetch.Enable()); err != nil {
		d.log.Warn().Err(err).Msg("Failed to enable request interception")
	}
}

func shouldBlock(ev *fetch.EventRequestPaused) bool {
	if blockedResourceTypes[ev.ResourceType] {
		return true
	}
	for _, host := range blockedHostFragments {
		if strings.Contains(ev.Request.URL, host) {
			return true
		}
	}
	return false
}

// screenshot captures a full-page screenshot into the debug directory.
// Failures are logged and swallowed; a missing screenshot never fails the
// scrape.
func (d *Driver) screenshot(tabCtx context.Context, url string) string {
	shotCtx, cancel := context.WithTimeout(tabCtx, 10*time.Second)
	defer cancel()

	var buf []byte
	if err := chromedp.Run(shotCtx, chromedp.FullScreenshot(&buf, 80)); err != nil {
		d.log.Warn().Str("url", url).Err(err).Msg("Screenshot capture failed")
		return ""
	}

	if err := os.MkdirAll(d.cfg.ScreenshotDir, 0o755); err != nil {
		d.log.Warn().Err(err).Msg("Screenshot directory unavailable")
		return ""
	}

	path := filepath.Join(d.cfg.ScreenshotDir, fmt.Sprintf("scrape-%d.png", time.Now().UnixNano()))
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		d.log.Warn().Str("path", path).Err(err).Msg("Screenshot write failed")
		return ""
	}
	return path
}

// Shutdown closes the browser process for clean exit. Safe to call when
// the browser never launched.
func (d *Driver) Shutdown() {
	if d.browserStop != nil {
		d.browserStop()
	}
	if d.allocCancel != nil {
		d.allocCancel()
	}
	d.log.Info().Msg("Browser shut down")
}
