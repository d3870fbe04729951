package scraper

import (
	"context"

	"github.com/IbrahimAyad/menuscraper/internal/menu"
)

// Strategy names recorded into ScrapeDebugInfo, in escalation order.
const (
	StrategyStatic     = "static-scraping"
	StrategyPlatform   = "platform-browser"
	StrategyUniversal  = "universal-browser"
	StrategyTextMining = "text-mining"
)

// Extraction is the intermediate result of one escalation stage before it
// is assembled into a MenuDocument.
type Extraction struct {
	RestaurantName string
	Items          []menu.MenuItem
	Global         []menu.Customization
}

// RenderResult is the settled page a browser renderer hands back.
type RenderResult struct {
	HTML           string
	ScreenshotPath string
	Retries        int
}

// PageRenderer renders a URL in a real browser and returns the DOM after
// the wait selector appeared (or its timeout elapsed). Implemented by the
// browser driver; injected into the escalation controller so tests can
// substitute a stub and the process owns exactly one browser.
type PageRenderer interface {
	Render(ctx context.Context, url string, waitSelector string) (*RenderResult, error)
}

// selectorStrategy is one family of container selectors tried by the
// universal pass.
type selectorStrategy struct {
	name      string
	selectors []string
}
