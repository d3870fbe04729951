package scraper

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/IbrahimAyad/menuscraper/config"
	"github.com/IbrahimAyad/menuscraper/helpers"
	"github.com/IbrahimAyad/menuscraper/internal/menu"
	"github.com/IbrahimAyad/menuscraper/logger"
	"github.com/IbrahimAyad/menuscraper/pkg/errors"
	"github.com/IbrahimAyad/menuscraper/services/cache"
)

// stage is one rung of the escalation ladder. Each stage is strictly more
// expensive and less precise than the previous one; the controller trades
// precision for recall only when recall is otherwise zero.
type stage int

const (
	stageStatic stage = iota
	stagePlatformBrowser
	stageUniversalBrowser
	stageTextMining
	stageDone
)

// String returns the string representation of the stage
func (s stage) String() string {
	switch s {
	case stageStatic:
		return StrategyStatic
	case stagePlatformBrowser:
		return StrategyPlatform
	case stageUniversalBrowser:
		return StrategyUniversal
	case stageTextMining:
		return StrategyTextMining
	case stageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Scraper orchestrates the fallback ladder for one URL at a time. It holds
// no per-request state; one instance serves concurrent scrapes.
type Scraper struct {
	cfg      config.Config
	renderer PageRenderer
	cache    cache.CacheService
	log      *logger.Logger
}

// New creates a scraper with an injected renderer and cache. Either may be
// nil: without a renderer the browser stages degrade to whatever content is
// already on hand, without a cache rate limiting and result reuse are off.
func New(cfg config.Config, renderer PageRenderer, cacheSvc cache.CacheService) *Scraper {
	return &Scraper{
		cfg:      cfg,
		renderer: renderer,
		cache:    cacheSvc,
		log:      logger.ForScraper(),
	}
}

// Scrape turns one restaurant-menu URL into a MenuDocument, escalating
// through static fetch, platform browser automation, a universal heuristic
// browser pass and aggressive text mining until one stage yields items.
// A zero-item result from the final stage is a valid, if disappointing,
// success. The whole ladder runs under the configured wall-clock budget.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*menu.MenuDocument, error) {
	host := helpers.HostOf(rawURL)

	if s.cache != nil {
		// Cached result first: a blocked host can still serve its last menu
		if data, err := s.cache.Get(resultKey(rawURL)); err == nil {
			var cached menu.MenuDocument
			if err := json.Unmarshal(data, &cached); err == nil {
				s.log.Debug().Str("url", rawURL).Msg("Returning cached menu document")
				return &cached, nil
			}
		}
		if _, err := s.cache.Get(blockKey(host)); err == nil {
			return nil, errors.NewRateLimit(rawURL, s.cfg.HostBlockTime)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ScrapeBudget)
	defer cancel()

	doc, err := s.runLadder(ctx, rawURL, host)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cfg.ResultCacheTTL > 0 {
		if data, err := json.Marshal(doc); err == nil {
			if err := s.cache.Set(resultKey(rawURL), data, s.cfg.ResultCacheTTL); err != nil {
				s.log.Debug().Err(err).Msg("Failed to cache menu document")
			}
		}
		if err := s.cache.Set(blockKey(host), []byte("1"), s.cfg.HostBlockTime); err != nil {
			s.log.Debug().Err(err).Msg("Failed to set host block window")
		}
	}

	return doc, nil
}

// runLadder drives the stage state machine. Stage N+1 runs if and only if
// stage N produced zero items; once any stage yields at least one item the
// ladder stops.
func (s *Scraper) runLadder(ctx context.Context, rawURL, host string) (*menu.MenuDocument, error) {
	debug := &menu.ScrapeDebugInfo{}

	platform, needsBrowser := ClassifyURL(rawURL)
	st := stageStatic
	if needsBrowser {
		st = stagePlatformBrowser
	}

	var (
		ext     *Extraction
		lastDoc *goquery.Document
		method  menu.ScrapingMethod
	)

	for st != stageDone {
		if ctx.Err() != nil {
			// Budget exhausted mid-ladder: return whatever the last stage
			// produced rather than escalating further
			s.log.Warn().Str("url", rawURL).Str("stage", st.String()).Msg("Scrape budget exhausted")
			if ext == nil {
				return nil, errors.NewTimeout(rawURL, "scrape budget exhausted before any stage completed", ctx.Err())
			}
			break
		}

		debug.Strategies = append(debug.Strategies, st.String())
		log := logger.ForStrategy(st.String()).WithField("url", rawURL)

		switch st {
		case stageStatic:
			e, doc, err := s.runStatic(rawURL)
			if err != nil {
				// A non-2xx or network failure on the plain GET often just
				// means the site wants a real browser; fall through instead
				// of propagating
				log.Warn().Err(err).Msg("Static stage failed, escalating to browser")
				st = stagePlatformBrowser
				continue
			}
			ext, lastDoc, method = e, doc, menu.MethodStatic
			st = s.nextStage(st, ext)

		case stagePlatformBrowser:
			doc, err := s.renderPage(ctx, rawURL, PlatformFor(platform).WaitSelector, debug, log)
			if err != nil {
				if lastDoc != nil {
					// Keep whatever the static fetch gave us and let the
					// cheaper-DOM stages have a go at it
					log.Warn().Err(err).Msg("Browser render failed, reusing static DOM")
					st = stageUniversalBrowser
					continue
				}
				return nil, errors.NewNavigation(rawURL, "browser navigation failed", err)
			}
			lastDoc = doc
			ext = PlatformFor(platform).Extract(doc, rawURL, s.cfg.MaxContainers)
			ext.Global = minePageCustomizations(doc)
			method = menu.MethodBrowser
			st = s.nextStage(st, ext)

		case stageUniversalBrowser:
			if lastDoc == nil || !s.hasRendered(debug) {
				doc, err := s.renderPage(ctx, rawURL, "body", debug, log)
				if err == nil {
					lastDoc = doc
				} else if lastDoc == nil {
					return nil, errors.NewNavigation(rawURL, "browser navigation failed", err)
				} else {
					log.Warn().Err(err).Msg("Universal render failed, degrading to prior DOM")
				}
			}
			ext = extractUniversal(lastDoc, rawURL, s.cfg.MaxContainers)
			method = menu.MethodUniversal
			st = s.nextStage(st, ext)

		case stageTextMining:
			name := ""
			if ext != nil {
				name = ext.RestaurantName
			}
			ext = extractFromText(flattenText(lastDoc), name, s.cfg.MaxTextMinedItems)
			method = menu.MethodIntelligent
			st = stageDone
		}
	}

	if ext == nil {
		return nil, errors.NewValidation(rawURL, "no extraction stage completed")
	}

	debug.ElementsFound = len(ext.Items)
	doc := menu.NewDocument(ext.RestaurantName, rawURL, ext.Items, ext.Global, method, debug)

	s.log.Info().
		Str("url", rawURL).
		Str("host", host).
		Str("method", string(method)).
		Int("items", len(doc.Menu)).
		Strs("strategies", debug.Strategies).
		Msg("Scrape finished")

	return doc, nil
}

// nextStage advances the ladder: zero items escalates, anything else ends it.
func (s *Scraper) nextStage(current stage, ext *Extraction) stage {
	if ext != nil && len(ext.Items) > 0 {
		return stageDone
	}
	switch current {
	case stageStatic, stagePlatformBrowser:
		return stageUniversalBrowser
	case stageUniversalBrowser:
		return stageTextMining
	default:
		return stageDone
	}
}

// renderPage asks the injected renderer for a settled DOM and records
// retries and screenshot paths into the debug info.
func (s *Scraper) renderPage(ctx context.Context, rawURL, waitSelector string, debug *menu.ScrapeDebugInfo, log *logger.Logger) (*goquery.Document, error) {
	if s.renderer == nil {
		return nil, errors.NewConfiguration("no browser renderer configured", nil)
	}

	res, err := s.renderer.Render(ctx, rawURL, waitSelector)
	if res != nil {
		debug.RetryAttempts += res.Retries
		if res.ScreenshotPath != "" {
			debug.ScreenshotPath = res.ScreenshotPath
		}
	}
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.HTML))
	if err != nil {
		return nil, errors.NewParsing(rawURL, "failed to parse rendered HTML", err)
	}

	if looksLikeSPA(res.HTML) {
		log.Debug().Msg("Rendered page carries client-side framework fingerprints")
	}

	return doc, nil
}

// hasRendered reports whether a browser stage already ran for this scrape.
func (s *Scraper) hasRendered(debug *menu.ScrapeDebugInfo) bool {
	for _, name := range debug.Strategies {
		if name == StrategyPlatform {
			return true
		}
	}
	return false
}

// ClassifyURL decides which platform adapter fits a URL and whether the
// site is known to require browser automation. Unknown hosts start at the
// static stage.
func ClassifyURL(rawURL string) (platform string, needsBrowser bool) {
	host := helpers.HostOf(rawURL)

	for domain, p := range platformDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return p, true
		}
	}

	for _, hint := range dynamicHostHints {
		if host == hint || strings.HasSuffix(host, "."+hint) {
			return platformGeneric, true
		}
	}

	// Structural hints: ordering flows on subdomains or SPA-style paths
	if strings.HasPrefix(host, "order.") || strings.HasPrefix(host, "menu.") {
		return platformGeneric, true
	}
	lower := strings.ToLower(rawURL)
	for _, hint := range dynamicPathHints {
		if strings.Contains(lower, hint) {
			return platformGeneric, true
		}
	}

	return platformGeneric, false
}

// looksLikeSPA checks static HTML for client-side rendering markers.
func looksLikeSPA(html string) bool {
	for _, marker := range spaFingerprints {
		if strings.Contains(html, marker) {
			return true
		}
	}
	return false
}

// flattenText returns the page's visible text, or empty when no DOM exists.
func flattenText(doc *goquery.Document) string {
	if doc == nil {
		return ""
	}
	return doc.Find("body").Text()
}

func blockKey(host string) string { return "menuscrape:block:" + host }
func resultKey(url string) string { return "menuscrape:result:" + url }
