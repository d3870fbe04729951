package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/IbrahimAyad/menuscraper/internal/menu"
	"github.com/IbrahimAyad/menuscraper/logger"
)

// extractUniversal is the platform-agnostic heuristic pass: instead of one
// tuned selector set it walks several selector-strategy families (class
// patterns, list structures, interactive elements) and stops at the first
// family that classifies at least one item. Strictly less precise than a
// platform adapter; only reached when cheaper stages found nothing.
func extractUniversal(doc *goquery.Document, pageURL string, maxContainers int) *Extraction {
	log := logger.ForStrategy(StrategyUniversal)

	ext := &Extraction{
		RestaurantName: extractRestaurantName(doc, platformConfigs[platformGeneric].NameSelectors, pageURL),
	}

	for _, strategy := range universalStrategies {
		items := classifyWithStrategy(doc, strategy, maxContainers)
		if len(items) == 0 {
			continue
		}
		log.Debug().
			Str("family", strategy.name).
			Int("items", len(items)).
			Msg("Selector family produced items")
		ext.Items = items
		break
	}

	ext.Global = minePageCustomizations(doc)

	return ext
}

func classifyWithStrategy(doc *goquery.Document, strategy selectorStrategy, maxContainers int) []menu.MenuItem {
	var items []menu.MenuItem
	seen := map[string]bool{}

	for _, selector := range strategy.selectors {
		doc.Find(selector).EachWithBreak(func(i int, s *goquery.Selection) bool {
			if len(items) >= maxContainers {
				return false
			}
			item := ClassifyContainer(s)
			if item == nil {
				return true
			}
			// The loose families match overlapping subtrees, so name-level
			// dedupe is required
			key := strings.ToLower(item.Name)
			if seen[key] {
				return true
			}
			seen[key] = true
			items = append(items, *item)
			return true
		})
		if len(items) > 0 {
			break
		}
	}

	return items
}
