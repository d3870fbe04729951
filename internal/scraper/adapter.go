package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/IbrahimAyad/menuscraper/helpers"
	"github.com/IbrahimAyad/menuscraper/internal/menu"
)

// Extract runs a platform adapter over a parsed page: restaurant name via
// the prioritized selector list, then the container-selector ladder,
// stopping at the first selector that yields at least one container. Each
// container goes through the classifier; processing is capped at
// maxContainers per page for performance.
func (cfg PlatformConfig) Extract(doc *goquery.Document, pageURL string, maxContainers int) *Extraction {
	ext := &Extraction{
		RestaurantName: extractRestaurantName(doc, cfg.NameSelectors, pageURL),
	}

	containers := findContainers(doc, cfg.ContainerSelectors)
	if containers == nil {
		return ext
	}

	seen := map[string]bool{}
	containers.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxContainers {
			return false
		}
		item := ClassifyContainer(s)
		if item == nil {
			return true
		}
		// Nested containers can classify the same entry twice
		key := strings.ToLower(item.Name)
		if seen[key] {
			return true
		}
		seen[key] = true
		ext.Items = append(ext.Items, *item)
		return true
	})

	return ext
}

// findContainers walks the selector ladder and returns the first non-empty
// selection, or nil when nothing matches.
func findContainers(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, selector := range selectors {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// extractRestaurantName tries the prioritized selectors, then the page
// title, then the hostname.
func extractRestaurantName(doc *goquery.Document, selectors []string, pageURL string) string {
	for _, selector := range selectors {
		name := helpers.CollapseWhitespace(doc.Find(selector).First().Text())
		if len(name) >= menu.MinNameLength && len(name) <= menu.MaxNameLength && !LooksLikePrice(name) {
			return name
		}
	}

	if title := helpers.CollapseWhitespace(doc.Find("title").First().Text()); title != "" {
		// "Joe's Diner - Order Online" -> "Joe's Diner"
		for _, sep := range []string{" | ", " - ", " – "} {
			if idx := strings.Index(title, sep); idx > 0 {
				title = title[:idx]
				break
			}
		}
		if len(title) >= menu.MinNameLength && len(title) <= menu.MaxNameLength {
			return title
		}
	}

	return helpers.HostOf(pageURL)
}
