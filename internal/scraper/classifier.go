package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/IbrahimAyad/menuscraper/helpers"
	"github.com/IbrahimAyad/menuscraper/internal/menu"
)

// Candidate name length bounds; tighter at the low end than the item
// invariant so single stray characters never become items.
const (
	minCandidateNameLen = 3
	maxCandidateNameLen = 200
)

// ClassifyContainer inspects a DOM subtree hypothesized to hold exactly one
// menu entry and produces a MenuItem, or nil when the subtree doesn't have
// an acceptable name. The two-tier specific-then-generic selector search is
// what lets one classifier work across visually dissimilar sites.
func ClassifyContainer(s *goquery.Selection) *menu.MenuItem {
	name := extractName(s)
	if name == "" {
		return nil
	}

	item := &menu.MenuItem{
		Name:      name,
		Price:     extractContainerPrice(s),
		Available: true,
	}

	if desc := extractDescription(s, name); desc != "" {
		item.Description = desc

		mined := MineText(desc)
		item.Customizations = mined.Customizations
		item.Toppings = mined.Toppings
		item.Allergens = mined.Allergens
		item.BaseIngredients = mined.BaseIngredients
		item.DietaryInfo = mined.Dietary
	}

	if img, ok := s.Find("img").First().Attr("src"); ok {
		item.Image = strings.TrimSpace(img)
	}

	return item
}

// extractName walks the name-selector ladder and accepts the first
// candidate of plausible length that doesn't itself look like a price.
func extractName(s *goquery.Selection) string {
	for _, selector := range nameSelectors {
		var name string
		s.Find(selector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			candidate := helpers.CollapseWhitespace(el.Text())
			if len(candidate) < minCandidateNameLen || len(candidate) > maxCandidateNameLen {
				return true
			}
			if LooksLikePrice(candidate) {
				return true
			}
			name = candidate
			return false
		})
		if name != "" {
			return name
		}
	}
	return ""
}

// extractContainerPrice runs the price-selector ladder scoped to the
// container: explicit price markup first, generic text-bearing tags last,
// the container's own text as the final fallback.
func extractContainerPrice(s *goquery.Selection) string {
	for _, selector := range priceSelectors {
		var price string
		s.Find(selector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			if p := ExtractPriceFromSelection(el); p != "" {
				price = p
				return false
			}
			return true
		})
		if price != "" {
			return price
		}
	}
	return ExtractPrice(s.Text())
}

// extractDescription takes the first paragraph-like child with more than
// five characters that isn't the name again and isn't just a price.
func extractDescription(s *goquery.Selection, name string) string {
	for _, selector := range descriptionSelectors {
		var desc string
		s.Find(selector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			candidate := helpers.CollapseWhitespace(el.Text())
			if len(candidate) <= 5 || candidate == name {
				return true
			}
			if LooksLikePrice(candidate) {
				return true
			}
			desc = candidate
			return false
		})
		if desc != "" {
			return desc
		}
	}
	return ""
}
