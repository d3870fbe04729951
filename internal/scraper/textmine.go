package scraper

import (
	"strings"
	"unicode"

	"github.com/IbrahimAyad/menuscraper/helpers"
	"github.com/IbrahimAyad/menuscraper/internal/menu"
)

// extractFromText is the last-resort pass: DOM structure is abandoned and
// the page's flattened text is treated as a sequence of lines, each matched
// against "looks like a food name, optionally followed by a price"
// heuristics. Recall over precision; only reached when every structural
// pass produced zero items.
func extractFromText(text, restaurantName string, maxItems int) *Extraction {
	ext := &Extraction{RestaurantName: restaurantName}

	lines := strings.Split(text, "\n")
	seen := map[string]bool{}

	for i := 0; i < len(lines) && len(ext.Items) < maxItems; i++ {
		line := helpers.CollapseWhitespace(lines[i])

		name, price, ok := parseFoodLine(line)
		if !ok {
			continue
		}

		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		item := menu.MenuItem{
			Name:      name,
			Price:     price,
			Available: true,
		}

		// The following line is a candidate description unless it looks
		// like a price line itself
		if i+1 < len(lines) {
			next := helpers.CollapseWhitespace(lines[i+1])
			if len(next) > 5 && !LooksLikePrice(next) {
				if _, _, isFood := parseFoodLine(next); !isFood {
					item.Description = next
				}
			}
		}

		ext.Items = append(ext.Items, item)
	}

	return ext
}

// parseFoodLine decides whether one line of flattened text plausibly names
// a dish. A line qualifies when it carries an in-range price, or when it is
// short, mostly letters and mentions a known food word.
func parseFoodLine(line string) (name, price string, ok bool) {
	if len(line) < minCandidateNameLen || len(line) > 100 {
		return "", "", false
	}
	if LooksLikePrice(line) {
		return "", "", false
	}

	price = ExtractPrice(line)

	name = line
	if price != "" {
		for _, p := range pricePatterns {
			name = p.re.ReplaceAllString(name, "")
		}
		name = strings.Trim(strings.TrimSpace(name), "-–.…: ")
	}

	if len(name) < minCandidateNameLen || len(name) > 60 {
		return "", "", false
	}
	if !mostlyLetters(name) {
		return "", "", false
	}
	if price == "" && !mentionsFood(name) {
		return "", "", false
	}

	return name, price, true
}

func mostlyLetters(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters*2 >= len(s)
}

func mentionsFood(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range foodWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
