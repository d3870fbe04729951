package scraper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Accepted price range. Values outside it are treated as phone numbers,
// years, quantities or other regex noise and rejected.
const (
	MinPrice = 0.50
	MaxPrice = 999.99
)

// ExtractPrice scans free text for a currency-formatted monetary value and
// returns it normalized as "<symbol><amount with 2 decimals>". The empty
// string means no acceptable price was found.
//
// First accepted match wins. When a blob carries several prices
// ("was $20, now $15") the earlier one is returned; this is a known
// limitation kept for compatibility with existing consumers.
func ExtractPrice(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	for _, p := range pricePatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			value, err := parsePriceValue(m[1])
			if err != nil {
				continue
			}
			if value < MinPrice || value > MaxPrice {
				continue
			}
			return fmt.Sprintf("%s%.2f", p.symbol, value)
		}
	}

	return ""
}

// ExtractPriceFromSelection pulls a price out of a DOM element, trying its
// text content first, then the data-price and aria-label attributes.
func ExtractPriceFromSelection(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}

	if price := ExtractPrice(s.Text()); price != "" {
		return price
	}
	if attr, ok := s.Attr("data-price"); ok {
		if price := ExtractPrice(attr); price != "" {
			return price
		}
		// data-price is often a bare number without decimals
		if v, err := strconv.ParseFloat(strings.TrimSpace(attr), 64); err == nil && v >= MinPrice && v <= MaxPrice {
			return fmt.Sprintf("$%.2f", v)
		}
	}
	if attr, ok := s.Attr("aria-label"); ok {
		if price := ExtractPrice(attr); price != "" {
			return price
		}
	}

	return ""
}

// LooksLikePrice reports whether text is nothing but a price token,
// used to reject price-shaped candidates where a name is expected.
func LooksLikePrice(text string) bool {
	return priceOnly.MatchString(text)
}

// parsePriceValue parses a captured numeric token, tolerating both
// "1,299.99" and the European "8,50" style.
func parsePriceValue(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)

	hasDot := strings.Contains(raw, ".")
	hasComma := strings.Contains(raw, ",")

	switch {
	case hasDot && hasComma:
		// The later separator is the decimal one
		if strings.LastIndex(raw, ",") > strings.LastIndex(raw, ".") {
			raw = strings.ReplaceAll(raw, ".", "")
			raw = strings.Replace(raw, ",", ".", 1)
		} else {
			raw = strings.ReplaceAll(raw, ",", "")
		}
	case hasComma:
		// Single comma followed by exactly two digits is a decimal comma
		idx := strings.LastIndex(raw, ",")
		if strings.Count(raw, ",") == 1 && len(raw)-idx-1 == 2 {
			raw = strings.Replace(raw, ",", ".", 1)
		} else {
			raw = strings.ReplaceAll(raw, ",", "")
		}
	}

	return strconv.ParseFloat(raw, 64)
}
