package menu

import (
	"fmt"
	"strings"
)

// BuildAIContext renders a menu as a numbered plain-text list for downstream
// prompt consumption. Deterministic over its inputs; callers must regenerate
// it whenever the item list changes.
func BuildAIContext(restaurantName string, items []MenuItem) string {
	var b strings.Builder

	b.WriteString("RESTAURANT: ")
	b.WriteString(restaurantName)
	b.WriteString("\nMENU:\n")

	for i, item := range items {
		if item.Price != "" {
			fmt.Fprintf(&b, "%d. %s - %s\n", i+1, item.Name, item.Price)
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		}
		if item.Description != "" {
			fmt.Fprintf(&b, "   %s\n", item.Description)
		}
	}

	return b.String()
}

// NewDocument assembles an immutable MenuDocument for one scrape result,
// generating the AI context from the final item list.
func NewDocument(restaurantName, source string, items []MenuItem, global []Customization, method ScrapingMethod, debug *ScrapeDebugInfo) *MenuDocument {
	if restaurantName == "" {
		restaurantName = "Restaurant"
	}
	if items == nil {
		items = []MenuItem{}
	}
	return &MenuDocument{
		RestaurantName:       restaurantName,
		Menu:                 items,
		GlobalCustomizations: global,
		AIContext:            BuildAIContext(restaurantName, items),
		Source:               source,
		LastUpdated:          nowFunc(),
		ScrapingMethod:       method,
		DebugInfo:            debug,
	}
}
