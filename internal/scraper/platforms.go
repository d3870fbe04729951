package scraper

// Platform identifiers
const (
	platformUberEats = "ubereats"
	platformDoorDash = "doordash"
	platformGrubHub  = "grubhub"
	platformGeneric  = "generic"
)

// PlatformConfig drives one site-specific adapter: which selector to wait
// for before extracting, how to find the restaurant name, and the ladder of
// item-container selectors tried until one yields results.
type PlatformConfig struct {
	Name               string
	WaitSelector       string
	NameSelectors      []string
	ContainerSelectors []string
}

// platformConfigs holds the per-platform tuned selector sets. The generic
// entry uses loose class-name heuristics and serves unknown platforms.
var platformConfigs = map[string]PlatformConfig{
	platformUberEats: {
		Name:         platformUberEats,
		WaitSelector: "h1",
		NameSelectors: []string{
			"[data-testid='store-title-summary'] h1",
			"h1",
		},
		ContainerSelectors: []string{
			"[data-testid='store-item']",
			"li[data-test*='store-item']",
			"[class*='item-card'], [class*='ItemCard']",
		},
	},
	platformDoorDash: {
		Name:         platformDoorDash,
		WaitSelector: "h1",
		NameSelectors: []string{
			"[data-testid='store-header'] h1",
			"h1",
		},
		ContainerSelectors: []string{
			"[data-anchor-id='MenuItem']",
			"[data-testid*='MenuItem']",
			"[class*='MenuItem'], [class*='menu-item']",
		},
	},
	platformGrubHub: {
		Name:         platformGrubHub,
		WaitSelector: "h1",
		NameSelectors: []string{
			"[data-testid='restaurant-name']",
			"h1",
		},
		ContainerSelectors: []string{
			"[data-testid='restaurant-menu-item']",
			"[class*='menuItem'], [class*='menu-item']",
			"article",
		},
	},
	platformGeneric: {
		Name:         platformGeneric,
		WaitSelector: "body",
		NameSelectors: []string{
			"h1",
			"[class*='restaurant-name'], [class*='store-name'], [class*='RestaurantName']",
			"header h2",
		},
		ContainerSelectors: []string{
			".menu-item, .menuitem, .food-item, .dish",
			"[class*='menu-item'], [class*='menuItem'], [class*='MenuItem']",
			"[class*='food'], [class*='dish'], [class*='product-card']",
			"[itemtype*='MenuItem']",
		},
	},
}

// PlatformFor returns the adapter configuration for a platform name,
// falling back to the generic adapter.
func PlatformFor(name string) PlatformConfig {
	if cfg, ok := platformConfigs[name]; ok {
		return cfg
	}
	return platformConfigs[platformGeneric]
}
