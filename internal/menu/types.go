package menu

import "time"

// ScrapingMethod identifies which extraction stage produced a document
type ScrapingMethod string

const (
	MethodStatic      ScrapingMethod = "static"
	MethodBrowser     ScrapingMethod = "browser"
	MethodUniversal   ScrapingMethod = "universal"
	MethodIntelligent ScrapingMethod = "intelligent"
)

// CustomizationType tags the kind of choice axis a customization represents
type CustomizationType string

const (
	CustomizationSubstitute CustomizationType = "substitute"
	CustomizationAdd        CustomizationType = "add"
	CustomizationRemove     CustomizationType = "remove"
	CustomizationSide       CustomizationType = "side"
	CustomizationSauce      CustomizationType = "sauce"
	CustomizationSize       CustomizationType = "size"
	CustomizationCooking    CustomizationType = "cooking"
)

// ToppingCategory classifies a topping by its main ingredient family
type ToppingCategory string

const (
	ToppingMeat      ToppingCategory = "meat"
	ToppingCheese    ToppingCategory = "cheese"
	ToppingVegetable ToppingCategory = "vegetable"
	ToppingSauce     ToppingCategory = "sauce"
	ToppingOther     ToppingCategory = "other"
)

// Customization represents one structured choice axis for an item
// (e.g. "Sauce Options": BBQ, Ranch, Buffalo)
type Customization struct {
	Name     string            `json:"name"`
	Type     CustomizationType `json:"type"`
	Options  []string          `json:"options"`
	Price    string            `json:"price,omitempty"`
	Category string            `json:"category,omitempty"`
}

// Topping represents a single addable topping
type Topping struct {
	Name      string          `json:"name"`
	Price     string          `json:"price,omitempty"`
	Category  ToppingCategory `json:"category"`
	IsDefault bool            `json:"isDefault"`
	Removable bool            `json:"removable"`
}

// DietaryInfo holds dietary flags detected for an item
type DietaryInfo struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"glutenFree"`
	Halal      bool `json:"halal"`
	Kosher     bool `json:"kosher"`
	Spicy      bool `json:"spicy"`
	SpiceLevel int  `json:"spiceLevel,omitempty"`
}

// MenuItem represents a single extracted menu entry
type MenuItem struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           string          `json:"price,omitempty"`
	Category        string          `json:"category,omitempty"`
	Image           string          `json:"image,omitempty"`
	Allergens       []string        `json:"allergens,omitempty"`
	Customizations  []Customization `json:"customizations,omitempty"`
	Toppings        []Topping       `json:"toppings,omitempty"`
	BaseIngredients []string        `json:"baseIngredients,omitempty"`
	DietaryInfo     *DietaryInfo    `json:"dietaryInfo,omitempty"`
	Available       bool            `json:"available"`
	Popular         bool            `json:"popular,omitempty"`
}

// ScrapeDebugInfo records what the pipeline tried; diagnostic only,
// never required for correctness
type ScrapeDebugInfo struct {
	ScreenshotPath string   `json:"screenshotPath,omitempty"`
	ElementsFound  int      `json:"elementsFound"`
	RetryAttempts  int      `json:"retryAttempts"`
	Strategies     []string `json:"strategies"`
}

// MenuDocument is the immutable result of one scrape invocation
type MenuDocument struct {
	RestaurantName       string           `json:"restaurantName"`
	Cuisine              string           `json:"cuisine,omitempty"`
	Location             string           `json:"location,omitempty"`
	Phone                string           `json:"phone,omitempty"`
	Hours                string           `json:"hours,omitempty"`
	Website              string           `json:"website,omitempty"`
	Menu                 []MenuItem       `json:"menu"`
	GlobalCustomizations []Customization  `json:"globalCustomizations,omitempty"`
	SpecialOffers        []string         `json:"specialOffers,omitempty"`
	AIContext            string           `json:"aiContext"`
	Source               string           `json:"source"`
	LastUpdated          time.Time        `json:"lastUpdated"`
	ScrapingMethod       ScrapingMethod   `json:"scrapingMethod"`
	DebugInfo            *ScrapeDebugInfo `json:"debugInfo,omitempty"`
}

// Name length bounds for a valid menu item
const (
	MinNameLength = 2
	MaxNameLength = 200
)

// ValidName reports whether a candidate item name satisfies the length invariant
func ValidName(name string) bool {
	return len(name) >= MinNameLength && len(name) <= MaxNameLength
}
