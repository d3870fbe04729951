package scraper

import (
	"regexp"

	"github.com/IbrahimAyad/menuscraper/internal/menu"
)

// The extraction heuristics live here as data, not logic, so they can be
// extended per locale or platform without touching the pipeline code.

// pricePattern couples a compiled price regex with the currency symbol the
// formatted output should carry. The first capture group must hold the
// numeric part.
type pricePattern struct {
	re     *regexp.Regexp
	symbol string
}

// Word boundaries keep a partial match out of longer digit runs: without
// them "$1500.00" would yield an in-range "$150".
var pricePatterns = []pricePattern{
	{regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)\b`), "$"},
	{regexp.MustCompile(`\b(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)\s*\$`), "$"},
	{regexp.MustCompile(`€\s*(\d{1,3}(?:\.\d{3})*(?:[.,]\d{1,2})?)\b`), "€"},
	{regexp.MustCompile(`£\s*(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)\b`), "£"},
	{regexp.MustCompile(`\b(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)\s*(?:USD|usd)\b`), "$"},
	{regexp.MustCompile(`(?i)(?:price|cost)\s*:?\s*\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)\b`), "$"},
	{regexp.MustCompile(`\b(\d{1,3}(?:,\d{3})*\.\d{2})\b`), "$"},
}

// priceOnly matches text that is nothing but a price, used to reject
// price-looking candidates where a name is expected.
var priceOnly = regexp.MustCompile(`(?i)^\s*(?:price|cost)?\s*:?\s*[$€£]?\s*\d{1,3}(?:,\d{3})*(?:[.,]\d{1,2})?\s*[$€£]?\s*(?:usd)?\s*$`)

// Name extraction ladder: specific heading-like selectors first, generic
// text containers last. The classifier accepts the first non-empty hit.
var nameSelectors = []string{
	"h1, h2, h3, h4, h5",
	"[class*='title'], [class*='Title'], [class*='name'], [class*='Name']",
	"[data-testid*='title'], [data-testid*='name']",
	"strong, b",
	"span, div",
}

// Price extraction ladder inside one container: explicit price markup first,
// generic text-bearing tags as a last resort.
var priceSelectors = []string{
	"[class*='price'], [class*='Price'], [class*='cost'], [class*='amount'], [data-price]",
	"[data-testid*='price']",
	"span, div, p, strong, b",
}

// Description candidates: paragraph-like children.
var descriptionSelectors = []string{
	"p",
	"[class*='desc'], [class*='Desc'], [class*='detail'], [class*='Detail']",
	"[class*='subtitle'], [class*='summary']",
}

// Customization mining pattern families. False negatives are acceptable;
// false positives are bounded by the two-option minimum enforced in the
// miner.
var (
	substitutionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)substitute\s+(?:\w+\s+)?(?:with|for)\s+([^.;\n]+)`),
		regexp.MustCompile(`(?i)choose\s+(?:from|between)\s+([^.;\n]+)`),
		regexp.MustCompile(`(?i)available\s+options?\s*:\s*([^.;\n]+)`),
		regexp.MustCompile(`(?i)your\s+choice\s+of\s+([^.;\n]+)`),
	}

	toppingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:additional|extra|add)\s+toppings?\s*:?\s*([^.;\n]+)`),
		regexp.MustCompile(`(?i)add[\s-]?ons?\s*:\s*([^.;\n]+)`),
		regexp.MustCompile(`(?i)toppings?\s+available\s*:?\s*([^.;\n]+)`),
	}

	saucePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)sauces?\s*:\s*([^.;\n]+)`),
		regexp.MustCompile(`(?i)dressings?\s*:\s*([^.;\n]+)`),
		regexp.MustCompile(`(?i)served\s+with\s+(?:your\s+)?choice\s+of\s+sauces?\s*:?\s*([^.;\n]+)`),
	}

	// optionSplitter breaks an option list on commas, pipes, "and", "or".
	optionSplitter = regexp.MustCompile(`\s*(?:,|\||/|\band\b|\bor\b)\s*`)
)

var allergenKeywords = []string{
	"gluten", "dairy", "nuts", "peanuts", "shellfish", "soy", "eggs",
}

var baseIngredientKeywords = []string{
	"lettuce", "tomato", "onion", "pickles", "cheese", "bacon",
	"mushroom", "avocado", "mayo", "mustard", "ketchup", "rice",
	"beans", "cilantro", "jalapeno",
}

// Topping category keyword lists
var toppingCategoryKeywords = map[menu.ToppingCategory][]string{
	menu.ToppingMeat:      {"bacon", "ham", "chicken", "beef", "sausage", "pepperoni", "steak", "pork", "turkey"},
	menu.ToppingCheese:    {"cheese", "cheddar", "mozzarella", "parmesan", "feta", "swiss", "provolone"},
	menu.ToppingVegetable: {"lettuce", "tomato", "onion", "pepper", "mushroom", "olive", "spinach", "jalapeno", "avocado", "pickle"},
	menu.ToppingSauce:     {"sauce", "mayo", "mustard", "ketchup", "ranch", "bbq", "aioli", "dressing"},
}

// Dietary flag keyword lists
var dietaryKeywords = map[string][]string{
	"vegetarian": {"vegetarian", "veggie"},
	"vegan":      {"vegan", "plant-based", "plant based"},
	"glutenfree": {"gluten-free", "gluten free", "gf"},
	"halal":      {"halal"},
	"kosher":     {"kosher"},
	"spicy":      {"spicy", "hot", "fiery", "habanero", "ghost pepper"},
}

// spiceLevelPattern captures an explicit numeric spice level ("spice level 3")
var spiceLevelPattern = regexp.MustCompile(`(?i)spice\s+level\s*:?\s*(\d)`)

// Known delivery-platform domains that always require browser automation.
// Keys are bare hostnames (www stripped).
var platformDomains = map[string]string{
	"ubereats.com":  platformUberEats,
	"doordash.com":  platformDoorDash,
	"grubhub.com":   platformGrubHub,
	"seamless.com":  platformGrubHub,
	"postmates.com": platformUberEats,
}

// Hosts of ordering SaaS products that render everything client side.
var dynamicHostHints = []string{
	"toasttab.com", "square.site", "chownow.com", "menufy.com",
	"clover.com", "olo.com", "popmenu.com",
}

// URL path fragments that suggest a JS-driven ordering flow.
var dynamicPathHints = []string{
	"/order", "/online-ordering", "/menu#", "/#/",
}

// Markers of client-side rendered pages found in static HTML; when the
// static fetch returns a shell containing these and no items, escalation
// to a real browser is the expected path.
var spaFingerprints = []string{
	"__NEXT_DATA__", "id=\"root\"", "id=\"app\"", "ng-app", "data-reactroot",
	"window.__INITIAL_STATE__", "webpackJsonp",
}

// Selector strategy families for the universal browser pass, cheapest and
// most precise first.
var universalStrategies = []selectorStrategy{
	{
		name: "menu-class-patterns",
		selectors: []string{
			"[class*='menu-item'], [class*='menuitem'], [class*='MenuItem']",
			"[class*='food-item'], [class*='dish'], [class*='product-card']",
			"[data-testid*='menu-item'], [data-testid*='item']",
		},
	},
	{
		name: "list-structures",
		selectors: []string{
			"ul li, ol li",
			"table tr",
		},
	},
	{
		name: "interactive-elements",
		selectors: []string{
			"button[class*='item'], a[class*='item']",
			"[role='button']",
		},
	},
}

// Generic food vocabulary used by the text miner to decide whether a bare
// line of text plausibly names a dish.
var foodWords = []string{
	"burger", "pizza", "pasta", "salad", "sandwich", "wrap", "taco",
	"burrito", "soup", "steak", "chicken", "fish", "shrimp", "rice",
	"noodle", "curry", "roll", "bowl", "plate", "fries", "wings",
	"cake", "pie", "combo", "special", "breakfast", "lunch", "dinner",
	"appetizer", "dessert", "smoothie", "shake", "coffee", "tea",
}
