package scraper

import (
	"strconv"
	"strings"

	"github.com/IbrahimAyad/menuscraper/internal/menu"
)

// MinedDetails is everything the rule-based miner can pull out of free text
// for a single item or a whole page.
type MinedDetails struct {
	Customizations  []menu.Customization
	Toppings        []menu.Topping
	Allergens       []string
	BaseIngredients []string
	Dietary         *menu.DietaryInfo
}

// MineText runs the independent pattern families over arbitrary free text.
// Deliberately rule-based: missed customizations are fine, but a
// substitution or sauce group is only emitted with at least two distinct
// options so stray phrase matches don't fabricate choices.
func MineText(text string) MinedDetails {
	var d MinedDetails
	if strings.TrimSpace(text) == "" {
		return d
	}

	d.Customizations = append(d.Customizations, mineSubstitutions(text)...)
	d.Customizations = append(d.Customizations, mineSauces(text)...)
	d.Toppings = mineToppings(text)
	d.Allergens = mineKeywords(text, allergenKeywords)
	d.BaseIngredients = mineKeywords(text, baseIngredientKeywords)
	d.Dietary = mineDietary(text)

	return d
}

func mineSubstitutions(text string) []menu.Customization {
	var out []menu.Customization
	for _, re := range substitutionPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			options := splitOptions(m[1])
			if len(options) < 2 {
				continue
			}
			out = append(out, menu.Customization{
				Name:    "Substitution Options",
				Type:    menu.CustomizationSubstitute,
				Options: options,
			})
		}
	}
	return out
}

func mineSauces(text string) []menu.Customization {
	var out []menu.Customization
	for _, re := range saucePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			options := splitOptions(m[1])
			if len(options) < 2 {
				continue
			}
			out = append(out, menu.Customization{
				Name:    "Sauce Options",
				Type:    menu.CustomizationSauce,
				Options: options,
			})
		}
	}
	return out
}

func mineToppings(text string) []menu.Topping {
	var out []menu.Topping
	seen := map[string]bool{}

	for _, re := range toppingPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			for _, raw := range splitOptions(m[1]) {
				name, price := stripEmbeddedPrice(raw)
				if name == "" {
					continue
				}
				key := strings.ToLower(name)
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, menu.Topping{
					Name:      name,
					Price:     price,
					Category:  categorizeTopping(name),
					Removable: true,
				})
			}
		}
	}
	return out
}

// stripEmbeddedPrice peels a trailing or embedded price token off a topping
// name ("extra cheese $1.50" -> "extra cheese", "$1.50").
func stripEmbeddedPrice(raw string) (string, string) {
	price := ExtractPrice(raw)
	name := raw
	if price != "" {
		for _, p := range pricePatterns {
			name = p.re.ReplaceAllString(name, "")
		}
	}
	name = strings.Trim(strings.TrimSpace(name), "-+() ")
	if name == "" || LooksLikePrice(name) {
		return "", ""
	}
	return name, price
}

func categorizeTopping(name string) menu.ToppingCategory {
	lower := strings.ToLower(name)
	// Order matters: "cheese sauce" should land in sauce before cheese
	for _, cat := range []menu.ToppingCategory{menu.ToppingSauce, menu.ToppingMeat, menu.ToppingCheese, menu.ToppingVegetable} {
		for _, kw := range toppingCategoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return menu.ToppingOther
}

func mineKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func mineDietary(text string) *menu.DietaryInfo {
	lower := strings.ToLower(text)

	has := func(flag string) bool {
		for _, kw := range dietaryKeywords[flag] {
			// Short tokens like "gf" or "hot" need word boundaries to avoid
			// matching inside unrelated words
			if len(kw) <= 3 {
				for _, field := range strings.FieldsFunc(lower, func(r rune) bool {
					return !('a' <= r && r <= 'z')
				}) {
					if field == kw {
						return true
					}
				}
				continue
			}
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}

	info := menu.DietaryInfo{
		Vegetarian: has("vegetarian"),
		Vegan:      has("vegan"),
		GlutenFree: has("glutenfree"),
		Halal:      has("halal"),
		Kosher:     has("kosher"),
		Spicy:      has("spicy"),
	}

	if m := spiceLevelPattern.FindStringSubmatch(text); m != nil {
		if lvl, err := strconv.Atoi(m[1]); err == nil {
			info.SpiceLevel = lvl
			info.Spicy = true
		}
	}

	// Vegan implies vegetarian
	if info.Vegan {
		info.Vegetarian = true
	}

	if info == (menu.DietaryInfo{}) {
		return nil
	}
	return &info
}

// splitOptions breaks a captured option list into distinct trimmed entries.
func splitOptions(captured string) []string {
	var out []string
	seen := map[string]bool{}
	for _, part := range optionSplitter.Split(captured, -1) {
		part = strings.Trim(strings.TrimSpace(part), ".:;")
		if part == "" || len(part) > 60 {
			continue
		}
		key := strings.ToLower(part)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, part)
	}
	return out
}
