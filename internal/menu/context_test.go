package menu

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAIContext(t *testing.T) {
	items := []MenuItem{
		{Name: "Veggie Burger", Price: "$9.99", Description: "Fresh veggie patty"},
		{Name: "Market Salad"},
	}

	got := BuildAIContext("Joe's Diner", items)
	want := "RESTAURANT: Joe's Diner\nMENU:\n" +
		"1. Veggie Burger - $9.99\n" +
		"   Fresh veggie patty\n" +
		"2. Market Salad\n"
	assert.Equal(t, want, got)
}

func TestBuildAIContextEmptyMenu(t *testing.T) {
	got := BuildAIContext("Joe's Diner", nil)
	assert.Equal(t, "RESTAURANT: Joe's Diner\nMENU:\n", got)
}

func TestNewDocument(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = time.Now }()

	items := []MenuItem{{Name: "Pad Thai", Price: "$11.50", Available: true}}
	debug := &ScrapeDebugInfo{Strategies: []string{"static-scraping"}, ElementsFound: 1}

	doc := NewDocument("Thai Garden", "https://thaigarden.example.com/menu", items, nil, MethodStatic, debug)

	assert.Equal(t, "Thai Garden", doc.RestaurantName)
	assert.Equal(t, "https://thaigarden.example.com/menu", doc.Source)
	assert.Equal(t, fixed, doc.LastUpdated)
	assert.Equal(t, MethodStatic, doc.ScrapingMethod)
	assert.Contains(t, doc.AIContext, "1. Pad Thai - $11.50")
	assert.Same(t, debug, doc.DebugInfo)
}

func TestNewDocumentDefaults(t *testing.T) {
	doc := NewDocument("", "https://example.com", nil, nil, MethodIntelligent, nil)

	assert.Equal(t, "Restaurant", doc.RestaurantName)
	require.NotNil(t, doc.Menu)
	assert.Empty(t, doc.Menu)
}

func TestMenuDocumentJSONShape(t *testing.T) {
	doc := NewDocument("Joe's Diner", "https://example.com", []MenuItem{
		{Name: "Wings", Price: "$8.00", Available: true},
	}, nil, MethodBrowser, nil)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Joe's Diner", decoded["restaurantName"])
	assert.Equal(t, "browser", decoded["scrapingMethod"])
	assert.Contains(t, decoded, "aiContext")
	assert.Contains(t, decoded, "menu")
	assert.Contains(t, decoded, "lastUpdated")
	// Optional fields stay off the wire when unset
	assert.NotContains(t, decoded, "cuisine")
	assert.NotContains(t, decoded, "debugInfo")
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Ok"))
	assert.True(t, ValidName("Veggie Burger"))
	assert.False(t, ValidName("X"))
	assert.False(t, ValidName(""))
}
