package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFromTextPricedLines(t *testing.T) {
	text := "Welcome to Tony's\n" +
		"Margherita Pizza $14.99\n" +
		"San Marzano tomatoes, fresh mozzarella, basil\n" +
		"Caesar Salad $8.50\n" +
		"$8.50\n" +
		"Copyright 2024\n"

	ext := extractFromText(text, "Tony's", 50)
	require.Len(t, ext.Items, 2)

	assert.Equal(t, "Margherita Pizza", ext.Items[0].Name)
	assert.Equal(t, "$14.99", ext.Items[0].Price)
	assert.Equal(t, "San Marzano tomatoes, fresh mozzarella, basil", ext.Items[0].Description)

	assert.Equal(t, "Caesar Salad", ext.Items[1].Name)
	assert.Equal(t, "$8.50", ext.Items[1].Price)
	// The bare price line after it must not become a description
	assert.Empty(t, ext.Items[1].Description)
}

func TestExtractFromTextFoodWordWithoutPrice(t *testing.T) {
	ext := extractFromText("Chicken Noodle Soup\nOur grandmother's recipe", "", 50)
	require.Len(t, ext.Items, 1)
	assert.Equal(t, "Chicken Noodle Soup", ext.Items[0].Name)
	assert.Empty(t, ext.Items[0].Price)
	assert.Equal(t, "Our grandmother's recipe", ext.Items[0].Description)
}

func TestExtractFromTextIgnoresNonFoodLines(t *testing.T) {
	text := "About Us\nContact\nOpening Hours\nFollow us on social media\n"
	ext := extractFromText(text, "Somewhere", 50)
	assert.Empty(t, ext.Items)
	assert.Equal(t, "Somewhere", ext.RestaurantName)
}

func TestExtractFromTextDeduplicatesAndCaps(t *testing.T) {
	text := "House Burger $10.00\nHouse Burger $10.00\nVeggie Wrap $9.00\nFish Tacos $12.00\n"

	ext := extractFromText(text, "", 2)
	require.Len(t, ext.Items, 2)
	assert.Equal(t, "House Burger", ext.Items[0].Name)
	assert.Equal(t, "Veggie Wrap", ext.Items[1].Name)
}

func TestExtractFromTextNextFoodLineIsNotADescription(t *testing.T) {
	text := "BBQ Ribs $18.00\nPulled Pork Sandwich $11.00\n"
	ext := extractFromText(text, "", 50)
	require.Len(t, ext.Items, 2)
	assert.Empty(t, ext.Items[0].Description)
}

func TestParseFoodLine(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantOK   bool
	}{
		{"Margherita Pizza $14.99", "Margherita Pizza", true},
		{"Chicken Wings", "Chicken Wings", true},
		{"$14.99", "", false},
		{"Copyright 2024 All Rights Reserved", "", false},
		{"ab", "", false},
		{"404 - - - 12345 !!!", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, _, ok := parseFoodLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
