package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containerFrom(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	sel := doc.Find("body").Children().First()
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestClassifyContainerFullItem(t *testing.T) {
	s := containerFrom(t, `<div class="menu-item">
		<h3>Veggie Burger</h3>
		<p>Fresh veggie patty with lettuce and tomato</p>
		<span class="price">$9.99</span>
	</div>`)

	item := ClassifyContainer(s)
	require.NotNil(t, item)
	assert.Equal(t, "Veggie Burger", item.Name)
	assert.Equal(t, "$9.99", item.Price)
	assert.Equal(t, "Fresh veggie patty with lettuce and tomato", item.Description)
	assert.True(t, item.Available)
	assert.Contains(t, item.BaseIngredients, "lettuce")
}

func TestClassifyContainerWithoutPrice(t *testing.T) {
	s := containerFrom(t, `<div class="menu-item">
		<h3>Market Salad</h3>
		<p>Whatever is fresh today</p>
	</div>`)

	item := ClassifyContainer(s)
	require.NotNil(t, item)
	assert.Equal(t, "Market Salad", item.Name)
	assert.Empty(t, item.Price)
}

func TestClassifyContainerRejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"empty container", `<div class="menu-item"></div>`},
		{"whitespace name", `<div class="menu-item"><h3>   </h3></div>`},
		{"price as name", `<div class="menu-item"><h3>$9.99</h3></div>`},
		{"too short", `<div class="menu-item"><h3>ab</h3></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ClassifyContainer(containerFrom(t, tt.html)))
		})
	}
}

func TestClassifyContainerNameSelectorLadder(t *testing.T) {
	// No heading: falls through to class-based then generic selectors
	s := containerFrom(t, `<div class="item-card">
		<div class="item-title">Pad Thai</div>
		<div class="item-price">$11.50</div>
	</div>`)

	item := ClassifyContainer(s)
	require.NotNil(t, item)
	assert.Equal(t, "Pad Thai", item.Name)
	assert.Equal(t, "$11.50", item.Price)
}

func TestClassifyContainerSkipsPriceLookingNameCandidates(t *testing.T) {
	// The first heading is a price; the ladder must move past it
	s := containerFrom(t, `<div class="menu-item">
		<h4>$12.00</h4>
		<h4>Lamb Gyro</h4>
	</div>`)

	item := ClassifyContainer(s)
	require.NotNil(t, item)
	assert.Equal(t, "Lamb Gyro", item.Name)
}

func TestClassifyContainerMinesDescription(t *testing.T) {
	s := containerFrom(t, `<div class="menu-item">
		<h3>Wing Basket</h3>
		<p>Ten wings. Sauces: BBQ, Ranch, Buffalo. Contains dairy.</p>
		<span class="price">$13.99</span>
	</div>`)

	item := ClassifyContainer(s)
	require.NotNil(t, item)
	require.Len(t, item.Customizations, 1)
	assert.Equal(t, []string{"BBQ", "Ranch", "Buffalo"}, item.Customizations[0].Options)
	assert.Contains(t, item.Allergens, "dairy")
}
