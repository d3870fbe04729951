package browser

import (
	"testing"

	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/stretchr/testify/assert"

	"github.com/IbrahimAyad/menuscraper/config"
)

func pausedRequest(url string, rt network.ResourceType) *fetch.EventRequestPaused {
	return &fetch.EventRequestPaused{
		Request:      &network.Request{URL: url},
		ResourceType: rt,
	}
}

func TestShouldBlock(t *testing.T) {
	tests := []struct {
		name string
		ev   *fetch.EventRequestPaused
		want bool
	}{
		{"image", pausedRequest("https://cdn.example.com/hero.jpg", network.ResourceTypeImage), true},
		{"font", pausedRequest("https://fonts.example.com/a.woff2", network.ResourceTypeFont), true},
		{"stylesheet", pausedRequest("https://cdn.example.com/site.css", network.ResourceTypeStylesheet), true},
		{"media", pausedRequest("https://cdn.example.com/promo.mp4", network.ResourceTypeMedia), true},
		{"document", pausedRequest("https://example.com/menu", network.ResourceTypeDocument), false},
		{"xhr", pausedRequest("https://example.com/api/menu", network.ResourceTypeXHR), false},
		{"analytics script", pausedRequest("https://www.google-analytics.com/analytics.js", network.ResourceTypeScript), true},
		{"tracking pixel host", pausedRequest("https://connect.facebook.net/en_US/fbevents.js", network.ResourceTypeScript), true},
		{"regular script", pausedRequest("https://example.com/app.js", network.ResourceTypeScript), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldBlock(tt.ev))
		})
	}
}

func TestNewDriverDoesNotLaunchBrowser(t *testing.T) {
	d := NewDriver(config.Config{MaxConcurrentPages: 2})
	assert.Nil(t, d.browserCtx)
	assert.Equal(t, 2, cap(d.pages))
	// Safe even though the browser never started
	d.Shutdown()
}
