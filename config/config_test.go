package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "menuscrape:requests", cfg.RedisRequestList)
	assert.Equal(t, "menuscrape:results", cfg.RedisStream)
	assert.Equal(t, 1, cfg.RedisStreamCount)
	assert.Equal(t, 500, cfg.RedisStreamMaxLength)
	assert.Equal(t, "localhost:11211", cfg.MemcacheAddr)
	assert.Equal(t, 30*time.Second, cfg.HostBlockTime)
	assert.Equal(t, time.Hour, cfg.ResultCacheTTL)
	assert.Equal(t, 60*time.Second, cfg.ScrapeBudget)
	assert.Equal(t, 20*time.Second, cfg.NavigationTimeout)
	assert.Equal(t, 10*time.Second, cfg.SelectorWaitTimeout)
	assert.Equal(t, 100, cfg.MaxContainers)
	assert.Equal(t, 50, cfg.MaxTextMinedItems)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 4, cfg.MaxConcurrentPages)
	assert.False(t, cfg.CaptureScreenshots)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_STREAM_COUNT", "4")
	t.Setenv("HOST_BLOCK_SECONDS", "90")
	t.Setenv("SCRAPE_BUDGET_SECONDS", "120")
	t.Setenv("MAX_CONTAINERS_PER_PAGE", "40")
	t.Setenv("BROWSER_HEADLESS", "false")
	t.Setenv("CAPTURE_SCREENSHOTS", "true")
	t.Setenv("SCREENSHOT_DIR", "/tmp/shots")
	t.Setenv("MENUSCRAPER_ENVIRONMENT", "production")

	cfg := LoadConfig()

	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 4, cfg.RedisStreamCount)
	assert.Equal(t, 90*time.Second, cfg.HostBlockTime)
	assert.Equal(t, 120*time.Second, cfg.ScrapeBudget)
	assert.Equal(t, 40, cfg.MaxContainers)
	assert.False(t, cfg.Headless)
	assert.True(t, cfg.CaptureScreenshots)
	assert.Equal(t, "/tmp/shots", cfg.ScreenshotDir)
	assert.Equal(t, "production", cfg.Environment)
}

func TestValidate(t *testing.T) {
	valid := LoadConfig()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty redis addr", func(c *Config) { c.RedisAddr = "" }},
		{"zero stream count", func(c *Config) { c.RedisStreamCount = 0 }},
		{"zero scrape budget", func(c *Config) { c.ScrapeBudget = 0 }},
		{"zero navigation timeout", func(c *Config) { c.NavigationTimeout = 0 }},
		{"zero concurrent pages", func(c *Config) { c.MaxConcurrentPages = 0 }},
		{"zero container cap", func(c *Config) { c.MaxContainers = 0 }},
		{"screenshots without dir", func(c *Config) {
			c.CaptureScreenshots = true
			c.ScreenshotDir = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
