package config

import (
	"os"
	"strconv"
	"time"

	"github.com/IbrahimAyad/menuscraper/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Redis configuration
	RedisAddr            string
	RedisDB              int
	RedisRequestList     string
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Memcache configuration
	MemcacheAddr string

	// Scraper configuration
	HostBlockTime       time.Duration
	ResultCacheTTL      time.Duration
	ScrapeBudget        time.Duration
	NavigationTimeout   time.Duration
	SelectorWaitTimeout time.Duration
	MaxContainers       int
	MaxTextMinedItems   int

	// Browser configuration
	Headless           bool
	MaxConcurrentPages int
	ScreenshotDir      string
	CaptureScreenshots bool

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	blockTime, _ := strconv.Atoi(getEnv("HOST_BLOCK_SECONDS", "30"))
	resultTTL, _ := strconv.Atoi(getEnv("RESULT_CACHE_SECONDS", "3600"))
	budget, _ := strconv.Atoi(getEnv("SCRAPE_BUDGET_SECONDS", "60"))
	navTimeout, _ := strconv.Atoi(getEnv("NAVIGATION_TIMEOUT_SECONDS", "20"))
	waitTimeout, _ := strconv.Atoi(getEnv("SELECTOR_WAIT_TIMEOUT_SECONDS", "10"))
	maxContainers, _ := strconv.Atoi(getEnv("MAX_CONTAINERS_PER_PAGE", "100"))
	maxTextMined, _ := strconv.Atoi(getEnv("MAX_TEXT_MINED_ITEMS", "50"))
	maxPages, _ := strconv.Atoi(getEnv("MAX_CONCURRENT_PAGES", "4"))

	return Config{
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisRequestList:     getEnv("REDIS_REQUEST_LIST", "menuscrape:requests"),
		RedisStream:          getEnv("REDIS_STREAM", "menuscrape:results"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLen,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		HostBlockTime:        time.Duration(blockTime) * time.Second,
		ResultCacheTTL:       time.Duration(resultTTL) * time.Second,
		ScrapeBudget:         time.Duration(budget) * time.Second,
		NavigationTimeout:    time.Duration(navTimeout) * time.Second,
		SelectorWaitTimeout:  time.Duration(waitTimeout) * time.Second,
		MaxContainers:        maxContainers,
		MaxTextMinedItems:    maxTextMined,
		Headless:             getEnv("BROWSER_HEADLESS", "true") != "false",
		MaxConcurrentPages:   maxPages,
		ScreenshotDir:        getEnv("SCREENSHOT_DIR", ""),
		CaptureScreenshots:   getEnv("CAPTURE_SCREENSHOTS", "false") == "true",
		Environment:          getEnv("MENUSCRAPER_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for obviously broken values
func (c *Config) Validate() error {
	if c.RedisAddr == "" {
		return errors.NewConfiguration("redis address must not be empty", nil)
	}
	if c.RedisStreamCount <= 0 {
		return errors.NewConfiguration("redis stream count must be positive", nil)
	}
	if c.ScrapeBudget <= 0 {
		return errors.NewConfiguration("scrape budget must be positive", nil)
	}
	if c.NavigationTimeout <= 0 || c.SelectorWaitTimeout <= 0 {
		return errors.NewConfiguration("navigation and selector timeouts must be positive", nil)
	}
	if c.MaxConcurrentPages <= 0 {
		return errors.NewConfiguration("max concurrent pages must be positive", nil)
	}
	if c.MaxContainers <= 0 || c.MaxTextMinedItems <= 0 {
		return errors.NewConfiguration("extraction caps must be positive", nil)
	}
	if c.CaptureScreenshots && c.ScreenshotDir == "" {
		return errors.NewConfiguration("screenshot capture enabled but SCREENSHOT_DIR is empty", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
