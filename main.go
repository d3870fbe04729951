package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/IbrahimAyad/menuscraper/config"
	"github.com/IbrahimAyad/menuscraper/internal/browser"
	"github.com/IbrahimAyad/menuscraper/internal/scraper"
	"github.com/IbrahimAyad/menuscraper/logger"
	"github.com/IbrahimAyad/menuscraper/services/cache"
	"github.com/IbrahimAyad/menuscraper/services/publisher"
	"github.com/IbrahimAyad/menuscraper/services/worker"
)

func main() {
	oneShotURL := flag.String("url", "", "scrape a single URL, print the menu document as JSON and exit")
	flag.Parse()

	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The browser launches lazily on first use; Shutdown is safe either way
	driver := browser.NewDriver(cfg)
	defer driver.Shutdown()

	if *oneShotURL != "" {
		runOnce(ctx, cfg, driver, *oneShotURL)
		return
	}

	log.Info().
		Str("environment", cfg.Environment).
		Dur("scrape_budget", cfg.ScrapeBudget).
		Int("max_pages", cfg.MaxConcurrentPages).
		Msg("Starting menu scraper worker")

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize services
	cacheService := cache.NewMemcacheService(cfg.MemcacheAddr)
	logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)

	redisPublisher := publisher.NewRedisPublisher(
		ctx,
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisRequestList,
		cfg.RedisStream,
		cfg.RedisStreamCount,
		cfg.RedisStreamMaxLength,
	)
	defer redisPublisher.Close()

	logger.Info("Connected to Redis at %s (DB: %d, Requests: %s, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisRequestList, cfg.RedisStream)

	// Wire the pipeline
	s := scraper.New(cfg, driver, cacheService)
	w := worker.NewWorker(ctx, s, redisPublisher, redisPublisher, cfg.MaxConcurrentPages)

	// Start worker in a goroutine
	workerDone := make(chan error, 1)
	go func() {
		workerDone <- w.Start()
	}()

	// Wait for shutdown signal or worker error
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
		<-workerDone
	case err := <-workerDone:
		if err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Worker exited with error")
		} else {
			log.Info().Msg("Worker exited normally")
		}
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
}

// runOnce scrapes a single URL without Redis or memcache and prints the
// document, for local debugging and smoke tests.
func runOnce(ctx context.Context, cfg config.Config, driver *browser.Driver, url string) {
	s := scraper.New(cfg, driver, nil)

	doc, err := s.Scrape(ctx, url)
	if err != nil {
		logger.Default.Fatal().Str("url", url).Err(err).Msg("Scrape failed")
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Default.Fatal().Err(err).Msg("Failed to marshal menu document")
	}
	fmt.Println(string(out))
}
