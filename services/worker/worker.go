package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/IbrahimAyad/menuscraper/internal/menu"
	"github.com/IbrahimAyad/menuscraper/logger"
	"github.com/IbrahimAyad/menuscraper/services/publisher"
)

// Scraper is the extraction pipeline the worker drives.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*menu.MenuDocument, error)
}

// Worker drains scrape requests and publishes the resulting menu documents.
// Concurrency is bounded by a semaphore so a burst of requests cannot open
// an unbounded number of browser pages.
type Worker struct {
	ctx       context.Context
	scraper   Scraper
	queue     publisher.RequestQueue
	publisher publisher.Publisher
	log       *logger.Logger

	sem chan struct{}
	wg  sync.WaitGroup
}

// NewWorker creates a new worker
func NewWorker(ctx context.Context, s Scraper, queue publisher.RequestQueue, pub publisher.Publisher, maxConcurrent int) *Worker {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Worker{
		ctx:       ctx,
		scraper:   s,
		queue:     queue,
		publisher: pub,
		log:       logger.ForWorker(),
		sem:       make(chan struct{}, maxConcurrent),
	}
}

// Start pulls requests until the context is cancelled, then waits for
// in-flight scrapes to finish.
func (w *Worker) Start() error {
	trim := time.NewTicker(time.Minute)
	defer trim.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.wg.Wait()
			return w.ctx.Err()
		case <-trim.C:
			if err := w.publisher.TrimStreams(); err != nil {
				w.log.Error().Err(err).Msg("Stream trimming failed")
			}
		default:
		}

		url, err := w.queue.Pop(5 * time.Second)
		if err != nil {
			w.log.Error().Err(err).Msg("Failed to pop scrape request")
			time.Sleep(time.Second)
			continue
		}
		if url == "" {
			continue
		}

		select {
		case w.sem <- struct{}{}:
		case <-w.ctx.Done():
			w.wg.Wait()
			return w.ctx.Err()
		}

		w.wg.Add(1)
		go func(url string) {
			defer w.wg.Done()
			defer func() { <-w.sem }()
			w.scrapeAndPublish(url)
		}(url)
	}
}

// scrapeAndPublish scrapes one URL and publishes the document JSON.
func (w *Worker) scrapeAndPublish(url string) {
	start := time.Now()

	doc, err := w.scraper.Scrape(w.ctx, url)
	if err != nil {
		w.log.Error().Str("url", url).Err(err).Msg("Scrape failed")
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		w.log.Error().Str("url", url).Err(err).Msg("Failed to marshal menu document")
		return
	}

	if err := w.publisher.Publish("menu", data); err != nil {
		w.log.Error().Str("url", url).Err(err).Msg("Failed to publish menu document")
		return
	}

	w.log.Info().
		Str("url", url).
		Str("restaurant", doc.RestaurantName).
		Int("items", len(doc.Menu)).
		Dur("elapsed", time.Since(start)).
		Msg("Scrape published")
}
