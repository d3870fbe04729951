package publisher

import "time"

// Publisher represents a service for publishing scraped menu documents
type Publisher interface {
	// Publish publishes a message to a stream
	Publish(key string, message []byte) error

	// TrimStreams trims all streams to the configured maximum length
	TrimStreams() error

	// Close closes the publisher connection
	Close() error
}

// RequestQueue hands out scrape-request URLs pushed by the API layer
type RequestQueue interface {
	// Pop blocks up to timeout for the next requested URL; returns the
	// empty string when none arrived in time
	Pop(timeout time.Duration) (string, error)
}
