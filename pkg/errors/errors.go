package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNavigation represents browser navigation errors
	ErrorTypeNavigation ErrorType = "navigation"
	// ErrorTypeHTTPStatus represents non-2xx responses on static fetches
	ErrorTypeHTTPStatus ErrorType = "http_status"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeRateLimit represents rate limiting errors
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeTimeout represents budget or deadline errors
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeCache represents cache-related errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// ScrapeError represents a scraper-specific error carrying the source URL
type ScrapeError struct {
	Type       ErrorType
	URL        string
	StatusCode int
	Message    string
	Err        error
	Time       time.Time
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.URL, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.URL, e.Message)
}

// Unwrap returns the underlying error
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is retryable
func (e *ScrapeError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeNavigation:
		return true
	case ErrorTypeHTTPStatus:
		// A non-2xx on a plain GET often just means the site wants a real
		// browser, so the caller may retry with automation.
		return true
	case ErrorTypeRateLimit:
		return false
	case ErrorTypeParsing:
		return false
	default:
		return false
	}
}

// New creates a new ScrapeError
func New(errType ErrorType, url, message string, err error) *ScrapeError {
	return &ScrapeError{
		Type:    errType,
		URL:     url,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNavigation creates a new navigation error
func NewNavigation(url, message string, err error) *ScrapeError {
	return New(ErrorTypeNavigation, url, message, err)
}

// NewHTTPStatus creates a new HTTP status error
func NewHTTPStatus(url string, statusCode int) *ScrapeError {
	e := New(ErrorTypeHTTPStatus, url, fmt.Sprintf("unexpected status code: %d", statusCode), nil)
	e.StatusCode = statusCode
	return e
}

// NewParsing creates a new parsing error
func NewParsing(url, message string, err error) *ScrapeError {
	return New(ErrorTypeParsing, url, message, err)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(url string, duration time.Duration) *ScrapeError {
	message := fmt.Sprintf("rate limited for %v", duration)
	return New(ErrorTypeRateLimit, url, message, nil)
}

// NewTimeout creates a new timeout error
func NewTimeout(url, message string, err error) *ScrapeError {
	return New(ErrorTypeTimeout, url, message, err)
}

// NewCache creates a new cache error
func NewCache(url, message string, err error) *ScrapeError {
	return New(ErrorTypeCache, url, message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(url, message string, err error) *ScrapeError {
	return New(ErrorTypePublisher, url, message, err)
}

// NewValidation creates a new validation error
func NewValidation(url, message string) *ScrapeError {
	return New(ErrorTypeValidation, url, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *ScrapeError {
	return New(ErrorTypeConfiguration, "", message, err)
}
