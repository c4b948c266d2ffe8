package extractor

import (
	"errors"
	"fmt"
)

// Sentinel errors for the extraction taxonomy. Handlers match these with
// errors.Is to pick a response code; the typed errors below carry detail.
var (
	ErrVideoNotFound      = errors.New("video not found or no longer available")
	ErrVideoForbidden     = errors.New("video is private or restricted")
	ErrRateLimited        = errors.New("scraper rate limit exceeded")
	ErrUnsupportedContent = errors.New("unsupported content")
	ErrInvalidURL         = errors.New("invalid video URL")
)

// NotFoundError indicates the video was removed or never existed
type NotFoundError struct {
	URL     string
	Message string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("video not found: %s", e.Message)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrVideoNotFound
}

// ForbiddenError indicates the video is private or otherwise restricted
type ForbiddenError struct {
	URL     string
	Message string
}

func (e ForbiddenError) Error() string {
	return fmt.Sprintf("video forbidden: %s", e.Message)
}

func (e ForbiddenError) Is(target error) bool {
	return target == ErrVideoForbidden
}

// RateLimitedError indicates upstream throttling
type RateLimitedError struct {
	URL     string
	Message string
}

func (e RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited by scraper: %s", e.Message)
}

func (e RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}

// UnsupportedContentError indicates a playlist, live stream, or metadata
// missing a required field (id, title, duration)
type UnsupportedContentError struct {
	URL    string
	Reason string
}

func (e UnsupportedContentError) Error() string {
	return fmt.Sprintf("unsupported content: %s", e.Reason)
}

func (e UnsupportedContentError) Is(target error) bool {
	return target == ErrUnsupportedContent
}

// ExtractionError wraps any other failure talking to the scraping backend
type ExtractionError struct {
	URL     string
	Message string
	Cause   error
}

func (e ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e ExtractionError) Unwrap() error {
	return e.Cause
}
