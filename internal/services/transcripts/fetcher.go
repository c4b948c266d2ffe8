package transcripts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPFetcher downloads caption payloads over HTTP with a size cap
type HTTPFetcher struct {
	client  *http.Client
	maxSize int64
}

var _ CaptionFetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher. maxSize bounds the response body in
// bytes; zero means 5MB.
func NewHTTPFetcher(timeout time.Duration, maxSize int64) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxSize <= 0 {
		maxSize = 5 << 20
	}
	return &HTTPFetcher{
		client:  &http.Client{Timeout: timeout},
		maxSize: maxSize,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating caption request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("caption download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading caption body: %w", err)
	}
	if int64(len(body)) > f.maxSize {
		return nil, fmt.Errorf("caption payload exceeds %d bytes", f.maxSize)
	}

	return body, nil
}
