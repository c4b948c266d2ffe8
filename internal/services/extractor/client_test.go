package extractor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func validInfo() Info {
	return Info{
		ID:       "abc123",
		Title:    "A Video",
		Duration: 120,
	}
}

func TestExtractSuccess(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/resolve", r.URL.Path)
		assert.Equal(t, "https://youtu.be/abc123", r.URL.Query().Get("url"))
		_ = json.NewEncoder(w).Encode(validInfo())
	})

	meta, err := client.Extract(context.Background(), "https://youtu.be/abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", meta.SourceID)
	assert.Equal(t, 120, meta.Duration)
}

func TestExtractErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"404 maps to not found", http.StatusNotFound, `{"error":"Video unavailable"}`, ErrVideoNotFound},
		{"403 maps to forbidden", http.StatusForbidden, `{"error":"Private video"}`, ErrVideoForbidden},
		{"401 maps to forbidden", http.StatusUnauthorized, `{"error":"Sign in to confirm your age"}`, ErrVideoForbidden},
		{"429 maps to rate limited", http.StatusTooManyRequests, `{"error":"slow down"}`, ErrRateLimited},
		{"500 with unavailable message maps to not found", http.StatusInternalServerError, `{"error":"ERROR: Video unavailable"}`, ErrVideoNotFound},
		{"500 with private message maps to forbidden", http.StatusInternalServerError, `{"error":"ERROR: Private video. Sign in"}`, ErrVideoForbidden},
		{"500 with rate limit message maps to rate limited", http.StatusInternalServerError, `{"error":"HTTP Error 429: Too Many Requests"}`, ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Extract(context.Background(), "https://youtu.be/x")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractGenericFailure(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := client.Extract(context.Background(), "https://youtu.be/x")
	require.Error(t, err)

	var extractionErr ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, extractionErr.Error(), "upstream exploded")
}

func TestExtractRejectsUnsupportedContent(t *testing.T) {
	tests := []struct {
		name string
		info Info
	}{
		{"playlist", Info{Type: "playlist", ID: "p1", Title: "Playlist", Duration: 1}},
		{"live stream", Info{ID: "l1", Title: "Live", Duration: 1, IsLive: true}},
		{"missing id", Info{Title: "No ID", Duration: 10}},
		{"missing title", Info{ID: "x", Duration: 10}},
		{"missing duration", Info{ID: "x", Title: "No Duration"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(tt.info)
			})

			_, err := client.Extract(context.Background(), "https://youtu.be/x")
			assert.ErrorIs(t, err, ErrUnsupportedContent)
		})
	}
}

func TestExtractPrivateAvailability(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		info := validInfo()
		info.Availability = "private"
		_ = json.NewEncoder(w).Encode(info)
	})

	_, err := client.Extract(context.Background(), "https://youtu.be/abc123")
	assert.ErrorIs(t, err, ErrVideoForbidden)
}

func TestExtractInvalidURL(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:1"})

	for _, bad := range []string{"", "   ", "not a url at all://", "ftp://example.com/video", "https://"} {
		_, err := client.Extract(context.Background(), bad)
		assert.ErrorIs(t, err, ErrInvalidURL, "url %q", bad)
	}
}

func TestExtractUsesCache(t *testing.T) {
	var calls int32
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_ = json.NewEncoder(w).Encode(validInfo())
	})

	for i := 0; i < 3; i++ {
		_, err := client.Extract(context.Background(), "https://youtu.be/abc123")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestExtractInvalidJSON(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.Extract(context.Background(), "https://youtu.be/x")
	require.Error(t, err)

	var extractionErr ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}
