package helpers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scrapeerrors "github.com/IbrahimAyad/menuscraper/pkg/errors"
)

func TestFetchWithRandomHeaders(t *testing.T) {
	var gotUA, gotReferer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotReferer = r.Header.Get("Referer")
		w.Write([]byte("<html><body>menu</body></html>"))
	}))
	defer srv.Close()

	body, err := FetchWithRandomHeaders(srv.URL)
	require.NoError(t, err)

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "menu")

	assert.Contains(t, userAgents, gotUA)
	assert.Contains(t, referers, gotReferer)
}

func TestFetchWithRandomHeadersNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := FetchWithRandomHeaders(srv.URL)
	require.Error(t, err)

	se, ok := err.(*scrapeerrors.ScrapeError)
	require.True(t, ok)
	assert.Equal(t, scrapeerrors.ErrorTypeHTTPStatus, se.Type)
	assert.Equal(t, http.StatusForbidden, se.StatusCode)
	assert.True(t, se.IsRetryable())
}

func TestFetchWithRandomHeadersRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "17")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := FetchWithRandomHeaders(srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
	assert.Contains(t, err.Error(), "17")
}

func TestFetchWithRandomHeadersConvertsCharset(t *testing.T) {
	// ISO-8859-1 body with an e-acute (0xE9)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		w.Write([]byte("<html><body>Saut\xe9ed Mushrooms</body></html>"))
	}))
	defer srv.Close()

	body, err := FetchWithRandomHeaders(srv.URL)
	require.NoError(t, err)

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Sautéed Mushrooms")
}
