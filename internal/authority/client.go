// Package authority consults an external name-authority service to
// improve entity matching. Queries are paced with a rate limiter and
// cached on disk forever: one file per normalized query, where an empty
// file is a cached "no result", so a query is sent over the network at
// most once across all runs.
package authority

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"golang.org/x/time/rate"
)

// Profile selects the attribute set the authority service searches.
type Profile string

const (
	ProfilePersonalName  Profile = "personal-name"
	ProfileCorporateName Profile = "corporate-name"
	ProfileUniformTitle  Profile = "uniform-title"
)

// Client performs cached authority lookups. A zero BaseURL disables the
// network entirely; only previously cached answers are served.
type Client struct {
	BaseURL  string
	CacheDir string
	HTTP     *http.Client

	limiter *rate.Limiter

	mu   sync.RWMutex
	memo map[string][]marc.Record
}

// NewClient builds a client caching under cacheDir. Live queries are
// spaced at least 250ms apart.
func NewClient(baseURL, cacheDir string) *Client {
	return &Client{
		BaseURL:  baseURL,
		CacheDir: cacheDir,
		HTTP:     &http.Client{Timeout: 30 * time.Second},
		limiter:  rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
		memo:     make(map[string][]marc.Record),
	}
}

var cacheKeyStrip = regexp.MustCompile(`[^a-zA-Z0-9\-_]+`)

// CacheKey derives the cache file stem for a query: lowercased, spaces to
// underscores, everything outside [a-zA-Z0-9_-] dropped.
func CacheKey(query string) string {
	key := strings.ToLower(strings.TrimSpace(query))
	key = strings.ReplaceAll(key, " ", "_")
	key = cacheKeyStrip.ReplaceAllString(key, "")
	return strings.TrimSuffix(key, "-")
}

// records answers a query from memory, then the disk cache, then the
// network. The raw response body is written back to the cache even when
// empty, so a miss is remembered.
func (c *Client) records(ctx context.Context, profile Profile, query string) ([]marc.Record, error) {
	key := CacheKey(query)
	if key == "" {
		return nil, nil
	}

	c.mu.RLock()
	recs, ok := c.memo[key]
	c.mu.RUnlock()
	if ok {
		return recs, nil
	}

	path := filepath.Join(c.CacheDir, key+".mrc")
	if data, err := os.ReadFile(path); err == nil {
		return c.remember(key, data)
	}

	if c.BaseURL == "" {
		return nil, nil
	}

	data, err := c.fetch(ctx, profile, query)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(c.CacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write cache file: %w", err)
	}
	return c.remember(key, data)
}

func (c *Client) remember(key string, data []byte) ([]marc.Record, error) {
	if len(data) == 0 {
		c.mu.Lock()
		c.memo[key] = nil
		c.mu.Unlock()
		return nil, nil
	}
	recs, err := marc.ReadAll(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse cached authority records: %w", err)
	}
	c.mu.Lock()
	c.memo[key] = recs
	c.mu.Unlock()
	return recs, nil
}

// fetch performs one paced network query. The service returns MARC
// transmission format; an empty body means no hits.
func (c *Client) fetch(ctx context.Context, profile Profile, query string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse authority URL: %w", err)
	}
	q := u.Query()
	q.Set("profile", string(profile))
	q.Set("query", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/marc")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query authority service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Debug("Failed closing authority response", "err", err)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("authority service returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
