// Package pubchem checks compound identifiers against the PubChem PUG REST API.
package pubchem

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/famplex/famplex/internal/domain/ports"
	"github.com/famplex/famplex/internal/infrastructure/logging"
)

const (
	// DefaultBaseURL is the PUG REST root.
	DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	// DefaultRequestsPerSecond stays under the PUG REST usage policy.
	DefaultRequestsPerSecond = 5

	// probeCID is a compound that always exists (aspirin).
	probeCID = "2244"
)

// Config holds client settings.
type Config struct {
	BaseURL           string
	RequestsPerSecond float64
	Timeout           time.Duration
}

// Client looks up compound ids. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	cache   *cache.Cache
	logger  *log.Logger
}

// NewClient creates a rate limited client.
func NewClient(cfg Config, logger *log.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		cache:   cache.New(cache.NoExpiration, 0),
		logger:  logger,
	}
}

// CompoundExists reports whether cid resolves. Any answer other than 200 means
// it does not, except throttling and unavailability, which are returned as errors.
func (c *Client) CompoundExists(ctx context.Context, cid string) (bool, error) {
	if cached, ok := c.cache.Get(cid); ok {
		return cached.(bool), nil
	}

	status, err := c.describe(ctx, cid)
	if err != nil {
		return false, err
	}

	switch status {
	case http.StatusOK:
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return false, &ports.StatusError{Service: "PubChem", Code: status}
	}

	found := status == http.StatusOK
	c.cache.Set(cid, found, cache.DefaultExpiration)
	c.logger.Debug("PubChem lookup", "cid", cid, "status", status)
	return found, nil
}

// Probe checks that the service answers for a known compound.
func (c *Client) Probe(ctx context.Context) error {
	status, err := c.describe(ctx, probeCID)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("PubChem probe returned status %d", status)
	}
	return nil
}

// describe fetches the compound description and returns the HTTP status.
func (c *Client) describe(ctx context.Context, cid string) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	u := fmt.Sprintf("%s/compound/cid/%s/description/XML", c.baseURL, url.PathEscape(cid))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("creating PubChem request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("PubChem request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
