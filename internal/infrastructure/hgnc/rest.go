package hgnc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/antonholmquist/jason"
	"github.com/charmbracelet/log"
	"github.com/patrickmn/go-cache"

	"github.com/famplex/famplex/internal/domain/ports"
	"github.com/famplex/famplex/internal/infrastructure/logging"
)

// DefaultBaseURL is the HGNC REST service.
const DefaultBaseURL = "https://rest.genenames.org"

// RESTResolver answers lookups against the HGNC REST service.
// Answers are memoized in process, including misses.
type RESTResolver struct {
	baseURL string
	client  *http.Client
	cache   *cache.Cache
	logger  *log.Logger
}

type restAnswer struct {
	value string
	found bool
}

// NewRESTResolver creates a resolver for baseURL.
func NewRESTResolver(baseURL string, timeout time.Duration, logger *log.Logger) *RESTResolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &RESTResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		cache:   cache.New(cache.NoExpiration, 0),
		logger:  logger,
	}
}

// Probe checks that the service answers.
func (r *RESTResolver) Probe(ctx context.Context) error {
	resp, err := r.get(ctx, r.baseURL+"/info")
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HGNC service returned %s", resp.Status)
	}
	return nil
}

// Symbol returns the approved symbol for an HGNC id.
func (r *RESTResolver) Symbol(ctx context.Context, hgncID string) (string, error) {
	id := strings.TrimPrefix(hgncID, idPrefix)
	return r.fetch(ctx, "hgnc_id", id, "symbol")
}

// ID returns the HGNC id for an approved symbol.
func (r *RESTResolver) ID(ctx context.Context, symbol string) (string, error) {
	id, err := r.fetch(ctx, "symbol", symbol, "hgnc_id")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(id, idPrefix), nil
}

// fetch looks up one document by field and returns its want field.
func (r *RESTResolver) fetch(ctx context.Context, field, value, want string) (string, error) {
	key := field + ":" + value
	if cached, ok := r.cache.Get(key); ok {
		answer := cached.(restAnswer)
		if !answer.found {
			return "", ports.ErrNotFound
		}
		return answer.value, nil
	}

	resp, err := r.get(ctx, fmt.Sprintf("%s/fetch/%s/%s", r.baseURL, field, url.PathEscape(value)))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HGNC lookup %s returned %s", key, resp.Status)
	}

	body, err := jason.NewObjectFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("decoding HGNC response for %s: %w", key, err)
	}
	docs, err := body.GetObjectArray("response", "docs")
	if err != nil {
		return "", fmt.Errorf("decoding HGNC response for %s: %w", key, err)
	}

	answer := restAnswer{}
	if len(docs) > 0 {
		if v, err := docs[0].GetString(want); err == nil && v != "" {
			answer = restAnswer{value: v, found: true}
		}
	}
	r.cache.Set(key, answer, cache.DefaultExpiration)
	r.logger.Debug("HGNC lookup", "field", field, "value", value, "found", answer.found)

	if !answer.found {
		return "", ports.ErrNotFound
	}
	return answer.value, nil
}

func (r *RESTResolver) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating HGNC request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HGNC request failed: %w", err)
	}
	return resp, nil
}
