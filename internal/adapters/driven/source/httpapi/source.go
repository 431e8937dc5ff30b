// Package httpapi implements a Document Source backed by a design-tool
// REST API.
//
// Requests carry the configured access token and are throttled client-side
// with a token bucket so batch runs stay under the API's rate limit.
// Response statuses map onto domain sentinels: 404 becomes
// domain.ErrNotFound, 429 becomes domain.ErrRateLimited and 5xx becomes
// domain.ErrSourceUnavailable. Payloads are decoded tolerantly; missing
// fields degrade downstream instead of failing the fetch.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driven"
)

const (
	// SourceName identifies this adapter in document metadata.
	SourceName = "api"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerMinute is the proactive client-side rate limit.
	DefaultRequestsPerMinute = 60

	// headerAccessToken carries the API token.
	headerAccessToken = "X-Access-Token"

	// maxErrorBody bounds how much of an error response is read back.
	maxErrorBody = 4096
)

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Config configures the API document source.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.designtool.example".
	BaseURL string

	// Token authenticates requests; sent as the access-token header.
	Token string

	// Timeout bounds each API call. Defaults to DefaultTimeout.
	Timeout time.Duration

	// RequestsPerMinute is the proactive rate limit. Defaults to
	// DefaultRequestsPerMinute.
	RequestsPerMinute int

	// Depth asks the API to serialise each tree only this deep.
	// Zero requests the full tree.
	Depth int
}

// Source fetches raw design trees over HTTP.
type Source struct {
	baseURL string
	token   string
	depth   int
	client  *http.Client
	limiter *rate.Limiter
}

// NewSource creates an API-backed document source.
func NewSource(cfg Config) *Source {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = DefaultRequestsPerMinute
	}

	return &Source{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		depth:   cfg.Depth,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}
}

// Name identifies the adapter.
func (s *Source) Name() string {
	return SourceName
}

// FetchDocument retrieves the raw tree for one file.
func (s *Source) FetchDocument(ctx context.Context, fileKey string) (*domain.RawFile, error) {
	if fileKey == "" {
		return nil, domain.ErrEmptyFileKey
	}
	if s.baseURL == "" {
		return nil, fmt.Errorf("api base URL not configured: %w", domain.ErrSourceUnavailable)
	}

	// Proactive throttle before touching the network.
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/files/%s", s.baseURL, url.PathEscape(fileKey))
	if s.depth > 0 {
		endpoint += fmt.Sprintf("?depth=%d", s.depth)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set(headerAccessToken, s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", fileKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, s.statusError(resp, fileKey)
	}

	var raw domain.RawFile
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", fileKey, err)
	}
	return &raw, nil
}

// statusError maps a non-200 response onto the domain error taxonomy.
func (s *Source) statusError(resp *http.Response, fileKey string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("file %s: %w", fileKey, domain.ErrNotFound)

	case resp.StatusCode == http.StatusTooManyRequests:
		if retry := resp.Header.Get("Retry-After"); retry != "" {
			if seconds, err := strconv.Atoi(retry); err == nil {
				return fmt.Errorf("retry after %ds: %w", seconds, domain.ErrRateLimited)
			}
		}
		return domain.ErrRateLimited

	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("authentication failed (status %d): %s",
			resp.StatusCode, strings.TrimSpace(string(body)))

	case resp.StatusCode >= 500:
		return fmt.Errorf("API unavailable (status %d): %w", resp.StatusCode, domain.ErrSourceUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
