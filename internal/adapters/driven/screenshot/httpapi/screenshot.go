// Package httpapi implements a Screenshot Service backed by the design
// tool's image-rendering endpoint.
//
// Capture asks the API to render a file (or a single node) and returns
// the opaque asset descriptor. Rendering happens server-side; the adapter
// only relays the descriptor that quick-setup attaches to context
// documents.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default render request timeout. Rendering is
	// slower than a plain fetch, so it gets more headroom.
	DefaultTimeout = 60 * time.Second

	// DefaultFormat is the image format when the caller does not pick one.
	DefaultFormat = "png"

	// DefaultScale is the render scale when the caller does not pick one.
	DefaultScale = 2.0

	// headerAccessToken carries the API token.
	headerAccessToken = "X-Access-Token"

	// maxErrorBody bounds how much of an error response is read back.
	maxErrorBody = 4096
)

// Ensure Service implements the interface.
var _ driven.ScreenshotService = (*Service)(nil)

// Config configures the screenshot service client.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.designtool.example".
	BaseURL string

	// Token authenticates requests; sent as the access-token header.
	Token string

	// Timeout bounds each render call. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Service captures visual assets through the rendering API.
type Service struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewService creates an API-backed screenshot service.
func NewService(cfg Config) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client:  &http.Client{Timeout: timeout},
	}
}

// captureResponse is the rendering endpoint's payload.
type captureResponse struct {
	URL    string `json:"url"`
	Format string `json:"format,omitempty"`
	Scale  string `json:"scale,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Capture renders the file (or one node when nodeID is set) and returns
// the asset descriptor.
func (s *Service) Capture(ctx context.Context, fileKey, nodeID string, opts domain.ScreenshotOptions) (*domain.ScreenshotDescriptor, error) {
	if fileKey == "" {
		return nil, domain.ErrEmptyFileKey
	}
	if s.baseURL == "" {
		return nil, fmt.Errorf("screenshot base URL not configured: %w", domain.ErrScreenshotUnavailable)
	}

	format := opts.Format
	if format == "" {
		format = DefaultFormat
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	query := url.Values{}
	query.Set("format", format)
	query.Set("scale", fmt.Sprintf("%g", scale))
	if nodeID != "" {
		query.Set("ids", nodeID)
	}
	endpoint := fmt.Sprintf("%s/v1/images/%s?%s", s.baseURL, url.PathEscape(fileKey), query.Encode())

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
		return nil, fmt.Errorf("capturing %s: %w", fileKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, s.statusError(resp, fileKey)
	}

	var payload captureResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding capture response: %w", err)
	}
	if payload.URL == "" {
		return nil, fmt.Errorf("capture for %s returned no image URL", fileKey)
	}

	descriptor := &domain.ScreenshotDescriptor{
		URL:    payload.URL,
		Format: format,
		Scale:  scale,
		Width:  payload.Width,
		Height: payload.Height,
	}
	if payload.Format != "" {
		descriptor.Format = payload.Format
	}
	return descriptor, nil
}

// statusError maps a non-200 response onto the domain error taxonomy.
func (s *Service) statusError(resp *http.Response, fileKey string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("file %s: %w", fileKey, domain.ErrNotFound)

	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.ErrRateLimited

	case resp.StatusCode >= 500:
		return fmt.Errorf("rendering unavailable (status %d): %w", resp.StatusCode, domain.ErrScreenshotUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
