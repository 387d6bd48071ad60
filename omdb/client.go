package omdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL      = "http://www.omdbapi.com/"
	DefaultImageBaseURL = "http://img.omdbapi.com/"
	DefaultTimeout      = 10 * time.Second
)

const (
	opSearch     = "search"
	opGetByTitle = "getByTitle"
	opGetByID    = "getById"
	opGetPoster  = "getPoster"
	opTest       = "test"
)

// Config holds OMDb client settings.
type Config struct {
	APIKey       string
	BaseURL      string        // JSON endpoint, defaults to DefaultBaseURL
	ImageBaseURL string        // poster endpoint, defaults to DefaultImageBaseURL
	Timeout      time.Duration // per request; zero disables the client timeout
}

// Doer issues HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP transport.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.httpClient = d
		}
	}
}

// WithLogger sets the logger used for request traces.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger.With().Str("component", "omdb").Logger()
	}
}

// Client is an OMDb API client. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	httpClient Doer
	config     Config
	logger     zerolog.Logger
}

// New creates a new OMDb client. It fails with a configuration error if the
// API key is empty.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, configError("no API key provided, visit http://omdbapi.com/apikey.aspx to create one")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = DefaultImageBaseURL
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "omdb"
}

// Test verifies connectivity and the API key by fetching a known title.
func (c *Client) Test(ctx context.Context) error {
	var resp recordResponse
	return c.getJSON(ctx, opTest, idParams(c.config.APIKey, "tt0133093", IDOptions{}), &resp)
}

// Search searches titles by text. Results keep the provider's order.
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) ([]SearchResultItem, error) {
	var o SearchOptions
	if opts != nil {
		o = *opts
	}
	if err := ValidateSearch(query, o); err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := c.getJSON(ctx, opSearch, searchParams(c.config.APIKey, query, o), &resp); err != nil {
		return nil, err
	}

	results := make([]SearchResultItem, 0, len(resp.Search))
	for _, hit := range resp.Search {
		results = append(results, normalizeSearchHit(hit))
	}
	return results, nil
}

// GetByTitle fetches the full record for a title.
func (c *Client) GetByTitle(ctx context.Context, title string, opts *TitleOptions) (*MovieRecord, error) {
	var o TitleOptions
	if opts != nil {
		o = *opts
	}
	if err := ValidateTitle(title, o); err != nil {
		return nil, err
	}

	var resp recordResponse
	if err := c.getJSON(ctx, opGetByTitle, titleParams(c.config.APIKey, title, o), &resp); err != nil {
		return nil, err
	}
	return normalizeRecord(&resp, c.PosterURL(resp.ImdbID)), nil
}

// GetByID fetches the full record for an IMDb ID. ref is either the ID
// string or an Identifiable such as a SearchResultItem.
func (c *Client) GetByID(ctx context.Context, ref any, opts *IDOptions) (*MovieRecord, error) {
	id, err := resolveID(opGetByID, ref)
	if err != nil {
		return nil, err
	}
	var o IDOptions
	if opts != nil {
		o = *opts
	}
	if err := ValidateIDOptions(o); err != nil {
		return nil, err
	}

	var resp recordResponse
	if err := c.getJSON(ctx, opGetByID, idParams(c.config.APIKey, id, o), &resp); err != nil {
		return nil, err
	}
	return normalizeRecord(&resp, c.PosterURL(id)), nil
}

// GetPoster downloads the poster image for an IMDb ID. The payload is
// returned as is: the provider answers failures with an error image, which
// is indistinguishable from a real poster here.
func (c *Client) GetPoster(ctx context.Context, ref any) (*Poster, error) {
	id, err := resolveID(opGetPoster, ref)
	if err != nil {
		return nil, err
	}

	_, body, err := c.get(ctx, opGetPoster, c.config.ImageBaseURL, posterParams(c.config.APIKey, id))
	if err != nil {
		return nil, err
	}
	return &Poster{
		Data:        body,
		ContentType: mimetype.Detect(body).String(),
	}, nil
}

// PosterURL returns the poster endpoint URL for an IMDb ID. It embeds the API key.
func (c *Client) PosterURL(id string) string {
	return fmt.Sprintf("%s?%s", c.config.ImageBaseURL, posterParams(c.config.APIKey, id).Encode())
}

// getJSON issues a request to the JSON endpoint, unwraps the envelope and
// decodes the body into out.
func (c *Client) getJSON(ctx context.Context, op string, p params, out any) error {
	status, body, err := c.get(ctx, op, c.config.BaseURL, p)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if status != http.StatusOK {
			return networkError(op, fmt.Sprintf("unexpected status %d", status), nil)
		}
		return networkError(op, "failed to decode response", err)
	}
	if env.Response == "False" {
		return providerError(op, env.Error)
	}
	if status != http.StatusOK {
		return networkError(op, fmt.Sprintf("unexpected status %d", status), nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return networkError(op, "failed to decode response", err)
	}
	return nil
}

// get performs one GET and returns the status code and full body.
func (c *Client) get(ctx context.Context, op, baseURL string, p params) (int, []byte, error) {
	requestID := uuid.NewString()
	start := time.Now()

	reqURL := fmt.Sprintf("%s?%s", baseURL, p.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, nil, networkError(op, "failed to create request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, networkError(op, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return 0, nil, networkError(op, "failed to read response", err)
	}

	c.logger.Debug().
		Str("requestId", requestID).
		Str("op", op).
		Str("endpoint", baseURL).
		Int("status", resp.StatusCode).
		Int("bytes", buf.Len()).
		Dur("duration", time.Since(start)).
		Msg("OMDb request completed")

	return resp.StatusCode, buf.Bytes(), nil
}
