// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspire is the INSPIRE-HEP literature API client. It resolves
// arXiv ids to catalogued papers and fetches reference lists, and is the
// PaperSource used by the network builder.
package inspire

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/refnet/internal/httputil"
	"github.com/pdiddy/refnet/pkg/types"
)

const (
	// DefaultBaseURL is the INSPIRE-HEP API root.
	DefaultBaseURL = "https://inspirehep.net/api"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit spaces requests at 2 per second. INSPIRE asks
	// clients to stay well under 15 requests per 5 seconds.
	DefaultRateLimit = 2.0

	defaultUserAgent = "refnet/0.1"
)

// Client is a rate-limited INSPIRE-HEP API client. All fetches go through
// a single limiter; the builder issues them sequentially on top of that.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
	token      string
	maxRetries int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root (tests use an
// httptest server).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets an optional INSPIRE API token sent as a bearer header.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRateLimit overrides the request rate in requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithMaxRetries sets the retry budget for HTTP 429 responses.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// NewClient creates an INSPIRE-HEP client with default politeness settings.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		baseURL:    DefaultBaseURL,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetPaperByArxiv resolves an arXiv id to its INSPIRE literature record.
// Returns ErrNotFound (wrapped) when the id matches no record.
func (c *Client) GetPaperByArxiv(ctx context.Context, arxivID string) (types.Paper, error) {
	params := url.Values{
		"q":    {"arxiv:" + arxivID},
		"size": {"1"},
	}
	reqURL := c.baseURL + "/literature?" + params.Encode()

	var sr searchResponse
	if err := c.getJSON(ctx, reqURL, &sr); err != nil {
		return types.Paper{}, fmt.Errorf("searching arXiv id %s: %w", arxivID, err)
	}
	if len(sr.Hits.Hits) == 0 {
		return types.Paper{}, fmt.Errorf("arXiv id %s: %w", arxivID, ErrNotFound)
	}

	paper, err := parsePaper(sr.Hits.Hits[0].Metadata)
	if err != nil {
		return types.Paper{}, fmt.Errorf("parsing record for arXiv id %s: %w", arxivID, err)
	}
	return paper, nil
}

// GetPaperReferences fetches the reference list of the literature record
// with the given INSPIRE id. Malformed entries are dropped individually;
// a record without a references block yields an empty list.
func (c *Client) GetPaperReferences(ctx context.Context, inspireID string) ([]types.Reference, error) {
	reqURL := c.baseURL + "/literature/" + url.PathEscape(inspireID)

	var rr recordResponse
	if err := c.getJSON(ctx, reqURL, &rr); err != nil {
		return nil, fmt.Errorf("fetching references for %s: %w", inspireID, err)
	}

	refs := make([]types.Reference, 0, len(rr.Metadata.References))
	for _, raw := range rr.Metadata.References {
		if ref, ok := parseReference(raw); ok {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

// getJSON performs a rate-limited GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing INSPIRE response: %w", err)
	}
	return nil
}
