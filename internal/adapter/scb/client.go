package scb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/couchcryptid/scb-unemployment/internal/config"
	"github.com/couchcryptid/scb-unemployment/internal/domain"
	"github.com/couchcryptid/scb-unemployment/internal/observability"
)

const (
	endpointMetadata = "metadata"
	endpointDataset  = "dataset"

	contentTypeQuery = "application/json;charset=utf-8"
)

// utf8BOM prefixes the API's JSON responses.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Client fetches the unemployment table from the SCB PX-Web API.
// It implements pipeline.Source.
type Client struct {
	tableURL   string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an SCB client for the configured table URL.
func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		tableURL: cfg.SCBURL,
		httpClient: &http.Client{
			Timeout: cfg.SCBTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.SCBRateLimit), cfg.SCBRateBurst),
		metrics: metrics,
		logger:  logger,
	}
}

// FetchMetadata GETs the table description.
func (c *Client) FetchMetadata(ctx context.Context) (domain.Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tableURL, nil)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("%w: create metadata request: %w", domain.ErrTransport, err)
	}

	status, body, err := c.do(req, endpointMetadata)
	if err != nil {
		return domain.Metadata{}, err
	}
	if status != http.StatusOK {
		c.observe(endpointMetadata, "error")
		return domain.Metadata{}, fmt.Errorf("%w: metadata request: status %d: %s", domain.ErrTransport, status, snippet(body))
	}

	var meta domain.Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		c.observe(endpointMetadata, "error")
		return domain.Metadata{}, fmt.Errorf("%w: decode metadata: %w", domain.ErrParse, err)
	}
	if err := meta.Validate(); err != nil {
		c.observe(endpointMetadata, "error")
		return domain.Metadata{}, fmt.Errorf("decode metadata: %w", err)
	}

	c.observe(endpointMetadata, "success")
	return meta, nil
}

// FetchDataset POSTs the query and decodes the data rows. A non-200 answer
// yields domain.ErrNotAvailable.
func (c *Client) FetchDataset(ctx context.Context, query domain.Query) (domain.Dataset, error) {
	payload, err := json.Marshal(query)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL, bytes.NewReader(payload))
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: create dataset request: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", contentTypeQuery)

	status, body, err := c.do(req, endpointDataset)
	if err != nil {
		return domain.Dataset{}, err
	}
	if status != http.StatusOK {
		c.observe(endpointDataset, "unavailable")
		c.logger.Warn("dataset not available", "status", status, "body", snippet(body))
		return domain.Dataset{}, fmt.Errorf("%w: status %d", domain.ErrNotAvailable, status)
	}

	var data domain.Dataset
	if err := json.Unmarshal(body, &data); err != nil {
		c.observe(endpointDataset, "error")
		return domain.Dataset{}, fmt.Errorf("%w: decode dataset: %w", domain.ErrParse, err)
	}
	if err := data.Validate(); err != nil {
		c.observe(endpointDataset, "error")
		return domain.Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}

	c.observe(endpointDataset, "success")
	return data, nil
}

// do waits for the rate limiter, sends the request, and reads the whole body
// with any byte-order mark removed.
func (c *Client) do(req *http.Request, endpoint string) (int, []byte, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		c.observe(endpoint, "error")
		return 0, nil, fmt.Errorf("%w: %s rate limit wait: %w", domain.ErrTransport, endpoint, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, "error")
		return 0, nil, fmt.Errorf("%w: %s request: %w", domain.ErrTransport, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.APIDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	if err != nil {
		c.observe(endpoint, "error")
		return 0, nil, fmt.Errorf("%w: read %s response: %w", domain.ErrTransport, endpoint, err)
	}

	c.logger.Debug("scb request complete",
		"endpoint", endpoint,
		"method", req.Method,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", elapsed,
	)
	return resp.StatusCode, bytes.TrimPrefix(body, utf8BOM), nil
}

func (c *Client) observe(endpoint, outcome string) {
	c.metrics.APIRequests.WithLabelValues(endpoint, outcome).Inc()
}

// snippet trims an error body for inclusion in messages and logs.
func snippet(body []byte) string {
	const maxLen = 200
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}
	return string(body)
}
