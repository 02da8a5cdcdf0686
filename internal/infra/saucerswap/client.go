package saucerswap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/pool"
)

// Client reads the SaucerSwap REST pool index.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a pool index client. ratePerSecond <= 0 disables
// client-side throttling; the public demo key is globally rate limited, so
// callers sharing it should set one.
func NewClient(baseURL, apiKey string, timeout time.Duration, ratePerSecond float64) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, apperrors.Configuration("SaucerSwap API key is not set")
	}

	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, 1),
	}, nil
}

// ListAllPools calls GET /v2/pools, the compact list of every V2 pool.
// The payload is a flat list; no pagination.
func (c *Client) ListAllPools(ctx context.Context) ([]pool.Pool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "c.limiter.Wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/pools", nil)
	if err != nil {
		return nil, errors.Wrap(err, "http.NewRequestWithContext")
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "c.http.Do")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "io.ReadAll")
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, apperrors.MirrorNode(res.StatusCode, fmt.Sprintf(`SaucerSwap REST "GET /v2/pools" failed with status %d`, res.StatusCode))
	}

	var pools []pool.Pool
	if err := json.Unmarshal(body, &pools); err != nil {
		return nil, errors.Wrap(err, "json.Unmarshal")
	}
	return pools, nil
}
