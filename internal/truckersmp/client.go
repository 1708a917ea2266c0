// Package truckersmp is a read-only client for the public TruckersMP
// REST API: event metadata, VTC profiles and event listings.
package truckersmp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/neppath/convoybot/internal/domain"
	"github.com/wb-go/wbf/retry"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.truckersmp.com/v2"
	userAgent      = "NepPathConvoyBot/1.0"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	strategy   retry.Strategy
}

// NewClient builds a client with an explicit request timeout and a
// request-per-second cap. Every call is retried once on failure.
func NewClient(baseURL string, timeout time.Duration, rps float64) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		strategy: retry.Strategy{
			Attempts: 2,
			Delay:    time.Second,
			Backoff:  2,
		},
	}
}

func (c *Client) Event(ctx context.Context, id int) (*Event, error) {
	var env envelope[Event]
	if err := c.get(ctx, fmt.Sprintf("/events/%d", id), &env); err != nil {
		return nil, err
	}
	if env.Error {
		return nil, fmt.Errorf("%w: api reported an error", domain.ErrUpstream)
	}
	return &env.Response, nil
}

func (c *Client) VTC(ctx context.Context, id int) (*VTC, error) {
	var env envelope[VTC]
	if err := c.get(ctx, fmt.Sprintf("/vtc/%d", id), &env); err != nil {
		return nil, err
	}
	if env.Error {
		return nil, fmt.Errorf("%w: api reported an error", domain.ErrUpstream)
	}
	return &env.Response, nil
}

// Events returns the public upcoming-events listing.
func (c *Client) Events(ctx context.Context) ([]Event, error) {
	var env envelope[[]Event]
	if err := c.get(ctx, "/events", &env); err != nil {
		return nil, err
	}
	if env.Error {
		return nil, fmt.Errorf("%w: api reported an error", domain.ErrUpstream)
	}
	return env.Response, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: http %d", domain.ErrUpstream, resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(out)
	}, c.strategy)
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	return nil
}
