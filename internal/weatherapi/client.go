package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	// ErrNoAPIKey is returned before any request is made when the
	// client was built without a key.
	ErrNoAPIKey = errors.New("weatherapi: api key is not configured")

	// ErrNoData is returned when the upstream could not supply usable
	// weather data (transport failure, non-2xx status, error payload).
	ErrNoData = errors.New("weatherapi: could not retrieve weather data")
)

// Client talks to the WeatherAPI.com search and forecast endpoints.
// Each call is a single synchronous GET; there are no retries.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.SugaredLogger
}

// NewClient creates a Client. rps caps outbound request rate; zero or
// negative disables the limiter.
func NewClient(httpClient *http.Client, apiKey, baseURL string, rps float64, log *zap.SugaredLogger) *Client {
	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    httpClient,
		limiter: limiter,
		log:     log,
	}
}

// Search queries the autocomplete endpoint with a free-text location.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	values := url.Values{}
	values.Set("q", query)

	body, err := c.get(ctx, "/search.json", values)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	if err := json.Unmarshal(body, &results); err != nil {
		// The search endpoint answers 200 with an error object when
		// the key is rejected.
		if msg, ok := decodeAPIError(body); ok {
			c.log.Errorw("weatherapi search error", "query", query, "message", msg)
			return nil, fmt.Errorf("%w: %s", ErrNoData, msg)
		}
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	return results, nil
}

// Forecast fetches current weather plus a days-long forecast for q,
// where q is a location name or a "lat,lon" pair. days is clamped to
// the API's supported 1-7 range.
func (c *Client) Forecast(ctx context.Context, q string, days int) (*WeatherData, error) {
	if days < 1 {
		days = 1
	}
	if days > 7 {
		days = 7
	}

	values := url.Values{}
	values.Set("q", q)
	values.Set("days", fmt.Sprintf("%d", days))
	values.Set("aqi", "yes")

	body, err := c.get(ctx, "/forecast.json", values)
	if err != nil {
		return nil, err
	}

	if msg, ok := decodeAPIError(body); ok {
		c.log.Errorw("weatherapi forecast error", "q", q, "message", msg)
		return nil, fmt.Errorf("%w: %s", ErrNoData, msg)
	}

	var data WeatherData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	return &data, nil
}

// Current is Forecast limited to the current observation.
func (c *Client) Current(ctx context.Context, q string) (*WeatherData, error) {
	return c.Forecast(ctx, q, 1)
}

// get performs one rate-limited GET and returns the raw body. Non-2xx
// responses are mapped to ErrNoData, preferring the upstream error
// message when the body carries one.
func (c *Client) get(ctx context.Context, path string, values url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	values.Set("key", c.apiKey)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorw("weatherapi request failed", "path", path, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if msg, ok := decodeAPIError(body); ok {
			c.log.Errorw("weatherapi error response", "path", path, "status", resp.StatusCode, "message", msg)
			return nil, fmt.Errorf("%w: %s", ErrNoData, msg)
		}
		c.log.Errorw("weatherapi unexpected status", "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrNoData, resp.StatusCode)
	}

	return body, nil
}

func decodeAPIError(body []byte) (string, bool) {
	var e apiError
	if err := json.Unmarshal(body, &e); err != nil {
		return "", false
	}
	if e.Error.Message == "" && e.Error.Code == 0 {
		return "", false
	}
	return e.Error.Message, true
}
