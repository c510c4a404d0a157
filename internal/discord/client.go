package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// API paths of the gacha service
const (
	PathDraw     = "/api/v1/gacha/draw"
	PathHistory  = "/api/v1/gacha/history"
	PathPools    = "/api/v1/gacha/pools"
	PathStatus   = "/api/v1/gacha/status"
	PathHealthz  = "/healthz"
	headerAPIKey = "X-API-Key"
	headerUserID = "X-User-ID"
)

// Client retry settings. Only reads are retried: a draw may have committed
// before the response was lost.
const (
	defaultClientTimeout = 3 * time.Minute
	maxReadRetries       = 3
	readRetryDelay       = 500 * time.Millisecond
)

// APIError is a non-2xx answer from the gacha service
type APIError struct {
	Status  int
	Message string
	Code    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

// APIClient handles communication with the gacha HTTP API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	retryDelay time.Duration
}

// NewAPIClient creates a new API client. The timeout is generous because a
// ten pull batch can spend a long time backing off on cooldowns.
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: defaultClientTimeout,
		},
		APIKey:     apiKey,
		retryDelay: readRetryDelay,
	}
}

// doRequest sends one request on behalf of userID. GET requests are retried
// with exponential backoff on transport errors and 5xx answers.
func (c *APIClient) doRequest(ctx context.Context, method, path, userID string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		if reqBody, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts += maxReadRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<uint(attempt-1))
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set(headerAPIKey, c.APIKey)
		}
		if userID != "" {
			req.Header.Set(headerUserID, userID)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt, "path", path)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError || attempt == attempts-1 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt, "path", path)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeError turns an error body into an *APIError, tolerating non-JSON bodies.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(raw))
		if body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode)
		}
	}
	return &APIError{Status: resp.StatusCode, Message: body.Error, Code: body.Code}
}

// Draw performs up to ten pulls. A 503 carrying an outcome means no unit
// completed; the outcome is returned so its warning can be shown.
func (c *APIClient) Draw(ctx context.Context, userID string, poolID *string, amount int) (*domain.BatchOutcome, error) {
	req := map[string]interface{}{"amount": amount}
	if poolID != nil {
		req["pool_id"] = *poolID
	}

	resp, err := c.doRequest(ctx, http.MethodPost, PathDraw, userID, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return nil, decodeError(resp)
	}

	var outcome domain.BatchOutcome
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		return nil, fmt.Errorf("failed to decode draw outcome: %w", err)
	}
	return &outcome, nil
}

// HistoryParams are the optional history filters
type HistoryParams struct {
	Limit    int
	Offset   int
	PoolID   string
	Rarities []domain.Rarity
	PityOnly bool
	Q        string
}

func (p HistoryParams) encode() string {
	params := url.Values{}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		params.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.PoolID != "" {
		params.Set("pool_id", p.PoolID)
	}
	if len(p.Rarities) > 0 {
		parts := make([]string, len(p.Rarities))
		for i, r := range p.Rarities {
			parts[i] = string(r)
		}
		params.Set("rarities", strings.Join(parts, ","))
	}
	if p.PityOnly {
		params.Set("pity", "1")
	}
	if p.Q != "" {
		params.Set("q", p.Q)
	}
	return params.Encode()
}

// GetHistory retrieves a filtered page of the member's pulls
func (c *APIClient) GetHistory(ctx context.Context, userID string, params HistoryParams) (*domain.HistoryPage, error) {
	path := PathHistory
	if q := params.encode(); q != "" {
		path += "?" + q
	}

	var page domain.HistoryPage
	if err := c.getJSON(ctx, path, userID, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListPools retrieves the active pools
func (c *APIClient) ListPools(ctx context.Context) ([]domain.Pool, error) {
	var body struct {
		Pools []domain.Pool `json:"pools"`
	}
	if err := c.getJSON(ctx, PathPools, "", &body); err != nil {
		return nil, err
	}
	return body.Pools, nil
}

// GetStatus retrieves the member's balance and, for a pool, their pity and cooldowns
func (c *APIClient) GetStatus(ctx context.Context, userID, poolID string) (*domain.UserStatus, error) {
	path := PathStatus
	if poolID != "" {
		path += "?" + url.Values{"pool_id": {poolID}}.Encode()
	}

	var status domain.UserStatus
	if err := c.getJSON(ctx, path, userID, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Ping reports whether the API answers its liveness probe
func (c *APIClient) Ping(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, PathHealthz, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	return nil
}

func (c *APIClient) getJSON(ctx context.Context, path, userID string, out interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, userID, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiErrorCode returns the service's error code, if err carries one
func apiErrorCode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}
