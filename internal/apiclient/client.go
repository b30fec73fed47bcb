package apiclient

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
	"time"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

// APIError is a non-2xx answer from the clicker API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s (status %d)", e.Message, e.StatusCode)
}

// Client handles communication with the Kiss Clicker API
type Client struct {
	BaseURL string
	HTTP    *http.Client
	APIKey  string

	// RetryDelay is the first backoff step; each retry doubles it
	RetryDelay time.Duration
}

// New creates a new API client
func New(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: DefaultTimeout,
		},
		APIKey:     apiKey,
		RetryDelay: DefaultRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx
// answers with exponential backoff
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay * time.Duration(1<<uint(attempt-1))
			slog.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set(HeaderAPIKey, c.APIKey)
		}

		resp, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		lastErr = readAPIError(resp)
		resp.Body.Close()
		slog.Warn(LogMsgServerErrorRetry, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call performs a request and decodes a 2xx body into out
func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func readAPIError(resp *http.Response) *APIError {
	var errResp struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
}

func playerPath(playerID, action string) string {
	return fmt.Sprintf("%s/%s/%s", PathPrefix, url.PathEscape(playerID), action)
}

// Health reports whether the API answers its liveness check
func (c *Client) Health(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/healthz", nil, nil)
}

// GetTables fetches the content tables
func (c *Client) GetTables(ctx context.Context) (*domain.ClickerTables, error) {
	var tables domain.ClickerTables
	if err := c.call(ctx, http.MethodGet, PathPrefix+"/tables", nil, &tables); err != nil {
		return nil, err
	}
	return &tables, nil
}

// GetState fetches a player's snapshot
func (c *Client) GetState(ctx context.Context, playerID string) (*domain.ClickerSnapshot, error) {
	var snap domain.ClickerSnapshot
	if err := c.call(ctx, http.MethodGet, playerPath(playerID, "state"), nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Click applies one click for the player
func (c *Client) Click(ctx context.Context, playerID string) (*domain.ClickOutcome, error) {
	var out domain.ClickOutcome
	if err := c.call(ctx, http.MethodPost, playerPath(playerID, "click"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PurchaseUpgrade buys an upgrade. A rejected purchase (already owned or
// unaffordable) is returned as an outcome whose Result.Status says why,
// together with the APIError.
func (c *Client) PurchaseUpgrade(ctx context.Context, playerID string, power int) (*domain.PurchaseOutcome, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, playerPath(playerID, "upgrade"), map[string]int{"power": power})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		var out domain.PurchaseOutcome
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &out, nil
	}

	var rejected struct {
		Error  string                 `json:"error"`
		Result *domain.PurchaseResult `json:"result"`
	}
	if err := json.Unmarshal(data, &rejected); err != nil || rejected.Error == "" {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: rejected.Error}
	if rejected.Result == nil {
		return nil, apiErr
	}
	return &domain.PurchaseOutcome{Result: *rejected.Result}, apiErr
}

// DamageBoss deals damage to the player's active boss
func (c *Client) DamageBoss(ctx context.Context, playerID string, amount int) (*domain.BossOutcome, error) {
	var out domain.BossOutcome
	if err := c.call(ctx, http.MethodPost, playerPath(playerID, "boss/damage"), map[string]int{"amount": amount}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reset wipes the player's progress
func (c *Client) Reset(ctx context.Context, playerID string, confirm bool) (*domain.ClickerSnapshot, error) {
	var snap domain.ClickerSnapshot
	if err := c.call(ctx, http.MethodPost, playerPath(playerID, "reset"), map[string]bool{"confirm": confirm}, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// StatusOf extracts the HTTP status of an APIError, 0 otherwise
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
