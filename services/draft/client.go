package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"coworking/models"
)

// APIError is a non-success answer of the booking API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking api: %d %s", e.Status, e.Message)
}

// Client talks to the booking endpoints.
type Client struct {
	BaseURL string
	// APIKey, when set, is sent as Authorization: Bearer and apikey.
	APIKey string
	HTTP   *http.Client
}

// NewClient returns a Client for baseURL with a bounded HTTP timeout.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CheckAvailability asks for advisory availability. A 400 answer carries an
// availability body too and is returned as a result, not an error.
func (c *Client) CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (models.AvailabilityResult, error) {
	var res models.AvailabilityResult
	status, err := c.post(ctx, "/functions/v1/check-availability", req, &res)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	if status != http.StatusOK && status != http.StatusBadRequest {
		return models.AvailabilityResult{}, &APIError{Status: status, Message: res.Message}
	}
	return res, nil
}

// CreateBooking submits a booking and returns the stored record.
func (c *Client) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	var raw json.RawMessage
	status, err := c.post(ctx, "/functions/v1/create-booking", req, &raw)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, apiError(status, raw)
	}
	var res models.CreateBookingResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode booking response: %w", err)
	}
	return res.Booking, nil
}

// Quote asks the server for the tariff of a slot.
func (c *Client) Quote(ctx context.Context, req models.QuoteRequest) (models.QuoteResponse, error) {
	var raw json.RawMessage
	status, err := c.post(ctx, "/api/quote", req, &raw)
	if err != nil {
		return models.QuoteResponse{}, err
	}
	if status != http.StatusOK {
		return models.QuoteResponse{}, apiError(status, raw)
	}
	var res models.QuoteResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return models.QuoteResponse{}, fmt.Errorf("decode quote response: %w", err)
	}
	return res, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
		req.Header.Set("apikey", c.APIKey)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	return resp.StatusCode, nil
}

func apiError(status int, raw json.RawMessage) error {
	var body models.ErrorResponse
	_ = json.Unmarshal(raw, &body)
	return &APIError{Status: status, Message: body.Error}
}
