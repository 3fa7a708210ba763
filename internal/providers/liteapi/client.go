package liteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the LiteAPI hotel inventory. Search endpoints live on
// the data host, prebook/book on the booking host.
type Client struct {
	apiKey      string
	baseURL     string
	bookBaseURL string
	httpClient  *http.Client
}

func NewClient(apiKey, baseURL, bookBaseURL string) *Client {
	return &Client{
		apiKey:      apiKey,
		baseURL:     baseURL,
		bookBaseURL: bookBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, rawURL string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("invalid response from liteapi: %w", err)
		}
	}
	return nil
}

// parseAPIError extracts {error: {code, message, description}} if present,
// falling back to the raw body as the message.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Raw: body}

	var envelope struct {
		Error struct {
			Code        int    `json:"code"`
			Message     string `json:"message"`
			Description string `json:"description"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Description = envelope.Error.Description
		if apiErr.Message == "" {
			apiErr.Message = envelope.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = string(body)
	}
	return apiErr
}

func (c *Client) SearchPlaces(ctx context.Context, query string) (*PlacesResponse, error) {
	u := fmt.Sprintf("%s/data/places?textQuery=%s", c.baseURL, url.QueryEscape(query))
	var out PlacesResponse
	if err := c.do(ctx, http.MethodGet, u, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to search places: %w", err)
	}
	return &out, nil
}

func (c *Client) SearchRates(ctx context.Context, req RatesRequest) (*RatesResponse, error) {
	if req.Currency == "" {
		req.Currency = "USD"
	}
	if req.GuestNationality == "" {
		req.GuestNationality = "US"
	}
	if req.MaxRatesPerHotel == 0 {
		req.MaxRatesPerHotel = 1
	}

	var out RatesResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/hotels/rates", req, &out); err != nil {
		return nil, fmt.Errorf("failed to search rates: %w", err)
	}
	return &out, nil
}

func (c *Client) GetHotelDetails(ctx context.Context, hotelID string) (map[string]any, error) {
	u := fmt.Sprintf("%s/data/hotel?hotelId=%s&timeout=4", c.baseURL, url.QueryEscape(hotelID))
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, u, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get hotel details: %w", err)
	}
	return out, nil
}

// Prebook obtains a time-limited price lock for an offer. The response is
// passed through untouched; the payment SDK on the client consumes it.
func (c *Client) Prebook(ctx context.Context, offerID string) (map[string]any, error) {
	body := map[string]any{
		"usePaymentSdk": true,
		"offerId":       offerID,
	}
	var out map[string]any
	if err := c.do(ctx, http.MethodPost, c.bookBaseURL+"/rates/prebook", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Book finalizes a prebooked offer. Upstream failures come back as
// *APIError so callers can inspect the provider code.
func (c *Client) Book(ctx context.Context, req BookRequest) (map[string]any, error) {
	if req.Payment.Method == "" {
		req.Payment.Method = "TRANSACTION_ID"
	}
	var out map[string]any
	if err := c.do(ctx, http.MethodPost, c.bookBaseURL+"/rates/book", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
