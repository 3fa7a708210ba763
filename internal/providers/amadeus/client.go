package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Client wraps the Amadeus self-service APIs. OAuth tokens are cached
// under a mutex and refreshed slightly before expiry.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(clientID, clientSecret, baseURL string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Configured reports whether credentials were supplied. Callers treat an
// unconfigured client as "no flight data", not an error.
func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

func (c *Client) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	// Refresh 30 seconds early to avoid racing the provider's clock.
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *Client) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// SearchFlights queries the Flight Offers Search API. Provider ordering
// is preserved; no re-sort happens here.
func (c *Client) SearchFlights(ctx context.Context, params SearchParams) ([]FlightOffer, error) {
	if !c.Configured() {
		return []FlightOffer{}, nil
	}

	q := url.Values{}
	q.Set("originLocationCode", params.OriginLocationCode)
	q.Set("destinationLocationCode", params.DestinationLocationCode)
	q.Set("departureDate", params.DepartureDate)
	q.Set("adults", strconv.Itoa(params.Adults))
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	if params.Children > 0 {
		q.Set("children", strconv.Itoa(params.Children))
	}
	if params.Infants > 0 {
		q.Set("infants", strconv.Itoa(params.Infants))
	}
	if params.TravelClass != "" {
		q.Set("travelClass", params.TravelClass)
	}
	if params.CurrencyCode != "" {
		q.Set("currencyCode", params.CurrencyCode)
	}
	max := params.Max
	if max <= 0 {
		max = 20
	}
	q.Set("max", strconv.Itoa(max))

	body, err := c.doRequest(ctx, "/v2/shopping/flight-offers?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	var out struct {
		Data []FlightOffer `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}
	return out.Data, nil
}

// SearchAirports powers airport/city autocomplete. Failures degrade to an
// empty list so a flaky provider never breaks the search form.
func (c *Client) SearchAirports(ctx context.Context, keyword string) ([]Location, error) {
	if !c.Configured() {
		return []Location{}, nil
	}

	q := url.Values{}
	q.Set("subType", "AIRPORT,CITY")
	q.Set("keyword", keyword)
	q.Set("max", "10")

	body, err := c.doRequest(ctx, "/v1/reference-data/locations?"+q.Encode())
	if err != nil {
		return []Location{}, nil
	}

	var out struct {
		Data []Location `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return []Location{}, nil
	}
	return out.Data, nil
}
