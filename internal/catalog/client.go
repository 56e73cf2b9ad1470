package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// locationHeader carries the selected store location to the POS backend, the
// same way the web client tags its requests.
const locationHeader = "x-local-id"

// Client fetches catalog data from the POS backend. The backend owns all
// catalog logic; this client only shapes requests and decodes responses.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Products lists the products offered by a location. Pass an empty locationID
// to use the backend's default location.
func (c *Client) Products(ctx context.Context, locationID string) ([]Product, error) {
	var products []Product
	if err := c.get(ctx, "/productos", locationID, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Locations lists the stores the customer can order from.
func (c *Client) Locations(ctx context.Context) ([]Location, error) {
	var locations []Location
	if err := c.get(ctx, "/locales", "", &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// Categories lists a location's product categories.
func (c *Client) Categories(ctx context.Context, locationID string) ([]Category, error) {
	var categories []Category
	if err := c.get(ctx, "/categorias", locationID, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) get(ctx context.Context, path, locationID string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if locationID != "" {
		req.Header.Set(locationHeader, locationID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("catalog %s failed: http=%d body=%s", path, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return nil
}
