package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const locationHeader = "x-local-id"

// ErrNotFound reports that the backend has no record for the requested order.
var ErrNotFound = errors.New("order not found")

// Client talks to the POS backend's sales endpoints. Order persistence is
// entirely the backend's job; this client submits and reads.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Create places a sale and returns the backend's record of it.
func (c *Client) Create(ctx context.Context, req CreateRequest) (Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Order{}, fmt.Errorf("encode order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ventasCliente", bytes.NewBuffer(body))
	if err != nil {
		return Order{}, fmt.Errorf("build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.LocationID != "" {
		httpReq.Header.Set(locationHeader, req.LocationID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Order{}, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return Order{}, fmt.Errorf("create order failed: http=%d body=%s", resp.StatusCode, string(raw))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return Order{}, fmt.Errorf("decode created order: %w", err)
	}
	return order, nil
}

// History lists the customer's past orders, newest first.
func (c *Client) History(ctx context.Context, customerEmail string) ([]Order, error) {
	path := "/ventasCliente?cliente_email=" + url.QueryEscape(customerEmail)

	var out []Order
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Detail fetches one order by id.
func (c *Client) Detail(ctx context.Context, orderID string) (Order, error) {
	var out Order
	if err := c.get(ctx, "/ventasCliente/"+url.PathEscape(orderID), &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build orders request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("orders request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("orders %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("orders %s failed: http=%d body=%s", path, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode orders %s: %w", path, err)
	}
	return nil
}
