package orders

import (
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

// Default HTTP timeout for orders API calls.
const defaultTimeout = 8 * time.Second

// ErrOrderNotReady is returned when the order resource has not been created
// yet (the payment webhook races the redirect back to the confirmation
// page). Callers may retry; this client does not.
var ErrOrderNotReady = errors.New("orders: order not ready")

// Client fetches basket, checkout and order resources from the orders API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs an API client. When baseURL is empty, the client
// serves deterministic mock data, which keeps local development and handler
// tests free of a running backend.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// GetBasket retrieves the current basket for the session's token.
func (c *Client) GetBasket(ctx context.Context, token string) (Basket, error) {
	if c == nil || c.baseURL == "" {
		return fakeBasket(), nil
	}
	var basket Basket
	if err := c.getJSON(ctx, token, &basket, "basket"); err != nil {
		return Basket{}, fmt.Errorf("orders: get basket: %w", err)
	}
	return basket, nil
}

// GetCheckout retrieves a checkout resource by its reference.
func (c *Client) GetCheckout(ctx context.Context, token, reference string) (Checkout, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return Checkout{}, errors.New("orders: missing checkout reference")
	}
	if c == nil || c.baseURL == "" {
		return fakeCheckout(reference), nil
	}
	var checkout Checkout
	if err := c.getJSON(ctx, token, &checkout, "checkouts", reference); err != nil {
		return Checkout{}, fmt.Errorf("orders: get checkout %s: %w", reference, err)
	}
	return checkout, nil
}

// GetOrder retrieves a completed order by its reference.
func (c *Client) GetOrder(ctx context.Context, token, reference string) (Order, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return Order{}, errors.New("orders: missing order reference")
	}
	if c == nil || c.baseURL == "" {
		return fakeOrder(reference), nil
	}
	var order Order
	if err := c.getJSON(ctx, token, &order, "orders", reference); err != nil {
		return Order{}, fmt.Errorf("orders: get order %s: %w", reference, err)
	}
	return order, nil
}

func (c *Client) getJSON(ctx context.Context, token string, out any, parts ...string) error {
	endpoint, err := url.JoinPath(c.baseURL, parts...)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrOrderNotReady
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("status %d: %s", resp.StatusCode, drainError(resp.Body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
