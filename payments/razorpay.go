package payments

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// Client talks to the Razorpay orders API. Credentials come from the
// environment; BaseURL is overridable so tests can point it at a
// local server.
type Client struct {
	keyID     string
	keySecret string
	BaseURL   string
	http      *resty.Client
}

// NewClient builds a gateway client from RAZORPAY_KEY_ID and
// RAZORPAY_KEY_SECRET. Missing credentials are a configuration error.
func NewClient() (*Client, error) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("razorpay credentials are not set")
	}
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		BaseURL:   defaultBaseURL,
		http:      resty.New().SetTimeout(30 * time.Second),
	}, nil
}

// WebhookSecret returns the shared secret used to verify gateway
// callbacks. In Razorpay's scheme this is the API key secret.
func (c *Client) WebhookSecret() string {
	return c.keySecret
}

// CreateOrder opens a gateway-side order for the given amount in
// paise and returns its id. The amount is always computed by the
// caller from the stored domain record, never taken from a client.
func (c *Client) CreateOrder(amountPaise int64, currency, receipt string) (string, error) {
	body := map[string]any{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}

	resp, err := c.http.R().
		SetBasicAuth(c.keyID, c.keySecret).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(c.BaseURL + "/orders")
	if err != nil {
		return "", fmt.Errorf("gateway order request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("gateway order request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var orderResp map[string]any
	if err := json.Unmarshal(resp.Body(), &orderResp); err != nil {
		return "", fmt.Errorf("failed to parse gateway order response: %w", err)
	}

	orderID, ok := orderResp["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("order id not found in gateway response: %v", orderResp)
	}
	return orderID, nil
}
