// Package apiclient talks to the demo bank's JSON API on behalf of test
// fixtures: verifying that the UI really created an account, and deleting
// accounts again so suites stay rerunnable. It is registered in the container
// under "IApiClient".
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Customer mirrors the demo bank's customer resource.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

// Api is what fixtures depend on; tests substitute it through a scope
// override on "IApiClient".
type Api interface {
	CreateCustomer(ctx context.Context, form map[string]string) (*Customer, error)
	GetCustomer(ctx context.Context, username string) (*Customer, error)
	DeleteCustomer(ctx context.Context, username string) error
	Health(ctx context.Context) error
}

// Client is the real Api implementation.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ Api = (*Client)(nil)

// New creates a Client for the bank at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateCustomer registers an account through the JSON API, bypassing the
// UI. form uses the registration form's field names (see
// builders.Customer.FormValues).
func (c *Client) CreateCustomer(ctx context.Context, form map[string]string) (*Customer, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/customers", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: create customer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("apiclient: create customer: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Data Customer `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("apiclient: decode created customer: %w", err)
	}
	return &payload.Data, nil
}

// GetCustomer fetches a customer by username.
func (c *Client) GetCustomer(ctx context.Context, username string) (*Customer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/customers/"+username, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: get customer %q: %w", username, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("apiclient: get customer %q: unexpected status %d", username, resp.StatusCode)
	}

	var payload struct {
		Data Customer `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("apiclient: decode customer %q: %w", username, err)
	}
	return &payload.Data, nil
}

// DeleteCustomer removes a customer. Deleting an unknown username is an
// error, so fixtures notice when cleanup targets drifted.
func (c *Client) DeleteCustomer(ctx context.Context, username string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/customers/"+username, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: delete customer %q: %w", username, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("apiclient: delete customer %q: unexpected status %d", username, resp.StatusCode)
	}
	return nil
}

// Health probes the bank's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("apiclient: health: unexpected status %d", resp.StatusCode)
	}
	return nil
}
