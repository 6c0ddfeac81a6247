package vendorapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = 30 * time.Second

	// requestsPerSecond is the proactive throttle on the shared backend.
	requestsPerSecond = 5

	// maxErrorBody limits how much of an error response body is kept.
	maxErrorBody = 512
)

// Ensure Client implements the interface.
var _ driven.VendorAPI = (*Client)(nil)

// Client calls the remote vendor management service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client. Useful for testing.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// NewClient creates a client for the service rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultTimeout,
		limiter:    rate.NewLimiter(requestsPerSecond, requestsPerSecond),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns all vendors.
func (c *Client) List(ctx context.Context) ([]domain.Vendor, error) {
	var records []wireVendor
	if err := c.do(ctx, "list vendors", http.MethodGet, "/Vendor/GetAllVendors", nil, &records); err != nil {
		return nil, err
	}
	return fromWireSlice(records), nil
}

// ListByType returns vendors of the given type.
func (c *Client) ListByType(ctx context.Context, t domain.VendorType) ([]domain.Vendor, error) {
	path := "/Vendor/GetVendorsByType/" + url.PathEscape(string(t))
	var records []wireVendor
	if err := c.do(ctx, "list vendors by type", http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return fromWireSlice(records), nil
}

// Get retrieves a single vendor by ID.
func (c *Client) Get(ctx context.Context, id string) (*domain.Vendor, error) {
	path := "/Vendor/GetVendorById/" + url.PathEscape(id)
	var record wireVendor
	if err := c.do(ctx, "get vendor", http.MethodGet, path, nil, &record); err != nil {
		return nil, err
	}
	v := fromWire(record)
	return &v, nil
}

// Create registers a new vendor and returns the created record.
func (c *Client) Create(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	payload := toWire(v)
	payload.VendorManagementID = "" // identity is server-assigned

	var record wireVendor
	if err := c.do(ctx, "create vendor", http.MethodPost, "/Vendor/CreateVendor", payload, &record); err != nil {
		return nil, err
	}
	created := fromWire(record)
	return &created, nil
}

// Update replaces an existing vendor record.
func (c *Client) Update(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	if v.ID == "" {
		return nil, fmt.Errorf("update vendor: %w: missing id", domain.ErrInvalidInput)
	}

	var record wireVendor
	if err := c.do(ctx, "update vendor", http.MethodPut, "/Vendor/UpdateVendor", toWire(v), &record); err != nil {
		return nil, err
	}
	updated := fromWire(record)
	return &updated, nil
}

// Delete removes a vendor by ID. The deletion acknowledgement body is
// discarded.
func (c *Client) Delete(ctx context.Context, id string) error {
	path := "/Vendor/DeleteVendor/" + url.PathEscape(id)
	return c.do(ctx, "delete vendor", http.MethodDelete, path, nil, nil)
}

// do performs one HTTP exchange. Every call gets its own timeout; a
// timeout surfaces as an *APIError like any other transport failure.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return &APIError{Op: op, Err: err}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Op: op, Err: fmt.Errorf("encoding request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// fromWireSlice maps a list response into domain vendors.
func fromWireSlice(records []wireVendor) []domain.Vendor {
	vendors := make([]domain.Vendor, 0, len(records))
	for _, w := range records {
		vendors = append(vendors, fromWire(w))
	}
	return vendors
}
