// internal/api/client.go
//
// HTTP client for the IBMS inventory/billing backend. Every call is one
// request/response cycle; there is no retry, caching, or cancellation beyond
// what the caller's context provides.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"billdesk/internal/billing"
)

// Error is a server-rejected response: a non-2xx status, or an error field
// in an otherwise-2xx JSON body. Message preserves the backend's wording
// verbatim and may be empty.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server rejected request (status %d)", e.StatusCode)
}

// MessageOr returns the backend's message, or fallback when the backend sent
// none.
func (e *Error) MessageOr(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// Client talks to one backend base URL, e.g.
// http://localhost:8000/api/inventory.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL. A trailing slash is trimmed
// so paths can be joined verbatim.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListCustomers fetches the whole customer directory.
func (c *Client) ListCustomers(ctx context.Context) ([]billing.Customer, error) {
	var customers []billing.Customer
	if err := c.get(ctx, "/customers/", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// RegisterCustomer creates a new directory entry and returns it.
func (c *Client) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (billing.Customer, error) {
	var customer billing.Customer
	if err := c.post(ctx, "/customers/add/", req, &customer); err != nil {
		return billing.Customer{}, err
	}
	return customer, nil
}

// ListInventory fetches the whole catalog snapshot.
func (c *Client) ListInventory(ctx context.Context) ([]billing.Item, error) {
	var items []billing.Item
	if err := c.get(ctx, "/list/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateBill submits a composed bill. Stock decrement and total computation
// happen server-side.
func (c *Client) CreateBill(ctx context.Context, req CreateBillRequest) (CreateBillResponse, error) {
	var resp CreateBillResponse
	if err := c.post(ctx, "/bill/create/", req, &resp); err != nil {
		return CreateBillResponse{}, err
	}
	return resp, nil
}

// CustomerHistory fetches a customer's past bills, newest first.
func (c *Client) CustomerHistory(ctx context.Context, customerID int64) ([]BillSummary, error) {
	var bills []BillSummary
	if err := c.get(ctx, fmt.Sprintf("/customer/%d/history/", customerID), &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// BillDetails fetches one persisted bill with its line items.
func (c *Client) BillDetails(ctx context.Context, billID int64) (BillDetails, error) {
	var details BillDetails
	if err := c.get(ctx, fmt.Sprintf("/bill/%d/details/", billID), &details); err != nil {
		return BillDetails{}, err
	}
	return details, nil
}

// BillPDFURL returns the address of the server-rendered PDF for a bill. The
// document itself is opened in the browser, not fetched here.
func (c *Client) BillPDFURL(billID int64) string {
	return fmt.Sprintf("%s/bill/%d/pdf/", c.baseURL, billID)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("api: build request %s: %w", path, err)
	}
	return c.do(req, path, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("api: encode request %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("api: build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", req.Method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response %s: %w", path, err)
	}
	if msg, rejected := rejection(resp.StatusCode, data); rejected {
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: decode response %s: %w", path, err)
	}
	return nil
}

// rejection inspects a response for backend refusal: any non-2xx status, or
// an error field inside a 2xx JSON object.
func rejection(status int, body []byte) (string, bool) {
	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &envelope)
	if status < 200 || status >= 300 {
		return envelope.Error, true
	}
	if envelope.Error != "" {
		return envelope.Error, true
	}
	return "", false
}
