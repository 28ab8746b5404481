package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestListInventoryParsesDecimalStrings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/list/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":7,"name":"Pen","description":"","quantity":5,"price":"10.00"}]`))
	}))
	defer server.Close()

	items, err := New(server.URL).ListInventory(context.Background())
	if err != nil {
		t.Fatalf("list inventory: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if got := items[0].Price.StringFixed(2); got != "10.00" {
		t.Fatalf("price = %s, want 10.00", got)
	}
	if items[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", items[0].Quantity)
	}
}

func TestCreateBillSuccess(t *testing.T) {
	var captured CreateBillRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bill/create/" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatalf("expected a request id header")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"bill_id":99,"total":"30.00"}`))
	}))
	defer server.Close()

	req := CreateBillRequest{
		CustomerID: 42,
		Items: []BillItem{
			{InventoryID: 7, Quantity: 3, Price: decimal.RequireFromString("10.00")},
		},
	}
	resp, err := New(server.URL).CreateBill(context.Background(), req)
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}
	if resp.BillID != 99 {
		t.Fatalf("bill id = %d, want 99", resp.BillID)
	}
	if got := resp.Total.StringFixed(2); got != "30.00" {
		t.Fatalf("total = %s, want 30.00", got)
	}
	if captured.CustomerID != 42 || len(captured.Items) != 1 || captured.Items[0].InventoryID != 7 {
		t.Fatalf("unexpected submitted payload: %+v", captured)
	}
}

func TestCreateBillServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Not enough stock for Pen"}`))
	}))
	defer server.Close()

	_, err := New(server.URL).CreateBill(context.Background(), CreateBillRequest{CustomerID: 42})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "Not enough stock for Pen" {
		t.Fatalf("message = %q", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", apiErr.StatusCode)
	}
}

func TestErrorFieldInOKBodyIsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"Customer already exists."}`))
	}))
	defer server.Close()

	_, err := New(server.URL).RegisterCustomer(context.Background(), RegisterCustomerRequest{Name: "A", Email: "a@b.c", Phone: "1"})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "Customer already exists." {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestRejectionWithoutMessageUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := New(server.URL).ListCustomers(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if got := apiErr.MessageOr("Billing failed."); got != "Billing failed." {
		t.Fatalf("fallback = %q", got)
	}
}

func TestTransportErrorIsNotServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := New(server.URL).ListCustomers(context.Background())
	if err == nil {
		t.Fatalf("expected a transport error")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failures must not be *Error: %v", err)
	}
}

func TestCustomerHistoryAndDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/customer/42/history/":
			_, _ = w.Write([]byte(`[{"id":99,"date":"2026-08-30T10:00:00Z","total":"30.00"}]`))
		case "/bill/99/details/":
			_, _ = w.Write([]byte(`{"id":99,"date":"2026-08-30T10:00:00Z","total":"30.00",` +
				`"customer":{"id":42,"name":"Asha Rao","email":"asha@example.com","phone":"9876543210"},` +
				`"items":[{"id":1,"name":"Pen","quantity":3,"price":"10.00","total":"30.00"}]}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := New(server.URL)
	bills, err := client.CustomerHistory(context.Background(), 42)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(bills) != 1 || bills[0].ID != 99 {
		t.Fatalf("unexpected history: %+v", bills)
	}
	details, err := client.BillDetails(context.Background(), 99)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if details.Customer.Name != "Asha Rao" || len(details.Items) != 1 {
		t.Fatalf("unexpected details: %+v", details)
	}
	if got := details.Items[0].Total.StringFixed(2); got != "30.00" {
		t.Fatalf("item total = %s, want 30.00", got)
	}
}

func TestBillPDFURL(t *testing.T) {
	client := New("http://localhost:8000/api/inventory/")
	if got := client.BillPDFURL(99); got != "http://localhost:8000/api/inventory/bill/99/pdf/" {
		t.Fatalf("pdf url = %s", got)
	}
}
