package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func testClient(baseURL string) *Client {
	return &Client{
		keyID:     "rzp_test_key",
		keySecret: "rzp_test_secret",
		BaseURL:   baseURL,
		http:      resty.New().SetTimeout(5 * time.Second),
	}
}

func TestCreateOrder_Success(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_test_key" || pass != "rzp_test_secret" {
			t.Errorf("basic auth not forwarded")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "order_test_1", "amount": 31000})
	}))
	defer server.Close()

	client := testClient(server.URL)
	orderID, err := client.CreateOrder(31000, "INR", "order-7-receipt")
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if orderID != "order_test_1" {
		t.Fatalf("expected order_test_1, got %s", orderID)
	}
	if amount, _ := gotBody["amount"].(float64); int64(amount) != 31000 {
		t.Fatalf("gateway received amount %v, want 31000", gotBody["amount"])
	}
}

func TestCreateOrder_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	if _, err := client.CreateOrder(1000, "INR", "r1"); err == nil {
		t.Fatal("expected error on gateway 401")
	}
}

func TestCreateOrder_MissingOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"amount":1000}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	if _, err := client.CreateOrder(1000, "INR", "r1"); err == nil {
		t.Fatal("expected error when gateway response has no order id")
	}
}
