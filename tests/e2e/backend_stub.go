//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"ticket-monarch/internal/domain/checkout"
)

// StubBackend stands in for the order backend. Checkout answers are
// scripted per test; submitted forms are recorded.
type StubBackend struct {
	server *httptest.Server

	mu             sync.Mutex
	checkoutStatus int
	checkoutBody   any
	submitted      []checkout.FormValues
	orders         []map[string]any
}

func NewStubBackend(t *testing.T) *StubBackend {
	b := &StubBackend{}
	b.Reset()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/checkout", b.handleCheckout)
	mux.HandleFunc("GET /api/orders", b.handleListOrders)
	mux.HandleFunc("POST /api/orders", b.handleCreateOrder)
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func (b *StubBackend) URL() string {
	return b.server.URL
}

func (b *StubBackend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.checkoutStatus = http.StatusOK
	b.checkoutBody = map[string]any{"success": true, "message": "Checkout successful!"}
	b.submitted = nil
	b.orders = nil
}

// RespondToCheckout scripts the next checkout answers.
func (b *StubBackend) RespondToCheckout(status int, body any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.checkoutStatus = status
	b.checkoutBody = body
}

func (b *StubBackend) Submitted() []checkout.FormValues {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]checkout.FormValues, len(b.submitted))
	copy(out, b.submitted)
	return out
}

func (b *StubBackend) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var form checkout.FormValues
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
		return
	}

	b.mu.Lock()
	b.submitted = append(b.submitted, form)
	status, body := b.checkoutStatus, b.checkoutBody
	b.mu.Unlock()

	writeJSON(w, status, body)
}

func (b *StubBackend) handleListOrders(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	orders := append([]map[string]any{}, b.orders...)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": orders, "count": len(orders)})
}

func (b *StubBackend) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var order map[string]any
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
		return
	}

	b.mu.Lock()
	order["id"] = len(b.orders) + 1
	b.orders = append(b.orders, order)
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "order": order})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
