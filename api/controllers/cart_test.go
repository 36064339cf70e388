package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Henry881-hack/corries-shop/internal/cart"
	"github.com/Henry881-hack/corries-shop/internal/catalog"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
)

type stubCart struct {
	entries map[string]cart.Entry
	addErr  error
	cleared bool
	outcome cart.ClearOutcome
}

func (s *stubCart) Add(_ context.Context, productID string) (*cart.Entry, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	entry := cart.Entry{Product: catalog.Product{ID: productID, Price: "$10.00"}, Quantity: 1}
	if s.entries == nil {
		s.entries = map[string]cart.Entry{}
	}
	s.entries[productID] = entry
	return &entry, nil
}

func (s *stubCart) Remove(_ context.Context, productID string) error {
	delete(s.entries, productID)
	return nil
}

func (s *stubCart) UpdateQuantity(_ context.Context, productID string, quantity int) error {
	if entry, ok := s.entries[productID]; ok {
		entry.Quantity = quantity
		s.entries[productID] = entry
	}
	return nil
}

func (s *stubCart) Clear(ctx context.Context, confirm cart.Confirmer) (cart.ClearOutcome, error) {
	if s.outcome != "" {
		return s.outcome, nil
	}
	if !confirm.Confirm(ctx, "Are you sure you want to remove all items from your cart?") {
		return cart.ClearOutcomeDeclined, nil
	}
	s.entries = map[string]cart.Entry{}
	s.cleared = true
	return cart.ClearOutcomeCleared, nil
}

func (s *stubCart) Items(context.Context) (map[string]cart.Entry, error) {
	if s.entries == nil {
		return map[string]cart.Entry{}, nil
	}
	return s.entries, nil
}

func (s *stubCart) Total(context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, entry := range s.entries {
		total = total.Add(decimal.NewFromInt(10).Mul(decimal.NewFromInt(int64(entry.Quantity))))
	}
	return total, nil
}

func (s *stubCart) Count(context.Context) (int, error) {
	count := 0
	for _, entry := range s.entries {
		count += entry.Quantity
	}
	return count, nil
}

func postJSONMethod(t *testing.T, handler http.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCartAddItemSuccess(t *testing.T) {
	svc := &stubCart{}
	handler := CartAddItem(svc, &stubSession{}, nil)

	rec := postJSON(t, handler, "/cart/items", `{"productId": "p1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if _, ok := svc.entries["p1"]; !ok {
		t.Fatal("expected entry recorded")
	}
}

func TestCartAddItemRequiresProductID(t *testing.T) {
	handler := CartAddItem(&stubCart{}, &stubSession{}, nil)

	rec := postJSON(t, handler, "/cart/items", `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCartAddItemRequiresLogin(t *testing.T) {
	svc := &stubCart{addErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "please login or signup to add items to cart")}
	handler := CartAddItem(svc, &stubSession{}, nil)

	rec := postJSON(t, handler, "/cart/items", `{"productId": "p1"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestCartAddItemBlockedRemembersOrigin(t *testing.T) {
	svc := &stubCart{addErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "please login or signup to add items to cart")}
	sess := &stubSession{}
	handler := CartAddItem(svc, sess, nil)

	rec := postJSON(t, handler, "/cart/items", `{"productId": "p1", "origin": "shop.html"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
	if sess.redirect != "shop.html" {
		t.Fatalf("expected origin remembered, got %q", sess.redirect)
	}
}

func TestCartAddItemOtherErrorsSkipRedirect(t *testing.T) {
	svc := &stubCart{addErr: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	sess := &stubSession{}
	handler := CartAddItem(svc, sess, nil)

	rec := postJSON(t, handler, "/cart/items", `{"productId": "ghost", "origin": "shop.html"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	if sess.redirect != "" {
		t.Fatalf("unexpected remembered redirect %q", sess.redirect)
	}
}

func TestCartFetchFormatsTotal(t *testing.T) {
	svc := &stubCart{entries: map[string]cart.Entry{
		"p1": {Product: catalog.Product{ID: "p1", Price: "$10.00"}, Quantity: 2},
	}}
	handler := CartFetch(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data struct {
			Total string `json:"total"`
			Count int    `json:"count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Total != "$20.00" {
		t.Fatalf("unexpected total %q", envelope.Data.Total)
	}
	if envelope.Data.Count != 2 {
		t.Fatalf("unexpected count %d", envelope.Data.Count)
	}
}

func TestCartClearPassesConfirmation(t *testing.T) {
	svc := &stubCart{entries: map[string]cart.Entry{
		"p1": {Product: catalog.Product{ID: "p1"}, Quantity: 1},
	}}
	handler := CartClear(svc, nil)

	rec := postJSONMethod(t, handler, http.MethodDelete, "/cart", `{"confirmed": false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.cleared {
		t.Fatal("declined clear must keep the cart")
	}

	rec = postJSONMethod(t, handler, http.MethodDelete, "/cart", `{"confirmed": true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !svc.cleared {
		t.Fatal("confirmed clear did not empty the cart")
	}
}

func TestCartCount(t *testing.T) {
	svc := &stubCart{entries: map[string]cart.Entry{
		"p1": {Product: catalog.Product{ID: "p1"}, Quantity: 3},
	}}
	handler := CartCount(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/cart/count", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var envelope struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Count != 3 {
		t.Fatalf("unexpected count %d", envelope.Data.Count)
	}
}
