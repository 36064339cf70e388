package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Henry881-hack/corries-shop/internal/cart"
	"github.com/Henry881-hack/corries-shop/internal/catalog"
	"github.com/Henry881-hack/corries-shop/internal/checkout"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
)

type stubPayments struct {
	receipt *checkout.Receipt
	err     error
}

func (s *stubPayments) SubmitPayment(context.Context, checkout.PaymentRequest) (*checkout.Receipt, error) {
	return s.receipt, s.err
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	payments := &stubPayments{receipt: &checkout.Receipt{
		ConfirmationID: "abc-123",
		Message:        "Payment processed successfully!",
	}}
	carts := &stubCart{entries: map[string]cart.Entry{
		"p1": {Product: catalog.Product{ID: "p1", Price: "$10.00"}, Quantity: 2},
	}}
	handler := Checkout(payments, carts, nil)

	rec := postJSON(t, handler, "/checkout", `{
		"cardNumber": "4111111111111111",
		"expiryDate": "12/30",
		"cvc": "123",
		"cardName": "Jane Customer"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !carts.cleared {
		t.Fatal("expected cart cleared after successful payment")
	}

	var envelope struct {
		Data struct {
			Receipt checkout.Receipt `json:"receipt"`
			Total   string           `json:"total"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Receipt.ConfirmationID != "abc-123" {
		t.Fatalf("unexpected receipt %+v", envelope.Data.Receipt)
	}
	if envelope.Data.Total != "$20.00" {
		t.Fatalf("unexpected total %q", envelope.Data.Total)
	}
}

func TestCheckoutInvalidCardKeepsCart(t *testing.T) {
	payments := &stubPayments{err: pkgerrors.New(pkgerrors.CodeValidation, "invalid card details provided")}
	carts := &stubCart{entries: map[string]cart.Entry{
		"p1": {Product: catalog.Product{ID: "p1", Price: "$10.00"}, Quantity: 1},
	}}
	handler := Checkout(payments, carts, nil)

	rec := postJSON(t, handler, "/checkout", `{
		"cardNumber": "411111111111111",
		"expiryDate": "12/30",
		"cvc": "123",
		"cardName": "Jane Customer"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if carts.cleared {
		t.Fatal("failed payment must not clear the cart")
	}
}

func TestCheckoutInFlightConflict(t *testing.T) {
	payments := &stubPayments{err: pkgerrors.New(pkgerrors.CodeStateConflict, "a payment is already being processed")}
	handler := Checkout(payments, &stubCart{}, nil)

	rec := postJSON(t, handler, "/checkout", `{
		"cardNumber": "4111111111111111",
		"expiryDate": "12/30",
		"cvc": "123",
		"cardName": "Jane Customer"
	}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rec.Code)
	}
}
