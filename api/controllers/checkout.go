package controllers

import (
	"context"
	"net/http"

	"github.com/Henry881-hack/corries-shop/api/responses"
	"github.com/Henry881-hack/corries-shop/api/validators"
	"github.com/Henry881-hack/corries-shop/internal/checkout"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
	"github.com/Henry881-hack/corries-shop/pkg/logger"
	"github.com/Henry881-hack/corries-shop/pkg/money"
)

// PaymentService is the slice of the checkout simulator the handler needs.
type PaymentService interface {
	SubmitPayment(ctx context.Context, req checkout.PaymentRequest) (*checkout.Receipt, error)
}

type checkoutRequest struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVC        string `json:"cvc"`
	CardName   string `json:"cardName"`
}

// Checkout charges the simulated card and empties the cart on success,
// mirroring the storefront's post-payment flow.
func Checkout(payments PaymentService, carts CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payments == nil || carts == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		total, err := carts.Total(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := payments.SubmitPayment(r.Context(), checkout.PaymentRequest{
			CardNumber: body.CardNumber,
			ExpiryDate: body.ExpiryDate,
			CVC:        body.CVC,
			CardName:   body.CardName,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := carts.Clear(r.Context(), confirmFlag(true)); err != nil {
			if logg != nil {
				logg.Error(r.Context(), "cart clear after payment failed", err)
			}
		}

		responses.WriteSuccess(w, map[string]any{
			"receipt": receipt,
			"total":   money.FormatUSD(total),
		})
	}
}
