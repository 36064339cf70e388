package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Henry881-hack/corries-shop/api/responses"
	"github.com/Henry881-hack/corries-shop/api/validators"
	"github.com/Henry881-hack/corries-shop/internal/cart"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
	"github.com/Henry881-hack/corries-shop/pkg/logger"
	"github.com/Henry881-hack/corries-shop/pkg/money"
)

// CartService is the slice of the cart manager the handlers need.
type CartService interface {
	Add(ctx context.Context, productID string) (*cart.Entry, error)
	Remove(ctx context.Context, productID string) error
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	Clear(ctx context.Context, confirm cart.Confirmer) (cart.ClearOutcome, error)
	Items(ctx context.Context) (map[string]cart.Entry, error)
	Total(ctx context.Context) (decimal.Decimal, error)
	Count(ctx context.Context) (int, error)
}

type cartAddRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Origin    string `json:"origin"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartClearRequest struct {
	Confirmed bool `json:"confirmed"`
}

func writeCartState(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, svc CartService) {
	items, err := svc.Items(ctx)
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return
	}
	total, err := svc.Total(ctx)
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return
	}
	count := 0
	for _, entry := range items {
		count += entry.Quantity
	}

	responses.WriteSuccess(w, map[string]any{
		"items": items,
		"total": money.FormatUSD(total),
		"count": count,
	})
}

// CartFetch returns the cart contents with the formatted total.
func CartFetch(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		writeCartState(r.Context(), logg, w, svc)
	}
}

// CartAddItem puts one unit of a product into the cart. When the add hits the
// login wall, the caller's origin page is remembered so the next login can
// send the customer back to it.
func CartAddItem(svc CartService, sess SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || sess == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var body cartAddRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.Add(r.Context(), body.ProductID)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeUnauthorized && body.Origin != "" {
				if remErr := sess.RememberRedirect(r.Context(), body.Origin); remErr != nil && logg != nil {
					logg.Error(r.Context(), "remember redirect failed", remErr)
				}
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]*cart.Entry{"item": entry})
	}
}

// CartUpdateItem sets the quantity for a cart line; zero removes it.
func CartUpdateItem(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var body cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateQuantity(r.Context(), chi.URLParam(r, "productId"), body.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeCartState(r.Context(), logg, w, svc)
	}
}

// CartRemoveItem deletes a cart line.
func CartRemoveItem(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		if err := svc.Remove(r.Context(), chi.URLParam(r, "productId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeCartState(r.Context(), logg, w, svc)
	}
}

// CartClear empties the cart when the caller confirms the prompt.
func CartClear(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var body cartClearRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome, err := svc.Clear(r.Context(), confirmFlag(body.Confirmed))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"outcome": string(outcome)})
	}
}

// CartCount returns the summed quantity across entries, for navbar badges.
func CartCount(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		count, err := svc.Count(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]int{"count": count})
	}
}
