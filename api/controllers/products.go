package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Henry881-hack/corries-shop/api/responses"
	"github.com/Henry881-hack/corries-shop/internal/catalog"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
	"github.com/Henry881-hack/corries-shop/pkg/logger"
)

// ProductCatalog is the slice of the catalog the product handlers need.
type ProductCatalog interface {
	List() []catalog.Product
	ByID(id string) (catalog.Product, error)
	ByCategory(category string) []catalog.Product
	Search(query string) []catalog.Product
}

// ProductList returns the full catalog, optionally filtered by category.
func ProductList(cat ProductCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		products := cat.List()
		if category := r.URL.Query().Get("category"); category != "" {
			products = cat.ByCategory(category)
		}
		if products == nil {
			products = []catalog.Product{}
		}

		responses.WriteSuccess(w, map[string]any{"products": products})
	}
}

// ProductDetail resolves a single product by id.
func ProductDetail(cat ProductCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		product, err := cat.ByID(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]catalog.Product{"product": product})
	}
}

// ProductSearch matches the query against names and categories.
func ProductSearch(cat ProductCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		query := r.URL.Query().Get("query")
		if query == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "query is required"))
			return
		}

		results := cat.Search(query)
		if results == nil {
			results = []catalog.Product{}
		}

		responses.WriteSuccess(w, map[string]any{"products": results})
	}
}
