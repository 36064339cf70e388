package cart

import (
	"context"
	"fmt"

	"github.com/Henry881-hack/corries-shop/internal/catalog"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
	"github.com/Henry881-hack/corries-shop/pkg/metrics"
	"github.com/Henry881-hack/corries-shop/pkg/money"
	"github.com/shopspring/decimal"
)

// ClearOutcome reports what a Clear call actually did.
type ClearOutcome string

const (
	ClearOutcomeCleared      ClearOutcome = "cleared"
	ClearOutcomeDeclined     ClearOutcome = "declined"
	ClearOutcomeAlreadyEmpty ClearOutcome = "already_empty"
)

// Confirmer answers an interactive yes/no prompt.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type productResolver interface {
	ByID(id string) (catalog.Product, error)
}

type loginChecker interface {
	IsLoggedIn(ctx context.Context) (bool, error)
}

// Service owns the cart mapping. Every mutation persists immediately; the
// cart is shared across accounts on the same store, matching the
// shared-browser behavior of the storefront.
type Service struct {
	repo    *Repository
	catalog productResolver
	session loginChecker
	metrics *metrics.ShopMetrics
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	Repo    *Repository
	Catalog productResolver
	Session loginChecker
	Metrics *metrics.ShopMetrics
}

// NewService constructs a cart service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("product catalog is required")
	}
	if params.Session == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &Service{
		repo:    params.Repo,
		catalog: params.Catalog,
		session: params.Session,
		metrics: params.Metrics,
	}, nil
}

// Add puts one unit of the product into the cart, snapshotting its catalog
// fields on first add. Requires an authenticated session.
func (s *Service) Add(ctx context.Context, productID string) (*Entry, error) {
	loggedIn, err := s.session.IsLoggedIn(ctx)
	if err != nil {
		return nil, err
	}
	if !loggedIn {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "please login or signup to add items to cart")
	}

	product, err := s.catalog.ByID(productID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	entry, ok := entries[productID]
	if ok {
		entry.Quantity++
	} else {
		entry = Entry{Product: product, Quantity: 1}
	}
	entries[productID] = entry

	if err := s.repo.Save(ctx, entries); err != nil {
		return nil, err
	}
	s.metrics.IncCartOp("add")
	return &entry, nil
}

// Remove deletes the entry if present; removing an absent product is a
// no-op, not an error.
func (s *Service) Remove(ctx context.Context, productID string) error {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := entries[productID]; !ok {
		return nil
	}
	delete(entries, productID)
	if err := s.repo.Save(ctx, entries); err != nil {
		return err
	}
	s.metrics.IncCartOp("remove")
	return nil
}

// UpdateQuantity sets the quantity for an existing entry. A quantity of
// zero or less removes the entry; an absent entry is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	entry, ok := entries[productID]
	if !ok {
		return nil
	}
	entry.Quantity = quantity
	entries[productID] = entry
	if err := s.repo.Save(ctx, entries); err != nil {
		return err
	}
	s.metrics.IncCartOp("update_quantity")
	return nil
}

// Clear empties the cart after confirmation. An already-empty cart reports
// ClearOutcomeAlreadyEmpty so the caller can show a notice instead of a
// pointless prompt.
func (s *Service) Clear(ctx context.Context, confirm Confirmer) (ClearOutcome, error) {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return ClearOutcomeAlreadyEmpty, nil
	}
	if confirm == nil || !confirm.Confirm(ctx, "Are you sure you want to remove all items from your cart?") {
		return ClearOutcomeDeclined, nil
	}
	if err := s.repo.Save(ctx, map[string]Entry{}); err != nil {
		return "", err
	}
	s.metrics.IncCartOp("clear")
	return ClearOutcomeCleared, nil
}

// Items returns the current cart mapping.
func (s *Service) Items(ctx context.Context) (map[string]Entry, error) {
	return s.repo.Load(ctx)
}

// Total sums parsed price times quantity over all entries.
func (s *Service) Total(ctx context.Context) (decimal.Decimal, error) {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for id, entry := range entries {
		price, err := money.ParsePrice(entry.Price)
		if err != nil {
			return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "parse price for "+id)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(entry.Quantity))))
	}
	return total, nil
}

// Count sums quantities across entries.
func (s *Service) Count(ctx context.Context) (int, error) {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		count += entry.Quantity
	}
	return count, nil
}
