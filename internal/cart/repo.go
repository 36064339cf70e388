package cart

import (
	"context"
	"encoding/json"

	"github.com/Henry881-hack/corries-shop/internal/catalog"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
	"github.com/Henry881-hack/corries-shop/pkg/kv"
)

const cartKey = "cart"

// Entry is one cart line: the product snapshot taken at add time plus the
// quantity. Quantity is always >= 1; an entry that would drop to zero is
// removed instead.
type Entry struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Repository persists the whole cart as a single store key, product id to
// entry.
type Repository struct {
	store kv.Store
}

// NewRepository constructs a cart repo bound to the provided store.
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Load returns the cart mapping; an absent key is an empty cart.
func (r *Repository) Load(ctx context.Context) (map[string]Entry, error) {
	raw, err := r.store.Get(ctx, cartKey)
	if err != nil {
		if kv.IsNotFound(err) {
			return map[string]Entry{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	entries := map[string]Entry{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode cart")
	}
	return entries, nil
}

// Save overwrites the cart mapping.
func (r *Repository) Save(ctx context.Context, entries map[string]Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := r.store.Set(ctx, cartKey, string(raw)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}
