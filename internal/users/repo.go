package users

import (
	"context"
	"encoding/json"
	"strconv"

	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
	"github.com/Henry881-hack/corries-shop/pkg/kv"
)

const (
	usersKey  = "users"
	nextIDKey = "nextUserId"
)

// Repository persists the user list and id counter as two store keys.
// Swapping the store backend is the only change needed to move the
// directory onto a real database.
type Repository struct {
	store kv.Store
}

// NewRepository constructs a user repo bound to the provided store.
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Load returns every user plus whether the list key exists at all. Seeding
// keys off the second return: an empty-but-present list must not be reseeded.
func (r *Repository) Load(ctx context.Context) ([]User, bool, error) {
	raw, err := r.store.Get(ctx, usersKey)
	if err != nil {
		if kv.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load users")
	}
	var users []User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode users")
	}
	return users, true, nil
}

// Save overwrites the full user list.
func (r *Repository) Save(ctx context.Context, users []User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode users")
	}
	if err := r.store.Set(ctx, usersKey, string(raw)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save users")
	}
	return nil
}

// NextID reads the id counter; 1 when the counter was never written.
func (r *Repository) NextID(ctx context.Context) (int64, error) {
	raw, err := r.store.Get(ctx, nextIDKey)
	if err != nil {
		if kv.IsNotFound(err) {
			return 1, nil
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user id counter")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode user id counter")
	}
	return id, nil
}

// SetNextID persists the id counter.
func (r *Repository) SetNextID(ctx context.Context, id int64) error {
	if err := r.store.Set(ctx, nextIDKey, strconv.FormatInt(id, 10)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save user id counter")
	}
	return nil
}
