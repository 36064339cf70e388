package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Henry881-hack/corries-shop/internal/users"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
	"github.com/Henry881-hack/corries-shop/pkg/kv"
)

const (
	currentUserIDKey   = "currentUserId"
	currentUsernameKey = "currentUsername"
	loggedInKey        = "isLoggedIn"
	redirectKey        = "redirectAfterLogin"
)

// Confirmer answers an interactive yes/no prompt. The HTTP layer backs it
// with an explicit confirmation flag from the client.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type userResolver interface {
	ByID(ctx context.Context, id int64) (*users.User, error)
}

// Manager tracks the single authenticated user for this store. One session
// per store origin; not safe against concurrent writers by design.
type Manager struct {
	store kv.Store
	users userResolver
}

// NewManager builds a session manager over the store and user directory.
func NewManager(store kv.Store, users userResolver) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if users == nil {
		return nil, fmt.Errorf("user resolver is required")
	}
	return &Manager{store: store, users: users}, nil
}

// SetCurrentUser persists or clears the current user id and username.
func (m *Manager) SetCurrentUser(ctx context.Context, user *users.User) error {
	if user == nil {
		if err := m.store.Delete(ctx, currentUserIDKey); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear current user id")
		}
		if err := m.store.Delete(ctx, currentUsernameKey); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear current username")
		}
		return nil
	}
	if err := m.store.Set(ctx, currentUserIDKey, strconv.FormatInt(user.ID, 10)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save current user id")
	}
	if err := m.store.Set(ctx, currentUsernameKey, user.Username); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save current username")
	}
	return nil
}

// CurrentUser resolves the persisted id against the user directory. A stale
// or missing id yields nil, not an error.
func (m *Manager) CurrentUser(ctx context.Context) (*users.User, error) {
	raw, err := m.store.Get(ctx, currentUserIDKey)
	if err != nil {
		if kv.IsNotFound(err) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load current user id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, nil
	}
	return m.users.ByID(ctx, id)
}

// IsLoggedIn is true only when the flag is set and the stored id still
// resolves to a registered user. The flag alone is never trusted.
func (m *Manager) IsLoggedIn(ctx context.Context) (bool, error) {
	flag, err := m.store.Get(ctx, loggedInKey)
	if err != nil {
		if kv.IsNotFound(err) {
			return false, nil
		}
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load login flag")
	}
	if flag != "true" {
		return false, nil
	}
	user, err := m.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// SetLoggedIn flips the login flag. Turning it on requires a user; turning
// it off clears the current user as well.
func (m *Manager) SetLoggedIn(ctx context.Context, value bool, user *users.User) error {
	if value && user == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "logging in requires a user")
	}
	flag := "false"
	if value {
		flag = "true"
	}
	if err := m.store.Set(ctx, loggedInKey, flag); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save login flag")
	}
	if value {
		return m.SetCurrentUser(ctx, user)
	}
	return m.SetCurrentUser(ctx, nil)
}

// Logout ends the session after confirmation. Returns whether the logout
// actually happened so the caller can navigate back to the entry page.
func (m *Manager) Logout(ctx context.Context, confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm.Confirm(ctx, "Are you sure you want to logout?") {
		return false, nil
	}
	if err := m.SetLoggedIn(ctx, false, nil); err != nil {
		return false, err
	}
	return true, nil
}

// RememberRedirect stores the page to return to after the next login.
func (m *Manager) RememberRedirect(ctx context.Context, target string) error {
	if target == "" {
		return nil
	}
	if err := m.store.Set(ctx, redirectKey, target); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save redirect target")
	}
	return nil
}

// TakeRedirect returns and clears the stored redirect target. Read-once.
func (m *Manager) TakeRedirect(ctx context.Context) (string, error) {
	target, err := m.store.Get(ctx, redirectKey)
	if err != nil {
		if kv.IsNotFound(err) {
			return "", nil
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load redirect target")
	}
	if err := m.store.Delete(ctx, redirectKey); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear redirect target")
	}
	return target, nil
}
