package controllers

import (
	"context"
	"net/http"

	"github.com/Henry881-hack/corries-shop/api/responses"
	"github.com/Henry881-hack/corries-shop/api/validators"
	"github.com/Henry881-hack/corries-shop/internal/session"
	"github.com/Henry881-hack/corries-shop/internal/users"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
	"github.com/Henry881-hack/corries-shop/pkg/logger"
)

// UserDirectory is the slice of the user service the auth handlers need.
type UserDirectory interface {
	Register(ctx context.Context, input users.RegisterInput) (*users.User, error)
	Authenticate(ctx context.Context, identifier, password string) (*users.User, error)
}

// SessionService is the slice of the session manager the handlers need.
type SessionService interface {
	SetLoggedIn(ctx context.Context, value bool, user *users.User) error
	CurrentUser(ctx context.Context) (*users.User, error)
	Logout(ctx context.Context, confirm session.Confirmer) (bool, error)
	RememberRedirect(ctx context.Context, target string) error
	TakeRedirect(ctx context.Context) (string, error)
}

// confirmFlag adapts an explicit boolean from the request body to the
// interactive confirmation the services expect.
type confirmFlag bool

func (c confirmFlag) Confirm(context.Context, string) bool { return bool(c) }

type signupRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email" validate:"omitempty,email"`
	MobilePhone string `json:"mobilePhone"`
	Password    string `json:"password"`
	Username    string `json:"username"`
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type logoutRequest struct {
	Confirmed bool `json:"confirmed"`
}

// AuthSignup creates an account and opens the session for it right away, the
// way the storefront drops a new customer straight onto the shop page. The
// username is derived from the full name unless the caller provides one.
func AuthSignup(dir UserDirectory, sess SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dir == nil || sess == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		var body signupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := dir.Register(r.Context(), users.RegisterInput{
			FullName:    body.FullName,
			Email:       body.Email,
			MobilePhone: body.MobilePhone,
			Password:    body.Password,
			Username:    body.Username,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := sess.SetLoggedIn(r.Context(), true, user); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		redirect, err := sess.TakeRedirect(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"user":       users.FromModel(user),
			"redirectTo": redirect,
		})
	}
}

// AuthLogin verifies credentials, opens the session, and hands back any
// redirect target remembered before the login wall.
func AuthLogin(dir UserDirectory, sess SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dir == nil || sess == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body loginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := dir.Authenticate(r.Context(), body.Identifier, body.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := sess.SetLoggedIn(r.Context(), true, user); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		redirect, err := sess.TakeRedirect(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"user":       users.FromModel(user),
			"redirectTo": redirect,
		})
	}
}

// AuthLogout ends the session when the caller confirms the prompt.
func AuthLogout(sess SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var body logoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		done, err := sess.Logout(r.Context(), confirmFlag(body.Confirmed))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"loggedOut": done})
	}
}

// AuthMe returns the authenticated user, or 401 when nobody is logged in.
func AuthMe(sess SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		user, err := sess.CurrentUser(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if user == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "not logged in"))
			return
		}

		responses.WriteSuccess(w, map[string]*users.UserDTO{
			"user": users.FromModel(user),
		})
	}
}
