package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Henry881-hack/corries-shop/pkg/config"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
	"github.com/Henry881-hack/corries-shop/pkg/security"
)

const invalidCredentialsMessage = "invalid username or password"

// RegisterInput is the payload for creating an account. Username is
// optional; when empty it is derived from the full name.
type RegisterInput struct {
	FullName    string
	Email       string
	MobilePhone string
	Password    string
	Username    string
}

// Service owns the registered-account list: seeding, signup, lookup and
// credential checks.
type Service struct {
	repo        *Repository
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

// ServiceParams bundles the dependencies required to build a user service.
type ServiceParams struct {
	Repo           *Repository
	PasswordConfig config.PasswordConfig
	Now            func() time.Time
}

// NewService constructs a user directory service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:        params.Repo,
		passwordCfg: params.PasswordConfig,
		now:         now,
	}, nil
}

// EnsureSeed creates the built-in administrator when no user list exists.
// Idempotent: a present list, even an empty one, is left untouched.
func (s *Service) EnsureSeed(ctx context.Context, seed config.SeedConfig) error {
	_, exists, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := security.HashPassword(seed.AdminPassword, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash admin password")
	}

	admin := User{
		ID:          1,
		Username:    deriveUsername(seed.AdminUsername),
		FullName:    seed.AdminFullName,
		Email:       seed.AdminEmail,
		MobilePhone: seed.AdminPhone,
		Password:    hash,
		CreatedAt:   s.now().UTC(),
		IsAdmin:     true,
	}
	if err := s.repo.Save(ctx, []User{admin}); err != nil {
		return err
	}
	return s.repo.SetNextID(ctx, 2)
}

// Register validates and appends a new account per the signup rules:
// unique email and full name (case-insensitive), derived username with the
// smallest integer suffix on collision, monotonically assigned id.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	if fullName == "" || email == "" || strings.TrimSpace(input.MobilePhone) == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "please fill in all fields")
	}
	if len(input.Password) < 4 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 4 characters long")
	}

	existing, _, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range existing {
		if strings.EqualFold(u.Email, email) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
	}
	for _, u := range existing {
		if strings.EqualFold(u.FullName, fullName) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "an account with this name already exists")
		}
	}

	candidate := input.Username
	if candidate == "" {
		candidate = fullName
	}
	username := uniqueUsername(deriveUsername(candidate), existing)

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetNextID(ctx, id+1); err != nil {
		return nil, err
	}

	user := User{
		ID:          id,
		Username:    username,
		FullName:    fullName,
		Email:       email,
		MobilePhone: strings.TrimSpace(input.MobilePhone),
		Password:    hash,
		CreatedAt:   s.now().UTC(),
		IsAdmin:     false,
	}
	if err := s.repo.Save(ctx, append(existing, user)); err != nil {
		return nil, err
	}
	return &user, nil
}

// Find resolves an identifier against username, full name or email,
// case-insensitive, returning the first match in registration order.
func (s *Service) Find(ctx context.Context, identifier string) (*User, error) {
	users, _, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(identifier))
	for i := range users {
		u := &users[i]
		if strings.ToLower(u.Username) == needle ||
			strings.ToLower(u.FullName) == needle ||
			strings.ToLower(u.Email) == needle {
			return u, nil
		}
	}
	return nil, nil
}

// ByID loads a user by id; nil when the id resolves to nobody.
func (s *Service) ByID(ctx context.Context, id int64) (*User, error) {
	users, _, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Authenticate resolves the identifier and verifies the password hash.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (*User, error) {
	user, err := s.Find(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	valid, err := security.VerifyPassword(password, user.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return user, nil
}

// deriveUsername lowercases and strips all whitespace.
func deriveUsername(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(value))), "")
}

// uniqueUsername appends the smallest positive integer suffix that avoids a
// collision with an existing username.
func uniqueUsername(base string, existing []User) string {
	taken := func(name string) bool {
		for _, u := range existing {
			if u.Username == name {
				return true
			}
		}
		return false
	}
	if !taken(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
