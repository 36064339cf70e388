package users

import (
	"context"
	"testing"
	"time"

	"github.com/Henry881-hack/corries-shop/pkg/config"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
	"github.com/Henry881-hack/corries-shop/pkg/kv"
)

func fastArgon() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func testSeed() config.SeedConfig {
	return config.SeedConfig{
		AdminUsername: "lancas",
		AdminFullName: "lancaster henry",
		AdminEmail:    "admin@example.com",
		AdminPhone:    "+15550000000",
		AdminPassword: "Discovery754@",
	}
}

func newTestService(t *testing.T) (*Service, kv.Store) {
	t.Helper()
	store := kv.NewMemory()
	svc, err := NewService(ServiceParams{
		Repo:           NewRepository(store),
		PasswordConfig: fastArgon(),
		Now:            func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc, store
}

func mustRegister(t *testing.T, svc *Service, input RegisterInput) *User {
	t.Helper()
	user, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register(%q) returned error: %v", input.FullName, err)
	}
	return user
}

func expectCode(t *testing.T, err error, code pkgerrors.Code) *pkgerrors.Error {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
	return typed
}

func TestEnsureSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	if err := svc.EnsureSeed(ctx, testSeed()); err != nil {
		t.Fatalf("EnsureSeed returned error: %v", err)
	}

	admin, err := svc.ByID(ctx, 1)
	if err != nil || admin == nil {
		t.Fatalf("expected seeded admin, got user=%v err=%v", admin, err)
	}
	if !admin.IsAdmin || admin.Username != "lancas" {
		t.Fatalf("unexpected admin record: %+v", admin)
	}

	// Registering then reseeding must not reset anything.
	mustRegister(t, svc, RegisterInput{
		FullName:    "Jane Customer",
		Email:       "jane@example.com",
		MobilePhone: "+15551111111",
		Password:    "secret1",
	})
	if err := svc.EnsureSeed(ctx, testSeed()); err != nil {
		t.Fatalf("second EnsureSeed returned error: %v", err)
	}
	users, _, err := NewRepository(mustStore(t, svc)).Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users after reseed, got %d", len(users))
	}
}

func mustStore(t *testing.T, svc *Service) kv.Store {
	t.Helper()
	return svc.repo.store
}

func TestRegisterAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	if err := svc.EnsureSeed(ctx, testSeed()); err != nil {
		t.Fatalf("EnsureSeed returned error: %v", err)
	}

	first := mustRegister(t, svc, RegisterInput{
		FullName:    "Jane Customer",
		Email:       "jane@example.com",
		MobilePhone: "+15551111111",
		Password:    "secret1",
	})
	second := mustRegister(t, svc, RegisterInput{
		FullName:    "John Customer",
		Email:       "john@example.com",
		MobilePhone: "+15552222222",
		Password:    "secret2",
	})

	if first.ID != 2 || second.ID != 3 {
		t.Fatalf("expected ids 2 and 3, got %d and %d", first.ID, second.ID)
	}
}

func TestRegisterDerivesUsernameFromFullName(t *testing.T) {
	svc, _ := newTestService(t)

	user := mustRegister(t, svc, RegisterInput{
		FullName:    "Jane  Q Customer",
		Email:       "jane@example.com",
		MobilePhone: "+15551111111",
		Password:    "secret1",
	})
	if user.Username != "janeqcustomer" {
		t.Fatalf("unexpected derived username %q", user.Username)
	}

	// Explicit usernames win over derivation.
	other := mustRegister(t, svc, RegisterInput{
		FullName:    "Someone Else",
		Email:       "else@example.com",
		MobilePhone: "+15553333333",
		Password:    "secret2",
		Username:    "Custom Name",
	})
	if other.Username != "customname" {
		t.Fatalf("unexpected explicit username %q", other.Username)
	}
}

func TestRegisterSuffixesCollidingUsernames(t *testing.T) {
	svc, _ := newTestService(t)

	a := mustRegister(t, svc, RegisterInput{
		FullName: "Pat Doe", Email: "a@example.com", MobilePhone: "1", Password: "secret",
	})
	b := mustRegister(t, svc, RegisterInput{
		FullName: "Other Person", Email: "b@example.com", MobilePhone: "2", Password: "secret",
		Username: "patdoe",
	})
	c := mustRegister(t, svc, RegisterInput{
		FullName: "Third Person", Email: "c@example.com", MobilePhone: "3", Password: "secret",
		Username: "patdoe",
	})

	if a.Username != "patdoe" || b.Username != "patdoe1" || c.Username != "patdoe2" {
		t.Fatalf("unexpected usernames %q %q %q", a.Username, b.Username, c.Username)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	mustRegister(t, svc, RegisterInput{
		FullName: "Jane Customer", Email: "jane@example.com", MobilePhone: "1", Password: "secret",
	})

	_, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Different Name", Email: "JANE@example.com", MobilePhone: "2", Password: "secret",
	})
	typed := expectCode(t, err, pkgerrors.CodeConflict)
	if typed.Message() != "email already registered" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestRegisterRejectsDuplicateFullName(t *testing.T) {
	svc, _ := newTestService(t)
	mustRegister(t, svc, RegisterInput{
		FullName: "Jane Customer", Email: "jane@example.com", MobilePhone: "1", Password: "secret",
	})

	_, err := svc.Register(context.Background(), RegisterInput{
		FullName: "jane customer", Email: "other@example.com", MobilePhone: "2", Password: "secret",
	})
	typed := expectCode(t, err, pkgerrors.CodeConflict)
	if typed.Message() != "an account with this name already exists" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Jane Customer", Email: "jane@example.com", MobilePhone: "1", Password: "abc",
	})
	expectCode(t, err, pkgerrors.CodeValidation)
}

func TestFindMatchesAnyIdentifier(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created := mustRegister(t, svc, RegisterInput{
		FullName: "Jane Customer", Email: "jane@example.com", MobilePhone: "1", Password: "secret",
	})

	for _, identifier := range []string{"janecustomer", "Jane Customer", "JANE@EXAMPLE.COM"} {
		found, err := svc.Find(ctx, identifier)
		if err != nil {
			t.Fatalf("Find(%q) returned error: %v", identifier, err)
		}
		if found == nil || found.ID != created.ID {
			t.Fatalf("Find(%q) = %v, want user %d", identifier, found, created.ID)
		}
	}

	missing, err := svc.Find(ctx, "nobody")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected no match, got %+v", missing)
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created := mustRegister(t, svc, RegisterInput{
		FullName: "Jane Customer", Email: "jane@example.com", MobilePhone: "1", Password: "secret",
	})

	user, err := svc.Authenticate(ctx, "janecustomer", "secret")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("authenticated wrong user: %+v", user)
	}

	_, err = svc.Authenticate(ctx, "janecustomer", "wrong")
	expectCode(t, err, pkgerrors.CodeUnauthorized)

	_, err = svc.Authenticate(ctx, "ghost", "secret")
	expectCode(t, err, pkgerrors.CodeUnauthorized)
}
