package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/pkg/utils"
)

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) Create(_ context.Context, account *db_models.Account) error {
	account.ID = uuid.New()
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*db_models.Account, error) {
	return f.accounts[email], nil
}

func newTestAccountService() (AccountServiceInterface, *fakeAccountRepo) {
	repo := newFakeAccountRepo()
	return NewAccountService(repo, utils.NewTokenMaker("test-secret", 0)), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAccountService()

	registered, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Email:     "Ada@Example.com",
		Password:  "correct-horse",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if registered.Token == "" {
		t.Error("expected a session token on registration")
	}
	if registered.Account.Email != "ada@example.com" {
		t.Errorf("expected normalized email, got %q", registered.Account.Email)
	}

	loggedIn, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loggedIn.Account.ID != registered.Account.ID {
		t.Error("login should resolve the registered account")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestAccountService()

	req := request_models.RegisterRequest{Email: "ada@example.com", Password: "correct-horse"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, utils.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newTestAccountService()

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Email:    "ada@example.com",
		Password: "short",
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAccountService()

	_, _ = svc.Register(context.Background(), request_models.RegisterRequest{
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-horse",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestCheckEmail(t *testing.T) {
	svc, _ := newTestAccountService()

	_, _ = svc.Register(context.Background(), request_models.RegisterRequest{
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	taken, err := svc.CheckEmail(context.Background(), "ADA@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !taken.Exists {
		t.Error("expected existing email to report Exists")
	}

	free, err := svc.CheckEmail(context.Background(), "new@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free.Exists {
		t.Error("expected unknown email to report not existing")
	}
}
