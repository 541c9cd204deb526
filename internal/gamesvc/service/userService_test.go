package service

import (
	"context"
	"errors"
	"testing"

	"github.com/wordrush/boggle-services/internal/gamesvc/store"
)

func TestSignupAndSignin(t *testing.T) {
	svc := NewUserService(store.NewMemoryUserStore())

	user, err := svc.Signup(context.Background(), "alice", "hunter2")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.ID == "" {
		t.Error("signup left user without an id")
	}
	if user.PasswordHash == "hunter2" {
		t.Error("password stored in the clear")
	}

	signed, err := svc.Signin(context.Background(), "alice", "hunter2")
	if err != nil {
		t.Fatalf("Signin returned error: %v", err)
	}
	if signed.ID != user.ID {
		t.Errorf("Signin resolved user %q, want %q", signed.ID, user.ID)
	}
}

func TestSignupDuplicate(t *testing.T) {
	svc := NewUserService(store.NewMemoryUserStore())

	if _, err := svc.Signup(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "alice", "other"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("duplicate signup error = %v, want ErrUserExists", err)
	}
}

func TestSignupEmpty(t *testing.T) {
	svc := NewUserService(store.NewMemoryUserStore())

	if _, err := svc.Signup(context.Background(), "  ", "pw"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank username error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Signup(context.Background(), "alice", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty password error = %v, want ErrInvalidInput", err)
	}
}

func TestSigninRejectsBadCredentials(t *testing.T) {
	svc := NewUserService(store.NewMemoryUserStore())

	if _, err := svc.Signup(context.Background(), "alice", "hunter2"); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	if _, err := svc.Signin(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Signin(context.Background(), "nobody", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", err)
	}
}

func TestListUsernames(t *testing.T) {
	svc := NewUserService(store.NewMemoryUserStore())

	for _, name := range []string{"alice", "bob", "carol"} {
		if _, err := svc.Signup(context.Background(), name, "pw"); err != nil {
			t.Fatalf("Signup(%q) returned error: %v", name, err)
		}
	}

	names, err := svc.ListUsernames(context.Background())
	if err != nil {
		t.Fatalf("ListUsernames returned error: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("ListUsernames returned %d names, want 3", len(names))
	}
	if names[0] != "alice" || names[1] != "bob" || names[2] != "carol" {
		t.Errorf("ListUsernames = %v, want insertion order", names)
	}
}
