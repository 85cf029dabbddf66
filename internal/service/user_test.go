package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"warcat/internal/auth"
	"warcat/internal/model"
	"warcat/internal/storage"
	"warcat/internal/testutil"
)

func newUserFixture() (*UserService, *testutil.UserRepo, *testutil.MailQueue, *auth.TokenManager) {
	users := &testutil.UserRepo{}
	mail := &testutil.MailQueue{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(users, tokens, mail), users, mail, tokens
}

func TestRegister_StoresUserAndSendsWelcomeMail(t *testing.T) {
	svc, users, mail, tokens := newUserFixture()
	ctx := context.Background()

	token, user, err := svc.Register(ctx, &model.RegisterRequest{
		Email:    "new@example.com",
		Password: "hunter22",
		Name:     "New User",
		RoleType: "secretary",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(users.Users) != 1 {
		t.Fatalf("expected one stored user, got %d", len(users.Users))
	}
	if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if user.Payment {
		t.Fatalf("payment flag must start false")
	}
	if len(mail.Messages) != 1 || mail.Messages[0].To[0] != "new@example.com" {
		t.Fatalf("expected one welcome mail to the new user, got %+v", mail.Messages)
	}
	claims, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Email != "new@example.com" || claims.RoleType != "secretary" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	ctx := context.Background()

	req := &model.RegisterRequest{Email: "dup@example.com", Password: "pw", Name: "A", RoleType: "secretary"}
	if _, _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(ctx, req); !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if len(users.Users) != 1 {
		t.Fatalf("duplicate register must not store a second user, got %d", len(users.Users))
	}
}

func TestLogin_UpdatesLastLoginAndTokenMatchesUser(t *testing.T) {
	svc, users, _, tokens := newUserFixture()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, &model.RegisterRequest{
		Email: "login@example.com", Password: "pw12345", Name: "L", RoleType: "head_of_office",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, _, err := svc.Login(ctx, &model.LoginRequest{Email: "login@example.com", Password: "pw12345", RoleType: "head_of_office"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if users.Users[0].LastLogin.IsZero() {
		t.Fatalf("last login not recorded")
	}
	claims, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Email != users.Users[0].Email {
		t.Fatalf("token email %q does not match stored %q", claims.Email, users.Users[0].Email)
	}
}

func TestLogin_WrongPasswordAndUnknownEmail(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, &model.RegisterRequest{
		Email: "who@example.com", Password: "right", Name: "W", RoleType: "secretary",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(ctx, &model.LoginRequest{Email: "who@example.com", Password: "wrong", RoleType: "secretary"}); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if _, _, err := svc.Login(ctx, &model.LoginRequest{Email: "nobody@example.com", Password: "x", RoleType: "secretary"}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, &model.RegisterRequest{
		Email: "reset@example.com", Password: "old-pass", Name: "R", RoleType: "secretary",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	oldHash := users.Users[0].PasswordHash

	if err := svc.ResetPassword(ctx, "reset@example.com", "new-pass"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if users.Users[0].PasswordHash == oldHash {
		t.Fatalf("password hash unchanged after reset")
	}
	if _, _, err := svc.Login(ctx, &model.LoginRequest{Email: "reset@example.com", Password: "new-pass", RoleType: "secretary"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	if err := svc.ResetPassword(ctx, "unknown@example.com", "x"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}
}

func TestProfile(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, &model.RegisterRequest{
		Email: "prof@example.com", Password: "pw", Name: "Prof", RoleType: "secretary", PhoneNumber: "123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	p, err := svc.Profile(ctx, users.Users[0].ID.Hex())
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.Name != "Prof" || p.Email != "prof@example.com" || p.PhoneNumber != "123" {
		t.Fatalf("unexpected profile: %+v", p)
	}

	if _, err := svc.Profile(ctx, "garbage"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for malformed id, got %v", err)
	}
}
