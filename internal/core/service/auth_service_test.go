package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/agencyhub/agency-api/internal/core/domain"
)

func seedLoginUser(repo *stubUserRepo, email, password string, tier domain.Tier, active bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	repo.add(&domain.User{
		ID:             "u-1",
		Name:           "Alice",
		Email:          email,
		PasswordHash:   string(hash),
		Tier:           tier,
		FunctionalRole: "Account Manager",
		Active:         active,
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &stubUserRepo{}
	seedLoginUser(repo, "alice@agency.test", "secret", domain.TierAccountManager, true)
	svc := NewAuthService(repo, "jwt-secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "alice@agency.test", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Email != "alice@agency.test" {
		t.Errorf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("jwt-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["user_id"] != "u-1" {
		t.Errorf("expected user_id claim, got %v", claims["user_id"])
	}
	if claims["tier"] != "account_manager" {
		t.Errorf("expected tier claim, got %v", claims["tier"])
	}
	if claims["functional_role"] != "Account Manager" {
		t.Errorf("expected functional_role claim, got %v", claims["functional_role"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &stubUserRepo{}
	seedLoginUser(repo, "alice@agency.test", "secret", domain.TierAccountManager, true)
	svc := NewAuthService(repo, "jwt-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "alice@agency.test", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, "jwt-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@agency.test", "pwd")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	repo := &stubUserRepo{}
	seedLoginUser(repo, "alice@agency.test", "secret", domain.TierAccountManager, false)
	svc := NewAuthService(repo, "jwt-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "alice@agency.test", "secret")
	if !errors.Is(err, domain.ErrUserDisabled) {
		t.Errorf("expected ErrUserDisabled, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, "jwt-secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pwd"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.c", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}
