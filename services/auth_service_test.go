package services

import (
	"errors"
	"testing"
	"time"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	u, err := svc.Register(&RegisterIn{
		Email:       "Chef@Example.com",
		Password:    "secret1",
		Name:        "Priya",
		Role:        entity.RoleChef,
		CuisineType: "Indian",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "chef@example.com" {
		t.Fatalf("email not lowercased: %q", u.Email)
	}
	if u.Password == "secret1" {
		t.Fatalf("password stored in clear")
	}
	if u.CuisineType != "Indian" {
		t.Fatalf("chef profile dropped")
	}

	// duplicate email
	if _, err := svc.Register(&RegisterIn{Email: "chef@example.com", Password: "secret1", Name: "x", Role: entity.RoleDiner}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("duplicate email: want validation error, got %v", err)
	}

	token, logged, err := svc.Login("chef@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != u.ID {
		t.Fatalf("login returned wrong user")
	}
	claims, err := utils.ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != entity.RoleChef {
		t.Fatalf("claims = %+v", claims)
	}

	if _, _, err := svc.Login("chef@example.com", "wrong"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("wrong password: want unauthorized, got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "secret1"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("unknown email: want unauthorized, got %v", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	_, err := svc.Register(&RegisterIn{Email: "a@b.com", Password: "secret1", Name: "x", Role: "admin"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}
