package store

import (
	"errors"
	"testing"

	"clinicore/models"
)

func TestSeededAdminAuthenticates(t *testing.T) {
	s := newTestStore(t)
	user, err := s.Authenticate("admin", "admin123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Username != "admin" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.Password != "" {
		t.Fatal("password hash leaked from Authenticate")
	}
}

func TestAuthenticateRejections(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Authenticate("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v", err)
	}
	if _, err := s.Authenticate("ghost", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: %v", err)
	}
	if err := s.CreateUser(&models.User{Username: "parked", Password: "pw123456", IsActive: false}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := s.Authenticate("parked", "pw123456"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("inactive user: %v", err)
	}
}

func TestCreateUserHashesAndDeduplicates(t *testing.T) {
	s := newTestStore(t)
	u := &models.User{Username: "reception", Password: "frontdesk1", IsActive: true}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.Password == "frontdesk1" {
		t.Fatal("password stored in clear")
	}
	dup := &models.User{Username: "reception", Password: "other", IsActive: true}
	if err := s.CreateUser(dup); !IsKind(err, KindDuplicate) {
		t.Fatalf("expected duplicate username error, got %v", err)
	}
	if _, err := s.Authenticate("reception", "frontdesk1"); err != nil {
		t.Fatalf("new user should authenticate: %v", err)
	}
}
