package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/famgift/exchange-system/internal/core/domain"
	"github.com/famgift/exchange-system/internal/core/ports"
)

type stubGroupSource struct {
	groups []domain.Group
}

func (s *stubGroupSource) Groups() ([]domain.Group, error) {
	return s.groups, nil
}

func (s *stubGroupSource) GroupByID(id string) (*domain.Group, error) {
	for i := range s.groups {
		if s.groups[i].ID == id {
			return &s.groups[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrGroupNotFound, id)
}

func rosterSource() *stubGroupSource {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return &stubGroupSource{groups: []domain.Group{
		{
			ID:       "family",
			Name:     "The Family",
			Budget:   50,
			Currency: "USD",
			Participants: []domain.Participant{
				{Username: "alice", Name: "Alice", Password: "plaintext-pw"},
				{Username: "bob", Name: "Bob", Password: string(hash)},
			},
		},
	}}
}

func login(t *testing.T, svc *AuthService, groupID, username, password string) (*ports.LoginResult, error) {
	t.Helper()
	return svc.Login(context.Background(), ports.LoginInput{
		GroupID:  groupID,
		Username: username,
		Password: password,
		Language: "en",
	})
}

func TestAuthService_Login_PlaintextPassword(t *testing.T) {
	svc := NewAuthService(rosterSource(), "secret", time.Hour)

	result, err := login(t, svc, "family", "alice", "plaintext-pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a session token")
	}
	if result.Participant.Username != "alice" || result.Participant.Name != "Alice" {
		t.Errorf("unexpected participant: %+v", result.Participant)
	}
	if result.Group.ID != "family" || result.Group.Budget != 50 {
		t.Errorf("unexpected group: %+v", result.Group)
	}
}

func TestAuthService_Login_BcryptPassword(t *testing.T) {
	svc := NewAuthService(rosterSource(), "secret", time.Hour)

	if _, err := login(t, svc, "family", "bob", "hunter2"); err != nil {
		t.Fatalf("bcrypt login failed: %v", err)
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	svc := NewAuthService(rosterSource(), "secret", time.Hour)

	result, err := login(t, svc, "family", "alice", "plaintext-pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "alice" {
		t.Errorf("expected username claim alice, got %v", claims["username"])
	}
	if claims["group_id"] != "family" {
		t.Errorf("expected group_id claim family, got %v", claims["group_id"])
	}
	if claims["language"] != "en" {
		t.Errorf("expected language claim en, got %v", claims["language"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(rosterSource(), "secret", time.Hour)

	if _, err := login(t, svc, "family", "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_CaseSensitive(t *testing.T) {
	svc := NewAuthService(rosterSource(), "secret", time.Hour)

	if _, err := login(t, svc, "family", "Alice", "plaintext-pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("username match must be case-sensitive, got %v", err)
	}
	if _, err := login(t, svc, "family", "alice", "Plaintext-PW"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("password match must be case-sensitive, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(rosterSource(), "secret", time.Hour)

	if _, err := login(t, svc, "family", "mallory", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownGroup(t *testing.T) {
	svc := NewAuthService(rosterSource(), "secret", time.Hour)

	if _, err := login(t, svc, "strangers", "alice", "plaintext-pw"); !errors.Is(err, domain.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc := NewAuthService(rosterSource(), "secret", time.Hour)

	cases := []ports.LoginInput{
		{GroupID: "", Username: "alice", Password: "plaintext-pw"},
		{GroupID: "family", Username: "", Password: "plaintext-pw"},
		{GroupID: "family", Username: "alice", Password: ""},
	}
	for _, in := range cases {
		if _, err := svc.Login(context.Background(), in); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("input %+v: expected ErrInvalidCredentials, got %v", in, err)
		}
	}
}
