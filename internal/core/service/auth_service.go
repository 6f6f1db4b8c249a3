package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/famgift/exchange-system/internal/api/metrics"
	"github.com/famgift/exchange-system/internal/core/domain"
	"github.com/famgift/exchange-system/internal/core/ports"
)

// AuthService validates credentials against the configured roster of a
// group and mints the session token. No lockout, no rate limiting; this
// is a low-stakes private tool and the roster lives in a local file.
type AuthService struct {
	groups    ports.GroupSource
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(groups ports.GroupSource, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{groups: groups, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login scans the group's roster for an exact, case-sensitive credential
// match. Sessions are never persisted; the returned token is the whole
// session state, reconstructed on each login.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	if input.GroupID == "" || input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	group, err := s.groups.GroupByID(input.GroupID)
	if err != nil {
		return nil, err
	}

	participant := group.Participant(input.Username)
	if participant == nil || !passwordMatches(participant.Password, input.Password) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(group.ID, participant.Username, input.Language)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.LoginResult{Token: token, Participant: participant, Group: group}, nil
}

// passwordMatches accepts both bcrypt-hashed and plaintext roster
// passwords. Plaintext remains supported for config compatibility; storing
// hashes is the recommended mode.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func (s *AuthService) generateToken(groupID, username, language string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"group_id": groupID,
		"language": language,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
