package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Manager verifies session bearer tokens issued by the board store's auth
// service (HS256, shared secret, user_id claim).
type Manager struct {
	secret []byte
}

// Claims is the JWT payload carried by session tokens.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// NewManager creates a token manager with the shared signing secret.
func NewManager(secret string) Manager {
	return Manager{secret: []byte(secret)}
}

// Verify parses and validates a bearer token and returns its claims.
func (m Manager) Verify(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}

// Generate issues a signed token for the given user. Used by tests and local
// tooling; production tokens come from the board store's auth service.
func (m Manager) Generate(userID string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}
