package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// ParseSubject verifies an HS256 bearer token from the identity provider
// and returns its subject (the user id). Bad signatures, wrong algorithms,
// expired tokens, and missing subjects all come back as ErrInvalidToken.
func ParseSubject(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", ErrInvalidToken
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// Mint issues a short-lived HS256 token for the given subject. The real
// deployment receives tokens from the identity provider; this exists for
// local development and the test suite.
func Mint(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}
