package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieSigner turns a session ID into a tamper-proof cookie value and back.
// The value is an HS256 JWT whose subject is the session ID and whose expiry
// matches the session's.
type CookieSigner struct {
	secret []byte
	issuer string
}

// NewCookieSigner creates a signer. secret must be at least 32 characters for
// HS256 security.
func NewCookieSigner(secret, issuer string) *CookieSigner {
	return &CookieSigner{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Sign produces the cookie value for sessionID.
func (s *CookieSigner) Sign(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    s.issuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign cookie: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, issuer and expiry of a cookie value and
// returns the session ID it carries.
func (s *CookieSigner) Verify(value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("cookie is empty")
	}

	token, err := jwt.ParseWithClaims(value, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("parse cookie: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid cookie claims")
	}
	return claims.Subject, nil
}
