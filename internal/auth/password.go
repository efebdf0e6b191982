package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password verification modes accepted by NewPasswordVerifier.
const (
	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

// ErrPasswordMismatch is returned by Verify when the password is wrong.
var ErrPasswordMismatch = errors.New("password mismatch")

// PasswordVerifier hashes passwords for storage and checks login attempts
// against the stored form.
type PasswordVerifier interface {
	Hash(password string) (string, error)
	Verify(stored, given string) error
}

// NewPasswordVerifier returns the verifier for mode.
func NewPasswordVerifier(mode string, bcryptCost int) (PasswordVerifier, error) {
	switch mode {
	case "", PasswordModePlain:
		return PlainVerifier{}, nil
	case PasswordModeBcrypt:
		return BcryptVerifier{Cost: bcryptCost}, nil
	default:
		return nil, fmt.Errorf("unknown password mode %q", mode)
	}
}

// PlainVerifier stores passwords as given and compares by exact equality.
type PlainVerifier struct{}

func (PlainVerifier) Hash(password string) (string, error) { return password, nil }

func (PlainVerifier) Verify(stored, given string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(given)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// BcryptVerifier stores bcrypt hashes.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Hash(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

func (BcryptVerifier) Verify(stored, given string) error {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(given))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}
