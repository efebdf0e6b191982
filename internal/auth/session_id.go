package auth

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// NewSessionID returns a new lexicographically sortable session identifier.
func NewSessionID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
