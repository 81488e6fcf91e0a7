// Package cryptox implements password digesting and session-token
// generation for the userbase subsystem.
//
// Two digest schemes are available behind the Hasher interface. The
// reference scheme is an unsalted hex-encoded SHA-256 digest with a
// constant-time comparison on verify. Deployments that want a salted,
// cost-parameterized construction select the bcrypt scheme instead; a
// digest is only ever verified by the scheme that produced it.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/ymstdo/userbase/internal/randx"
	"golang.org/x/crypto/bcrypt"
)

// Supported digest scheme names, as they appear in configuration.
const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

// sessionTokenBytes is the entropy of a session token; hex-encoding
// doubles it to 128 characters.
const sessionTokenBytes = 64

// Hasher turns a raw secret into a stored digest and checks candidates
// against it. Implementations must be stateless and safe for concurrent
// use; the raw secret is never retained.
type Hasher interface {
	Hash(raw string) (string, error)
	Verify(raw, digest string) bool
}

// NewHasher returns the Hasher for the named scheme.
func NewHasher(scheme string) (Hasher, error) {
	switch scheme {
	case SchemeSHA256:
		return &SHA256Hasher{}, nil
	case SchemeBcrypt:
		return &BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// SHA256Hasher is the reference scheme: deterministic, unsalted,
// hex-encoded SHA-256.
type SHA256Hasher struct{}

func (h *SHA256Hasher) Hash(raw string) (string, error) {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:]), nil
}

func (h *SHA256Hasher) Verify(raw, digest string) bool {
	sum := sha256.Sum256([]byte(raw))
	candidate := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}

// BcryptHasher digests with per-password salt and a tunable work factor.
// Unlike SHA256Hasher its output is not deterministic; Verify relies on
// the salt embedded in the stored digest.
type BcryptHasher struct {
	Cost int
}

func (h *BcryptHasher) Hash(raw string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(raw, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(raw)) == nil
}

// NewSessionToken generates a high-entropy random token for login
// sessions: 64 random bytes, hex-encoded to 128 characters. Session
// tokens are unrelated to password digests.
func NewSessionToken() (string, error) {
	return randx.HexString(sessionTokenBytes)
}
