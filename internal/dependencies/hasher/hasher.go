package hasher

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Algorithm names accepted by New
const (
	AlgorithmSHA256 = "sha256"
	AlgorithmBcrypt = "bcrypt"
)

// Hasher turns a secret into a one-way digest and checks candidates against it
type Hasher interface {
	// Digest returns the digest of secret
	Digest(secret string) ([]byte, error)

	// Matches reports whether candidate hashes to digest
	Matches(digest []byte, candidate string) bool
}

// New returns the Hasher registered under name
func New(name string) (Hasher, error) {
	switch name {
	case "", AlgorithmSHA256:
		return NewSHA256(), nil
	case AlgorithmBcrypt:
		return NewBcrypt(bcrypt.DefaultCost), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q: must be %q or %q", name, AlgorithmSHA256, AlgorithmBcrypt)
	}
}

// SHA256 stores the unsalted SHA-256 sum of the secret
type SHA256 struct{}

// NewSHA256 creates a SHA256 hasher
func NewSHA256() *SHA256 {
	return &SHA256{}
}

func (h *SHA256) Digest(secret string) ([]byte, error) {
	sum := sha256.Sum256([]byte(secret))
	return sum[:], nil
}

func (h *SHA256) Matches(digest []byte, candidate string) bool {
	sum := sha256.Sum256([]byte(candidate))
	return subtle.ConstantTimeCompare(digest, sum[:]) == 1
}

// Bcrypt stores a salted bcrypt hash. The secret is pre-hashed with SHA-256
// so bcrypt's 72 byte input limit never truncates it.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the given cost
func NewBcrypt(cost int) *Bcrypt {
	return &Bcrypt{cost: cost}
}

func (h *Bcrypt) Digest(secret string) ([]byte, error) {
	return bcrypt.GenerateFromPassword(prehash(secret), h.cost)
}

func (h *Bcrypt) Matches(digest []byte, candidate string) bool {
	return bcrypt.CompareHashAndPassword(digest, prehash(candidate)) == nil
}

func prehash(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return []byte(hex.EncodeToString(sum[:]))
}
