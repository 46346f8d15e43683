package model

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/mcoot/shopsim/internal/dependencies/hasher"
)

// MinPasswordLength is the minimum number of characters in a password
const MinPasswordLength = 8

// Credential keeps the digest of an accepted password, never the password itself
type Credential struct {
	hasher hasher.Hasher
	digest []byte
}

// NewCredential creates an unset Credential
func NewCredential(h hasher.Hasher) *Credential {
	return &Credential{hasher: h}
}

// Set validates secret against the password policy and stores its digest.
// On failure any previously stored digest is left untouched.
func (c *Credential) Set(secret string) error {
	if !utf8.ValidString(secret) {
		return fmt.Errorf("%w: password must be valid UTF-8 text", ErrInvalidFormat)
	}
	if err := checkPasswordPolicy(secret); err != nil {
		return err
	}

	digest, err := c.hasher.Digest(secret)
	if err != nil {
		return err
	}
	c.digest = digest
	return nil
}

// Verify reports whether candidate matches the stored digest. It never fails:
// malformed input or an unset credential simply does not match.
func (c *Credential) Verify(candidate string) bool {
	if c.digest == nil || !utf8.ValidString(candidate) {
		return false
	}
	return c.hasher.Matches(c.digest, candidate)
}

// IsSet reports whether a digest has been stored
func (c *Credential) IsSet() bool {
	return c.digest != nil
}

// checkPasswordPolicy counts superscript and other No-class digits as digits
func checkPasswordPolicy(secret string) error {
	if utf8.RuneCountInString(secret) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrPolicyViolation, MinPasswordLength)
	}

	var hasDigit, hasLetter bool
	for _, r := range secret {
		switch {
		case unicode.IsDigit(r), unicode.Is(unicode.No, r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", ErrPolicyViolation)
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", ErrPolicyViolation)
	}
	return nil
}
