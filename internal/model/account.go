package model

import (
	"fmt"
	"regexp"

	"github.com/mcoot/shopsim/internal/dependencies/hasher"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z]{3,16}$`)

// Account is a logged in user. It owns its credential and its cart.
type Account struct {
	id         AccountID
	username   string
	credential *Credential
	cart       *Cart
}

// NewAccount allocates an id, validates the username, stores the password
// digest and gives the account an empty cart. The id is consumed even when
// validation fails.
func NewAccount(ids *IDAllocator, h hasher.Hasher, username, password string) (*Account, error) {
	id := AccountID(ids.Next())

	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	credential := NewCredential(h)
	if err := credential.Set(password); err != nil {
		return nil, err
	}

	return &Account{
		id:         id,
		username:   username,
		credential: credential,
		cart:       NewCart(),
	}, nil
}

func (a *Account) ID() AccountID    { return a.id }
func (a *Account) Username() string { return a.username }
func (a *Account) Cart() *Cart      { return a.cart }

// CheckPassword reports whether candidate is the account's password
func (a *Account) CheckPassword(candidate string) bool {
	return a.credential.Verify(candidate)
}

func (a *Account) String() string {
	return fmt.Sprintf("User(id=%d, username=%s)", a.id, a.username)
}
