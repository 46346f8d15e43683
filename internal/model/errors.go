package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Validation errors
	ErrInvalidFormat   = errors.New("invalid format")
	ErrPolicyViolation = errors.New("policy violation")
	ErrInvalidUsername = fmt.Errorf("%w: username must be 3 to 16 latin letters", ErrPolicyViolation)
	ErrInvalidValue    = errors.New("invalid value")
	ErrInvalidArgument = errors.New("invalid argument")

	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
	ErrCatalogEmpty    = errors.New("catalog is empty")

	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
)
