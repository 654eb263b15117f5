package domain

import "errors"

var (
	// ErrInvalidItem is returned when a grocery item fails validation
	ErrInvalidItem = errors.New("invalid grocery item")

	// ErrInvalidCategory is returned for a category outside the known set
	ErrInvalidCategory = errors.New("unknown category")

	// ErrItemNotFound is returned when a grocery item does not exist
	ErrItemNotFound = errors.New("grocery item not found")

	// ErrInvalidPriceRecord is returned when a price record fails validation
	ErrInvalidPriceRecord = errors.New("invalid price record")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for a failed login attempt
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned for a missing, malformed, or expired token
	ErrInvalidToken = errors.New("invalid or expired token")
)
