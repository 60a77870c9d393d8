package application

import "errors"

// User-facing errors. Handlers map these onto HTTP statuses; the message
// text is what the client shows, so keep it free of internal detail.
var (
	ErrInvalidPhone        = errors.New("invalid phone number format")
	ErrPhoneTaken          = errors.New("an account with this phone number already exists")
	ErrInvalidCredentials  = errors.New("invalid phone number or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrNameRequired        = errors.New("name is required")
	ErrHappinessRange      = errors.New("happiness must be between 0 and 100")
	ErrNoFields            = errors.New("no fields to update")
	ErrInsufficientCoins   = errors.New("insufficient coins")
	ErrAllAnimalsCollected = errors.New("all animals collected")
)
