package domain

import "errors"

var (
	// ErrUserExists signals a duplicate email or username. The unique
	// indexes on the users collection are the authoritative source of
	// this error; pre-insert existence checks only improve the message.
	ErrUserExists = errors.New("email or username already registered")

	// ErrInvalidRole rejects registration with a role outside
	// creator/buyer.
	ErrInvalidRole = errors.New("user_type must be creator or buyer")

	// ErrUserNotFound is an internal signal from the user repository.
	// It never reaches a response body on auth paths; the service maps
	// it to ErrInvalidCredentials or ErrInvalidToken first.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password so responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrInvalidToken covers every token failure mode: bad signature,
	// expiry, malformed input, or a subject that no longer exists.
	ErrInvalidToken = errors.New("invalid authentication credentials")

	ErrForbidden = errors.New("access forbidden")

	ErrProfileExists   = errors.New("creator profile already exists")
	ErrProfileNotFound = errors.New("creator profile not found")

	ErrListingNotFound = errors.New("service not found")

	ErrOrderNotFound = errors.New("order not found")

	// ErrCorruptDocument signals a stored document that failed to
	// decode into its typed entity.
	ErrCorruptDocument = errors.New("stored document is corrupt")
)
