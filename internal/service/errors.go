package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTokenIsExpired is returned when a token's signature is valid but
	// its expiry has passed. Expiry is the only invalidation path; there is
	// no revocation list.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid covers every other verification failure: bad
	// signature, wrong issuer, malformed token.
	ErrTokenIsInvalid = errors.New("token is invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
