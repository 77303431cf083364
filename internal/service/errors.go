package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrReauthRequired means the integration can no longer refresh its
	// access token on its own; the user must go through the OAuth flow again.
	ErrReauthRequired = errors.New("integration requires reauthorization")

	// ErrIntegrationNotConnected means the integration has no backing token
	// secret to operate with (deleted secret, never-completed connect).
	ErrIntegrationNotConnected = errors.New("integration has no stored token")
)
