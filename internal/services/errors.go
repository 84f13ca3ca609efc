package services

import "errors"

// Classified failures. Handlers map these to HTTP responses; transport-level
// detail never crosses the API boundary, it is logged where the call failed.
var (
	ErrInputIncomplete    = errors.New("required input is missing")
	ErrQuotaExceeded      = errors.New("daily generation limit reached")
	ErrBackendUnavailable = errors.New("generation backend unavailable")
	ErrEmptyResponse      = errors.New("generation backend returned no output")
	ErrMalformedArtifact  = errors.New("generated output is not valid JSON")
	ErrStoryboardFailed   = errors.New("storyboard generation failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConfirmed       = errors.New("account not confirmed")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrOptimisticLock     = errors.New("data has been modified by another user, please refresh and try again")
)
