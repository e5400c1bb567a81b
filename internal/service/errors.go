package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// OR the password does not match. One sentinel for both cases keeps
	// the response identical and prevents account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTitleRequired = errors.New("title is required")
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidUpdateFields is returned when an update request names any
	// field outside the allow-list. The entire update is rejected; no
	// field is applied.
	ErrInvalidUpdateFields = errors.New("invalid update fields")
)
