package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrInvalidEmail        = errors.New("invalid email address")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidAction      = errors.New("invalid action")
	ErrAIKeyNotConfigured = errors.New("ai api key is not configured")
	ErrNoteIDRequired     = errors.New("note id is required")
)
