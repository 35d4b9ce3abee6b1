package adapter

import "errors"

// Sentinel errors mapped from server HTTP status codes. mapHTTPError wraps
// them with the server-provided message so callers can both match with
// errors.Is and show the text to the user.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrRateLimited      = errors.New("rate limited")
	ErrCreditsExhausted = errors.New("ai credits exhausted")
	ErrServerError      = errors.New("server error")
)
