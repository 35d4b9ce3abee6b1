package gateway

import "errors"

// Sentinel errors mapping upstream gateway failures. The HTTP layer matches
// these with [errors.Is] to pick the client-facing status and message.
var (
	// ErrRateLimited is returned when the gateway answers HTTP 429.
	ErrRateLimited = errors.New("ai gateway rate limit exceeded")

	// ErrCreditsExhausted is returned when the gateway answers HTTP 402.
	ErrCreditsExhausted = errors.New("ai gateway credits exhausted")

	// ErrGatewayFailure covers every other upstream failure. Details are
	// logged server-side and never forwarded to clients.
	ErrGatewayFailure = errors.New("ai gateway error")
)
