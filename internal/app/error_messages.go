// Package app contains shared application-layer constants used across the
// mindpad server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidRegistrationData is returned when registration is rejected
	// because the email is malformed or the password is too short.
	MsgInvalidRegistrationData = "invalid email or password"

	// MsgInvalidLoginCredentials is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidLoginCredentials = "invalid email/password"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgInvalidAction is returned when an AI request names an action outside
	// the supported set.
	MsgInvalidAction = "Invalid action"

	// MsgContentAndActionRequired is returned when an AI request arrives with
	// an empty content or note reference.
	MsgContentAndActionRequired = "Content and action are required"

	// MsgRateLimited is returned when the upstream AI gateway reports that
	// the request quota is exhausted for now.
	MsgRateLimited = "Rate limit exceeded. Please try again later."

	// MsgCreditsExhausted is returned when the upstream AI gateway rejects
	// the request because the account balance is spent.
	MsgCreditsExhausted = "AI credits exhausted. Please add credits."

	// MsgAIGatewayError is returned for any other upstream AI failure. The
	// upstream detail is logged server-side only.
	MsgAIGatewayError = "AI gateway error"
)
