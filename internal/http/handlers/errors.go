// Package handlers defines the HTTP-layer error codes used across the API.
//
// Codes are lowercase snake_case. Generic codes mirror common HTTP status
// semantics; domain-specific codes cover business outcomes a status alone
// cannot convey (a vote still in flight, a missing direction role).
// Handlers select the most specific matching code and pass it to fail()
// with the corresponding status and message; clients branch on the code.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeVoteInFlight      = "vote_in_flight"
	ErrCodeDirectionRequired = "direction_required"
	ErrCodeSignInFailed      = "sign_in_failed"
	ErrCodeSubmitFailed      = "submit_failed"
	ErrCodeMethodNotAllowed  = "method_not_allowed"
)
