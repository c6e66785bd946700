package income

import "errors"

// Domain error taxonomy. Handlers map these to HTTP statuses with
// errors.Is; everything unrecognized is an internal failure (500) so
// the payment provider can distinguish retry-worthy failures from
// accepted duplicates.
var (
	// ErrMalformedPayload indicates an unparseable callback body or a
	// missing/uncoercible required field.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrUserNotFound indicates no profile matches any candidate form
	// of the callback's phone number.
	ErrUserNotFound = errors.New("user not found")

	// ErrPersistenceFailure indicates the record store rejected or
	// failed to acknowledge a write.
	ErrPersistenceFailure = errors.New("persistence failure")
)
