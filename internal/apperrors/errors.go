package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotAuthorized indicates that the authenticated actor lacks the role or
// trust membership required for the operation.
var ErrNotAuthorized = errors.New("actor not authorized for this operation")

// ErrDuplicateVote indicates that the voter already cast a vote in the
// current open round for the asset.
var ErrDuplicateVote = errors.New("voter already voted in the current round")

// ErrRoundClosed indicates that a vote arrived after the round reached a
// terminal decision. The caller must re-fetch the vote status.
var ErrRoundClosed = errors.New("vote round already closed")

// ErrInvalidState indicates that the asset is not in a state that permits
// the requested transition (e.g. voting on an asset that is not
// PENDING_REVIEW).
var ErrInvalidState = errors.New("asset not in a valid state for this operation")

// ErrWrongMode indicates that the operation does not match the trust's
// consensus policy (direct approval on a consensus trust, or vice versa).
var ErrWrongMode = errors.New("operation not allowed under the trust's consensus policy")

// ErrConsistency indicates that a tally derived from the vote log disagrees
// with the stored asset status. Processing of the asset must halt.
var ErrConsistency = errors.New("vote log inconsistent with stored status")

// AppError wraps an underlying error with an HTTP-ish status code and a
// human-readable message. Repositories use it for infrastructure failures;
// the sentinel errors above cover business outcomes.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
