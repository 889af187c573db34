package service

import "errors"

// Domain errors. Handlers map these onto HTTP statuses; anything else
// escaping a service is an internal error and must not leak detail to
// the caller.
var (
	// ErrSignInRequired means the caller resolved to anonymous and tried
	// to mutate a comment.
	ErrSignInRequired = errors.New("sign in required")

	// ErrProjectNotFound means the referenced project does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrCommentNotFound covers both a genuinely missing comment and one
	// that exists but is not owned by the caller. Collapsing the two
	// keeps the denial path from revealing whether the comment exists.
	ErrCommentNotFound = errors.New("comment not found")

	// Validation errors
	ErrContentTooShort       = errors.New("comment content is too short")
	ErrContentTooLong        = errors.New("comment content is too long")
	ErrEmailPasswordRequired = errors.New("email and password are required")
	ErrInvalidEmail          = errors.New("invalid email address")

	// ErrInvalidCredentials means credentials were checked and did not
	// match. Never returned for credential-store failures.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken means registration hit an already-registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrTooManyAttempts means the client key is locked out of login.
	ErrTooManyAttempts = errors.New("too many login attempts, try again later")

	// ErrSheetUnavailable means the spreadsheet credential store could
	// not be reached or returned malformed data.
	ErrSheetUnavailable = errors.New("credential store unavailable")
)
