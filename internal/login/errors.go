package login

import "errors"

// Sentinel errors for the login form. Field errors wrap one of the first three
// so callers can branch with errors.Is.
var (
	// ErrFieldRequired indicates an empty email or password.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidFormat indicates an email that does not look like user@host.tld.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrTooShort indicates a password below the minimum length.
	ErrTooShort = errors.New("too short")

	// ErrAuthenticationFailed is the generic, post-submission failure. It never
	// says which of the two credentials was wrong.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidFields is returned by Controller.Submit when validation rejected
	// the attempt before it reached the authenticator.
	ErrInvalidFields = errors.New("form has invalid fields")

	// ErrSubmitInProgress is returned when a submit arrives while another
	// attempt for the same form has not resolved yet.
	ErrSubmitInProgress = errors.New("a login attempt is already in progress")
)

// GenericFailureMessage is the banner text shown after every failed attempt.
const GenericFailureMessage = "Invalid email or password. Please try again."

// FieldError is a validation failure for a single form field. Message is the
// human-readable text rendered next to the field.
type FieldError struct {
	Field   Field
	Err     error
	Message string
}

func (e *FieldError) Error() string { return e.Message }

func (e *FieldError) Unwrap() error { return e.Err }
