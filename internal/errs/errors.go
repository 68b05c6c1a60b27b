package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	// ErrNotFound reports that a referenced record does not exist.
	ErrNotFound = errors.New("not_found")
	// ErrInvalid is used for malformed or missing caller input (HTTP 400).
	ErrInvalid = errors.New("invalid")
)

// Error pairs a sentinel kind with a message that is safe to show to callers.
// errors.Is(err, ErrInvalid) and friends match through Unwrap.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

// Invalid returns an ErrInvalid with a caller-facing message.
func Invalid(msg string) error { return &Error{Kind: ErrInvalid, Msg: msg} }

// NotFound returns an ErrNotFound with a caller-facing message.
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }

// Message returns the caller-facing message of err, or fallback when err
// carries none.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return fallback
}
