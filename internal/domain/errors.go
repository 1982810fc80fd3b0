package domain

import "errors"

// ErrorKind categorizes the failures the interpretation pipeline can raise.
type ErrorKind int

const (
	// KindConfiguration means the required API credential is missing.
	KindConfiguration ErrorKind = iota
	// KindInputRejected means the question or name failed validation.
	KindInputRejected
	// KindEmptyCompletion means the model call succeeded but returned no text.
	KindEmptyCompletion
	// KindCompromisedResponse means the model response failed post-hoc checks.
	KindCompromisedResponse
	// KindTransport is any other network or service failure.
	KindTransport
)

// String returns a short machine-oriented label for logs.
func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInputRejected:
		return "input rejected"
	case KindEmptyCompletion:
		return "empty completion"
	case KindCompromisedResponse:
		return "compromised response"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is a pipeline failure carrying a user-displayable themed message.
// The wrapped cause, if any, is for internal logging only and never shown
// to the consultant.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error returns the themed message. Raw causes stay out of user-facing text.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two pipeline errors by kind, so callers can branch on
// errors.Is(err, &domain.Error{Kind: domain.KindConfiguration}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewConfigurationError reports a missing or unusable credential.
func NewConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// NewInputRejectedError reports user input that failed a validation rule.
func NewInputRejectedError(message string) *Error {
	return &Error{Kind: KindInputRejected, Message: message}
}

// NewEmptyCompletionError reports a completion with no usable text.
func NewEmptyCompletionError(message string) *Error {
	return &Error{Kind: KindEmptyCompletion, Message: message}
}

// NewCompromisedResponseError reports model output that failed a
// post-response check. The suspect text itself is never attached.
func NewCompromisedResponseError(message string) *Error {
	return &Error{Kind: KindCompromisedResponse, Message: message}
}

// NewTransportError wraps a low-level failure behind a generic themed message.
func NewTransportError(message string, cause error) *Error {
	return &Error{Kind: KindTransport, Message: message, Err: cause}
}

// IsKind reports whether err is (or wraps) a pipeline error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
