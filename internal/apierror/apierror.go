// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "net/http"

// Kind classifies a service error so handlers can pick the HTTP status
// without string-matching messages.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
)

// Error is the typed error services return to handlers.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) *Error     { return &Error{Kind: KindValidation, Message: msg} }
func Authentication(msg string) *Error { return &Error{Kind: KindAuthentication, Message: msg} }
func Authorization(msg string) *Error  { return &Error{Kind: KindAuthorization, Message: msg} }
func NotFound(msg string) *Error       { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error       { return &Error{Kind: KindConflict, Message: msg} }
func Internal(msg string) *Error       { return &Error{Kind: KindInternal, Message: msg} }

// Envelope is the canonical error body for all 4xx/5xx responses:
// {"error": {"message": "..."}}
type Envelope struct {
	Err Detail `json:"error"`
}

type Detail struct {
	Message string `json:"message"`
}

// New builds the wire envelope for a message.
func New(msg string) *Envelope {
	return &Envelope{Err: Detail{Message: msg}}
}

// ValidationFields wraps multiple field errors from request binding.
type ValidationFields struct {
	Err struct {
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func NewValidation(fields map[string]string) *ValidationFields {
	v := &ValidationFields{}
	v.Err.Message = "Validation failed"
	v.Err.Fields = fields
	return v
}
