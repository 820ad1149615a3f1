package booking

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrKind classifies a booking failure.
type ErrKind string

const (
	KindInput        ErrKind = "input"
	KindBusinessRule ErrKind = "business_rule"
	KindConflict     ErrKind = "conflict"
	KindDependency   ErrKind = "dependency"
	KindInternal     ErrKind = "internal"
)

// ErrParse is returned when a clock time is not a valid "HH:MM".
var ErrParse = errors.New("invalid time of day")

// BookingError carries a user-facing message and the kind used to pick the
// HTTP status. Err holds the underlying cause for logging; it is never sent
// to clients.
type BookingError struct {
	Kind    ErrKind
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func NewInputError(msg string) error {
	return &BookingError{Kind: KindInput, Message: msg}
}

func NewBusinessRuleError(msg string) error {
	return &BookingError{Kind: KindBusinessRule, Message: msg}
}

func NewConflictError(msg string) error {
	return &BookingError{Kind: KindConflict, Message: msg}
}

func NewDependencyError(msg string, cause error) error {
	return &BookingError{Kind: KindDependency, Message: msg, Err: cause}
}

func NewInternalError(msg string, cause error) error {
	return &BookingError{Kind: KindInternal, Message: msg, Err: cause}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) ErrKind {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}

// PublicMessage returns the message safe to show to the booker.
func PublicMessage(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Message
	}
	return msgServerError
}

// HTTPStatus maps a kind to its response status.
func HTTPStatus(kind ErrKind) int {
	switch kind {
	case KindInput, KindBusinessRule:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
