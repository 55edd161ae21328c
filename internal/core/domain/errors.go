package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrSeatsTaken           = errors.New("seats already booked")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrNoSeatsSelected      = errors.New("no seats selected")
	ErrSelectionNotReady    = errors.New("screening, movie or theater not resolved")
	ErrPromotionInvalid     = errors.New("promotion is not valid")
	ErrPromotionCodeEmpty   = errors.New("promotion code is empty")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrInvalidRating        = errors.New("rating must be between 0 and 10")
	ErrNoCurrentBooking     = errors.New("no current booking")
	ErrNoPendingCheckout    = errors.New("no pending checkout")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrEmptyComment         = errors.New("comment is empty")
)

type TransitionError struct {
	From PaymentStatus
	To   PaymentStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking cannot go from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }

type ErrorKind string

const (
	KindNetwork      ErrorKind = "network"
	KindUnauthorized ErrorKind = "unauthorized"
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindServer       ErrorKind = "server"
)

// Error is a classified failure reported by the backend or the transport.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func NetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "network request failed", Err: err}
}

// ClassifyStatus builds an Error from an HTTP status and the server message.
// A message mentioning "already booked" is a conflict whatever the status.
func ClassifyStatus(status int, message string) *Error {
	e := &Error{StatusCode: status, Message: message}
	switch {
	case status == http.StatusConflict || strings.Contains(strings.ToLower(message), "already booked"):
		e.Kind = KindConflict
	case status == http.StatusUnauthorized:
		e.Kind = KindUnauthorized
	case status == http.StatusBadRequest:
		e.Kind = KindValidation
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	default:
		e.Kind = KindServer
	}
	return e
}

func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// UserMessage turns an error into the text shown to the user. notFound is
// the context-specific message used for 404s, e.g. "showtime not found, pick another".
func UserMessage(err error, notFound string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSeatsTaken):
		return "Seats taken, please reselect."
	case errors.Is(err, ErrNotAuthenticated):
		return "Please log in to continue."
	case errors.Is(err, ErrNoSeatsSelected):
		return "Please select at least one seat."
	case errors.Is(err, ErrPromotionInvalid):
		return "This promotion code is invalid or has expired."
	case errors.Is(err, ErrPromotionCodeEmpty):
		return "Please enter a promotion code."
	case errors.Is(err, ErrInvalidRating):
		return "Rating must be between 0 and 10."
	case errors.Is(err, ErrNoCurrentBooking):
		return "You have no ticket to show yet."
	case errors.Is(err, ErrNoPendingCheckout):
		return "Nothing to pay for, please select seats first."
	case errors.Is(err, ErrUnknownPaymentMethod):
		return "Please choose one of the listed payment methods."
	case errors.Is(err, ErrEmptyComment):
		return "Please write a comment or attach an image."
	case errors.Is(err, ErrSelectionNotReady):
		return "Showtime details are still loading, please try again."
	case errors.Is(err, ErrInvalidTransition):
		return "This booking can no longer be changed."
	}

	var e *Error
	if !errors.As(err, &e) {
		return "Something went wrong, please try again later."
	}
	switch e.Kind {
	case KindNetwork:
		return "Cannot reach the server, check your connection and try again."
	case KindUnauthorized:
		return "Session expired, please log in again."
	case KindConflict:
		return "Seats taken, please reselect."
	case KindNotFound:
		if notFound != "" {
			return notFound
		}
		return "The requested item was not found."
	case KindValidation:
		if e.Message != "" {
			return e.Message
		}
		return "The request was invalid."
	}
	return "Something went wrong, please try again later."
}
