package bookings

import (
	"errors"
	"fmt"
	"net/http"

	"itickets/internal/tickets"
)

var ErrReferenceExhausted = errors.New("could not allocate a unique booking reference")

type ErrorKind string

const (
	KindValidation       ErrorKind = "validation"
	KindEventUnavailable ErrorKind = "event_unavailable"
	KindSoldOut          ErrorKind = "sold_out"
	KindStorageFailure   ErrorKind = "storage_failure"
)

const storageFailureMessage = "We could not complete your booking. Please try again."

// BookingError is the only error CreateBooking returns. Message is safe to
// show the caller; Err carries the underlying cause for logs.
type BookingError struct {
	Kind     ErrorKind
	Field    string           // validation: offending field
	Category tickets.Category // sold out: exhausted category
	Message  string
	Err      error
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

// HTTPStatus maps the kind onto the response status. Business rejections
// are the caller's to fix; storage failures are ours.
func (e *BookingError) HTTPStatus() int {
	if e.Kind == KindStorageFailure {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func validationError(field, message string) *BookingError {
	return &BookingError{Kind: KindValidation, Field: field, Message: message}
}

func eventUnavailable(err error) *BookingError {
	return &BookingError{Kind: KindEventUnavailable, Message: "Event not found or not available", Err: err}
}

func soldOut(category tickets.Category, err error) *BookingError {
	return &BookingError{
		Kind:     KindSoldOut,
		Category: category,
		Message:  fmt.Sprintf("Not enough %s tickets available", categoryLabel(category)),
		Err:      err,
	}
}

func storageFailure(step string, err error) *BookingError {
	return &BookingError{Kind: KindStorageFailure, Message: storageFailureMessage, Err: fmt.Errorf("%s: %w", step, err)}
}

// AsBookingError extracts a BookingError from err's chain
func AsBookingError(err error) (*BookingError, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

func categoryLabel(c tickets.Category) string {
	if c == tickets.CategoryVIP {
		return "VIP"
	}
	return string(c)
}
