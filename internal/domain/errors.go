package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrWindowNotOpen          = errors.New("registration window has not opened")
	ErrWindowClosed           = errors.New("registration window has closed")
	ErrCapacityExceeded       = errors.New("event capacity exceeded")
	ErrAlreadyReserved        = errors.New("participant already has a reservation for this event")
	ErrAlreadyAdmitted        = errors.New("reservation already admitted")
	ErrReservationCancelled   = errors.New("reservation was cancelled")
	ErrOutsideAdmissionWindow = errors.New("outside the admission window")
	ErrNotActive              = errors.New("reservation is not active")
	ErrNotOwner               = errors.New("reservation belongs to another participant")
)

var (
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("storage temporarily unavailable")
)

// AlreadyAdmittedError carries the original admission timestamp so gate
// staff can see when the token was first redeemed. Unwraps to
// ErrAlreadyAdmitted for errors.Is checks.
type AlreadyAdmittedError struct {
	AdmittedAt time.Time
}

func (e *AlreadyAdmittedError) Error() string {
	return fmt.Sprintf("reservation already admitted at %s", e.AdmittedAt.Format(time.RFC3339))
}

func (e *AlreadyAdmittedError) Unwrap() error { return ErrAlreadyAdmitted }
