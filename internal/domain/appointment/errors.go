package appointment

import "errors"

// Domain errors surfaced by the booking service. Handlers translate them to
// HTTP statuses; everything else is treated as a store failure.
var (
	ErrNotFound        = errors.New("appointment not found")
	ErrNotOwner        = errors.New("caller does not own this appointment")
	ErrPastAppointment = errors.New("appointment is already in the past")
	ErrMissingFields   = errors.New("missing required booking information")
	ErrInvalidDateTime = errors.New("invalid date or time format")
)
