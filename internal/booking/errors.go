package booking

import "errors"

var (
	// ErrSlotUnavailable is returned when the requested slot is absent from
	// the day's available set: already booked, inside a break, or never
	// generated at all
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrAppointmentNotFound is returned when an appointment id resolves to nothing
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAlreadyCancelled is returned when cancelling an appointment twice
	ErrAlreadyCancelled = errors.New("appointment already cancelled")

	// ErrInvalidPatient is returned when a booking carries no patient name
	ErrInvalidPatient = errors.New("patient name is required")
)
