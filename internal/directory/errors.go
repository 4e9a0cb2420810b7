package directory

import "errors"

var (
	// ErrDoctorNotFound is returned when a doctor id resolves to nothing
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInvalidName is returned when a signup carries no name
	ErrInvalidName = errors.New("name is required")

	// ErrMissingSpecialties is returned when a signup carries no specialty tags
	ErrMissingSpecialties = errors.New("at least one specialty is required")
)
