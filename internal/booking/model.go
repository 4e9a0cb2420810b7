// Package booking holds the appointment model, its lifecycle errors and the
// optional Postgres audit ledger.
package booking

import "time"

// Status is the lifecycle state of an appointment. Appointments are never
// deleted, only status-transitioned.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// Appointment is a booking record. It holds a non-owning reference to the
// doctor plus a denormalized copy of the fields the patient sees.
type Appointment struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctorId"`
	DoctorName  string    `json:"doctorName"`
	Date        string    `json:"date"` // ISO yyyy-mm-dd
	Time        string    `json:"time"` // HH:MM
	PatientName string    `json:"patientName"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Confirmed reports whether the appointment currently holds its slot.
func (a Appointment) Confirmed() bool {
	return a.Status == StatusConfirmed
}
