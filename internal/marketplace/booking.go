package marketplace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brunohpsv/medagendar/internal/booking"
	"github.com/brunohpsv/medagendar/internal/schedule"
	"github.com/brunohpsv/medagendar/internal/store"
)

// BookRequest commits a patient's slot selection.
type BookRequest struct {
	DoctorID    string `json:"doctorId"`
	Date        string `json:"date"` // ISO yyyy-mm-dd
	Time        string `json:"time"` // HH:MM
	PatientName string `json:"patientName"`
}

// Validate checks the booking fields before touching state.
func (r *BookRequest) Validate() error {
	if strings.TrimSpace(r.PatientName) == "" {
		return booking.ErrInvalidPatient
	}
	if _, err := time.Parse(schedule.DateLayout, r.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	if _, err := schedule.ParseTimeOfDay(r.Time); err != nil {
		return err
	}
	return nil
}

// Book removes the slot from the doctor's day and creates a confirmed
// appointment, atomically: the update commits both or neither. A slot that is
// absent, already booked or never generated, fails with ErrSlotUnavailable.
func (s *Service) Book(ctx context.Context, req BookRequest) (booking.Appointment, error) {
	if err := req.Validate(); err != nil {
		return booking.Appointment{}, err
	}

	slot, err := schedule.ParseTimeOfDay(req.Time)
	if err != nil {
		return booking.Appointment{}, err
	}

	var appt booking.Appointment
	err = s.store.Update(ctx, func(state *store.State) error {
		doc := findDoctor(state, req.DoctorID)
		if doc == nil {
			return booking.ErrSlotUnavailable
		}
		day := doc.DayFor(req.Date)
		if day == nil || !day.TakeSlot(slot) {
			return booking.ErrSlotUnavailable
		}

		appt = booking.Appointment{
			ID:          uuid.NewString(),
			DoctorID:    doc.ID,
			DoctorName:  doc.Name,
			Date:        req.Date,
			Time:        slot.String(),
			PatientName: strings.TrimSpace(req.PatientName),
			Status:      booking.StatusConfirmed,
			CreatedAt:   s.now().UTC(),
		}
		// Newest first.
		state.Appointments = append([]booking.Appointment{appt}, state.Appointments...)
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrSlotUnavailable) {
			s.metrics.ObserveBooking("slot_unavailable")
		}
		return booking.Appointment{}, err
	}

	s.metrics.ObserveBooking("confirmed")
	s.logger.Info("appointment booked",
		"appointment_id", appt.ID,
		"doctor_id", appt.DoctorID,
		"date", appt.Date,
		"time", appt.Time,
	)

	// The ledger is an audit trail; a write failure must not undo a booking.
	if err := s.ledger.RecordConfirmed(ctx, appt); err != nil {
		s.logger.Warn("ledger write failed", "appointment_id", appt.ID, "error", err)
	}
	return appt, nil
}

// Cancel sets the appointment cancelled and releases its slot back into the
// doctor's day, preserving ascending order. The day entry is re-created when
// window regeneration had dropped it.
func (s *Service) Cancel(ctx context.Context, appointmentID string) error {
	err := s.store.Update(ctx, func(state *store.State) error {
		var appt *booking.Appointment
		for i := range state.Appointments {
			if state.Appointments[i].ID == appointmentID {
				appt = &state.Appointments[i]
				break
			}
		}
		if appt == nil {
			return booking.ErrAppointmentNotFound
		}
		if appt.Status == booking.StatusCancelled {
			return booking.ErrAlreadyCancelled
		}
		appt.Status = booking.StatusCancelled

		doc := findDoctor(state, appt.DoctorID)
		if doc == nil {
			// Doctor removed since booking; nothing to release.
			return nil
		}
		slot, err := schedule.ParseTimeOfDay(appt.Time)
		if err != nil {
			return err
		}
		day := doc.DayFor(appt.Date)
		if day == nil {
			date, err := time.Parse(schedule.DateLayout, appt.Date)
			if err != nil {
				return err
			}
			doc.Schedule = append(doc.Schedule, schedule.DaySchedule{
				Date:  appt.Date,
				Label: schedule.DayLabel(date),
			})
			sortWindow(doc.Schedule)
			day = doc.DayFor(appt.Date)
		}
		day.RestoreSlot(slot)
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.ObserveCancellation()
	s.logger.Info("appointment cancelled", "appointment_id", appointmentID)

	if err := s.ledger.RecordCancelled(ctx, appointmentID); err != nil {
		s.logger.Warn("ledger write failed", "appointment_id", appointmentID, "error", err)
	}
	return nil
}

// Appointments returns the full ledger, newest first.
func (s *Service) Appointments(ctx context.Context) []booking.Appointment {
	return s.store.Snapshot().Appointments
}

// AppointmentsForDoctor returns one doctor's appointments, newest first.
func (s *Service) AppointmentsForDoctor(ctx context.Context, doctorID string) []booking.Appointment {
	all := s.store.Snapshot().Appointments
	out := make([]booking.Appointment, 0, len(all))
	for _, appt := range all {
		if appt.DoctorID == doctorID {
			out = append(out, appt)
		}
	}
	return out
}
