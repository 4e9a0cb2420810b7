package marketplace

import (
	"context"

	"github.com/brunohpsv/medagendar/internal/booking"
	"github.com/brunohpsv/medagendar/internal/directory"
)

// Stats is the admin dashboard aggregate.
type Stats struct {
	Doctors               int `json:"doctors"`
	ConfirmedAppointments int `json:"confirmed_appointments"`
	CancelledAppointments int `json:"cancelled_appointments"`
	GrossRevenue          int `json:"gross_revenue"`
}

// Stats aggregates the marketplace: provider count, appointment counts and
// gross revenue. Revenue counts fixed-price doctors only; combined and
// clinic pricing is settled off-platform.
func (s *Service) Stats(ctx context.Context) Stats {
	state := s.store.Snapshot()

	prices := make(map[string]int, len(state.Doctors))
	for _, doc := range state.Doctors {
		if doc.PriceType == directory.PriceFixed {
			prices[doc.ID] = doc.Price
		}
	}

	out := Stats{Doctors: len(state.Doctors)}
	for _, appt := range state.Appointments {
		switch appt.Status {
		case booking.StatusCancelled:
			out.CancelledAppointments++
		case booking.StatusConfirmed:
			out.ConfirmedAppointments++
			out.GrossRevenue += prices[appt.DoctorID]
		}
	}
	return out
}
