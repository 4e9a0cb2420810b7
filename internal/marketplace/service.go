package marketplace

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brunohpsv/medagendar/internal/booking"
	"github.com/brunohpsv/medagendar/internal/directory"
	"github.com/brunohpsv/medagendar/internal/observability/metrics"
	"github.com/brunohpsv/medagendar/internal/schedule"
	"github.com/brunohpsv/medagendar/internal/store"
	"github.com/brunohpsv/medagendar/pkg/logging"
)

// Service is the availability and booking engine over the marketplace state:
// it derives bookable windows from each doctor's work configuration and
// applies the booking and cancellation transitions.
type Service struct {
	store      *store.Store
	ledger     *booking.Ledger
	metrics    *metrics.BookingMetrics
	logger     *logging.Logger
	windowDays int
	now        func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithLedger attaches the optional Postgres audit ledger.
func WithLedger(ledger *booking.Ledger) Option {
	return func(s *Service) { s.ledger = ledger }
}

// WithMetrics attaches booking metrics.
func WithMetrics(m *metrics.BookingMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates the booking engine over the given store.
func NewService(st *store.Store, windowDays int, logger *logging.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if windowDays <= 0 {
		windowDays = 14
	}
	s := &Service{
		store:      st,
		logger:     logger,
		windowDays: windowDays,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureSeeded inserts the demo directory when the store is empty, deriving
// each schedule window from the doctor's work configuration.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	return s.store.Update(ctx, func(state *store.State) error {
		if len(state.Doctors) > 0 {
			return nil
		}
		seeds := directory.SeedDoctors()
		for i := range seeds {
			if err := s.refreshSchedule(&seeds[i], state.Appointments); err != nil {
				return err
			}
		}
		state.Doctors = seeds
		s.logger.Info("seeded demo directory", "doctors", len(seeds))
		return nil
	})
}

// RefreshSchedules regenerates every doctor's visible window from today,
// keeping confirmed bookings excluded. Run at startup so stale windows roll
// forward.
func (s *Service) RefreshSchedules(ctx context.Context) error {
	return s.store.Update(ctx, func(state *store.State) error {
		for i := range state.Doctors {
			if err := s.refreshSchedule(&state.Doctors[i], state.Appointments); err != nil {
				return err
			}
		}
		return nil
	})
}

// refreshSchedule rebuilds one doctor's window, excluding times held by
// confirmed appointments.
func (s *Service) refreshSchedule(doc *directory.Doctor, appointments []booking.Appointment) error {
	booked := make(map[string][]schedule.TimeOfDay)
	for _, appt := range appointments {
		if appt.DoctorID != doc.ID || !appt.Confirmed() {
			continue
		}
		t, err := schedule.ParseTimeOfDay(appt.Time)
		if err != nil {
			continue
		}
		booked[appt.Date] = append(booked[appt.Date], t)
	}

	window, err := schedule.BuildWindow(doc.WorkConfig, s.today(), s.windowDays, booked)
	if err != nil {
		return err
	}
	doc.Schedule = window
	for _, day := range window {
		s.metrics.ObserveSlotsPerDay(len(day.Slots))
	}
	return nil
}

func (s *Service) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ListDoctors returns the directory filtered by query and specialty.
func (s *Service) ListDoctors(ctx context.Context, query, specialty string) []directory.Doctor {
	return directory.Search(s.store.Snapshot().Doctors, query, specialty)
}

// GetDoctor returns one doctor by id.
func (s *Service) GetDoctor(ctx context.Context, id string) (directory.Doctor, error) {
	for _, doc := range s.store.Snapshot().Doctors {
		if doc.ID == id {
			return doc, nil
		}
	}
	return directory.Doctor{}, directory.ErrDoctorNotFound
}

// RegisterRequest is a professional signup submission.
type RegisterRequest struct {
	Name          string   `json:"name"`
	Specialties   []string `json:"specialties"`
	ClinicAddress string   `json:"clinicAddress"`
	FullBio       string   `json:"fullBio"`
}

// Validate checks the signup fields.
func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return directory.ErrInvalidName
	}
	if len(r.Specialties) == 0 {
		return directory.ErrMissingSpecialties
	}
	return nil
}

// RegisterDoctor creates a provider record with the signup defaults and a
// freshly generated booking window.
func (s *Service) RegisterDoctor(ctx context.Context, req RegisterRequest) (directory.Doctor, error) {
	if err := req.Validate(); err != nil {
		return directory.Doctor{}, err
	}

	doc := directory.Doctor{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Specialties:   req.Specialties,
		Rating:        5.0,
		Reviews:       0,
		Location:      "Localização a definir",
		ClinicAddress: req.ClinicAddress,
		Image:         "https://images.unsplash.com/photo-1594824476967-48c8b964273f?auto=format&fit=crop&q=80&w=400",
		Bio:           "Novo profissional cadastrado na rede.",
		FullBio:       req.FullBio,
		Price:         0,
		PriceType:     directory.PriceCombined,
		AcceptsOnline: true,
		Education:     []string{"Informação pendente"},
		WorkConfig:    schedule.DefaultWorkConfig(),
	}

	err := s.store.Update(ctx, func(state *store.State) error {
		if err := s.refreshSchedule(&doc, state.Appointments); err != nil {
			return err
		}
		state.Doctors = append(state.Doctors, doc)
		return nil
	})
	if err != nil {
		return directory.Doctor{}, err
	}

	s.logger.Info("doctor registered", "id", doc.ID, "name", doc.Name)
	return doc, nil
}

// ProfilePatch is a typed partial update to a doctor's profile fields.
// Nil fields retain their prior value.
type ProfilePatch struct {
	Name          *string              `json:"name,omitempty"`
	Specialties   *[]string            `json:"specialties,omitempty"`
	Location      *string              `json:"location,omitempty"`
	ClinicAddress *string              `json:"clinicAddress,omitempty"`
	Bio           *string              `json:"bio,omitempty"`
	FullBio       *string              `json:"fullBio,omitempty"`
	Price         *int                 `json:"price,omitempty"`
	PriceType     *directory.PriceType `json:"priceType,omitempty"`
	AcceptsOnline *bool                `json:"acceptsOnline,omitempty"`
	Education     *[]string            `json:"education,omitempty"`
}

// UpdateProfile applies a partial profile update.
func (s *Service) UpdateProfile(ctx context.Context, doctorID string, patch ProfilePatch) (directory.Doctor, error) {
	var updated directory.Doctor
	err := s.store.Update(ctx, func(state *store.State) error {
		doc := findDoctor(state, doctorID)
		if doc == nil {
			return directory.ErrDoctorNotFound
		}
		applyProfilePatch(doc, patch)
		updated = *doc
		return nil
	})
	if err != nil {
		return directory.Doctor{}, err
	}
	return updated, nil
}

func applyProfilePatch(doc *directory.Doctor, patch ProfilePatch) {
	if patch.Name != nil {
		doc.Name = *patch.Name
	}
	if patch.Specialties != nil {
		doc.Specialties = *patch.Specialties
	}
	if patch.Location != nil {
		doc.Location = *patch.Location
	}
	if patch.ClinicAddress != nil {
		doc.ClinicAddress = *patch.ClinicAddress
	}
	if patch.Bio != nil {
		doc.Bio = *patch.Bio
	}
	if patch.FullBio != nil {
		doc.FullBio = *patch.FullBio
	}
	if patch.Price != nil {
		doc.Price = *patch.Price
	}
	if patch.PriceType != nil {
		doc.PriceType = *patch.PriceType
	}
	if patch.AcceptsOnline != nil {
		doc.AcceptsOnline = *patch.AcceptsOnline
	}
	if patch.Education != nil {
		doc.Education = *patch.Education
	}
}

// UpdateWorkConfig merges the patch into the doctor's work configuration and
// regenerates the booking window so displayed slots never drift from the
// declared hours. Times held by confirmed appointments stay excluded.
func (s *Service) UpdateWorkConfig(ctx context.Context, doctorID string, patch schedule.WorkConfigPatch) (directory.Doctor, error) {
	var updated directory.Doctor
	err := s.store.Update(ctx, func(state *store.State) error {
		doc := findDoctor(state, doctorID)
		if doc == nil {
			return directory.ErrDoctorNotFound
		}
		merged, err := patch.Apply(doc.WorkConfig)
		if err != nil {
			return err
		}
		doc.WorkConfig = merged
		if err := s.refreshSchedule(doc, state.Appointments); err != nil {
			return err
		}
		updated = *doc
		return nil
	})
	if err != nil {
		return directory.Doctor{}, err
	}
	s.logger.Info("work config updated", "doctor_id", doctorID)
	return updated, nil
}

// RemoveDoctor deletes a doctor from the directory. Appointments keep their
// non-owning doctor reference; there is no cascade.
func (s *Service) RemoveDoctor(ctx context.Context, doctorID string) error {
	return s.store.Update(ctx, func(state *store.State) error {
		for i, doc := range state.Doctors {
			if doc.ID == doctorID {
				state.Doctors = append(state.Doctors[:i], state.Doctors[i+1:]...)
				return nil
			}
		}
		return directory.ErrDoctorNotFound
	})
}

func findDoctor(state *store.State, id string) *directory.Doctor {
	for i := range state.Doctors {
		if state.Doctors[i].ID == id {
			return &state.Doctors[i]
		}
	}
	return nil
}

func sortWindow(window []schedule.DaySchedule) {
	sort.Slice(window, func(i, j int) bool { return window[i].Date < window[j].Date })
}
