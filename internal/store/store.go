package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/brunohpsv/medagendar/internal/booking"
	"github.com/brunohpsv/medagendar/internal/directory"
	"github.com/brunohpsv/medagendar/pkg/logging"
)

// State is the full marketplace snapshot: every doctor record plus the
// appointment ledger, appointments newest first.
type State struct {
	Doctors      []directory.Doctor    `json:"doctors"`
	Appointments []booking.Appointment `json:"appointments"`
}

// Store holds the in-memory state and writes it through to the KV after every
// mutation. A single mutex serializes mutations, so a read after a completed
// update always observes that update.
type Store struct {
	kv     KV
	logger *logging.Logger

	mu    sync.RWMutex
	state State
}

// New creates a store over the given KV.
func New(kv KV, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{kv: kv, logger: logger}
}

// Load reads both state keys. Missing keys load as empty collections, so a
// first boot starts from nothing and the caller may seed.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctors, err := loadKey[[]directory.Doctor](ctx, s.kv, KeyDoctors)
	if err != nil {
		return err
	}
	appointments, err := loadKey[[]booking.Appointment](ctx, s.kv, KeyAppointments)
	if err != nil {
		return err
	}

	s.state = State{Doctors: doctors, Appointments: appointments}
	s.logger.Info("state loaded",
		"doctors", len(s.state.Doctors),
		"appointments", len(s.state.Appointments),
	)
	return nil
}

func loadKey[T any](ctx context.Context, kv KV, key string) (T, error) {
	var out T
	data, err := kv.Get(ctx, key)
	if err != nil {
		if err == ErrNotFound {
			return out, nil
		}
		return out, fmt.Errorf("store: load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return out, nil
}

// Snapshot returns a deep copy of the current state for read paths.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Update runs fn against a working copy of the state and, when fn succeeds,
// persists both keys and commits the copy. An error from fn or from the KV
// leaves the in-memory state untouched, so book/cancel stay atomic across the
// doctor schedule and the appointment ledger.
func (s *Store) Update(ctx context.Context, fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := cloneState(s.state)
	if err := fn(&working); err != nil {
		return err
	}
	if err := s.persist(ctx, working); err != nil {
		return err
	}
	s.state = working
	return nil
}

func (s *Store) persist(ctx context.Context, state State) error {
	doctors, err := json.Marshal(state.Doctors)
	if err != nil {
		return fmt.Errorf("store: encode doctors: %w", err)
	}
	appointments, err := json.Marshal(state.Appointments)
	if err != nil {
		return fmt.Errorf("store: encode appointments: %w", err)
	}
	if err := s.kv.Set(ctx, KeyDoctors, doctors); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyAppointments, appointments); err != nil {
		return err
	}
	return nil
}

func cloneState(state State) State {
	// JSON round-trip keeps the copy honest as the nested types evolve.
	data, err := json.Marshal(state)
	if err != nil {
		panic(fmt.Sprintf("store: clone state: %v", err))
	}
	var out State
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("store: clone state: %v", err))
	}
	return out
}
