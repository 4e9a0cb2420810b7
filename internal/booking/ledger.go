package booking

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS appointment_ledger (
	id           TEXT PRIMARY KEY,
	doctor_id    TEXT NOT NULL,
	doctor_name  TEXT NOT NULL,
	date         TEXT NOT NULL,
	time         TEXT NOT NULL,
	patient_name TEXT NOT NULL,
	status       TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
)`

// ledgerDB defines the database surface the ledger needs.
type ledgerDB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Ledger is an append-only audit trail of booking transitions, kept in
// Postgres alongside the primary key-value snapshot. It is optional: a nil
// Ledger ignores every call.
type Ledger struct {
	db ledgerDB
}

// NewLedger creates a ledger backed by a pgx pool.
func NewLedger(pool *pgxpool.Pool) *Ledger {
	if pool == nil {
		panic("booking: pgx pool required")
	}
	return &Ledger{db: pool}
}

// NewLedgerWithDB allows injecting mocks for tests.
func NewLedgerWithDB(db ledgerDB) *Ledger {
	return &Ledger{db: db}
}

// Init creates the ledger table when missing.
func (l *Ledger) Init(ctx context.Context) error {
	if l == nil {
		return nil
	}
	if _, err := l.db.Exec(ctx, ledgerSchema); err != nil {
		return fmt.Errorf("booking: init ledger: %w", err)
	}
	return nil
}

// RecordConfirmed appends a confirmed appointment row.
func (l *Ledger) RecordConfirmed(ctx context.Context, appt Appointment) error {
	if l == nil {
		return nil
	}
	_, err := l.db.Exec(ctx,
		`INSERT INTO appointment_ledger (id, doctor_id, doctor_name, date, time, patient_name, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		appt.ID, appt.DoctorID, appt.DoctorName, appt.Date, appt.Time, appt.PatientName, string(appt.Status), appt.CreatedAt)
	if err != nil {
		return fmt.Errorf("booking: record confirmed: %w", err)
	}
	return nil
}

// RecordCancelled marks a ledger row cancelled.
func (l *Ledger) RecordCancelled(ctx context.Context, appointmentID string) error {
	if l == nil {
		return nil
	}
	tag, err := l.db.Exec(ctx,
		`UPDATE appointment_ledger SET status = $1 WHERE id = $2`,
		string(StatusCancelled), appointmentID)
	if err != nil {
		return fmt.Errorf("booking: record cancelled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking: record cancelled: %w", ErrAppointmentNotFound)
	}
	return nil
}
