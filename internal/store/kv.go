package store

import (
	"context"
	"errors"
)

// The persisted state lives under two keys, each holding a JSON array.
const (
	KeyDoctors      = "doctors"
	KeyAppointments = "appointments"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("key not found")

// KV is the opaque key-value persistence port. Implementations must return
// ErrNotFound for unwritten keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
