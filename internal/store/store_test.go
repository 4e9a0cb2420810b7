package store

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunohpsv/medagendar/internal/booking"
	"github.com/brunohpsv/medagendar/internal/directory"
)

func newRedisKV(t *testing.T) *RedisKV {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisKV(client)
}

func TestMemoryKVMissingKey(t *testing.T) {
	kv := NewMemoryKV()
	_, err := kv.Get(context.Background(), KeyDoctors)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisKVRoundTrip(t *testing.T) {
	kv := newRedisKV(t)
	ctx := context.Background()

	_, err := kv.Get(ctx, KeyAppointments)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, KeyAppointments, []byte(`[]`)))
	data, err := kv.Get(ctx, KeyAppointments)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestStoreLoadEmptyThenUpdatePersists(t *testing.T) {
	kv := newRedisKV(t)
	ctx := context.Background()

	s := New(kv, nil)
	require.NoError(t, s.Load(ctx))
	assert.Empty(t, s.Snapshot().Doctors)

	require.NoError(t, s.Update(ctx, func(state *State) error {
		state.Doctors = directory.SeedDoctors()
		return nil
	}))

	// A fresh store over the same KV observes the write.
	s2 := New(kv, nil)
	require.NoError(t, s2.Load(ctx))
	assert.Len(t, s2.Snapshot().Doctors, 2)
}

func TestStoreUpdateRollsBackOnError(t *testing.T) {
	s := New(NewMemoryKV(), nil)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	boom := errors.New("boom")
	err := s.Update(ctx, func(state *State) error {
		state.Appointments = append(state.Appointments, booking.Appointment{ID: "x"})
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, s.Snapshot().Appointments, "failed update must not leak state")
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(NewMemoryKV(), nil)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.Update(ctx, func(state *State) error {
		state.Doctors = directory.SeedDoctors()
		return nil
	}))

	snap := s.Snapshot()
	snap.Doctors[0].Name = "mutated"
	assert.Equal(t, "Dra. Beatriz Menezes", s.Snapshot().Doctors[0].Name)
}
