package availability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mentor-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_WithStore(t *testing.T) {
	t.Run("seeds once and keeps edits", func(t *testing.T) {
		seeds := 0
		sessions := NewSessions(func(ctx context.Context, mentorID string) (*models.AvailabilitySnapshot, error) {
			seeds++
			return mondayNineToFive(), nil
		})

		err := sessions.WithStore(context.Background(), "m-1", func(store *Store) error {
			_, err := store.AddWeeklySlot("Friday")
			return err
		})
		require.NoError(t, err)

		err = sessions.WithStore(context.Background(), "m-1", func(store *Store) error {
			assert.Len(t, store.Snapshot().WeeklySlots, 2)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, seeds)
		assert.Equal(t, 1, sessions.Len())
	})

	t.Run("failed seed leaves no session", func(t *testing.T) {
		cause := errors.New("mongo down")
		sessions := NewSessions(func(ctx context.Context, mentorID string) (*models.AvailabilitySnapshot, error) {
			return nil, cause
		})

		err := sessions.WithStore(context.Background(), "m-1", func(store *Store) error {
			t.Fatal("fn must not run without a store")
			return nil
		})

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 0, sessions.Len())
	})

	t.Run("store options are applied", func(t *testing.T) {
		sessions := NewSessions(func(ctx context.Context, mentorID string) (*models.AvailabilitySnapshot, error) {
			return nil, nil
		}, WithStrictValidation(false))

		err := sessions.WithStore(context.Background(), "m-1", func(store *Store) error {
			assert.False(t, store.Strict())
			return store.RemoveWeeklySlot(4)
		})
		assert.NoError(t, err)
	})

	t.Run("edits to one mentor run one at a time", func(t *testing.T) {
		sessions := NewSessions(func(ctx context.Context, mentorID string) (*models.AvailabilitySnapshot, error) {
			return nil, nil
		})

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = sessions.WithStore(context.Background(), "m-1", func(store *Store) error {
					_, err := store.AddWeeklySlot("Monday")
					return err
				})
			}()
		}
		wg.Wait()

		_ = sessions.WithStore(context.Background(), "m-1", func(store *Store) error {
			assert.Len(t, store.Snapshot().WeeklySlots, 50)
			return nil
		})
	})
}

func TestSessions_Discard(t *testing.T) {
	sessions := NewSessions(func(ctx context.Context, mentorID string) (*models.AvailabilitySnapshot, error) {
		return mondayNineToFive(), nil
	})

	require.NoError(t, sessions.WithStore(context.Background(), "m-1", func(store *Store) error {
		return store.RemoveWeeklySlot(0)
	}))

	assert.True(t, sessions.Discard("m-1"))
	assert.False(t, sessions.Discard("m-1"))

	require.NoError(t, sessions.WithStore(context.Background(), "m-1", func(store *Store) error {
		assert.Len(t, store.Snapshot().WeeklySlots, 1)
		return nil
	}))
}

func TestSessions_EvictIdle(t *testing.T) {
	now := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	sessions := NewSessions(func(ctx context.Context, mentorID string) (*models.AvailabilitySnapshot, error) {
		return nil, nil
	})
	sessions.now = func() time.Time { return now }

	noop := func(store *Store) error { return nil }
	require.NoError(t, sessions.WithStore(context.Background(), "idle", noop))

	now = now.Add(20 * time.Minute)
	require.NoError(t, sessions.WithStore(context.Background(), "active", noop))

	now = now.Add(15 * time.Minute)
	evicted := sessions.EvictIdle(30 * time.Minute)

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, sessions.Len())
	assert.False(t, sessions.Discard("idle"))
	assert.True(t, sessions.Discard("active"))
}
