package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentor-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}

var (
	monday       = localDate(2024, time.March, 4, 10)
	otherMonday  = localDate(2024, time.March, 11, 10)
	tuesday      = localDate(2024, time.March, 5, 10)
	otherTuesday = localDate(2024, time.March, 12, 18)
)

func mondayNineToFive() *models.AvailabilitySnapshot {
	return &models.AvailabilitySnapshot{
		WeeklySlots: []models.WeeklySlot{
			{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
		},
	}
}

func TestStore_ResolveForDate(t *testing.T) {
	t.Run("blocked override wins over weekly", func(t *testing.T) {
		store := NewStore(mondayNineToFive())
		store.SetExplicitUnavailable(monday)

		assert.Equal(t, []models.TimeSlot{}, store.ResolveForDate(monday))
		assert.Equal(t, models.OverrideBlocked, store.OverrideFor(monday))
	})

	t.Run("absent override inherits weekly", func(t *testing.T) {
		store := NewStore(mondayNineToFive())
		store.SetExplicitUnavailable(monday)

		assert.Equal(t, []models.TimeSlot{{StartTime: "09:00", EndTime: "17:00"}}, store.ResolveForDate(otherMonday))
		assert.Equal(t, models.OverrideInherit, store.OverrideFor(otherMonday))
	})

	t.Run("override slots replace weekly", func(t *testing.T) {
		store := NewStore(mondayNineToFive())
		store.AddDateOverrideSlot(monday)
		require.NoError(t, store.UpdateDateOverrideSlot(monday, 0, "endTime", "12:00"))

		assert.Equal(t, []models.TimeSlot{{StartTime: "09:00", EndTime: "12:00"}}, store.ResolveForDate(monday))
		assert.Equal(t, models.OverrideSlots, store.OverrideFor(monday))
	})

	t.Run("day without weekly slots resolves empty", func(t *testing.T) {
		store := NewStore(mondayNineToFive())
		assert.Equal(t, []models.TimeSlot{}, store.ResolveForDate(tuesday))
	})

	t.Run("result does not alias the store", func(t *testing.T) {
		store := NewStore(mondayNineToFive())
		resolved := store.ResolveForDate(monday)
		resolved[0].EndTime = "10:00"

		assert.Equal(t, "17:00", store.ResolveForDate(monday)[0].EndTime)
	})
}

func TestStore_RemoveLastOverrideSlotRevertsToInherit(t *testing.T) {
	store := NewStore(mondayNineToFive())
	store.AddDateOverrideSlot(monday)
	require.Equal(t, models.OverrideSlots, store.OverrideFor(monday))

	require.NoError(t, store.RemoveDateOverrideSlot(monday, 0))

	assert.False(t, store.HasOverride(monday))
	assert.Equal(t, models.OverrideInherit, store.OverrideFor(monday))
	assert.Equal(t, []models.TimeSlot{{StartTime: "09:00", EndTime: "17:00"}}, store.ResolveForDate(monday))
}

func TestStore_ClearOverride(t *testing.T) {
	store := NewStore(mondayNineToFive())
	store.SetExplicitUnavailable(monday)
	store.ClearOverride(monday)

	assert.Equal(t, models.OverrideInherit, store.OverrideFor(monday))
	assert.Len(t, store.ResolveForDate(monday), 1)
}

func TestStore_SetExplicitUnavailableDropsOverrideSlots(t *testing.T) {
	store := NewStore(nil)
	store.AddDateOverrideSlot(tuesday)
	store.AddDateOverrideSlot(tuesday)
	store.SetExplicitUnavailable(tuesday)

	assert.Equal(t, models.OverrideBlocked, store.OverrideFor(tuesday))
	assert.Empty(t, store.ResolveForDate(tuesday))
}

func TestStore_DateKeyIgnoresTimeOfDay(t *testing.T) {
	store := NewStore(nil)
	store.SetExplicitUnavailable(localDate(2024, time.March, 5, 0))

	assert.True(t, store.HasOverride(localDate(2024, time.March, 5, 23)))
	assert.Equal(t, []string{"2024-03-05"}, store.OverrideDates())
}

func TestStore_RemoveWeeklySlotPreservesOrder(t *testing.T) {
	store := NewStore(&models.AvailabilitySnapshot{
		WeeklySlots: []models.WeeklySlot{
			{Day: "Friday", StartTime: "08:00", EndTime: "09:00"},
			{Day: "Friday", StartTime: "10:00", EndTime: "11:00"},
			{Day: "Friday", StartTime: "12:00", EndTime: "13:00"},
		},
	})

	require.NoError(t, store.RemoveWeeklySlot(1))

	assert.Equal(t, []models.WeeklySlot{
		{Day: "Friday", StartTime: "08:00", EndTime: "09:00"},
		{Day: "Friday", StartTime: "12:00", EndTime: "13:00"},
	}, store.Snapshot().WeeklySlots)
}

func TestStore_TuesdayScenario(t *testing.T) {
	store := NewStore(nil)

	index, err := store.AddWeeklySlot("Tuesday")
	require.NoError(t, err)
	require.NoError(t, store.UpdateWeeklySlot(index, "endTime", "13:00"))

	assert.Equal(t, []models.WeeklySlot{{Day: "Tuesday", StartTime: "09:00", EndTime: "13:00"}}, store.Snapshot().WeeklySlots)
	for _, date := range []time.Time{tuesday, otherTuesday} {
		assert.Equal(t, []models.TimeSlot{{StartTime: "09:00", EndTime: "13:00"}}, store.ResolveForDate(date))
	}
}

func TestStore_AddWeeklySlotAllowsDuplicates(t *testing.T) {
	store := NewStore(nil)
	_, err := store.AddWeeklySlot("Monday")
	require.NoError(t, err)
	_, err = store.AddWeeklySlot("Monday")
	require.NoError(t, err)

	assert.Len(t, store.ResolveForDate(monday), 2)
}

func TestStore_WeeklySlotsForDay(t *testing.T) {
	store := NewStore(&models.AvailabilitySnapshot{
		WeeklySlots: []models.WeeklySlot{
			{Day: "Monday", StartTime: "09:00", EndTime: "10:00"},
			{Day: "Tuesday", StartTime: "09:00", EndTime: "10:00"},
			{Day: "Monday", StartTime: "11:00", EndTime: "12:00"},
		},
	})

	slots := store.WeeklySlotsForDay("Monday")
	require.Len(t, slots, 2)
	assert.Equal(t, 0, slots[0].Index)
	assert.Equal(t, 2, slots[1].Index)
	assert.Equal(t, "11:00", slots[1].StartTime)
	assert.Empty(t, store.WeeklySlotsForDay("Sunday"))
}

func TestStore_StrictValidation(t *testing.T) {
	t.Run("index out of range", func(t *testing.T) {
		store := NewStore(mondayNineToFive())

		assert.ErrorIs(t, store.RemoveWeeklySlot(5), ErrIndexOutOfRange)
		assert.ErrorIs(t, store.RemoveWeeklySlot(-1), ErrIndexOutOfRange)
		assert.ErrorIs(t, store.UpdateWeeklySlot(1, "endTime", "12:00"), ErrIndexOutOfRange)
		assert.ErrorIs(t, store.RemoveDateOverrideSlot(monday, 0), ErrIndexOutOfRange)
		assert.ErrorIs(t, store.UpdateDateOverrideSlot(monday, 0, "endTime", "12:00"), ErrIndexOutOfRange)
		assert.False(t, store.HasOverride(monday))
	})

	t.Run("start not before end leaves slot unchanged", func(t *testing.T) {
		store := NewStore(mondayNineToFive())

		assert.ErrorIs(t, store.UpdateWeeklySlot(0, "startTime", "17:00"), ErrInvalidTimeRange)
		assert.ErrorIs(t, store.UpdateWeeklySlot(0, "endTime", "08:00"), ErrInvalidTimeRange)
		assert.Equal(t, mondayNineToFive().WeeklySlots, store.Snapshot().WeeklySlots)
	})

	t.Run("non canonical time is rejected", func(t *testing.T) {
		store := NewStore(nil)
		store.AddDateOverrideSlot(tuesday)

		for _, value := range []string{"9:00", "09:00 AM", "24:00", ""} {
			assert.ErrorIs(t, store.UpdateDateOverrideSlot(tuesday, 0, "startTime", value), ErrInvalidTimeOfDay, value)
		}
		assert.Equal(t, []models.TimeSlot{{StartTime: "09:00", EndTime: "17:00"}}, store.ResolveForDate(tuesday))
	})

	t.Run("unknown field and day", func(t *testing.T) {
		store := NewStore(mondayNineToFive())

		assert.ErrorIs(t, store.UpdateWeeklySlot(0, "day", "Tuesday"), ErrUnknownSlotField)
		_, err := store.AddWeeklySlot("Funday")
		assert.ErrorIs(t, err, ErrUnknownDay)
		assert.Len(t, store.Snapshot().WeeklySlots, 1)
	})

	t.Run("overlapping slots are allowed", func(t *testing.T) {
		store := NewStore(mondayNineToFive())
		index, err := store.AddWeeklySlot("Monday")
		require.NoError(t, err)

		assert.NoError(t, store.UpdateWeeklySlot(index, "startTime", "12:00"))
		assert.Len(t, store.ResolveForDate(monday), 2)
	})
}

func TestStore_PermissiveValidation(t *testing.T) {
	t.Run("bad indices are ignored", func(t *testing.T) {
		store := NewStore(mondayNineToFive(), WithStrictValidation(false))

		assert.NoError(t, store.RemoveWeeklySlot(3))
		assert.NoError(t, store.UpdateWeeklySlot(-1, "endTime", "12:00"))
		assert.NoError(t, store.RemoveDateOverrideSlot(monday, 0))
		assert.NoError(t, store.UpdateDateOverrideSlot(monday, 0, "endTime", "12:00"))
		assert.Equal(t, mondayNineToFive().WeeklySlots, store.Snapshot().WeeklySlots)
		assert.False(t, store.HasOverride(monday))
	})

	t.Run("time values are written unchecked", func(t *testing.T) {
		store := NewStore(mondayNineToFive(), WithStrictValidation(false))

		require.NoError(t, store.UpdateWeeklySlot(0, "startTime", "18:00"))
		assert.Equal(t, "18:00", store.Snapshot().WeeklySlots[0].StartTime)
	})
}

func TestStore_SeedIsCopied(t *testing.T) {
	seed := mondayNineToFive()
	seed.DateOverrides = map[string][]models.TimeSlot{"2024-03-04": {}}
	store := NewStore(seed)

	require.NoError(t, store.RemoveWeeklySlot(0))
	store.ClearOverride(monday)

	assert.Len(t, seed.WeeklySlots, 1)
	assert.Contains(t, seed.DateOverrides, "2024-03-04")

	snapshot := store.Snapshot()
	snapshot.WeeklySlots = append(snapshot.WeeklySlots, models.WeeklySlot{Day: "Monday"})
	assert.Empty(t, store.Snapshot().WeeklySlots)
}

func TestStore_SaveAsync(t *testing.T) {
	t.Run("hands over the state at call time", func(t *testing.T) {
		store := NewStore(mondayNineToFive())
		store.SetExplicitUnavailable(tuesday)

		received := make(chan *models.AvailabilitySnapshot, 1)
		release := make(chan struct{})
		result := store.SaveAsync(context.Background(), func(ctx context.Context, snapshot *models.AvailabilitySnapshot) error {
			<-release
			received <- snapshot
			return nil
		})

		_, err := store.AddWeeklySlot("Sunday")
		require.NoError(t, err)
		close(release)

		require.NoError(t, <-result)
		saved := <-received
		assert.Len(t, saved.WeeklySlots, 1)
		assert.Equal(t, []models.TimeSlot{}, saved.DateOverrides["2024-03-05"])
	})

	t.Run("failure is wrapped and state is unchanged", func(t *testing.T) {
		store := NewStore(mondayNineToFive())
		before := store.Snapshot()
		cause := errors.New("connection refused")

		err := <-store.SaveAsync(context.Background(), func(ctx context.Context, snapshot *models.AvailabilitySnapshot) error {
			snapshot.WeeklySlots[0].EndTime = "10:00"
			return cause
		})

		assert.ErrorIs(t, err, ErrSaveFailed)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, before, store.Snapshot())
	})

	t.Run("caller cancellation does not reach the save", func(t *testing.T) {
		store := NewStore(nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := <-store.SaveAsync(ctx, func(ctx context.Context, snapshot *models.AvailabilitySnapshot) error {
			return ctx.Err()
		})

		assert.NoError(t, err)
	})

	t.Run("saving twice hands over equal snapshots", func(t *testing.T) {
		store := NewStore(mondayNineToFive())
		var saved []*models.AvailabilitySnapshot
		save := func(ctx context.Context, snapshot *models.AvailabilitySnapshot) error {
			saved = append(saved, snapshot)
			return nil
		}

		require.NoError(t, <-store.SaveAsync(context.Background(), save))
		require.NoError(t, <-store.SaveAsync(context.Background(), save))
		require.Len(t, saved, 2)
		assert.Equal(t, saved[0], saved[1])
	})
}
