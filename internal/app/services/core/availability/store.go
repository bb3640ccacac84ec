package availability

import (
	"context"
	"fmt"
	"mentor-service/internal/app/models"
	"mentor-service/internal/pkg/constvars"
	"mentor-service/internal/pkg/utils"
	"time"
)

// Store holds one mentor's weekly schedule and date overrides while they are
// being edited. It is not safe for concurrent use; Sessions serialises access.
type Store struct {
	weekly    []models.WeeklySlot
	overrides map[string][]models.TimeSlot
	strict    bool
}

type StoreOption func(*Store)

// WithStrictValidation makes bad indices and bad time values return errors
// instead of being ignored or written as given.
func WithStrictValidation(strict bool) StoreOption {
	return func(s *Store) {
		s.strict = strict
	}
}

// NewStore seeds a store from a copy of seed. A nil seed gives an empty store.
// Stores are strict unless told otherwise.
func NewStore(seed *models.AvailabilitySnapshot, opts ...StoreOption) *Store {
	snapshot := seed.Clone()
	s := &Store{
		weekly:    snapshot.WeeklySlots,
		overrides: snapshot.DateOverrides,
		strict:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Strict() bool {
	return s.strict
}

// AddWeeklySlot appends a 09:00-17:00 slot for day and returns its index.
// Duplicates and overlaps are allowed.
func (s *Store) AddWeeklySlot(day string) (int, error) {
	if _, ok := utils.ParseWeekday(day); !ok && s.strict {
		return -1, fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}

	s.weekly = append(s.weekly, models.WeeklySlot{
		Day:       day,
		StartTime: constvars.DefaultSlotStartTime,
		EndTime:   constvars.DefaultSlotEndTime,
	})
	return len(s.weekly) - 1, nil
}

// RemoveWeeklySlot removes the slot at index and keeps the order of the rest.
func (s *Store) RemoveWeeklySlot(index int) error {
	if index < 0 || index >= len(s.weekly) {
		return s.outOfRange(index, len(s.weekly))
	}
	s.weekly = append(s.weekly[:index], s.weekly[index+1:]...)
	return nil
}

func (s *Store) UpdateWeeklySlot(index int, field, value string) error {
	if index < 0 || index >= len(s.weekly) {
		return s.outOfRange(index, len(s.weekly))
	}

	slot := s.weekly[index]
	window := models.TimeSlot{StartTime: slot.StartTime, EndTime: slot.EndTime}
	updated, err := s.applyField(window, field, value)
	if err != nil {
		return err
	}

	slot.StartTime, slot.EndTime = updated.StartTime, updated.EndTime
	s.weekly[index] = slot
	return nil
}

// AddDateOverrideSlot appends a 09:00-17:00 slot to the override for date,
// creating the override when absent. It returns the new slot's index.
func (s *Store) AddDateOverrideSlot(date time.Time) int {
	key := utils.FormatDateKey(date)
	s.overrides[key] = append(s.overrides[key], models.TimeSlot{
		StartTime: constvars.DefaultSlotStartTime,
		EndTime:   constvars.DefaultSlotEndTime,
	})
	return len(s.overrides[key]) - 1
}

// RemoveDateOverrideSlot removes one override slot. Removing the last slot
// deletes the override so the date inherits the weekly schedule again; it
// does not leave the date blocked.
func (s *Store) RemoveDateOverrideSlot(date time.Time, index int) error {
	key := utils.FormatDateKey(date)
	slots := s.overrides[key]
	if index < 0 || index >= len(slots) {
		return s.outOfRange(index, len(slots))
	}

	slots = append(slots[:index], slots[index+1:]...)
	if len(slots) == 0 {
		delete(s.overrides, key)
		return nil
	}
	s.overrides[key] = slots
	return nil
}

func (s *Store) UpdateDateOverrideSlot(date time.Time, index int, field, value string) error {
	key := utils.FormatDateKey(date)
	slots := s.overrides[key]
	if index < 0 || index >= len(slots) {
		return s.outOfRange(index, len(slots))
	}

	updated, err := s.applyField(slots[index], field, value)
	if err != nil {
		return err
	}
	slots[index] = updated
	return nil
}

// SetExplicitUnavailable blocks date: no slots, and the weekly schedule no
// longer applies. Any override slots for the date are dropped.
func (s *Store) SetExplicitUnavailable(date time.Time) {
	s.overrides[utils.FormatDateKey(date)] = []models.TimeSlot{}
}

// ClearOverride removes any override for date so it inherits the weekly schedule.
func (s *Store) ClearOverride(date time.Time) {
	delete(s.overrides, utils.FormatDateKey(date))
}

// ResolveForDate returns the effective slots for date. An override, even an
// empty one, wins over the weekly schedule. The result is never nil and is
// safe to modify.
func (s *Store) ResolveForDate(date time.Time) []models.TimeSlot {
	if slots, ok := s.overrides[utils.FormatDateKey(date)]; ok {
		resolved := make([]models.TimeSlot, len(slots))
		copy(resolved, slots)
		return resolved
	}

	day := utils.WeekdayName(date)
	resolved := []models.TimeSlot{}
	for _, slot := range s.weekly {
		if slot.Day == day {
			resolved = append(resolved, models.TimeSlot{StartTime: slot.StartTime, EndTime: slot.EndTime})
		}
	}
	return resolved
}

func (s *Store) OverrideFor(date time.Time) models.OverrideKind {
	slots, ok := s.overrides[utils.FormatDateKey(date)]
	switch {
	case !ok:
		return models.OverrideInherit
	case len(slots) == 0:
		return models.OverrideBlocked
	default:
		return models.OverrideSlots
	}
}

// HasOverride reports whether date has an override in either state.
func (s *Store) HasOverride(date time.Time) bool {
	_, ok := s.overrides[utils.FormatDateKey(date)]
	return ok
}

func (s *Store) OverrideDates() []string {
	return (&models.AvailabilitySnapshot{DateOverrides: s.overrides}).OverrideDates()
}

// WeeklySlotsForDay returns day's weekly slots in store order together with
// their store index.
func (s *Store) WeeklySlotsForDay(day string) []models.IndexedWeeklySlot {
	slots := []models.IndexedWeeklySlot{}
	for i, slot := range s.weekly {
		if slot.Day == day {
			slots = append(slots, models.IndexedWeeklySlot{Index: i, WeeklySlot: slot})
		}
	}
	return slots
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *models.AvailabilitySnapshot {
	return (&models.AvailabilitySnapshot{
		WeeklySlots:   s.weekly,
		DateOverrides: s.overrides,
	}).Clone()
}

// SaveFunc receives the snapshot to persist.
type SaveFunc func(ctx context.Context, snapshot *models.AvailabilitySnapshot) error

// SaveAsync hands a copy of the current state to save on its own goroutine
// and reports the outcome on the returned channel. The copy is taken before
// SaveAsync returns, so later edits are not part of this save. Cancelling ctx
// does not abort the save. Failures are wrapped in ErrSaveFailed and never
// touch the store.
func (s *Store) SaveAsync(ctx context.Context, save SaveFunc) <-chan error {
	snapshot := s.Snapshot()
	result := make(chan error, 1)

	go func() {
		defer close(result)
		if err := save(context.WithoutCancel(ctx), snapshot); err != nil {
			result <- fmt.Errorf("%w: %w", ErrSaveFailed, err)
			return
		}
		result <- nil
	}()

	return result
}

func (s *Store) applyField(slot models.TimeSlot, field, value string) (models.TimeSlot, error) {
	switch field {
	case constvars.SlotFieldStartTime:
		slot.StartTime = value
	case constvars.SlotFieldEndTime:
		slot.EndTime = value
	default:
		if s.strict {
			return slot, fmt.Errorf("%w: %q", ErrUnknownSlotField, field)
		}
		return slot, nil
	}

	if !s.strict {
		return slot, nil
	}
	if !utils.IsCanonicalTime24(value) {
		return slot, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}
	if !utils.IsTimeRangeValid(slot.StartTime, slot.EndTime) {
		return slot, fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, slot.StartTime, slot.EndTime)
	}
	return slot, nil
}

func (s *Store) outOfRange(index, length int) error {
	if !s.strict {
		return nil
	}
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}
