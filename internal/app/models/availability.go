package models

import (
	"sort"
	"time"
)

// WeeklySlot is a recurring window on one day of the week. Times are
// canonical "HH:MM".
type WeeklySlot struct {
	Day       string `json:"day" bson:"day"`
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
}

// TimeSlot is a window inside a date override.
type TimeSlot struct {
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
}

// AvailabilitySnapshot is the weekly schedule plus the per-date overrides,
// keyed by YYYY-MM-DD. A present key with an empty list marks the date as
// unavailable.
type AvailabilitySnapshot struct {
	WeeklySlots   []WeeklySlot          `json:"weeklySlots" bson:"availability"`
	DateOverrides map[string][]TimeSlot `json:"dateOverrides" bson:"dateAvailability"`
}

func NewAvailabilitySnapshot() *AvailabilitySnapshot {
	return &AvailabilitySnapshot{
		WeeklySlots:   []WeeklySlot{},
		DateOverrides: map[string][]TimeSlot{},
	}
}

// Clone returns a deep copy. Empty override lists stay non-nil so the
// blocked state survives the copy.
func (s *AvailabilitySnapshot) Clone() *AvailabilitySnapshot {
	if s == nil {
		return NewAvailabilitySnapshot()
	}

	clone := &AvailabilitySnapshot{
		WeeklySlots:   make([]WeeklySlot, len(s.WeeklySlots)),
		DateOverrides: make(map[string][]TimeSlot, len(s.DateOverrides)),
	}
	copy(clone.WeeklySlots, s.WeeklySlots)
	for key, slots := range s.DateOverrides {
		copied := make([]TimeSlot, len(slots))
		copy(copied, slots)
		clone.DateOverrides[key] = copied
	}
	return clone
}

// OverrideDates returns the override keys in ascending order.
func (s *AvailabilitySnapshot) OverrideDates() []string {
	dates := make([]string, 0, len(s.DateOverrides))
	for key := range s.DateOverrides {
		dates = append(dates, key)
	}
	sort.Strings(dates)
	return dates
}

// OverrideKind tells apart the three states a date override can be in.
type OverrideKind int

const (
	OverrideInherit OverrideKind = iota
	OverrideBlocked
	OverrideSlots
)

func (k OverrideKind) String() string {
	switch k {
	case OverrideBlocked:
		return "blocked"
	case OverrideSlots:
		return "slots"
	default:
		return "inherit"
	}
}

func (k OverrideKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IndexedWeeklySlot carries the slot's position in the store so per-day
// views can address the underlying slot.
type IndexedWeeklySlot struct {
	Index int `json:"index"`
	WeeklySlot
}

// AvailabilitySavedEvent is announced after a snapshot has been persisted.
type AvailabilitySavedEvent struct {
	Type            string    `json:"type"`
	MentorID        string    `json:"mentorId"`
	SavedAt         time.Time `json:"savedAt"`
	WeeklySlotCount int       `json:"weeklySlotCount"`
	OverrideCount   int       `json:"overrideCount"`
}
