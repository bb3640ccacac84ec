package responses

import (
	"mentor-service/internal/app/models"
	"time"
)

type Availability struct {
	WeeklySlots   []models.WeeklySlot          `json:"weeklySlots"`
	DateOverrides map[string][]models.TimeSlot `json:"dateOverrides"`
	OverrideDates []string                     `json:"overrideDates"`
	Days          []WeeklyDay                  `json:"days"`
}

type WeeklyDay struct {
	Day   string                     `json:"day"`
	Slots []models.IndexedWeeklySlot `json:"slots"`
}

type DateAvailability struct {
	Date    string              `json:"date"`
	Weekday string              `json:"weekday"`
	Kind    models.OverrideKind `json:"kind"`
	Slots   []models.TimeSlot   `json:"slots"`
}

type SaveAvailability struct {
	MentorID        string    `json:"mentorId"`
	SavedAt         time.Time `json:"savedAt"`
	WeeklySlotCount int       `json:"weeklySlotCount"`
	OverrideCount   int       `json:"overrideCount"`
}

type TimeValue struct {
	Time24 string `json:"time24"`
	Hour   int    `json:"hour"`
	Minute string `json:"minute"`
	Period string `json:"period"`
	Label  string `json:"label"`
}
