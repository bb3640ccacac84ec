package constvars

const (
	DateKeyLayout = "2006-01-02"
	Time24Layout  = "15:04"
)

const (
	DefaultSlotStartTime = "09:00"
	DefaultSlotEndTime   = "17:00"
)

const (
	DefaultDecodedHour   = 9
	DefaultDecodedMinute = "00"
	DefaultDecodedPeriod = PeriodAM
)

const (
	PeriodAM = "AM"
	PeriodPM = "PM"
)

const (
	SlotFieldStartTime = "startTime"
	SlotFieldEndTime   = "endTime"
)

const (
	DayMonday    = "Monday"
	DayTuesday   = "Tuesday"
	DayWednesday = "Wednesday"
	DayThursday  = "Thursday"
	DayFriday    = "Friday"
	DaySaturday  = "Saturday"
	DaySunday    = "Sunday"
)

// DaysOfWeek lists weekdays in dashboard order, Monday first.
var DaysOfWeek = []string{
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
	DaySunday,
}

// PickerMinutes are the minute values offered by the time picker.
var PickerMinutes = []string{"00", "15", "30", "45"}

const (
	AvailabilitySaveLockKeyPrefix = "availability:save:"
	AvailabilitySavedEventType    = "availability.saved"
	DefaultEditorSweepCronSpec    = "@every 5m"
	ProfileImageKindAvatar        = "avatar"
	ProfileImageKindBanner        = "banner"
)
