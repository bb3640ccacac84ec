package utils

import (
	"fmt"
	"mentor-service/internal/pkg/constvars"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var time24Pattern = regexp.MustCompile(constvars.RegexTime24)

// TimeParts is the 12-hour form a time picker edits.
type TimeParts struct {
	Hour   int    `json:"hour"`
	Minute string `json:"minute"`
	Period string `json:"period"`
}

// DecodeTime converts "14:30" into {2, "30", "PM"}. Empty or unparseable
// input decodes to 9:00 AM. The minute is passed through untouched.
func DecodeTime(time24 string) TimeParts {
	if time24 == "" {
		return defaultTimeParts()
	}

	hourPart, minutePart, _ := strings.Cut(time24, ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return defaultTimeParts()
	}

	period := constvars.PeriodAM
	if hour >= 12 {
		period = constvars.PeriodPM
	}

	// 0 -> 12, 13 -> 1
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}

	return TimeParts{Hour: hour, Minute: minutePart, Period: period}
}

// EncodeTime converts {2, "30", "PM"} into "14:30". The minute is
// concatenated as given; callers validate it.
func EncodeTime(hour int, minute, period string) string {
	if period == constvars.PeriodPM && hour != 12 {
		hour += 12
	} else if period == constvars.PeriodAM && hour == 12 {
		hour = 0
	}

	return fmt.Sprintf("%02d:%s", hour, minute)
}

// Encode is EncodeTime applied to p.
func (p TimeParts) Encode() string {
	return EncodeTime(p.Hour, p.Minute, p.Period)
}

// String renders the picker label, e.g. "9:00 AM".
func (p TimeParts) String() string {
	return fmt.Sprintf("%d:%s %s", p.Hour, p.Minute, p.Period)
}

func defaultTimeParts() TimeParts {
	return TimeParts{
		Hour:   constvars.DefaultDecodedHour,
		Minute: constvars.DefaultDecodedMinute,
		Period: constvars.DefaultDecodedPeriod,
	}
}

// IsCanonicalTime24 reports whether value is a zero-padded "HH:MM" with HH in 00-23.
func IsCanonicalTime24(value string) bool {
	return time24Pattern.MatchString(value)
}

// MinutesSinceMidnight parses a canonical "HH:MM" value.
func MinutesSinceMidnight(time24 string) (int, bool) {
	if !IsCanonicalTime24(time24) {
		return 0, false
	}
	parsed, err := time.Parse(constvars.Time24Layout, time24)
	if err != nil {
		return 0, false
	}
	return parsed.Hour()*60 + parsed.Minute(), true
}

// IsTimeRangeValid reports whether start is strictly before end. Both must be canonical.
func IsTimeRangeValid(startTime, endTime string) bool {
	start, ok := MinutesSinceMidnight(startTime)
	if !ok {
		return false
	}
	end, ok := MinutesSinceMidnight(endTime)
	if !ok {
		return false
	}
	return start < end
}

// FormatDateKey returns the local calendar day of t as YYYY-MM-DD. Any two
// instants on the same local day share a key regardless of time-of-day.
func FormatDateKey(t time.Time) string {
	return t.In(time.Local).Format(constvars.DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key into local midnight of that day.
func ParseDateKey(key string) (time.Time, error) {
	date, err := time.ParseInLocation(constvars.DateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if date.Format(constvars.DateKeyLayout) != key {
		return time.Time{}, fmt.Errorf("date key %q is not canonical", key)
	}
	return date, nil
}

// WeekdayName returns the English weekday name of the local calendar day of t.
func WeekdayName(t time.Time) string {
	return t.In(time.Local).Weekday().String()
}

// ParseWeekday maps a day name such as "Monday" onto time.Weekday.
func ParseWeekday(day string) (time.Weekday, bool) {
	for i := time.Sunday; i <= time.Saturday; i++ {
		if i.String() == day {
			return i, true
		}
	}
	return time.Sunday, false
}
