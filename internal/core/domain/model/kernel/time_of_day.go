package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"routeboard/internal/pkg/errs"
	"routeboard/internal/pkg/guard"
)

const (
	// HourMin is the minimum valid hour component.
	HourMin = 0
	// HourMax is the maximum valid hour component.
	HourMax = 23
	// MinuteMin is the minimum valid minute component.
	MinuteMin = 0
	// MinuteMax is the maximum valid minute component.
	MinuteMax = 59
)

// ErrTimeOfDayIsNotConstructed is returned when attempting to use an
// improperly initialized TimeOfDay. Use NewTimeOfDay or ParseTimeOfDay.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
	"time of day must be created via NewTimeOfDay or ParseTimeOfDay constructors")

// TimeOfDay is an immutable value object for a clock time within one day.
// It carries the start-of-day departure time that anchors a route timetable.
//
// The zero value is invalid and fails Validate; use the constructors.
type TimeOfDay struct { //nolint:recvcheck //using for validation
	hour   int
	minute int
	guard  guard.ConstructorGuard
}

// NewTimeOfDay creates a TimeOfDay from validated hour and minute components.
// Hour must be within [HourMin..HourMax] and minute within
// [MinuteMin..MinuteMax].
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < HourMin || hour > HourMax {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, HourMin, HourMax)
	}
	if minute < MinuteMin || minute > MinuteMax {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, MinuteMin, MinuteMax)
	}

	return TimeOfDay{
		hour:   hour,
		minute: minute,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ParseTimeOfDay parses an "HH:MM" string. A missing or non-numeric component
// defaults to zero, so "", "8", and "abc:15" are all accepted. Numeric
// components outside the valid range are rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)

	hour := 0
	if len(parts) > 0 {
		if h, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			hour = h
		}
	}

	minute := 0
	if len(parts) > 1 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			minute = m
		}
	}

	return NewTimeOfDay(hour, minute)
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int {
	return t.hour
}

// Minute returns the minute component.
func (t TimeOfDay) Minute() int {
	return t.minute
}

// TotalMinutes returns the number of minutes since midnight.
func (t TimeOfDay) TotalMinutes() int {
	return t.hour*60 + t.minute
}

// IsEqual compares two times of day by value.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.hour == other.hour && t.minute == other.minute
}

// String returns the zero-padded 24-hour "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// Validate ensures the TimeOfDay was created through a constructor.
func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}
