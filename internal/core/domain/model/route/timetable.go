package route

import (
	"fmt"
	"math"

	"routeboard/internal/core/domain/model/kernel"
)

// TimetableEntry is one row of the presented arrival timetable.
type TimetableEntry struct {
	StopNumber int
	Customer   string
	Address    string
	City       string
	ZipCode    string
	OrderIndex int
	IsStart    bool

	// ActualMinutes is the leg duration rounded to whole minutes.
	ActualMinutes int

	// RoundedMinutes is ActualMinutes pushed up to a padded 5-minute figure.
	RoundedMinutes int

	// Arrival is the presented clock time, e.g. "8:35 AM". The start stop
	// shows the departure time itself.
	Arrival string
}

// RoundMinutes rounds a leg duration up to the next 5-minute boundary, and
// when that lands on or within 1 minute of the raw value it advances one more
// boundary. An arrival estimate never sits closer than a minute above the true
// travel time, so the presented time always carries a small safety margin.
func RoundMinutes(rawMinutes int) int {
	rounded := (rawMinutes + 4) / 5 * 5
	if rounded-rawMinutes <= 1 {
		return rounded + 5
	}
	return rounded
}

// LegMinutes converts a leg duration in seconds to whole minutes, rounding
// half up.
func LegMinutes(durationSeconds float64) int {
	return int(math.Round(durationSeconds / 60))
}

// BuildTimetable converts an ordered stop sequence into the arrival timetable
// anchored at the given start-of-day time. Each stop's presented arrival is
// the start time plus the running total of rounded leg minutes; the synthetic
// start stop displays the start time itself with no leg duration shown. An
// empty stop list yields an empty timetable.
func BuildTimetable(stops []Stop, start kernel.TimeOfDay) []TimetableEntry {
	entries := make([]TimetableEntry, 0, len(stops))
	startMinutes := start.TotalMinutes()

	cumulative := 0
	for _, stop := range stops {
		actual := LegMinutes(stop.DurationSeconds)
		rounded := RoundMinutes(actual)
		cumulative += rounded

		arrival := FormatClock(startMinutes + cumulative)
		if stop.IsStart() {
			arrival = FormatClock(startMinutes)
		}

		entries = append(entries, TimetableEntry{
			StopNumber:     stop.StopNumber,
			Customer:       stop.Customer,
			Address:        stop.Address,
			City:           stop.City,
			ZipCode:        stop.ZipCode,
			OrderIndex:     stop.OrderIndex,
			IsStart:        stop.IsStart(),
			ActualMinutes:  actual,
			RoundedMinutes: rounded,
			Arrival:        arrival,
		})
	}
	return entries
}

// FormatClock renders minutes-since-midnight as a 12-hour clock time with
// AM/PM, wrapping at 24 hours. Minutes are zero-padded; noon is "12:xx PM"
// and midnight is "12:xx AM".
func FormatClock(totalMinutes int) string {
	h := (totalMinutes / 60) % 24
	m := totalMinutes % 60

	period := "AM"
	if h >= 12 {
		period = "PM"
	}

	h12 := h
	switch {
	case h == 0:
		h12 = 12
	case h > 12:
		h12 = h - 12
	}

	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}
