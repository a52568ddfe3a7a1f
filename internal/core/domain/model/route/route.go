// Package route models the result of the external routing service, an
// ordered sequence of stops with per-leg travel durations, and derives the
// human-facing arrival timetable from it.
package route

// StartOrderIndex is the sentinel order index identifying the synthetic start
// stop, the departure point prepended by the routing service.
const StartOrderIndex = -1

// Waypoint is one order sent to the routing service for optimization.
type Waypoint struct {
	Index    int    `json:"index"`
	Customer string `json:"customer"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zip_code"`
}

// Request is the payload for the routing service.
type Request struct {
	StartAddress  string     `json:"start_address"`
	DepartureTime string     `json:"departure_time,omitempty"`
	Orders        []Waypoint `json:"orders"`
}

// Stop is one entry of an optimized route as returned by the routing service.
// Stops are read-only once received; the timetable derives presentation data
// from them without mutation.
type Stop struct {
	// StopNumber is 1-based; the first stop is the synthetic start location.
	StopNumber int `json:"stop_number"`

	Customer string `json:"customer"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zip_code"`

	// OrderIndex refers back to the routed order, StartOrderIndex for the
	// synthetic start stop.
	OrderIndex int `json:"order_index"`

	// DurationSeconds is the travel time of the leg ending at this stop.
	DurationSeconds float64 `json:"duration_seconds"`
}

// IsStart reports whether the stop is the synthetic start location.
func (s Stop) IsStart() bool {
	return s.OrderIndex == StartOrderIndex
}

// Plan is the routing service's full response.
type Plan struct {
	Stops      []Stop `json:"stops"`
	TotalStops int    `json:"total_stops"`
}
