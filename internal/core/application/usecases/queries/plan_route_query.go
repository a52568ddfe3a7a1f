package queries

import (
	"errors"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/guard"
)

var ErrPlanRouteQueryIsNotConstructed = errors.New(
	"PlanRouteQuery must be created via NewPlanRouteQuery constructor",
)

// PlanRouteQuery requests an optimized route over a session's selected
// orders, plus the arrival timetable derived from the start time.
type PlanRouteQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	// startAddress overrides the configured default when non-empty.
	startAddress string

	// startTime is the departure clock in "HH:MM". Missing or non-numeric
	// components fall back to 0.
	startTime string

	guard guard.ConstructorGuard
}

// NewPlanRouteQuery creates a route planning query.
func NewPlanRouteQuery(sessionID kernel.UUID, startAddress, startTime string) (PlanRouteQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return PlanRouteQuery{}, err
	}

	return PlanRouteQuery{
		sessionID:    sessionID,
		startAddress: startAddress,
		startTime:    startTime,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q PlanRouteQuery) Validate() error {
	return q.guard.Validate(ErrPlanRouteQueryIsNotConstructed)
}

// SessionID returns the session whose selection is routed.
func (q PlanRouteQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// StartAddress returns the requested start address, empty for the default.
func (q PlanRouteQuery) StartAddress() string {
	return q.startAddress
}

// StartTime returns the departure clock string.
func (q PlanRouteQuery) StartTime() string {
	return q.startTime
}

// RouteStopView is one stop of the planned route with its arrival estimate.
type RouteStopView struct {
	StopNumber     int    `json:"stop_number"`
	Customer       string `json:"customer"`
	Address        string `json:"address"`
	City           string `json:"city"`
	ZipCode        string `json:"zip_code"`
	OrderIndex     int    `json:"order_index"`
	IsStart        bool   `json:"is_start"`
	ActualMinutes  int    `json:"actual_minutes"`
	RoundedMinutes int    `json:"rounded_minutes"`
	Arrival        string `json:"arrival"`
}

// PlanRouteQueryResponse is the planned route in stop order.
type PlanRouteQueryResponse struct {
	TotalStops int             `json:"total_stops"`
	Stops      []RouteStopView `json:"stops"`
}
