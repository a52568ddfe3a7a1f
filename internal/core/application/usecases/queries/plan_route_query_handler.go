package queries

import (
	"context"

	"routeboard/internal/core/domain/model/grouping"
	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/route"
	"routeboard/internal/core/ports"
	"routeboard/internal/pkg/errs"
)

// PlanRouteQueryHandler routes a session's selected orders through the
// external planner and derives the arrival timetable. The planner's stop
// order is consumed as-is.
type PlanRouteQueryHandler struct {
	sessions            ports.SessionRepository
	planner             ports.RoutePlanner
	rules               grouping.Rules
	defaultStartAddress string
}

// NewPlanRouteQueryHandler creates a handler for route planning queries.
func NewPlanRouteQueryHandler(
	sessions ports.SessionRepository,
	planner ports.RoutePlanner,
	rules grouping.Rules,
	defaultStartAddress string,
) PlanRouteQueryHandler {
	return PlanRouteQueryHandler{
		sessions:            sessions,
		planner:             planner,
		rules:               rules,
		defaultStartAddress: defaultStartAddress,
	}
}

// Handle sends the selected orders to the planner and returns the stop
// sequence with arrival estimates. At least one order must be selected.
func (h PlanRouteQueryHandler) Handle(
	ctx context.Context,
	query PlanRouteQuery,
) (PlanRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PlanRouteQueryResponse{}, err
	}

	start, err := kernel.ParseTimeOfDay(query.StartTime())
	if err != nil {
		return PlanRouteQueryResponse{}, err
	}

	s, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return PlanRouteQueryResponse{}, err
	}

	selected := s.SelectedOrders(h.rules)
	if len(selected) == 0 {
		return PlanRouteQueryResponse{}, errs.NewValueIsRequiredError("selection")
	}

	startAddress := query.StartAddress()
	if startAddress == "" {
		startAddress = h.defaultStartAddress
	}

	waypoints := make([]route.Waypoint, 0, len(selected))
	for _, o := range selected {
		waypoints = append(waypoints, route.Waypoint{
			Index:    o.Index(),
			Customer: o.Customer(),
			Address:  o.Address(),
			City:     o.City(),
			ZipCode:  o.ZipCode(),
		})
	}

	plan, err := h.planner.Plan(ctx, route.Request{
		StartAddress:  startAddress,
		DepartureTime: query.StartTime(),
		Orders:        waypoints,
	})
	if err != nil {
		return PlanRouteQueryResponse{}, err
	}

	entries := route.BuildTimetable(plan.Stops, start)
	stops := make([]RouteStopView, 0, len(entries))
	for _, e := range entries {
		stops = append(stops, RouteStopView{
			StopNumber:     e.StopNumber,
			Customer:       e.Customer,
			Address:        e.Address,
			City:           e.City,
			ZipCode:        e.ZipCode,
			OrderIndex:     e.OrderIndex,
			IsStart:        e.IsStart,
			ActualMinutes:  e.ActualMinutes,
			RoundedMinutes: e.RoundedMinutes,
			Arrival:        e.Arrival,
		})
	}

	return PlanRouteQueryResponse{
		TotalStops: plan.TotalStops,
		Stops:      stops,
	}, nil
}
