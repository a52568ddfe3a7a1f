package queries_test

import (
	"context"
	"errors"
	"testing"

	"routeboard/internal/core/application/usecases/queries"
	"routeboard/internal/core/domain/model/grouping"
	"routeboard/internal/core/domain/model/route"
	"routeboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlanRouteQueryHandler_Handle(t *testing.T) {
	rules := grouping.DefaultRules()

	t.Run("should route the selection and derive the timetable", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t,
			newOrder(t, 0, "Anna", "Milpitas", "95035"),
			newOrder(t, 1, "Boris", "Milpitas", "95035"),
		)
		s.SelectAll()

		var sent route.Request
		planner := new(MockRoutePlanner)
		planner.On("Plan", ctx, mock.AnythingOfType("route.Request")).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(route.Request)
			}).
			Return(route.Plan{
				TotalStops: 3,
				Stops: []route.Stop{
					{StopNumber: 1, Customer: "Start", OrderIndex: route.StartOrderIndex},
					{StopNumber: 2, Customer: "Anna", OrderIndex: 0, DurationSeconds: 720},
					{StopNumber: 3, Customer: "Boris", OrderIndex: 1, DurationSeconds: 840},
				},
			}, nil).Once()

		repo := new(MockSessionRepository)
		repo.On("Get", ctx, s.ID()).Return(s, nil).Once()

		query, err := queries.NewPlanRouteQuery(s.ID(), "", "08:00")
		require.NoError(t, err)

		h := queries.NewPlanRouteQueryHandler(repo, planner, rules, "1 Depot Way, Milpitas")
		response, err := h.Handle(ctx, query)

		require.NoError(t, err)
		planner.AssertExpectations(t)

		assert.Equal(t, "1 Depot Way, Milpitas", sent.StartAddress)
		assert.Equal(t, "08:00", sent.DepartureTime)
		require.Len(t, sent.Orders, 2)
		assert.Equal(t, "Anna", sent.Orders[0].Customer)

		assert.Equal(t, 3, response.TotalStops)
		require.Len(t, response.Stops, 3)
		assert.True(t, response.Stops[0].IsStart)
		assert.Equal(t, "8:00 AM", response.Stops[0].Arrival)
		assert.Equal(t, 15, response.Stops[1].RoundedMinutes)
		assert.Equal(t, "8:20 AM", response.Stops[1].Arrival)
		assert.Equal(t, "8:40 AM", response.Stops[2].Arrival)
	})

	t.Run("should prefer an explicit start address", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t, newOrder(t, 0, "Anna", "Milpitas", "95035"))
		s.SelectAll()

		var sent route.Request
		planner := new(MockRoutePlanner)
		planner.On("Plan", ctx, mock.AnythingOfType("route.Request")).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(route.Request)
			}).
			Return(route.Plan{}, nil).Once()

		repo := new(MockSessionRepository)
		repo.On("Get", ctx, s.ID()).Return(s, nil).Once()

		query, err := queries.NewPlanRouteQuery(s.ID(), "5 Custom St", "")
		require.NoError(t, err)

		h := queries.NewPlanRouteQueryHandler(repo, planner, rules, "1 Depot Way")
		_, err = h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "5 Custom St", sent.StartAddress)
	})

	t.Run("should decline an empty selection without calling the planner", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t, newOrder(t, 0, "Anna", "Milpitas", "95035"))

		planner := new(MockRoutePlanner)
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, s.ID()).Return(s, nil).Once()

		query, err := queries.NewPlanRouteQuery(s.ID(), "", "")
		require.NoError(t, err)

		h := queries.NewPlanRouteQueryHandler(repo, planner, rules, "1 Depot Way")
		_, err = h.Handle(ctx, query)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		planner.AssertNotCalled(t, "Plan", mock.Anything, mock.Anything)
	})

	t.Run("should propagate a planner failure", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t, newOrder(t, 0, "Anna", "Milpitas", "95035"))
		s.SelectAll()

		planner := new(MockRoutePlanner)
		planner.On("Plan", ctx, mock.AnythingOfType("route.Request")).
			Return(route.Plan{}, errors.New("routing service unavailable")).Once()

		repo := new(MockSessionRepository)
		repo.On("Get", ctx, s.ID()).Return(s, nil).Once()

		query, err := queries.NewPlanRouteQuery(s.ID(), "", "")
		require.NoError(t, err)

		h := queries.NewPlanRouteQueryHandler(repo, planner, rules, "1 Depot Way")
		_, err = h.Handle(ctx, query)

		assert.ErrorContains(t, err, "routing service unavailable")
	})

	t.Run("should reject an out-of-range start time", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t, newOrder(t, 0, "Anna", "Milpitas", "95035"))

		repo := new(MockSessionRepository)
		planner := new(MockRoutePlanner)

		query, err := queries.NewPlanRouteQuery(s.ID(), "", "25:00")
		require.NoError(t, err)

		h := queries.NewPlanRouteQueryHandler(repo, planner, rules, "1 Depot Way")
		_, err = h.Handle(ctx, query)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
