package commands_test

import (
	"context"
	"testing"

	"routeboard/internal/core/application/usecases/commands"
	"routeboard/internal/core/domain/model/grouping"
	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSessionCommand(t *testing.T) {
	t.Run("should reject an invalid format", func(t *testing.T) {
		_, err := commands.NewCreateSessionCommand(session.FormatUnknown, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		cmd := commands.CreateSessionCommand{}

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateSessionCommandIsNotConstructed)
	})
}

func TestCreateSessionCommandHandler_Handle(t *testing.T) {
	t.Run("should store a session with indexed and grouped orders", func(t *testing.T) {
		ctx := context.Background()
		cmd, err := commands.NewCreateSessionCommand(session.FormatRaw, []commands.OrderInput{
			{DeliveryLabel: "1", Customer: "Anna", Phone: "555-1234", Address: "1 Main St", City: "Milpitas", ZipCode: "95035", ItemQuantities: map[string]int{"duck": 2}},
			{DeliveryLabel: "2", Customer: "Boris", Address: "2 Oak St", City: "Albany", ZipCode: "94706"},
		})
		require.NoError(t, err)

		var stored *session.Session
		repo := new(MockSessionRepository)
		repo.On("Add", ctx, mock.AnythingOfType("*session.Session")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*session.Session)
			}).
			Return(nil).Once()

		h := commands.NewCreateSessionCommandHandler(repo, grouping.DefaultRules())
		id, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		repo.AssertExpectations(t)
		require.NotNil(t, stored)
		assert.True(t, id.IsEqual(stored.ID()))

		orders := stored.Orders()
		require.Len(t, orders, 2)
		assert.Equal(t, 0, orders[0].Index())
		assert.Equal(t, "555-1234", orders[0].Phone())
		assert.Equal(t, "Fri-P", orders[0].Group())
		assert.Equal(t, 1, orders[1].Index())
		assert.Equal(t, "Sat-K", orders[1].Group())
	})

	t.Run("should propagate an invalid order input", func(t *testing.T) {
		cmd, err := commands.NewCreateSessionCommand(session.FormatRaw, []commands.OrderInput{
			{Customer: "Anna", ItemQuantities: map[string]int{"duck": 0}},
		})
		require.NoError(t, err)

		repo := new(MockSessionRepository)
		h := commands.NewCreateSessionCommandHandler(repo, grouping.DefaultRules())
		_, err = h.Handle(context.Background(), cmd)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should reject a command that was not constructed", func(t *testing.T) {
		repo := new(MockSessionRepository)
		h := commands.NewCreateSessionCommandHandler(repo, grouping.DefaultRules())

		_, err := h.Handle(context.Background(), commands.CreateSessionCommand{})

		assert.ErrorIs(t, err, commands.ErrCreateSessionCommandIsNotConstructed)
	})
}
