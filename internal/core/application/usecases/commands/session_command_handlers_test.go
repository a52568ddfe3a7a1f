package commands_test

import (
	"context"
	"errors"
	"testing"

	"routeboard/internal/core/application/usecases/commands"
	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should append a manual order through the update closure", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t, newOrder(t, 0, "Anna", "Milpitas", "95035"))

		repo := new(MockSessionRepository)
		repo.On("Update", ctx, s.ID()).Return(s, nil).Once()

		cmd, err := commands.NewAddOrderCommand(s.ID(), "Boris", "555-0000", "2 Oak St", "Fremont", "94536", nil)
		require.NoError(t, err)

		h := commands.NewAddOrderCommandHandler(repo)
		require.NoError(t, h.Handle(ctx, cmd))

		repo.AssertExpectations(t)
		added, err := s.Order(1)
		require.NoError(t, err)
		assert.Equal(t, "M1", added.DeliveryLabel())
		assert.True(t, added.IsManual())
	})

	t.Run("should surface a missing session", func(t *testing.T) {
		ctx := context.Background()
		id := kernel.NewUUID()

		repo := new(MockSessionRepository)
		repo.On("Update", ctx, id).Return(nil, errs.NewObjectNotFoundError("session", id.String())).Once()

		cmd, err := commands.NewAddOrderCommand(id, "Boris", "", "2 Oak St", "Fremont", "94536", nil)
		require.NoError(t, err)

		h := commands.NewAddOrderCommandHandler(repo)
		assert.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})
}

func TestUpdateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should apply a partial edit", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t, newOrder(t, 0, "Anna", "Milpitas", "95035"))

		repo := new(MockSessionRepository)
		repo.On("Update", ctx, s.ID()).Return(s, nil).Once()

		city := "Newark"
		cmd, err := commands.NewUpdateOrderCommand(s.ID(), 0, session.OrderEdit{City: &city})
		require.NoError(t, err)

		h := commands.NewUpdateOrderCommandHandler(repo)
		require.NoError(t, h.Handle(ctx, cmd))

		o, err := s.Order(0)
		require.NoError(t, err)
		assert.Equal(t, "Newark", o.City())
	})

	t.Run("should reject a negative order index at construction", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), -1, session.OrderEdit{})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRemoveOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	s := newRawSession(t,
		newOrder(t, 0, "Anna", "Milpitas", "95035"),
		newOrder(t, 1, "Boris", "Milpitas", "95035"),
	)

	repo := new(MockSessionRepository)
	repo.On("Update", ctx, s.ID()).Return(s, nil).Once()

	cmd, err := commands.NewRemoveOrderCommand(s.ID(), 0)
	require.NoError(t, err)

	h := commands.NewRemoveOrderCommandHandler(repo)
	require.NoError(t, h.Handle(ctx, cmd))

	_, err = s.Order(0)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignOrderGroupCommandHandler_Handle(t *testing.T) {
	t.Run("should move the order into the named group", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t,
			newOrder(t, 0, "Anna", "Milpitas", "95035"),
			newOrder(t, 1, "Boris", "Albany", "94706"),
		)

		repo := new(MockSessionRepository)
		repo.On("Update", ctx, s.ID()).Return(s, nil).Once()

		cmd, err := commands.NewAssignOrderGroupCommand(s.ID(), 0, "Sat-K")
		require.NoError(t, err)

		h := commands.NewAssignOrderGroupCommandHandler(repo)
		require.NoError(t, h.Handle(ctx, cmd))

		o, err := s.Order(0)
		require.NoError(t, err)
		assert.Equal(t, "Sat-K", o.Group())
	})

	t.Run("should decline a dead group and keep the order", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t, newOrder(t, 0, "Anna", "Milpitas", "95035"))

		repo := new(MockSessionRepository)
		repo.On("Update", ctx, s.ID()).Return(s, nil).Once()

		cmd, err := commands.NewAssignOrderGroupCommand(s.ID(), 0, "Ghost")
		require.NoError(t, err)

		h := commands.NewAssignOrderGroupCommandHandler(repo)
		assert.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)

		o, err := s.Order(0)
		require.NoError(t, err)
		assert.Equal(t, "Fri-P", o.Group())
	})
}

func TestGroupCommandHandlers_Handle(t *testing.T) {
	t.Run("should add, rename, and delete a group", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t, newOrder(t, 0, "Anna", "Milpitas", "95035"))

		repo := new(MockSessionRepository)
		repo.On("Update", ctx, s.ID()).Return(s, nil).Times(3)

		addCmd, err := commands.NewAddGroupCommand(s.ID(), "Extra")
		require.NoError(t, err)
		addHandler := commands.NewAddGroupCommandHandler(repo)
		require.NoError(t, addHandler.Handle(ctx, addCmd))
		assert.Equal(t, []string{"Fri-P", "Extra"}, s.GroupNames())

		renameCmd, err := commands.NewRenameGroupCommand(s.ID(), "Fri-P", "Friday")
		require.NoError(t, err)
		renameHandler := commands.NewRenameGroupCommandHandler(repo)
		require.NoError(t, renameHandler.Handle(ctx, renameCmd))
		o, err := s.Order(0)
		require.NoError(t, err)
		assert.Equal(t, "Friday", o.Group())

		deleteCmd, err := commands.NewDeleteGroupCommand(s.ID(), "Friday")
		require.NoError(t, err)
		deleteHandler := commands.NewDeleteGroupCommandHandler(repo)
		require.NoError(t, deleteHandler.Handle(ctx, deleteCmd))
		assert.False(t, o.IsGrouped())

		repo.AssertExpectations(t)
	})

	t.Run("should require a group name at construction", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := commands.NewAddGroupCommand(id, "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewDeleteGroupCommand(id, "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewRenameGroupCommand(id, "", "New")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestReorderOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should move the dragged order after the target", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t,
			newOrder(t, 0, "Anna", "Milpitas", "95035"),
			newOrder(t, 1, "Boris", "Milpitas", "95035"),
		)

		repo := new(MockSessionRepository)
		repo.On("Update", ctx, s.ID()).Return(s, nil).Once()

		cmd, err := commands.NewReorderOrderCommand(s.ID(), 0, 1)
		require.NoError(t, err)

		h := commands.NewReorderOrderCommandHandler(repo)
		require.NoError(t, h.Handle(ctx, cmd))

		orders := s.Orders()
		assert.Equal(t, 1, orders[0].Index())
		assert.Equal(t, 0, orders[1].Index())
	})

	t.Run("should surface a cross-group drag", func(t *testing.T) {
		ctx := context.Background()
		s := newRawSession(t,
			newOrder(t, 0, "Anna", "Milpitas", "95035"),
			newOrder(t, 1, "Boris", "Albany", "94706"),
		)

		repo := new(MockSessionRepository)
		repo.On("Update", ctx, s.ID()).Return(s, nil).Once()

		cmd, err := commands.NewReorderOrderCommand(s.ID(), 0, 1)
		require.NoError(t, err)

		h := commands.NewReorderOrderCommandHandler(repo)
		err = h.Handle(ctx, cmd)

		assert.True(t, errors.Is(err, session.ErrCrossGroupReorder))
	})
}
