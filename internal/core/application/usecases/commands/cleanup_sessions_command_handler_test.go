package commands_test

import (
	"context"
	"testing"
	"time"

	"routeboard/internal/core/application/usecases/commands"
	"routeboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCleanupSessionsCommand(t *testing.T) {
	_, err := commands.NewCleanupSessionsCommand(0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCleanupSessionsCommand(-time.Minute)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCleanupSessionsCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCleanupSessionsCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(MockSessionRepository)
	repo.On("DeleteIdle", ctx, mock.AnythingOfType("time.Time"), 30*time.Minute).Return(2, nil).Once()

	h := commands.NewCleanupSessionsCommandHandler(repo)
	evicted, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, evicted)
	repo.AssertExpectations(t)
}
