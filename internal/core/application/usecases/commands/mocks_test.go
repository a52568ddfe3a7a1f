package commands_test

import (
	"context"
	"testing"
	"time"

	"routeboard/internal/core/domain/model/grouping"
	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/core/domain/model/session"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSessionRepository mocks ports.SessionRepository. Update runs the
// closure against the session configured via the first return value, so
// handler tests exercise real aggregate behavior.
type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, aggregate *session.Session) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*session.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, id kernel.UUID, fn func(*session.Session) error) error {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return err
	}
	s, _ := args.Get(0).(*session.Session)
	return fn(s)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteIdle(ctx context.Context, now time.Time, ttl time.Duration) (int, error) {
	args := m.Called(ctx, now, ttl)
	return args.Int(0), args.Error(1)
}

func newRawSession(t *testing.T, orders ...*order.Order) *session.Session {
	t.Helper()
	s, err := session.NewSession(kernel.NewUUID(), session.FormatRaw, orders, grouping.DefaultRules(), time.Now())
	require.NoError(t, err)
	return s
}

func newOrder(t *testing.T, index int, customer, city, zip string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(index, "1", customer, "1 Main St", city, zip, map[string]int{"duck": 1})
	require.NoError(t, err)
	return o
}
