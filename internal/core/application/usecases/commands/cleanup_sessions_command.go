package commands

import (
	"errors"
	"fmt"
	"time"

	"routeboard/internal/pkg/errs"
	"routeboard/internal/pkg/guard"
)

var ErrCleanupSessionsCommandIsNotConstructed = errors.New(
	"CleanupSessionsCommand must be created via NewCleanupSessionsCommand constructor",
)

// CleanupSessionsCommand represents a request to evict every session that has
// been idle for at least the ttl.
type CleanupSessionsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCleanupSessionsCommand creates a command to evict idle sessions. The ttl
// must be positive.
func NewCleanupSessionsCommand(ttl time.Duration) (CleanupSessionsCommand, error) {
	if ttl <= 0 {
		return CleanupSessionsCommand{}, errs.NewValueIsInvalidErrorWithCause("ttl",
			fmt.Errorf("%s is not positive", ttl))
	}

	return CleanupSessionsCommand{
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupSessionsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupSessionsCommandIsNotConstructed)
}

// TTL returns the idle threshold.
func (c CleanupSessionsCommand) TTL() time.Duration {
	return c.ttl
}
