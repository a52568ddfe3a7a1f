// Package queries contains read operations over working sessions.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the client, never live aggregates.
package queries

import (
	"errors"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/guard"
)

var ErrGetSessionViewQueryIsNotConstructed = errors.New(
	"GetSessionViewQuery must be created via NewGetSessionViewQuery constructor",
)

// GetSessionViewQuery retrieves the full display state of one session: groups
// with colors and counts, orders in display order with group boundaries, the
// selection, and the completeness flag.
type GetSessionViewQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSessionViewQuery creates a query for a session's display state.
func NewGetSessionViewQuery(sessionID kernel.UUID) (GetSessionViewQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionViewQuery{}, err
	}

	return GetSessionViewQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionViewQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionViewQueryIsNotConstructed)
}

// SessionID returns the session to read.
func (q GetSessionViewQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GroupView is one delivery group in the read model.
type GroupView struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// OrderView is one order in the read model, in display order. GroupStart
// marks the first order of each group so the client can draw boundaries.
type OrderView struct {
	Index            int            `json:"index"`
	DeliveryLabel    string         `json:"delivery_label"`
	Customer         string         `json:"customer"`
	Phone            string         `json:"phone,omitempty"`
	Address          string         `json:"address"`
	City             string         `json:"city"`
	ZipCode          string         `json:"zip_code"`
	ItemQuantities   map[string]int `json:"item_quantities"`
	Group            string         `json:"group,omitempty"`
	IsManual         bool           `json:"is_manual"`
	IsSelected       bool           `json:"is_selected"`
	GroupStart       bool           `json:"group_start"`
	HasEmptyRequired bool           `json:"has_empty_required"`
}

// GetSessionViewQueryResponse is the full display state of one session.
type GetSessionViewQueryResponse struct {
	ID               string      `json:"id"`
	Format           string      `json:"format"`
	Groups           []GroupView `json:"groups"`
	Orders           []OrderView `json:"orders"`
	UngroupedCount   int         `json:"ungrouped_count"`
	SelectedCount    int         `json:"selected_count"`
	HasEmptyRequired bool        `json:"has_empty_required"`
	DragMode         string      `json:"drag_mode"`
}
