package queries

import (
	"context"

	"routeboard/internal/core/domain/model/grouping"
	"routeboard/internal/core/ports"
)

// GetSessionViewQueryHandler builds the display read model of a session.
type GetSessionViewQueryHandler struct {
	sessions ports.SessionRepository
	rules    grouping.Rules
}

// NewGetSessionViewQueryHandler creates a handler for session view queries.
func NewGetSessionViewQueryHandler(sessions ports.SessionRepository, rules grouping.Rules) GetSessionViewQueryHandler {
	return GetSessionViewQueryHandler{
		sessions: sessions,
		rules:    rules,
	}
}

// Handle reads the session and shapes it for display: groups in insertion
// order with live counts, orders in display order with boundary markers.
func (h GetSessionViewQueryHandler) Handle(
	ctx context.Context,
	query GetSessionViewQuery,
) (GetSessionViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionViewQueryResponse{}, err
	}

	s, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return GetSessionViewQueryResponse{}, err
	}

	groups := make([]GroupView, 0, len(s.GroupNames()))
	for _, name := range s.GroupNames() {
		color, _ := s.GroupColor(name)
		groups = append(groups, GroupView{
			Name:  name,
			Color: color,
			Count: s.GroupCount(name),
		})
	}

	sorted := s.SortedOrders(h.rules)
	orders := make([]OrderView, 0, len(sorted))
	previousGroup := ""
	for i, o := range sorted {
		orders = append(orders, OrderView{
			Index:            o.Index(),
			DeliveryLabel:    o.DeliveryLabel(),
			Customer:         o.Customer(),
			Phone:            o.Phone(),
			Address:          o.Address(),
			City:             o.City(),
			ZipCode:          o.ZipCode(),
			ItemQuantities:   o.ItemQuantities(),
			Group:            o.Group(),
			IsManual:         o.IsManual(),
			IsSelected:       s.IsSelected(o.Index()),
			GroupStart:       i == 0 || o.Group() != previousGroup,
			HasEmptyRequired: !o.HasRequiredFields(),
		})
		previousGroup = o.Group()
	}

	return GetSessionViewQueryResponse{
		ID:               s.ID().String(),
		Format:           s.Format().String(),
		Groups:           groups,
		Orders:           orders,
		UngroupedCount:   s.UngroupedCount(),
		SelectedCount:    len(s.SelectedIndices()),
		HasEmptyRequired: s.HasEmptyRequired(),
		DragMode:         s.DragMode().String(),
	}, nil
}
