// Package http exposes the session API over echo. Handlers translate between
// the wire and the command/query layer; domain errors map onto HTTP statuses.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"routeboard/internal/core/application/usecases/commands"
	"routeboard/internal/core/application/usecases/queries"
	"routeboard/internal/core/domain/model/group"
	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the session API. It coordinates between
// HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createSessionHandler    commands.CreateSessionCommandHandler
	addOrderHandler         commands.AddOrderCommandHandler
	updateOrderHandler      commands.UpdateOrderCommandHandler
	removeOrderHandler      commands.RemoveOrderCommandHandler
	assignOrderGroupHandler commands.AssignOrderGroupCommandHandler
	addGroupHandler         commands.AddGroupCommandHandler
	renameGroupHandler      commands.RenameGroupCommandHandler
	deleteGroupHandler      commands.DeleteGroupCommandHandler
	reorderOrderHandler     commands.ReorderOrderCommandHandler
	dragSelectHandler       commands.DragSelectCommandHandler
	setSelectionHandler     commands.SetSelectionCommandHandler

	// Query handlers
	getSessionViewHandler queries.GetSessionViewQueryHandler
	planRouteHandler      queries.PlanRouteQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createSessionHandler commands.CreateSessionCommandHandler,
	addOrderHandler commands.AddOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	assignOrderGroupHandler commands.AssignOrderGroupCommandHandler,
	addGroupHandler commands.AddGroupCommandHandler,
	renameGroupHandler commands.RenameGroupCommandHandler,
	deleteGroupHandler commands.DeleteGroupCommandHandler,
	reorderOrderHandler commands.ReorderOrderCommandHandler,
	dragSelectHandler commands.DragSelectCommandHandler,
	setSelectionHandler commands.SetSelectionCommandHandler,
	getSessionViewHandler queries.GetSessionViewQueryHandler,
	planRouteHandler queries.PlanRouteQueryHandler,
) *Server {
	return &Server{
		createSessionHandler:    createSessionHandler,
		addOrderHandler:         addOrderHandler,
		updateOrderHandler:      updateOrderHandler,
		removeOrderHandler:      removeOrderHandler,
		assignOrderGroupHandler: assignOrderGroupHandler,
		addGroupHandler:         addGroupHandler,
		renameGroupHandler:      renameGroupHandler,
		deleteGroupHandler:      deleteGroupHandler,
		reorderOrderHandler:     reorderOrderHandler,
		dragSelectHandler:       dragSelectHandler,
		setSelectionHandler:     setSelectionHandler,
		getSessionViewHandler:   getSessionViewHandler,
		planRouteHandler:        planRouteHandler,
	}
}

// RegisterRoutes attaches the session API to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/sessions", s.CreateSession)
	api.GET("/sessions/:id", s.GetSession)
	api.POST("/sessions/:id/orders", s.AddOrder)
	api.PATCH("/sessions/:id/orders/:index", s.UpdateOrder)
	api.DELETE("/sessions/:id/orders/:index", s.RemoveOrder)
	api.PUT("/sessions/:id/orders/:index/group", s.AssignOrderGroup)
	api.POST("/sessions/:id/groups", s.AddGroup)
	api.PATCH("/sessions/:id/groups/:name", s.RenameGroup)
	api.DELETE("/sessions/:id/groups/:name", s.DeleteGroup)
	api.POST("/sessions/:id/reorder", s.ReorderOrder)
	api.POST("/sessions/:id/drag", s.DragSelect)
	api.PUT("/sessions/:id/selection", s.SetSelection)
	api.POST("/sessions/:id/route", s.PlanRoute)
}

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderPayload is one uploaded or manually entered order on the wire.
type OrderPayload struct {
	DeliveryLabel  string         `json:"delivery_label"`
	Customer       string         `json:"customer"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	ZipCode        string         `json:"zip_code"`
	ItemQuantities map[string]int `json:"item_quantities"`
}

// CreateSessionRequest is the body of POST /sessions.
type CreateSessionRequest struct {
	Format string         `json:"format"`
	Orders []OrderPayload `json:"orders"`
}

// CreateSessionResponse carries the new session's identifier.
type CreateSessionResponse struct {
	ID string `json:"id"`
}

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(ctx echo.Context) error {
	var request CreateSessionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	format, err := session.FormatFromString(request.Format)
	if err != nil {
		return writeError(ctx, err)
	}

	inputs := make([]commands.OrderInput, 0, len(request.Orders))
	for _, o := range request.Orders {
		inputs = append(inputs, commands.OrderInput{
			DeliveryLabel:  o.DeliveryLabel,
			Customer:       o.Customer,
			Phone:          o.Phone,
			Address:        o.Address,
			City:           o.City,
			ZipCode:        o.ZipCode,
			ItemQuantities: o.ItemQuantities,
		})
	}

	cmd, err := commands.NewCreateSessionCommand(format, inputs)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.createSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateSessionResponse{ID: id.String()})
}

// GetSession handles GET /api/v1/sessions/:id.
func (s *Server) GetSession(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}

	query, err := queries.NewGetSessionViewQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getSessionViewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// AddOrder handles POST /api/v1/sessions/:id/orders.
func (s *Server) AddOrder(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}

	var payload OrderPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddOrderCommand(id, payload.Customer, payload.Phone, payload.Address, payload.City, payload.ZipCode, payload.ItemQuantities)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateOrderRequest is the body of PATCH /sessions/:id/orders/:index. Absent
// fields are left unchanged.
type UpdateOrderRequest struct {
	DeliveryLabel  *string        `json:"delivery_label"`
	Customer       *string        `json:"customer"`
	Phone          *string        `json:"phone"`
	Address        *string        `json:"address"`
	City           *string        `json:"city"`
	ZipCode        *string        `json:"zip_code"`
	ItemQuantities map[string]int `json:"item_quantities"`
}

// UpdateOrder handles PATCH /api/v1/sessions/:id/orders/:index.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}
	index, err := orderIndex(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order index")
	}

	var request UpdateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(id, index, session.OrderEdit{
		DeliveryLabel:  request.DeliveryLabel,
		Customer:       request.Customer,
		Phone:          request.Phone,
		Address:        request.Address,
		City:           request.City,
		ZipCode:        request.ZipCode,
		ItemQuantities: request.ItemQuantities,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrder handles DELETE /api/v1/sessions/:id/orders/:index.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}
	index, err := orderIndex(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order index")
	}

	cmd, err := commands.NewRemoveOrderCommand(id, index)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignGroupRequest is the body of PUT /sessions/:id/orders/:index/group. An
// empty group detaches the order.
type AssignGroupRequest struct {
	Group string `json:"group"`
}

// AssignOrderGroup handles PUT /api/v1/sessions/:id/orders/:index/group.
func (s *Server) AssignOrderGroup(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}
	index, err := orderIndex(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order index")
	}

	var request AssignGroupRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignOrderGroupCommand(id, index, request.Group)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignOrderGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GroupRequest is the body of group create and rename requests.
type GroupRequest struct {
	Name string `json:"name"`
}

// AddGroup handles POST /api/v1/sessions/:id/groups.
func (s *Server) AddGroup(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}

	var request GroupRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddGroupCommand(id, request.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RenameGroup handles PATCH /api/v1/sessions/:id/groups/:name.
func (s *Server) RenameGroup(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}

	var request GroupRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRenameGroupCommand(id, ctx.Param("name"), request.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.renameGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteGroup handles DELETE /api/v1/sessions/:id/groups/:name.
func (s *Server) DeleteGroup(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}

	cmd, err := commands.NewDeleteGroupCommand(id, ctx.Param("name"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReorderRequest is the body of POST /sessions/:id/reorder.
type ReorderRequest struct {
	DraggedIndex int `json:"dragged_index"`
	TargetIndex  int `json:"target_index"`
}

// ReorderOrder handles POST /api/v1/sessions/:id/reorder.
func (s *Server) ReorderOrder(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}

	var request ReorderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReorderOrderCommand(id, request.DraggedIndex, request.TargetIndex)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reorderOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DragRequest is the body of POST /sessions/:id/drag.
type DragRequest struct {
	Phase string `json:"phase"`
	Index int    `json:"index"`
}

// DragSelect handles POST /api/v1/sessions/:id/drag.
func (s *Server) DragSelect(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}

	var request DragRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	phase, err := commands.DragPhaseFromString(request.Phase)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDragSelectCommand(id, phase, request.Index)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.dragSelectHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SelectionRequest is the body of PUT /sessions/:id/selection.
type SelectionRequest struct {
	Scope string `json:"scope"`
	Group string `json:"group"`
}

// SetSelection handles PUT /api/v1/sessions/:id/selection.
func (s *Server) SetSelection(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}

	var request SelectionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	scope, err := commands.SelectionScopeFromString(request.Scope)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetSelectionCommand(id, scope, request.Group)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setSelectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlanRouteRequest is the body of POST /sessions/:id/route.
type PlanRouteRequest struct {
	StartAddress string `json:"start_address"`
	StartTime    string `json:"start_time"`
}

// PlanRoute handles POST /api/v1/sessions/:id/route.
func (s *Server) PlanRoute(ctx echo.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid session id")
	}

	var request PlanRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewPlanRouteQuery(id, request.StartAddress, request.StartTime)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.planRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

func sessionID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func orderIndex(ctx echo.Context) (int, error) {
	return strconv.Atoi(ctx.Param("index"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors onto HTTP statuses: unknown object to 404,
// declined conflicts to 409, invalid input to 400, everything else to 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, group.ErrGroupNameConflict),
		errors.Is(err, session.ErrCrossGroupReorder):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
