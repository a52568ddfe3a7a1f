package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"routeboard/internal/adapters/out/memory"
	"routeboard/internal/adapters/out/routing"
	"routeboard/internal/core/application/usecases/commands"
	"routeboard/internal/core/application/usecases/queries"
	"routeboard/internal/core/domain/model/grouping"
	"routeboard/internal/core/ports"
	"routeboard/internal/jobs"
)

// defaultSessionTTL applies when SESSION_TTL_MINUTES is unset or not a
// positive integer.
const defaultSessionTTL = 30 * time.Minute

type CompositionRoot struct {
	config   Config
	sessions ports.SessionRepository
	planner  ports.RoutePlanner
	rules    grouping.Rules
	logger   *slog.Logger
}

func NewCompositionRoot(config Config) CompositionRoot {
	return CompositionRoot{
		config:   config,
		sessions: memory.NewSessionRepository(),
		planner:  routing.NewClient(config.RoutingServiceURL, config.RoutingAPIKey),
		rules:    grouping.DefaultRules(),
		logger:   slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) SessionTTL() time.Duration {
	if minutes, err := strconv.Atoi(c.config.SessionTTLMinutes); err == nil && minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return defaultSessionTTL
}

func (c *CompositionRoot) CreateCreateSessionCommandHandler() commands.CreateSessionCommandHandler {
	return commands.NewCreateSessionCommandHandler(c.sessions, c.rules)
}

func (c *CompositionRoot) CreateAddOrderCommandHandler() commands.AddOrderCommandHandler {
	return commands.NewAddOrderCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateAssignOrderGroupCommandHandler() commands.AssignOrderGroupCommandHandler {
	return commands.NewAssignOrderGroupCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateAddGroupCommandHandler() commands.AddGroupCommandHandler {
	return commands.NewAddGroupCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateRenameGroupCommandHandler() commands.RenameGroupCommandHandler {
	return commands.NewRenameGroupCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateDeleteGroupCommandHandler() commands.DeleteGroupCommandHandler {
	return commands.NewDeleteGroupCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateReorderOrderCommandHandler() commands.ReorderOrderCommandHandler {
	return commands.NewReorderOrderCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateDragSelectCommandHandler() commands.DragSelectCommandHandler {
	return commands.NewDragSelectCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSetSelectionCommandHandler() commands.SetSelectionCommandHandler {
	return commands.NewSetSelectionCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateCleanupSessionsCommandHandler() commands.CleanupSessionsCommandHandler {
	return commands.NewCleanupSessionsCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetSessionViewQueryHandler() queries.GetSessionViewQueryHandler {
	return queries.NewGetSessionViewQueryHandler(c.sessions, c.rules)
}

func (c *CompositionRoot) CreatePlanRouteQueryHandler() queries.PlanRouteQueryHandler {
	return queries.NewPlanRouteQueryHandler(c.sessions, c.planner, c.rules, c.config.DefaultStartAddress)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCleanupSessionsCommandHandler(), c.SessionTTL(), c.logger)
}
