package cmd

import (
	"log/slog"
	"os"

	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/in/ws"
	"tracking/internal/adapters/out/sqlite/orderrepo"
	"tracking/internal/broadcast"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters, the broadcast hub, and the use case
// handlers over one shared database handle.
type CompositionRoot struct {
	gormDB *gorm.DB
	hub    *broadcast.Hub
	logger *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return CompositionRoot{
		gormDB: gormDB,
		hub:    broadcast.NewHub(logger),
		logger: logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Hub() *broadcast.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateOrderRepository() *orderrepo.GormOrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.CreateOrderRepository(), c.hub, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.CreateOrderRepository(), c.hub)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateWSHandler() *ws.Handler {
	return ws.NewHandler(c.hub, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.logger)
}
