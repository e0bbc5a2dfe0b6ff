package cmd

import (
	"log/slog"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/memory"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/jobs"
	"ordering/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	book       *memory.OrderBook
	uowFactory *memory.UnitOfWorkFactory
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	book := memory.NewOrderBook()
	registry := prometheus.NewRegistry()
	return CompositionRoot{
		config:     config,
		logger:     logger,
		book:       book,
		uowFactory: memory.NewUnitOfWorkFactory(book),
		registry:   registry,
		metrics:    metrics.New(registry),
	}
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// Registry is the gatherer behind the /metrics endpoint.
func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderLineCommandHandler() commands.AddOrderLineCommandHandler {
	return commands.NewAddOrderLineCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderLineCommandHandler() commands.RemoveOrderLineCommandHandler {
	return commands.NewRemoveOrderLineCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.book)
}

func (c *CompositionRoot) CreateAuditOrdersQueryHandler() queries.AuditOrdersQueryHandler {
	return queries.NewAuditOrdersQueryHandler(c.book, services.NewOrderAuditor())
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAddOrderLineCommandHandler(),
		c.CreateRemoveOrderLineCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAuditOrdersQueryHandler(),
		c.config.AuditSchedule,
		c.metrics,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
