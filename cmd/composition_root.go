package cmd

import (
	"log/slog"

	"foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/notifyhub"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/addressrepo"
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/redis/shoprepo"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	shop       *shoprepo.RedisShopStatusRepository
	assembler  services.CheckoutAssembler
	clock      kernel.Clock
	metrics    *metrics.Metrics
	hub        *notifyhub.Hub
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient redis.UniversalClient, logger *slog.Logger) CompositionRoot {
	m := metrics.New()
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		shop:       shoprepo.NewRedisShopStatusRepository(redisClient),
		assembler:  services.NewCheckoutAssembler(services.NewNumberGenerator()),
		clock:      kernel.SystemClock{},
		metrics:    m,
		hub:        notifyhub.NewHub(m, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// Hub is the staff notification transport shared by every handler that notifies.
func (c *CompositionRoot) Hub() *notifyhub.Hub {
	return c.hub
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(
		c.crossUoWFactory(),
		addressrepo.NewGormAddressRepository(c.gormDB),
		c.shop,
		c.assembler,
		c.clock,
	)
}

func (c *CompositionRoot) CreateMarkPaidCommandHandler() commands.MarkPaidCommandHandler {
	return commands.NewMarkPaidCommandHandler(c.orderUoWFactory(), c.hub, c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReorderCommandHandler() commands.ReorderCommandHandler {
	return commands.NewReorderCommandHandler(c.crossUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemindOrderCommandHandler() commands.RemindOrderCommandHandler {
	return commands.NewRemindOrderCommandHandler(c.orderUoWFactory(), c.hub)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateStaffCancelOrderCommandHandler() commands.StaffCancelOrderCommandHandler {
	return commands.NewStaffCancelOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelUnpaidOrdersCommandHandler() commands.CancelUnpaidOrdersCommandHandler {
	return commands.NewCancelUnpaidOrdersCommandHandler(
		c.orderUoWFactory(),
		c.CreateStaffCancelOrderCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateCompleteStuckDeliveriesCommandHandler() commands.CompleteStuckDeliveriesCommandHandler {
	return commands.NewCompleteStuckDeliveriesCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(
		c.cartUoWFactory(),
		catalogrepo.NewGormCatalogRepository(c.gormDB),
		c.clock,
	)
}

func (c *CompositionRoot) CreateSubCartItemCommandHandler() commands.SubCartItemCommandHandler {
	return commands.NewSubCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCleanCartCommandHandler() commands.CleanCartCommandHandler {
	return commands.NewCleanCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateSetShopStatusCommandHandler() commands.SetShopStatusCommandHandler {
	return commands.NewSetShopStatusCommandHandler(c.shop)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetTurnoverReportQueryHandler() queries.GetTurnoverReportQueryHandler {
	return queries.NewGetTurnoverReportQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListCartQueryHandler() queries.ListCartQueryHandler {
	return queries.NewListCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopStatusQueryHandler() queries.GetShopStatusQueryHandler {
	return queries.NewGetShopStatusQueryHandler(c.shop)
}

// CreateHTTPHandlers wires every use case exposed by the REST server.
func (c *CompositionRoot) CreateHTTPHandlers() http.Handlers {
	return http.Handlers{
		SubmitOrder: c.CreateSubmitOrderCommandHandler(),
		MarkPaid:    c.CreateMarkPaidCommandHandler(),
		CancelOrder: c.CreateCancelOrderCommandHandler(),
		Reorder:     c.CreateReorderCommandHandler(),
		RemindOrder: c.CreateRemindOrderCommandHandler(),

		ConfirmOrder:  c.CreateConfirmOrderCommandHandler(),
		RejectOrder:   c.CreateRejectOrderCommandHandler(),
		StaffCancel:   c.CreateStaffCancelOrderCommandHandler(),
		DeliverOrder:  c.CreateDeliverOrderCommandHandler(),
		CompleteOrder: c.CreateCompleteOrderCommandHandler(),
		SetShopStatus: c.CreateSetShopStatusCommandHandler(),
		AddCartItem:   c.CreateAddCartItemCommandHandler(),
		SubCartItem:   c.CreateSubCartItemCommandHandler(),
		CleanCart:     c.CreateCleanCartCommandHandler(),

		OrderDetails:   c.CreateGetOrderDetailsQueryHandler(),
		CustomerOrders: c.CreateListCustomerOrdersQueryHandler(),
		SearchOrders:   c.CreateSearchOrdersQueryHandler(),
		Statistics:     c.CreateGetOrderStatisticsQueryHandler(),
		TurnoverReport: c.CreateGetTurnoverReportQueryHandler(),
		ListCart:       c.CreateListCartQueryHandler(),
		ShopStatus:     c.CreateGetShopStatusQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.Schedule{
			UnpaidSweepSpec:   c.config.UnpaidSweepSpec,
			UnpaidTimeout:     c.config.UnpaidTimeout,
			StuckDeliverySpec: c.config.StuckDeliverySpec,
			StuckTimeout:      c.config.StuckDeliveryTimeout,
			Location:          c.config.Location,
		},
		c.CreateCancelUnpaidOrdersCommandHandler(),
		c.CreateCompleteStuckDeliveriesCommandHandler(),
		c.clock,
		c.metrics,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
