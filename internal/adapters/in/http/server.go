// Package http exposes the order service over REST with echo. Customer routes
// identify the caller through the X-Customer-Id header set by the gateway;
// staff routes live under /admin.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CommandHandler is any use case that only reports success or failure.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is any use case that returns a value.
type ResultHandler[Q any, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers lists every use case reachable over HTTP.
type Handlers struct {
	SubmitOrder ResultHandler[commands.SubmitOrderCommand, commands.SubmitOrderResult]
	MarkPaid    CommandHandler[commands.MarkPaidCommand]
	CancelOrder CommandHandler[commands.CancelOrderCommand]
	Reorder     CommandHandler[commands.ReorderCommand]
	RemindOrder CommandHandler[commands.RemindOrderCommand]

	ConfirmOrder  CommandHandler[commands.ConfirmOrderCommand]
	RejectOrder   CommandHandler[commands.RejectOrderCommand]
	StaffCancel   CommandHandler[commands.StaffCancelOrderCommand]
	DeliverOrder  CommandHandler[commands.DeliverOrderCommand]
	CompleteOrder CommandHandler[commands.CompleteOrderCommand]
	SetShopStatus CommandHandler[commands.SetShopStatusCommand]
	AddCartItem   CommandHandler[commands.CartItemCommand]
	SubCartItem   CommandHandler[commands.CartItemCommand]
	CleanCart     CommandHandler[commands.CleanCartCommand]

	OrderDetails   ResultHandler[queries.GetOrderDetailsQuery, *queries.OrderView]
	CustomerOrders ResultHandler[queries.ListCustomerOrdersQuery, queries.Page[queries.OrderView]]
	SearchOrders   ResultHandler[queries.SearchOrdersQuery, queries.Page[queries.OrderView]]
	Statistics     ResultHandler[queries.GetOrderStatisticsQuery, queries.OrderStatistics]
	TurnoverReport ResultHandler[queries.GetTurnoverReportQuery, queries.TurnoverReport]
	ListCart       ResultHandler[queries.ListCartQuery, []queries.CartItemView]
	ShopStatus     ResultHandler[queries.GetShopStatusQuery, bool]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	location *time.Location
	logger   *slog.Logger
}

// NewServer creates a server; location is used to read the calendar times of
// search and report parameters.
func NewServer(handlers Handlers, location *time.Location, logger *slog.Logger) *Server {
	if location == nil {
		location = time.Local
	}
	return &Server{
		handlers: handlers,
		location: location,
		logger:   logger.With("component", "http"),
	}
}

// NewEcho builds the echo instance with logging, recovery and validation.
func NewEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newRequestValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency.String()}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	return e
}

// Register mounts all customer and staff routes.
func (s *Server) Register(e *echo.Echo) {
	user := e.Group("/user", customerIdentity)
	user.POST("/orders", s.SubmitOrder)
	user.POST("/orders/payment", s.PayOrder)
	user.GET("/orders", s.ListCustomerOrders)
	user.GET("/orders/:id", s.GetCustomerOrder)
	user.PUT("/orders/:id/cancel", s.CancelOrder)
	user.POST("/orders/:id/repetition", s.Reorder)
	user.GET("/orders/:id/reminder", s.RemindOrder)
	user.POST("/cart/add", s.AddCartItem)
	user.POST("/cart/sub", s.SubCartItem)
	user.GET("/cart", s.ListCart)
	user.DELETE("/cart", s.CleanCart)
	user.GET("/shop/status", s.GetShopStatus)

	admin := e.Group("/admin")
	admin.GET("/orders/search", s.SearchOrders)
	admin.GET("/orders/statistics", s.GetStatistics)
	admin.GET("/orders/:id", s.GetOrder)
	admin.PUT("/orders/:id/confirm", s.ConfirmOrder)
	admin.PUT("/orders/:id/rejection", s.RejectOrder)
	admin.PUT("/orders/:id/cancel", s.StaffCancelOrder)
	admin.PUT("/orders/:id/delivery", s.DeliverOrder)
	admin.PUT("/orders/:id/complete", s.CompleteOrder)
	admin.PUT("/shop/:status", s.SetShopStatus)
	admin.GET("/shop/status", s.GetShopStatus)
	admin.GET("/reports/turnover", s.GetTurnoverReport)
}

type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
