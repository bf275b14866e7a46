package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SubmitOrder handles POST /user/orders - turns the customer's cart into an order.
func (s *Server) SubmitOrder(c echo.Context) error {
	var req SubmitOrderRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(customerID(c), req.AddressBookID, req.Amount)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.SubmitOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, SubmitOrderResponse{
		ID:        result.ID,
		Number:    result.Number,
		Amount:    result.Amount,
		OrderTime: result.OrderTime,
	})
}

// PayOrder handles POST /user/orders/payment - the payment confirmation callback.
func (s *Server) PayOrder(c echo.Context) error {
	var req PayOrderRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewMarkPaidCommand(req.OrderNumber)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.MarkPaid.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ListCustomerOrders(c echo.Context) error {
	var req CustomerOrdersRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID(c), order.Status(req.Status), req.Page, req.PageSize)
	if err != nil {
		return s.fail(c, err)
	}
	page, err := s.handlers.CustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (s *Server) GetCustomerOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid order id")
	}

	query, err := queries.NewCustomerOrderDetailsQuery(customerID(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.OrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// CancelOrder handles PUT /user/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid order id")
	}
	var req CancelOrderRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(customerID(c), id, req.CancelReason)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Reorder handles POST /user/orders/:id/repetition - copies the order's lines back into the cart.
func (s *Server) Reorder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewReorderCommand(customerID(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.Reorder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) RemindOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewRemindOrderCommand(customerID(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.RemindOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) GetShopStatus(c echo.Context) error {
	open, err := s.handlers.ShopStatus.Handle(c.Request().Context(), queries.NewGetShopStatusQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, ShopStatusResponse{Open: open})
}

// bind decodes and validates the request.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}
	return c.Validate(req)
}
