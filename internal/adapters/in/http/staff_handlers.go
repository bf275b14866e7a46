package http

import (
	"errors"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// SearchOrders handles GET /admin/orders/search.
func (s *Server) SearchOrders(c echo.Context) error {
	var req SearchOrdersRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	begin, err := s.parseTime("beginTime", dateTimeLayout, req.BeginTime)
	if err != nil {
		return s.fail(c, err)
	}
	end, err := s.parseTime("endTime", dateTimeLayout, req.EndTime)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewSearchOrdersQuery(queries.SearchCriteria{
		Number: req.Number,
		Phone:  req.Phone,
		Status: order.Status(req.Status),
		Begin:  begin,
		End:    end,
	}, req.Page, req.PageSize)
	if err != nil {
		return s.fail(c, err)
	}

	page, err := s.handlers.SearchOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (s *Server) GetStatistics(c echo.Context) error {
	stats, err := s.handlers.Statistics.Handle(c.Request().Context(), queries.NewGetOrderStatisticsQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (s *Server) GetOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid order id")
	}

	query, err := queries.NewGetOrderDetailsQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.OrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (s *Server) ConfirmOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.ConfirmOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) RejectOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid order id")
	}
	var req RejectOrderRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRejectOrderCommand(id, req.RejectionReason)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.RejectOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) StaffCancelOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid order id")
	}
	var req StaffCancelOrderRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewStaffCancelOrderCommand(id, req.CancelReason)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.StaffCancel.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) DeliverOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewDeliverOrderCommand(id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.DeliverOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) CompleteOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.CompleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetShopStatus handles PUT /admin/shop/:status where status is 1 (open) or 0 (closed).
func (s *Server) SetShopStatus(c echo.Context) error {
	var open bool
	switch c.Param("status") {
	case "1":
		open = true
	case "0":
		open = false
	default:
		return badRequest(c, "shop status must be 0 or 1")
	}

	if err := s.handlers.SetShopStatus.Handle(c.Request().Context(), commands.NewSetShopStatusCommand(open)); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetTurnoverReport handles GET /admin/reports/turnover?begin=2006-01-02&end=2006-01-02.
func (s *Server) GetTurnoverReport(c echo.Context) error {
	var req TurnoverReportRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	begin, err := s.parseTime("begin", dateLayout, req.Begin)
	if err != nil {
		return s.fail(c, err)
	}
	end, err := s.parseTime("end", dateLayout, req.End)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetTurnoverReportQuery(begin, end)
	if err != nil {
		return s.fail(c, err)
	}
	report, err := s.handlers.TurnoverReport.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// parseTime reads a local calendar time; an empty value yields the zero time.
func (s *Server) parseTime(param, layout, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(layout, value, s.location)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(param, errors.New("expected format "+layout))
	}
	return t, nil
}
