package queries

import (
	"context"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// DayReport is one row of the turnover report. Turnover and ValidOrders only
// count completed orders.
type DayReport struct {
	Date        string       `json:"date"`
	Turnover    kernel.Money `json:"turnover"`
	TotalOrders int64        `json:"totalOrders"`
	ValidOrders int64        `json:"validOrders"`
}

type TurnoverReport struct {
	Days           []DayReport  `json:"days"`
	Turnover       kernel.Money `json:"turnover"`
	TotalOrders    int64        `json:"totalOrders"`
	ValidOrders    int64        `json:"validOrders"`
	CompletionRate float64      `json:"orderCompletionRate"`
}

type GetTurnoverReportQueryHandler struct {
	reports ports.OrderReportReader
}

func NewGetTurnoverReportQueryHandler(reports ports.OrderReportReader) GetTurnoverReportQueryHandler {
	return GetTurnoverReportQueryHandler{reports: reports}
}

func (h GetTurnoverReportQueryHandler) Handle(
	ctx context.Context,
	query GetTurnoverReportQuery,
) (TurnoverReport, error) {
	if err := query.Validate(); err != nil {
		return TurnoverReport{}, err
	}

	report := TurnoverReport{Turnover: kernel.ZeroMoney()}
	for _, day := range query.Days() {
		all := ports.OrderRangeFilter{Begin: day, End: day.AddDate(0, 0, 1)}
		completed := all
		completed.Status = order.Completed

		turnover, err := h.reports.SumAmount(ctx, completed)
		if err != nil {
			return TurnoverReport{}, fmt.Errorf("sum turnover of %s: %w", day.Format("2006-01-02"), err)
		}
		total, err := h.reports.CountOrders(ctx, all)
		if err != nil {
			return TurnoverReport{}, fmt.Errorf("count orders of %s: %w", day.Format("2006-01-02"), err)
		}
		valid, err := h.reports.CountOrders(ctx, completed)
		if err != nil {
			return TurnoverReport{}, fmt.Errorf("count completed orders of %s: %w", day.Format("2006-01-02"), err)
		}

		report.Days = append(report.Days, DayReport{
			Date:        day.Format("2006-01-02"),
			Turnover:    turnover,
			TotalOrders: total,
			ValidOrders: valid,
		})
		report.Turnover = report.Turnover.Add(turnover)
		report.TotalOrders += total
		report.ValidOrders += valid
	}

	if report.TotalOrders > 0 {
		report.CompletionRate = float64(report.ValidOrders) / float64(report.TotalOrders)
	}
	return report, nil
}
