package queries

import (
	"context"
	"fmt"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

type GetOrderStatisticsQueryHandler struct {
	reports ports.OrderReportReader
}

func NewGetOrderStatisticsQueryHandler(reports ports.OrderReportReader) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{reports: reports}
}

func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (OrderStatistics, error) {
	if err := query.Validate(); err != nil {
		return OrderStatistics{}, err
	}

	var stats OrderStatistics
	targets := []struct {
		status order.Status
		dst    *int64
	}{
		{order.ToBeConfirmed, &stats.ToBeConfirmed},
		{order.Confirmed, &stats.Confirmed},
		{order.DeliveryInProgress, &stats.DeliveryInProgress},
	}
	for _, t := range targets {
		n, err := h.reports.CountByStatus(ctx, t.status)
		if err != nil {
			return OrderStatistics{}, fmt.Errorf("count %s orders: %w", t.status, err)
		}
		*t.dst = n
	}
	return stats, nil
}
