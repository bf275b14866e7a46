package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// SearchOrdersQueryHandler returns pages of orders with a dish summary per order.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) (Page[OrderView], error) {
	if err := query.Validate(); err != nil {
		return Page[OrderView]{}, err
	}

	c := query.Criteria()
	var filter orderFilter
	if c.Number != "" {
		filter.add("number LIKE ?", "%"+c.Number+"%")
	}
	if c.Phone != "" {
		filter.add("phone LIKE ?", "%"+c.Phone+"%")
	}
	if c.Status != order.Unknown {
		filter.add("status = ?", int(c.Status))
	}
	if !c.Begin.IsZero() {
		filter.add("order_time >= ?", c.Begin)
	}
	if !c.End.IsZero() {
		filter.add("order_time <= ?", c.End)
	}

	page, err := pageOrders(ctx, h.db, filter, query.Paging())
	if err != nil {
		return Page[OrderView]{}, err
	}
	for i := range page.Records {
		page.Records[i].DishSummary = DishSummary(page.Records[i].Lines)
		page.Records[i].Lines = nil
	}
	return page, nil
}
