package queries

import (
	"context"

	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (*OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	if err := h.db.WithContext(ctx).
		Raw("SELECT "+orderColumns+" FROM orders WHERE id = ?", query.OrderID()).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	row := rows[0]
	if query.CustomerID() != 0 && row.CustomerID != query.CustomerID() {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	view, err := row.view()
	if err != nil {
		return nil, err
	}
	lines, err := loadLines(ctx, h.db, []int64{row.ID})
	if err != nil {
		return nil, err
	}
	view.Lines = lines[row.ID]
	view.DishSummary = DishSummary(view.Lines)

	return &view, nil
}
