package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; lifecycle changes go through Apply only.
type OrderRepository interface {
	// Add inserts the order row and returns its generated id. Lines are written
	// separately with AddLines inside the same unit of work.
	Add(ctx context.Context, aggregate *order.Order) (int64, error)

	// AddLines bulk-inserts the order's lines in a single statement.
	AddLines(ctx context.Context, orderID int64, lines []order.Line) error

	// Apply performs the conditional update described by the patch:
	// only the patch's columns change, and only when the stored status is one
	// of patch.ExpectedStatuses(). It reports whether a row was changed.
	//
	// Example:
	//   applied, err := repo.Apply(ctx, patch)
	//   if err != nil {
	//       return err
	//   }
	//   if !applied {
	//       // another transition won the race
	//   }
	Apply(ctx context.Context, patch order.Patch) (bool, error)

	// Get returns the order with its lines, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByNumber looks an order up by its business key.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// FindByStatusOlderThan returns orders in the status whose order time is before the deadline.
	// Lines are not loaded.
	FindByStatusOlderThan(ctx context.Context, status order.Status, deadline time.Time) ([]*order.Order, error)
}

// OrderReportReader exposes the aggregate queries consumed by reporting.
type OrderReportReader interface {
	// CountByStatus counts orders currently in the status.
	CountByStatus(ctx context.Context, status order.Status) (int64, error)

	// SumAmount totals the amount of orders placed in [begin, end) with the status.
	SumAmount(ctx context.Context, filter OrderRangeFilter) (kernel.Money, error)

	// CountOrders counts orders placed in [begin, end), optionally restricted to one status.
	CountOrders(ctx context.Context, filter OrderRangeFilter) (int64, error)
}

// OrderRangeFilter selects orders by order time. A zero Status means any status.
type OrderRangeFilter struct {
	Begin  time.Time
	End    time.Time
	Status order.Status
}
