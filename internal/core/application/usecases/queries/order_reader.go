package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// orderFilter accumulates WHERE conditions for the order listings.
type orderFilter struct {
	conditions []string
	args       []any
}

func (f *orderFilter) add(condition string, args ...any) {
	f.conditions = append(f.conditions, condition)
	f.args = append(f.args, args...)
}

func (f *orderFilter) where() string {
	if len(f.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conditions, " AND ")
}

// pageOrders counts and loads one page of orders matching the filter, newest first.
func pageOrders(ctx context.Context, db *gorm.DB, filter orderFilter, paging Paging) (Page[OrderView], error) {
	var total int64
	if err := db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders"+filter.where(), filter.args...).
		Scan(&total).Error; err != nil {
		return Page[OrderView]{}, err
	}

	var rows []orderRow
	args := append(append([]any{}, filter.args...), paging.Limit(), paging.Offset())
	if err := db.WithContext(ctx).
		Raw("SELECT "+orderColumns+" FROM orders"+filter.where()+
			" ORDER BY order_time DESC, id DESC LIMIT ? OFFSET ?", args...).
		Scan(&rows).Error; err != nil {
		return Page[OrderView]{}, err
	}

	records := make([]OrderView, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		v, err := row.view()
		if err != nil {
			return Page[OrderView]{}, err
		}
		records = append(records, v)
		ids = append(ids, row.ID)
	}

	lines, err := loadLines(ctx, db, ids)
	if err != nil {
		return Page[OrderView]{}, err
	}
	for i := range records {
		records[i].Lines = lines[records[i].ID]
	}

	return Page[OrderView]{Total: total, Records: records}, nil
}

// loadLines returns the lines of the orders grouped by order id.
func loadLines(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]LineView, error) {
	grouped := make(map[int64][]LineView, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	var rows []lineRow
	if err := db.WithContext(ctx).Raw(`
		SELECT
			id, order_id, dish_id, setmeal_id, dish_flavor,
			name, image, unit_price, quantity
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, orderIDs).Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		v, err := row.view()
		if err != nil {
			return nil, err
		}
		grouped[row.OrderID] = append(grouped[row.OrderID], v)
	}
	return grouped, nil
}
