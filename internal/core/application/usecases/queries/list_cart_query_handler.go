package queries

import (
	"context"
	"database/sql"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListCartQueryHandler struct {
	db *gorm.DB
}

func NewListCartQueryHandler(db *gorm.DB) ListCartQueryHandler {
	return ListCartQueryHandler{db: db}
}

// Handle returns the cart in insertion order.
func (h ListCartQueryHandler) Handle(ctx context.Context, query ListCartQuery) ([]CartItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]CartItemView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			dish_id,
			setmeal_id,
			dish_flavor,
			name,
			image,
			unit_price,
			quantity,
			created_at
		FROM cart_items
		WHERE customer_id = ?
		ORDER BY created_at, id
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItemView
		var dishID, setmealID sql.NullInt64
		var price decimal.Decimal

		err = rows.Scan(
			&item.ID,
			&dishID,
			&setmealID,
			&item.DishFlavor,
			&item.Name,
			&item.Image,
			&price,
			&item.Quantity,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if dishID.Valid {
			item.DishID = &dishID.Int64
		}
		if setmealID.Valid {
			item.SetmealID = &setmealID.Int64
		}

		money, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}
		item.Price = money
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
