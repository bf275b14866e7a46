// Package queries contains read-only operations. Order and cart reads go
// straight to the database through GORM raw SQL and return flat views;
// statistics are computed from the reporting aggregates of the order store.
package queries

import (
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// OrderView is an order as shown to customers and staff.
type OrderView struct {
	ID              int64           `json:"id"`
	Number          string          `json:"number"`
	CustomerID      int64           `json:"userId"`
	Status          order.Status    `json:"status"`
	PayStatus       order.PayStatus `json:"payStatus"`
	Amount          kernel.Money    `json:"amount"`
	Consignee       string          `json:"consignee"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	OrderTime       time.Time       `json:"orderTime"`
	CheckoutTime    *time.Time      `json:"checkoutTime,omitempty"`
	DeliveryTime    *time.Time      `json:"deliveryTime,omitempty"`
	CancelTime      *time.Time      `json:"cancelTime,omitempty"`
	CancelReason    string          `json:"cancelReason,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	Lines           []LineView      `json:"orderDetailList,omitempty"`
	DishSummary     string          `json:"orderDishes,omitempty"`
}

type LineView struct {
	ID         int64        `json:"id"`
	DishID     *int64       `json:"dishId,omitempty"`
	SetmealID  *int64       `json:"setmealId,omitempty"`
	DishFlavor string       `json:"dishFlavor,omitempty"`
	Name       string       `json:"name"`
	Image      string       `json:"image"`
	UnitPrice  kernel.Money `json:"amount"`
	Quantity   int          `json:"number"`
}

// Page is one page of a paged listing.
type Page[T any] struct {
	Total   int64 `json:"total"`
	Records []T   `json:"records"`
}

// Paging is a validated 1-based page request.
type Paging struct {
	page     int
	pageSize int
}

// NewPaging falls back to the first page and DefaultPageSize for zero values.
func NewPaging(page, pageSize int) (Paging, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		return Paging{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return Paging{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, MaxPageSize)
	}
	return Paging{page: page, pageSize: pageSize}, nil
}

func (p Paging) Limit() int  { return p.pageSize }
func (p Paging) Offset() int { return (p.page - 1) * p.pageSize }

// DishSummary renders lines as "name*quantity;" pairs.
func DishSummary(lines []LineView) string {
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%s*%d;", l.Name, l.Quantity)
	}
	return b.String()
}

const orderColumns = `
	id, number, customer_id, status, pay_status, amount,
	consignee, phone, address, order_time,
	checkout_time, delivery_time, cancel_time, cancel_reason, rejection_reason`

type orderRow struct {
	ID              int64
	Number          string
	CustomerID      int64
	Status          int
	PayStatus       int
	Amount          decimal.Decimal
	Consignee       string
	Phone           string
	Address         string
	OrderTime       time.Time
	CheckoutTime    *time.Time
	DeliveryTime    *time.Time
	CancelTime      *time.Time
	CancelReason    string
	RejectionReason string
}

func (r orderRow) view() (OrderView, error) {
	amount, err := kernel.NewMoney(r.Amount)
	if err != nil {
		return OrderView{}, err
	}
	return OrderView{
		ID:              r.ID,
		Number:          r.Number,
		CustomerID:      r.CustomerID,
		Status:          order.Status(r.Status),
		PayStatus:       order.PayStatus(r.PayStatus),
		Amount:          amount,
		Consignee:       r.Consignee,
		Phone:           r.Phone,
		Address:         r.Address,
		OrderTime:       r.OrderTime,
		CheckoutTime:    r.CheckoutTime,
		DeliveryTime:    r.DeliveryTime,
		CancelTime:      r.CancelTime,
		CancelReason:    r.CancelReason,
		RejectionReason: r.RejectionReason,
	}, nil
}

type lineRow struct {
	ID         int64
	OrderID    int64
	DishID     *int64
	SetmealID  *int64
	DishFlavor string
	Name       string
	Image      string
	UnitPrice  decimal.Decimal
	Quantity   int
}

func (r lineRow) view() (LineView, error) {
	price, err := kernel.NewMoney(r.UnitPrice)
	if err != nil {
		return LineView{}, err
	}
	return LineView{
		ID:         r.ID,
		DishID:     r.DishID,
		SetmealID:  r.SetmealID,
		DishFlavor: r.DishFlavor,
		Name:       r.Name,
		Image:      r.Image,
		UnitPrice:  price,
		Quantity:   r.Quantity,
	}, nil
}
