package http

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

type SubmitOrderRequest struct {
	AddressBookID int64 `json:"addressBookId" validate:"required,gt=0"`
	// Amount is the total the customer saw; the order is refused when it differs.
	Amount *kernel.Money `json:"amount,omitempty"`
}

type PayOrderRequest struct {
	OrderNumber string `json:"orderNumber" validate:"required,max=50"`
}

type CancelOrderRequest struct {
	CancelReason string `json:"cancelReason" validate:"max=255"`
}

type StaffCancelOrderRequest struct {
	CancelReason string `json:"cancelReason" validate:"required,max=255"`
}

type RejectOrderRequest struct {
	RejectionReason string `json:"rejectionReason" validate:"required,max=255"`
}

type CartItemRequest struct {
	DishID     int64  `json:"dishId" validate:"gte=0"`
	SetmealID  int64  `json:"setmealId" validate:"gte=0"`
	DishFlavor string `json:"dishFlavor" validate:"max=50"`
}

type CustomerOrdersRequest struct {
	Status   int `query:"status" validate:"gte=0,lte=6"`
	Page     int `query:"page" validate:"gte=0"`
	PageSize int `query:"pageSize" validate:"gte=0,lte=100"`
}

type SearchOrdersRequest struct {
	Number    string `query:"number" validate:"max=50"`
	Phone     string `query:"phone" validate:"max=11"`
	Status    int    `query:"status" validate:"gte=0,lte=6"`
	BeginTime string `query:"beginTime"`
	EndTime   string `query:"endTime"`
	Page      int    `query:"page" validate:"gte=0"`
	PageSize  int    `query:"pageSize" validate:"gte=0,lte=100"`
}

type TurnoverReportRequest struct {
	Begin string `query:"begin" validate:"required"`
	End   string `query:"end" validate:"required"`
}

type ShopStatusResponse struct {
	Open bool `json:"open"`
}

type SubmitOrderResponse struct {
	ID        int64        `json:"id"`
	Number    string       `json:"orderNumber"`
	Amount    kernel.Money `json:"orderAmount"`
	OrderTime time.Time    `json:"orderTime"`
}
