package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	Number          string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID      int64           `gorm:"not null;index"`
	Status          int             `gorm:"type:smallint;not null;index:idx_orders_status_order_time,priority:1"`
	PayStatus       int             `gorm:"type:smallint;not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Consignee       string          `gorm:"type:varchar(32)"`
	Phone           string          `gorm:"type:varchar(11);index"`
	Address         string          `gorm:"type:varchar(255)"`
	OrderTime       time.Time       `gorm:"not null;index:idx_orders_status_order_time,priority:2"`
	CheckoutTime    *time.Time
	DeliveryTime    *time.Time
	CancelTime      *time.Time
	CancelReason    string         `gorm:"type:varchar(255)"`
	RejectionReason string         `gorm:"type:varchar(255)"`
	Lines           []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderLineDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	OrderID    int64           `gorm:"not null;index"`
	DishID     *int64          `gorm:"index"`
	SetmealID  *int64          `gorm:"index"`
	DishFlavor string          `gorm:"type:varchar(50)"`
	Name       string          `gorm:"type:varchar(32);not null"`
	Image      string          `gorm:"type:varchar(255)"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity   int             `gorm:"not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain maps the order row only; lines are written by AddLines.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID(),
		Number:          o.Number(),
		CustomerID:      o.CustomerID(),
		Status:          int(o.Status()),
		PayStatus:       int(o.PayStatus()),
		Amount:          o.Amount().Decimal(),
		Consignee:       o.Address().Consignee(),
		Phone:           o.Address().Phone(),
		Address:         o.Address().Text(),
		OrderTime:       o.OrderTime(),
		CheckoutTime:    o.CheckoutTime(),
		DeliveryTime:    o.DeliveryTime(),
		CancelTime:      o.CancelTime(),
		CancelReason:    o.CancelReason(),
		RejectionReason: o.RejectionReason(),
	}
}

func linesFromDomain(orderID int64, lines []order.Line) []OrderLineDTO {
	dtos := make([]OrderLineDTO, 0, len(lines))
	for _, l := range lines {
		dtos = append(dtos, OrderLineDTO{
			OrderID:    orderID,
			DishID:     l.Product().DishID(),
			SetmealID:  l.Product().SetmealID(),
			DishFlavor: l.Product().Flavor(),
			Name:       l.Name(),
			Image:      l.Image(),
			UnitPrice:  l.UnitPrice().Decimal(),
			Quantity:   l.Quantity(),
		})
	}
	return dtos
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	address, err := order.NewDeliveryAddress(dto.Consignee, dto.Phone, dto.Address)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(order.State{
		ID:              dto.ID,
		Number:          dto.Number,
		CustomerID:      dto.CustomerID,
		Status:          order.Status(dto.Status),
		PayStatus:       order.PayStatus(dto.PayStatus),
		Amount:          amount,
		Address:         address,
		Lines:           lines,
		OrderTime:       dto.OrderTime,
		CheckoutTime:    dto.CheckoutTime,
		DeliveryTime:    dto.DeliveryTime,
		CancelTime:      dto.CancelTime,
		CancelReason:    dto.CancelReason,
		RejectionReason: dto.RejectionReason,
	})
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	product, err := kernel.RestoreProductRef(dto.DishID, dto.SetmealID, dto.DishFlavor)
	if err != nil {
		return order.Line{}, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}
	return order.RestoreLine(dto.ID, dto.OrderID, product, dto.Name, dto.Image, price, dto.Quantity)
}

// patchColumns lists the columns a patch changes, keyed by column name.
func patchColumns(p order.Patch) map[string]any {
	columns := map[string]any{"status": int(p.Status())}
	if v, ok := p.PayStatus(); ok {
		columns["pay_status"] = int(v)
	}
	if v, ok := p.CheckoutTime(); ok {
		columns["checkout_time"] = v
	}
	if v, ok := p.DeliveryTime(); ok {
		columns["delivery_time"] = v
	}
	if v, ok := p.CancelTime(); ok {
		columns["cancel_time"] = v
	}
	if v, ok := p.CancelReason(); ok {
		columns["cancel_reason"] = v
	}
	if v, ok := p.RejectionReason(); ok {
		columns["rejection_reason"] = v
	}
	return columns
}

func statusValues(statuses []order.Status) []int {
	values := make([]int, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, int(s))
	}
	return values
}
