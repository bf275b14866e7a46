package order

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Line is one priced item of an order. Name, image and unit price are the
// values at submission time and never follow later catalog changes.
type Line struct {
	id        int64
	orderID   int64
	product   kernel.ProductRef
	name      string
	image     string
	unitPrice kernel.Money
	quantity  int
}

func NewLine(product kernel.ProductRef, name, image string, unitPrice kernel.Money, quantity int) (Line, error) {
	if err := product.Validate(); err != nil {
		return Line{}, err
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return Line{
		product:   product,
		name:      name,
		image:     image,
		unitPrice: unitPrice,
		quantity:  quantity,
	}, nil
}

// RestoreLine rebuilds a persisted line.
func RestoreLine(
	id, orderID int64,
	product kernel.ProductRef,
	name, image string,
	unitPrice kernel.Money,
	quantity int,
) (Line, error) {
	line, err := NewLine(product, name, image, unitPrice, quantity)
	if err != nil {
		return Line{}, err
	}
	line.id = id
	line.orderID = orderID
	return line, nil
}

func (l Line) ID() int64                  { return l.id }
func (l Line) OrderID() int64             { return l.orderID }
func (l Line) Product() kernel.ProductRef { return l.product }
func (l Line) Name() string               { return l.name }
func (l Line) Image() string              { return l.image }
func (l Line) UnitPrice() kernel.Money    { return l.unitPrice }
func (l Line) Quantity() int              { return l.quantity }

func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}
