package order

import "foodorder/internal/pkg/errs"

// DeliveryAddress is copied from the customer's address book at submission so
// later edits to the address book do not change past orders.
type DeliveryAddress struct {
	consignee string
	phone     string
	text      string
}

func NewDeliveryAddress(consignee, phone, text string) (DeliveryAddress, error) {
	if phone == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("phone")
	}
	if text == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("address")
	}
	return DeliveryAddress{consignee: consignee, phone: phone, text: text}, nil
}

func (a DeliveryAddress) Consignee() string { return a.consignee }
func (a DeliveryAddress) Phone() string     { return a.phone }
func (a DeliveryAddress) Text() string      { return a.text }
