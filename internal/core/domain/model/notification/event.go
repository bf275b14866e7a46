// Package notification describes the real-time alerts pushed to staff sessions.
package notification

import "fmt"

// Kind values are part of the staff client protocol.
type Kind int

const (
	NewOrder         Kind = 1
	CustomerReminder Kind = 2
)

// Event is handed to the dispatcher after the underlying state change is committed.
type Event struct {
	kind    Kind
	orderID int64
	content string
}

func NewOrderPaidEvent(orderID int64, orderNumber string) Event {
	return Event{kind: NewOrder, orderID: orderID, content: "Order number: " + orderNumber}
}

func NewReminderEvent(orderID int64, orderNumber string) Event {
	return Event{kind: CustomerReminder, orderID: orderID, content: "Order number: " + orderNumber}
}

func (e Event) Kind() Kind      { return e.kind }
func (e Event) OrderID() int64  { return e.orderID }
func (e Event) Content() string { return e.content }

func (e Event) String() string {
	return fmt.Sprintf("notification(type=%d, order=%d)", e.kind, e.orderID)
}

// Message is the payload broadcast to staff clients.
type Message struct {
	Type    int    `json:"type"`
	OrderID int64  `json:"orderId"`
	Content string `json:"content"`
}

func (e Event) Message() Message {
	return Message{Type: int(e.kind), OrderID: e.orderID, Content: e.content}
}
