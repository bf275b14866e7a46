package commands_test

import (
	"context"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) AddLines(ctx context.Context, orderID int64, lines []order.Line) error {
	args := m.Called(ctx, orderID, lines)
	return args.Error(0)
}

func (m *MockOrderRepository) Apply(ctx context.Context, patch order.Patch) (bool, error) {
	args := m.Called(ctx, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatusOlderThan(
	ctx context.Context,
	status order.Status,
	deadline time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, item *cart.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) AddBatch(ctx context.Context, items []*cart.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, item *cart.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteByCustomer(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteByIDs(ctx context.Context, customerID int64, ids []int64) error {
	args := m.Called(ctx, customerID, ids)
	return args.Error(0)
}

func (m *MockCartRepository) FindMatching(
	ctx context.Context,
	customerID int64,
	product kernel.ProductRef,
) (*cart.Item, error) {
	args := m.Called(ctx, customerID, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Item), args.Error(1)
}

func (m *MockCartRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*cart.Item, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Item), args.Error(1)
}

func (m *MockCartRepository) LockByCustomer(ctx context.Context, customerID int64) ([]*cart.Item, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Item), args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, event notification.Event) {
	m.Called(ctx, event)
}

type MockAddressReader struct{ mock.Mock }

func (m *MockAddressReader) Get(ctx context.Context, id int64) (ports.Address, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Address), args.Error(1)
}

type MockShopStatusRepository struct{ mock.Mock }

func (m *MockShopStatusRepository) IsOpen(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockShopStatusRepository) SetOpen(ctx context.Context, open bool) error {
	args := m.Called(ctx, open)
	return args.Error(0)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) Dish(ctx context.Context, id int64) (cart.ProductSnapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(cart.ProductSnapshot), args.Error(1)
}

func (m *MockCatalogReader) Setmeal(ctx context.Context, id int64) (cart.ProductSnapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(cart.ProductSnapshot), args.Error(1)
}

type MockStaffCancelHandler struct{ mock.Mock }

func (m *MockStaffCancelHandler) Handle(ctx context.Context, cmd commands.StaffCancelOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

const testCustomerID int64 = 7

func testLine(dishID int64, price string, quantity int) order.Line {
	ref, err := kernel.NewDishRef(dishID, "")
	if err != nil {
		panic(err)
	}
	line, err := order.NewLine(ref, "dish", "dish.png", kernel.MustMoney(price), quantity)
	if err != nil {
		panic(err)
	}
	return line
}

// restoredOrder builds a stored order of testCustomerID in the given state.
func restoredOrder(id int64, status order.Status, payStatus order.PayStatus) *order.Order {
	address, err := order.NewDeliveryAddress("Alice", "13800000000", "Main street 1")
	if err != nil {
		panic(err)
	}
	o, err := order.RestoreOrder(order.State{
		ID:         id,
		Number:     "1700000000000",
		CustomerID: testCustomerID,
		Status:     status,
		PayStatus:  payStatus,
		Amount:     kernel.MustMoney("30.00"),
		Address:    address,
		Lines:      []order.Line{testLine(1, "10.00", 3)},
		OrderTime:  testNow.Add(-time.Hour),
	})
	if err != nil {
		panic(err)
	}
	return o
}

func patchTo(status order.Status) any {
	return mock.MatchedBy(func(p order.Patch) bool { return p.Status() == status })
}
