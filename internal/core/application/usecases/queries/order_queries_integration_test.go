package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/cartrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orders    *orderrepo.GormOrderRepository
	carts     *cartrepo.GormCartRepository
	seq       int
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{})
	suite.Require().NoError(err)
	suite.Require().NoError(cartrepo.AutoMigrate(db))

	suite.orders = orderrepo.NewGormOrderRepository(db)
	suite.carts = cartrepo.NewGormCartRepository(db)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_lines, orders, cart_items RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) TestOrderDetails_ReturnsLinesAndSummary() {
	orderTime := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
	id := suite.seedOrder(7, "13800000000", orderTime)
	handler := queries.NewGetOrderDetailsQueryHandler(suite.db)

	query, err := queries.NewGetOrderDetailsQuery(id)
	suite.Require().NoError(err)
	view, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(id, view.ID)
	suite.Equal(order.PendingPayment, view.Status)
	suite.Equal(order.Unpaid, view.PayStatus)
	suite.Equal("42.50", view.Amount.String())
	suite.True(orderTime.Equal(view.OrderTime))
	suite.Nil(view.CheckoutTime)
	suite.Require().Len(view.Lines, 2)
	suite.Equal("Noodles", view.Lines[0].Name)
	suite.Equal("less spicy", view.Lines[0].DishFlavor)
	suite.NotNil(view.Lines[0].DishID)
	suite.NotNil(view.Lines[1].SetmealID)
	suite.Equal("Noodles*2;Lunch box*1;", view.DishSummary)
}

func (suite *OrderQueriesTestSuite) TestOrderDetails_OtherCustomer_ReturnsNotFound() {
	id := suite.seedOrder(7, "13800000000", time.Now().UTC())
	handler := queries.NewGetOrderDetailsQueryHandler(suite.db)

	query, err := queries.NewCustomerOrderDetailsQuery(8, id)
	suite.Require().NoError(err)
	view, err := handler.Handle(context.Background(), query)

	suite.Nil(view)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestOrderDetails_Missing_ReturnsNotFound() {
	handler := queries.NewGetOrderDetailsQueryHandler(suite.db)

	query, err := queries.NewGetOrderDetailsQuery(404)
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), query)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestListCustomerOrders_PagesNewestFirst() {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	var ids []int64
	for i := range 3 {
		ids = append(ids, suite.seedOrder(7, "13800000000", base.Add(time.Duration(i)*time.Hour)))
	}
	suite.seedOrder(8, "13900000000", base)
	suite.pay(ids[2])

	handler := queries.NewListCustomerOrdersQueryHandler(suite.db)

	query, err := queries.NewListCustomerOrdersQuery(7, order.Unknown, 1, 2)
	suite.Require().NoError(err)
	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(3), page.Total)
	suite.Require().Len(page.Records, 2)
	suite.Equal(ids[2], page.Records[0].ID)
	suite.Equal(ids[1], page.Records[1].ID)
	suite.Len(page.Records[0].Lines, 2)

	query, err = queries.NewListCustomerOrdersQuery(7, order.Unknown, 2, 2)
	suite.Require().NoError(err)
	page, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(page.Records, 1)
	suite.Equal(ids[0], page.Records[0].ID)

	query, err = queries.NewListCustomerOrdersQuery(7, order.ToBeConfirmed, 1, 10)
	suite.Require().NoError(err)
	page, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Equal(ids[2], page.Records[0].ID)
}

func (suite *OrderQueriesTestSuite) TestSearchOrders_Filters() {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	early := suite.seedOrder(7, "13800000000", base)
	late := suite.seedOrder(8, "13912345678", base.Add(3*time.Hour))
	suite.pay(late)

	handler := queries.NewSearchOrdersQueryHandler(suite.db)

	tests := []struct {
		name     string
		criteria queries.SearchCriteria
		want     []int64
	}{
		{"no filter", queries.SearchCriteria{}, []int64{late, early}},
		{"phone substring", queries.SearchCriteria{Phone: "12345"}, []int64{late}},
		{"status", queries.SearchCriteria{Status: order.PendingPayment}, []int64{early}},
		{
			"time window",
			queries.SearchCriteria{Begin: base.Add(time.Hour), End: base.Add(4 * time.Hour)},
			[]int64{late},
		},
		{"number", queries.SearchCriteria{Number: "no-such-number"}, nil},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			query, err := queries.NewSearchOrdersQuery(tt.criteria, 1, 10)
			suite.Require().NoError(err)

			page, err := handler.Handle(context.Background(), query)

			suite.Require().NoError(err)
			suite.Equal(int64(len(tt.want)), page.Total)
			got := make([]int64, 0, len(page.Records))
			for _, r := range page.Records {
				got = append(got, r.ID)
				suite.Equal("Noodles*2;Lunch box*1;", r.DishSummary)
				suite.Empty(r.Lines)
			}
			if len(tt.want) == 0 {
				suite.Empty(got)
				return
			}
			suite.Equal(tt.want, got)
		})
	}
}

func (suite *OrderQueriesTestSuite) TestListCart_InsertionOrder() {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	dish, err := kernel.NewDishRef(3, "hot")
	suite.Require().NoError(err)
	setmeal, err := kernel.NewSetmealRef(4)
	suite.Require().NoError(err)

	first, err := cart.NewItem(7, dish, cart.ProductSnapshot{Name: "Soup", Price: kernel.MustMoney("8.00")}, 2, now)
	suite.Require().NoError(err)
	second, err := cart.NewItem(7, setmeal, cart.ProductSnapshot{Name: "Combo", Price: kernel.MustMoney("20.00")}, 1, now.Add(time.Second))
	suite.Require().NoError(err)
	other, err := cart.NewItem(8, dish, cart.ProductSnapshot{Name: "Soup", Price: kernel.MustMoney("8.00")}, 1, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.carts.AddBatch(ctx, []*cart.Item{first, second, other}))

	query, err := queries.NewListCartQuery(7)
	suite.Require().NoError(err)
	items, err := queries.NewListCartQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Soup", items[0].Name)
	suite.Equal("hot", items[0].DishFlavor)
	suite.Equal(2, items[0].Quantity)
	suite.Equal("8.00", items[0].Price.String())
	suite.Require().NotNil(items[0].DishID)
	suite.Nil(items[0].SetmealID)
	suite.Equal("Combo", items[1].Name)
	suite.Require().NotNil(items[1].SetmealID)
	suite.Equal(int64(4), *items[1].SetmealID)
}

func (suite *OrderQueriesTestSuite) TestListCart_Empty_ReturnsEmptySlice() {
	query, err := queries.NewListCartQuery(7)
	suite.Require().NoError(err)

	items, err := queries.NewListCartQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
}

func (suite *OrderQueriesTestSuite) seedOrder(customerID int64, phone string, orderTime time.Time) int64 {
	ctx := context.Background()
	suite.seq++

	dish, err := kernel.NewDishRef(1, "less spicy")
	suite.Require().NoError(err)
	setmeal, err := kernel.NewSetmealRef(2)
	suite.Require().NoError(err)
	noodles, err := order.NewLine(dish, "Noodles", "noodles.png", kernel.MustMoney("12.50"), 2)
	suite.Require().NoError(err)
	box, err := order.NewLine(setmeal, "Lunch box", "box.png", kernel.MustMoney("17.50"), 1)
	suite.Require().NoError(err)
	address, err := order.NewDeliveryAddress("Alice", phone, "Main street 1")
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		fmt.Sprintf("%d%03d", orderTime.UnixMilli(), suite.seq),
		customerID,
		address,
		[]order.Line{noodles, box},
		orderTime,
	)
	suite.Require().NoError(err)

	id, err := suite.orders.Add(ctx, o)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.AddLines(ctx, id, o.Lines()))
	return id
}

func (suite *OrderQueriesTestSuite) pay(id int64) {
	ctx := context.Background()
	o, err := suite.orders.Get(ctx, id)
	suite.Require().NoError(err)
	patch, err := o.MarkPaid(o.OrderTime().Add(time.Minute))
	suite.Require().NoError(err)
	applied, err := suite.orders.Apply(ctx, patch)
	suite.Require().NoError(err)
	suite.Require().True(applied)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
