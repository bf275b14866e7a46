package commands_test

import (
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartUoW(repo *MockCartRepository) (*MockUoW, *MockCartUoWFactory) {
	uow := new(MockUoW)
	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow)
	uow.On("CartRepository").Return(repo)
	return uow, factory
}

func storedCartItem(t *testing.T, quantity int) *cart.Item {
	ref, err := kernel.NewDishRef(1, "hot")
	require.NoError(t, err)
	item, err := cart.RestoreItem(200, testCustomerID, ref,
		cart.ProductSnapshot{Name: "Noodles", Image: "noodles.png", Price: kernel.MustMoney("12.50")},
		quantity, testNow.Add(-time.Hour))
	require.NoError(t, err)
	return item
}

func TestAddCartItemCommandHandler_Handle_NewProduct_ShouldSnapshotCatalog(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCartItemCommand(testCustomerID, 0, 2, "")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow, factory := newCartUoW(repo)
	catalog := new(MockCatalogReader)

	var added *cart.Item
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("FindMatching", ctx, testCustomerID, cmd.Product()).
			Return(nil, errs.NewObjectNotFoundError("product", 2)).Once(),
		catalog.On("Setmeal", ctx, int64(2)).
			Return(cart.ProductSnapshot{Name: "Lunch box", Image: "box.png", Price: kernel.MustMoney("30.00")}, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*cart.Item")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*cart.Item) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAddCartItemCommandHandler(factory, catalog, kernel.NewFixedClock(testNow))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, 1, added.Quantity())
	assert.Equal(t, "Lunch box", added.Snapshot().Name)
	assert.Equal(t, testNow, added.CreatedAt())
	catalog.AssertNotCalled(t, "Dish", mock.Anything, mock.Anything)
}

func TestAddCartItemCommandHandler_Handle_ExistingProduct_ShouldIncrement(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCartItemCommand(testCustomerID, 1, 0, "hot")

	item := storedCartItem(t, 2)
	repo := new(MockCartRepository)
	uow, factory := newCartUoW(repo)
	catalog := new(MockCatalogReader)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("FindMatching", ctx, testCustomerID, cmd.Product()).Return(item, nil).Once(),
		repo.On("UpdateQuantity", ctx, item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAddCartItemCommandHandler(factory, catalog, kernel.NewFixedClock(testNow))
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity())
	catalog.AssertNotCalled(t, "Dish", mock.Anything, mock.Anything)
}

func TestSubCartItemCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		quantity   int
		wantDelete bool
	}{
		{name: "last unit deletes the item", quantity: 1, wantDelete: true},
		{name: "more units decrement", quantity: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewCartItemCommand(testCustomerID, 1, 0, "hot")

			item := storedCartItem(t, tt.quantity)
			repo := new(MockCartRepository)
			uow, factory := newCartUoW(repo)

			uow.On("Begin", ctx).Return(nil).Once()
			repo.On("FindMatching", ctx, testCustomerID, cmd.Product()).Return(item, nil).Once()
			if tt.wantDelete {
				repo.On("Delete", ctx, int64(200)).Return(nil).Once()
			} else {
				repo.On("UpdateQuantity", ctx, item).Return(nil).Once()
			}
			uow.On("Commit", ctx).Return(nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			handler := commands.NewSubCartItemCommandHandler(factory)
			err := handler.Handle(ctx, cmd)

			require.NoError(t, err)
			repo.AssertExpectations(t)
			if !tt.wantDelete {
				assert.Equal(t, tt.quantity-1, item.Quantity())
			}
		})
	}
}

func TestSubCartItemCommandHandler_Handle_MissingItem(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCartItemCommand(testCustomerID, 1, 0, "hot")

	repo := new(MockCartRepository)
	uow, factory := newCartUoW(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("FindMatching", ctx, testCustomerID, cmd.Product()).
			Return(nil, errs.NewObjectNotFoundError("product", 1)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubCartItemCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCleanCartCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCleanCartCommand(testCustomerID)
	require.NoError(t, err)

	repo := new(MockCartRepository)
	_, factory := newCartUoW(repo)
	repo.On("DeleteByCustomer", ctx, testCustomerID).Return(nil).Once()

	handler := commands.NewCleanCartCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestNewCartItemCommand_ProductSelection(t *testing.T) {
	tests := []struct {
		name      string
		dishID    int64
		setmealID int64
		wantErr   error
	}{
		{name: "both set", dishID: 1, setmealID: 2, wantErr: errs.ErrValueIsInvalid},
		{name: "none set", wantErr: errs.ErrValueIsRequired},
		{name: "dish", dishID: 1},
		{name: "setmeal", setmealID: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCartItemCommand(testCustomerID, tt.dishID, tt.setmealID, "")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dishID > 0, cmd.Product().IsDish())
		})
	}
}

func TestSetShopStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	shop := new(MockShopStatusRepository)
	shop.On("SetOpen", ctx, false).Return(nil).Once()

	handler := commands.NewSetShopStatusCommandHandler(shop)
	err := handler.Handle(ctx, commands.NewSetShopStatusCommand(false))

	require.NoError(t, err)
	shop.AssertExpectations(t)
}
