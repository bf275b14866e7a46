package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemindOrderCommandHandler_Handle_ShouldNotifyStaff(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemindOrderCommand(testCustomerID, 10)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	_, factory := newOrderUoW(repo)
	notifier := new(MockNotifier)

	repo.On("Get", ctx, int64(10)).Return(restoredOrder(10, order.ToBeConfirmed, order.Paid), nil).Once()
	notifier.On("Notify", ctx, notification.NewReminderEvent(10, "1700000000000")).Once()

	handler := commands.NewRemindOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestRemindOrderCommandHandler_Handle_ForeignOrder_ShouldBeNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRemindOrderCommand(testCustomerID+1, 10)

	repo := new(MockOrderRepository)
	_, factory := newOrderUoW(repo)
	notifier := new(MockNotifier)

	repo.On("Get", ctx, int64(10)).Return(restoredOrder(10, order.ToBeConfirmed, order.Paid), nil).Once()

	handler := commands.NewRemindOrderCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}
