package order_test

import (
	"fmt"
	"testing"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.PendingPayment,
	order.ToBeConfirmed,
	order.Confirmed,
	order.DeliveryInProgress,
	order.Completed,
	order.Cancelled,
}

func TestStatus_Encoding(t *testing.T) {
	assert.Equal(t, 1, int(order.PendingPayment))
	assert.Equal(t, 2, int(order.ToBeConfirmed))
	assert.Equal(t, 3, int(order.Confirmed))
	assert.Equal(t, 4, int(order.DeliveryInProgress))
	assert.Equal(t, 5, int(order.Completed))
	assert.Equal(t, 6, int(order.Cancelled))

	assert.Equal(t, 0, int(order.Unpaid))
	assert.Equal(t, 1, int(order.Paid))
	assert.Equal(t, 2, int(order.Refunded))
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses {
		require.NoError(t, s.Validate(), s.String())
	}

	for _, s := range []order.Status{order.Unknown, order.Status(7), order.Status(-1)} {
		err := s.Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestStatus_Transitions(t *testing.T) {
	testCases := []struct {
		name    string
		apply   func(order.Status) (order.Status, error)
		allowed []order.Status
		target  order.Status
	}{
		{"pay", order.Status.Pay, []order.Status{order.PendingPayment}, order.ToBeConfirmed},
		{"confirm", order.Status.Confirm, []order.Status{order.ToBeConfirmed}, order.Confirmed},
		{"reject", order.Status.Reject, []order.Status{order.ToBeConfirmed}, order.Cancelled},
		{"customer cancel", order.Status.CancelByCustomer, []order.Status{order.PendingPayment, order.ToBeConfirmed}, order.Cancelled},
		{"staff cancel", order.Status.CancelByStaff, []order.Status{
			order.PendingPayment, order.ToBeConfirmed, order.Confirmed, order.DeliveryInProgress,
		}, order.Cancelled},
		{"cancel unpaid", order.Status.CancelUnpaid, []order.Status{order.PendingPayment}, order.Cancelled},
		{"deliver", order.Status.Deliver, []order.Status{order.Confirmed}, order.DeliveryInProgress},
		{"complete", order.Status.Complete, []order.Status{order.DeliveryInProgress}, order.Completed},
	}

	for _, tc := range testCases {
		for _, from := range allStatuses {
			t.Run(fmt.Sprintf("%s from %s", tc.name, from), func(t *testing.T) {
				next, err := tc.apply(from)

				if contains(tc.allowed, from) {
					require.NoError(t, err)
					assert.Equal(t, tc.target, next)
					return
				}
				require.ErrorIs(t, err, errs.ErrInvalidOrderStatus)
			})
		}
	}
}

func TestStatus_CancelByCustomer_AfterAcceptance(t *testing.T) {
	for _, s := range []order.Status{order.Confirmed, order.DeliveryInProgress} {
		_, err := s.CancelByCustomer()

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		require.ErrorIs(t, err, errs.ErrInvalidOrderStatus)
	}

	for _, s := range []order.Status{order.Completed, order.Cancelled} {
		_, err := s.CancelByCustomer()

		require.ErrorIs(t, err, errs.ErrInvalidOrderStatus)
		require.NotErrorIs(t, err, errs.ErrBusinessRuleViolation)
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.DeliveryInProgress.IsTerminal())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func contains(list []order.Status, s order.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
