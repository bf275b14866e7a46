package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// runTransition loads the order in its own unit of work, lets build derive a
// patch from the stored row, and applies the patch as a conditional update.
//
// When the update matches no row another transition got there first. The order
// is read again: if it already sits in the patch's target status the call is a
// no-op, otherwise it fails with errs.ErrInvalidOrderStatus.
func runTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID int64,
	build func(*order.Order) (order.Patch, error),
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	current, err := repo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	patch, err := build(current)
	if err != nil {
		return err
	}

	applied, err := repo.Apply(ctx, patch)
	if err != nil {
		return err
	}
	if !applied {
		if err = resolveLostRace(ctx, repo, patch); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func resolveLostRace(ctx context.Context, repo ports.OrderRepository, patch order.Patch) error {
	latest, err := repo.Get(ctx, patch.OrderID())
	if err != nil {
		return err
	}
	if latest.Status() == patch.Status() {
		return nil
	}
	return errs.NewInvalidOrderStatusError(patch.Operation(), latest.Status().String())
}
