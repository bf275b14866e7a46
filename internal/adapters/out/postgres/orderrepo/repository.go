package orderrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

func (r *GormOrderRepository) AddLines(ctx context.Context, orderID int64, lines []order.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	dtos := linesFromDomain(orderID, lines)
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Apply issues a single UPDATE guarded by the expected statuses. Zero
// affected rows means the stored status no longer allows the transition.
func (r *GormOrderRepository) Apply(ctx context.Context, patch order.Patch) (bool, error) {
	if patch.OrderID() <= 0 || len(patch.ExpectedStatuses()) == 0 {
		return false, errs.NewValueIsInvalidError("patch")
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status IN ?", patch.OrderID(), statusValues(patch.ExpectedStatuses())).
		Updates(patchColumns(patch))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.first(ctx, "id", id)
}

func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	return r.first(ctx, "number", number)
}

func (r *GormOrderRepository) first(ctx context.Context, column string, value any) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, column+" = ?", value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(column, value)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) FindByStatusOlderThan(
	ctx context.Context,
	status order.Status,
	deadline time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND order_time < ?", int(status), deadline).
		Order("order_time, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("status = ?", int(status)).Count(&n).Error
	return n, err
}

func (r *GormOrderRepository) SumAmount(ctx context.Context, filter ports.OrderRangeFilter) (kernel.Money, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Scopes(inRange(filter)).
		Select("COALESCE(SUM(amount), 0)").
		Row().
		Scan(&sum)
	if err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoney(sum)
}

func (r *GormOrderRepository) CountOrders(ctx context.Context, filter ports.OrderRangeFilter) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Scopes(inRange(filter)).Count(&n).Error
	return n, err
}

// inRange restricts to order_time in [Begin, End); zero bounds and a zero status are ignored.
func inRange(filter ports.OrderRangeFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !filter.Begin.IsZero() {
			db = db.Where("order_time >= ?", filter.Begin)
		}
		if !filter.End.IsZero() {
			db = db.Where("order_time < ?", filter.End)
		}
		if filter.Status != order.Unknown {
			db = db.Where("status = ?", int(filter.Status))
		}
		return db
	}
}
