package cartrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mergeQuantity turns an insert that collides on uq_cart_items_product into an
// increment of the stored item.
var mergeQuantity = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "customer_id"},
		{Name: "dish_id"},
		{Name: "setmeal_id"},
		{Name: "dish_flavor"},
	},
	DoUpdates: clause.Set{{
		Column: clause.Column{Name: "quantity"},
		Value:  gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
	}},
}

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Add(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Clauses(mergeQuantity).Create(&dto).Error
}

func (r *GormCartRepository) AddBatch(ctx context.Context, items []*cart.Item) error {
	if len(items) == 0 {
		return nil
	}

	dtos := make([]CartItemDTO, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(item))
	}
	return r.db.WithContext(ctx).Clauses(mergeQuantity).Create(&dtos).Error
}

func (r *GormCartRepository) UpdateQuantity(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CartItemDTO{}).
		Where("id = ?", item.ID()).
		Update("quantity", item.Quantity())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartItem", item.ID())
	}
	return nil
}

func (r *GormCartRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&CartItemDTO{}, id).Error
}

func (r *GormCartRepository) DeleteByCustomer(ctx context.Context, customerID int64) error {
	return r.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&CartItemDTO{}).Error
}

func (r *GormCartRepository) DeleteByIDs(ctx context.Context, customerID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("customer_id = ? AND id IN ?", customerID, ids).
		Delete(&CartItemDTO{}).Error
}

func (r *GormCartRepository) FindMatching(
	ctx context.Context,
	customerID int64,
	product kernel.ProductRef,
) (*cart.Item, error) {
	query := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ?", customerID)
	if product.IsDish() {
		query = query.Where("dish_id = ? AND dish_flavor = ?", *product.DishID(), product.Flavor())
	} else {
		query = query.Where("setmeal_id = ?", *product.SetmealID())
	}

	var dto CartItemDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", product)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormCartRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*cart.Item, error) {
	return r.list(r.db.WithContext(ctx), customerID)
}

func (r *GormCartRepository) LockByCustomer(ctx context.Context, customerID int64) ([]*cart.Item, error) {
	return r.list(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), customerID)
}

func (r *GormCartRepository) list(db *gorm.DB, customerID int64) ([]*cart.Item, error) {
	var dtos []CartItemDTO
	if err := db.Where("customer_id = ?", customerID).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}
