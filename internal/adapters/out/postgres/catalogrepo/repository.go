// Package catalogrepo reads current dish and set meal data from the catalog tables.
package catalogrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DishDTO struct {
	ID    int64           `gorm:"primaryKey;autoIncrement"`
	Name  string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	Image string          `gorm:"type:varchar(255)"`
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

type SetmealDTO struct {
	ID    int64           `gorm:"primaryKey;autoIncrement"`
	Name  string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	Image string          `gorm:"type:varchar(255)"`
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (SetmealDTO) TableName() string {
	return "setmeals"
}

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) Dish(ctx context.Context, id int64) (cart.ProductSnapshot, error) {
	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		return cart.ProductSnapshot{}, notFound(err, "dishId", id)
	}
	return snapshot(dto.Name, dto.Image, dto.Price)
}

func (r *GormCatalogRepository) Setmeal(ctx context.Context, id int64) (cart.ProductSnapshot, error) {
	var dto SetmealDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		return cart.ProductSnapshot{}, notFound(err, "setmealId", id)
	}
	return snapshot(dto.Name, dto.Image, dto.Price)
}

func notFound(err error, param string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return err
}

func snapshot(name, image string, price decimal.Decimal) (cart.ProductSnapshot, error) {
	money, err := kernel.NewMoney(price)
	if err != nil {
		return cart.ProductSnapshot{}, err
	}
	return cart.ProductSnapshot{Name: name, Image: image, Price: money}, nil
}
