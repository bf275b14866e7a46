package cartrepo

import (
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItemDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID int64           `gorm:"not null;index"`
	DishID     *int64          `gorm:"index"`
	SetmealID  *int64          `gorm:"index"`
	DishFlavor string          `gorm:"type:varchar(50);not null"`
	Name       string          `gorm:"type:varchar(32);not null"`
	Image      string          `gorm:"type:varchar(255)"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity   int             `gorm:"not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(item *cart.Item) CartItemDTO {
	snap := item.Snapshot()
	return CartItemDTO{
		ID:         item.ID(),
		CustomerID: item.CustomerID(),
		DishID:     item.Product().DishID(),
		SetmealID:  item.Product().SetmealID(),
		DishFlavor: item.Product().Flavor(),
		Name:       snap.Name,
		Image:      snap.Image,
		UnitPrice:  snap.Price.Decimal(),
		Quantity:   item.Quantity(),
		CreatedAt:  item.CreatedAt(),
	}
}

func toDomain(dto CartItemDTO) (*cart.Item, error) {
	product, err := kernel.RestoreProductRef(dto.DishID, dto.SetmealID, dto.DishFlavor)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return cart.RestoreItem(
		dto.ID,
		dto.CustomerID,
		product,
		cart.ProductSnapshot{Name: dto.Name, Image: dto.Image, Price: price},
		dto.Quantity,
		dto.CreatedAt,
	)
}

func toDomainList(dtos []CartItemDTO) ([]*cart.Item, error) {
	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ProductIdentityIndex keeps one cart row per customer and product. NULLS NOT
// DISTINCT lets rows that differ only in the unused product column collide.
const ProductIdentityIndex = `CREATE UNIQUE INDEX IF NOT EXISTS uq_cart_items_product
	ON cart_items (customer_id, dish_id, setmeal_id, dish_flavor) NULLS NOT DISTINCT`

// AutoMigrate creates the cart table together with ProductIdentityIndex, which
// gorm tags cannot express.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&CartItemDTO{}); err != nil {
		return err
	}
	return db.Exec(ProductIdentityIndex).Error
}
