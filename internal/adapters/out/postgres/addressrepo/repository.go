// Package addressrepo reads the address book owned by the account service.
// The table is shared; nothing here writes to it.
package addressrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type AddressBookDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64  `gorm:"not null;index"`
	Consignee    string `gorm:"type:varchar(50)"`
	Phone        string `gorm:"type:varchar(11);not null"`
	ProvinceName string `gorm:"type:varchar(32)"`
	CityName     string `gorm:"type:varchar(32)"`
	DistrictName string `gorm:"type:varchar(32)"`
	Detail       string `gorm:"type:varchar(200)"`
}

func (AddressBookDTO) TableName() string {
	return "address_book"
}

type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) Get(ctx context.Context, id int64) (ports.Address, error) {
	var dto AddressBookDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Address{}, errs.NewObjectNotFoundError("addressBookId", id)
		}
		return ports.Address{}, err
	}

	return ports.Address{
		ID:         dto.ID,
		CustomerID: dto.CustomerID,
		Consignee:  dto.Consignee,
		Phone:      dto.Phone,
		Province:   dto.ProvinceName,
		City:       dto.CityName,
		District:   dto.DistrictName,
		Detail:     dto.Detail,
	}, nil
}
