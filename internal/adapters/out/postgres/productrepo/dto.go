// Package productrepo provides data transfer objects and mapping functions
// for product persistence. Implements the repository pattern for the product
// aggregate, converting between domain entities and database rows.
package productrepo

import (
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Prices are stored as integer cents.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
	PriceCents  int64 `gorm:"not null"`
	Stock       int   `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		PriceCents:  p.Price().Cents(),
		Stock:       p.Stock(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Description, price, dto.Stock)
}
