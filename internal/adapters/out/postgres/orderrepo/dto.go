// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are owned exclusively: the foreign key cascades deletes so item rows
// never outlive their order.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Status           int       `gorm:"index;not null"`
	ShippingAddress  string    `gorm:"not null"`
	TotalAmountCents int64     `gorm:"not null"`
	CreatedAt        time.Time `gorm:"index;not null"`
	UpdatedAt        time.Time `gorm:"not null"`

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted line item. The price snapshot is stored in
// integer cents and never updated after insert.
type ItemDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID            uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity             int       `gorm:"not null"`
	PriceAtPurchaseCents int64     `gorm:"not null"`
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation,
// items included.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, itemFromDomain(item))
	}

	return OrderDTO{
		ID:               o.ID().Bytes(),
		CustomerID:       o.CustomerID().Bytes(),
		Status:           int(o.Status()),
		ShippingAddress:  o.ShippingAddress(),
		TotalAmountCents: o.TotalAmount().Cents(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		Items:            items,
	}
}

func itemFromDomain(item *order.Item) ItemDTO {
	return ItemDTO{
		ID:                   item.ID().Bytes(),
		OrderID:              item.OrderID().Bytes(),
		ProductID:            item.ProductID().Bytes(),
		Quantity:             item.Quantity(),
		PriceAtPurchaseCents: item.PriceAtPurchase().Cents(),
	}
}

// toDomain converts a database DTO to an order domain aggregate, rebuilding
// the item entities first so RestoreOrder can verify ownership.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmountCents)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		order.Status(dto.Status),
		dto.ShippingAddress,
		total,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceAtPurchaseCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, productID, dto.Quantity, price)
}
