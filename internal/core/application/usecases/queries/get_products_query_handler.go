package queries

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler lists catalog products from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query. Products are sorted by name for stable output.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price_cents,
			stock
		FROM products
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                uuid.UUID
			name, description string
			priceCents        int64
			stock             int
		)
		if err = rows.Scan(&id, &name, &description, &priceCents, &stock); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		price, moneyErr := kernel.NewMoney(priceCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		products = append(products, GetProductsQueryResponse{
			ID:          productID,
			Name:        name,
			Description: description,
			Price:       price,
			Stock:       stock,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
