package queries

import (
	"context"
	"time"

	"pedidos/internal/core/application/auth"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves actor-visible orders with their items from
// the database.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query := NewGetOrdersQuery(actor)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders visible\n", len(orders))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time, newest
// first, and each order carries its items.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	actor := query.Actor()
	switch actor.Role {
	case auth.RoleAdmin:
		// no filter
	case auth.RoleCustomer:
		// scoped to the actor's own orders below
	default:
		// couriers and anything else see nothing here
		return orders, nil
	}

	sql := `
		SELECT
			id,
			customer_id,
			status,
			shipping_address,
			total_amount_cents,
			created_at,
			updated_at
		FROM orders
	`
	args := make([]any, 0, 1)
	if !actor.CanViewAllOrders() {
		sql += ` WHERE customer_id = ?`
		args = append(args, actor.ID.Bytes())
	}
	sql += ` ORDER BY created_at DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id, customerID   uuid.UUID
			status           int
			address          string
			totalCents       int64
			created, updated time.Time
		)
		if err = rows.Scan(&id, &customerID, &status, &address, &totalCents, &created, &updated); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		total, moneyErr := kernel.NewMoney(totalCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		index[id] = len(orders)
		orders = append(orders, GetOrdersQueryResponse{
			ID:              orderID,
			CustomerID:      custID,
			Status:          order.Status(status).String(),
			ShippingAddress: address,
			TotalAmount:     total,
			CreatedAt:       created,
			UpdatedAt:       updated,
			Items:           make([]GetOrdersQueryItemResponse, 0),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for id := range index {
		orderIDs = append(orderIDs, id)
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			quantity,
			price_at_purchase_cents
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			id, orderID, productID uuid.UUID
			quantity               int
			priceCents             int64
		)
		if err = itemRows.Scan(&id, &orderID, &productID, &quantity, &priceCents); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, moneyErr := kernel.NewMoney(priceCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, GetOrdersQueryItemResponse{
			ID:              itemID,
			ProductID:       prodID,
			Quantity:        quantity,
			PriceAtPurchase: price,
		})
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
