package http

import (
	"time"

	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/order"
)

// OrderDraftRequest carries the order part of a create-with-items request.
// The state field is accepted for wire compatibility but new orders always
// start as "pendiente".
type OrderDraftRequest struct {
	CustomerID      string  `json:"customer_id"`
	State           string  `json:"state,omitempty"`
	ShippingAddress string  `json:"shipping_address"`
	TotalAmount     float64 `json:"total_amount"`
}

// ItemRequest carries one order line of a create-with-items request.
type ItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderWithItemsRequest is the body of POST /api/v1/orders/create-with-items.
type CreateOrderWithItemsRequest struct {
	Order OrderDraftRequest `json:"order"`
	Items []ItemRequest     `json:"items"`
}

// UpdateOrderRequest is the body of PUT/PATCH /api/v1/orders/:id. Empty
// fields are left unchanged; state "cancelado" triggers the cancellation
// path with stock restoration.
type UpdateOrderRequest struct {
	State           string `json:"state,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// ErrorResponse is the single failure shape of the API. Every engine
// failure, whatever its cause, is collapsed into one of these.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ItemResponse is one order line in a response body.
type ItemResponse struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

// OrderResponse is the full order representation in response bodies.
type OrderResponse struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customer_id"`
	State           string         `json:"state"`
	ShippingAddress string         `json:"shipping_address"`
	TotalAmount     float64        `json:"total_amount"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	Items           []ItemResponse `json:"items"`
}

// ProductResponse is the product representation in response bodies.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// OrdersReportResponse is the body of GET /api/v1/orders/report/json.
type OrdersReportResponse struct {
	GeneratedAt time.Time       `json:"generated_at"`
	TotalOrders int             `json:"total_orders"`
	TotalAmount float64         `json:"total_amount"`
	ByState     map[string]int  `json:"by_state"`
	Orders      []OrderResponse `json:"orders"`
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	items := make([]ItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = ItemResponse{
			ID:              item.ID().String(),
			ProductID:       item.ProductID().String(),
			Quantity:        item.Quantity(),
			PriceAtPurchase: item.PriceAtPurchase().Float64(),
		}
	}

	return OrderResponse{
		ID:              o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		State:           o.Status().String(),
		ShippingAddress: o.ShippingAddress(),
		TotalAmount:     o.TotalAmount().Float64(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Items:           items,
	}
}

func orderResponseFromQuery(record queries.GetOrdersQueryResponse) OrderResponse {
	items := make([]ItemResponse, len(record.Items))
	for i, item := range record.Items {
		items[i] = ItemResponse{
			ID:              item.ID.String(),
			ProductID:       item.ProductID.String(),
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase.Float64(),
		}
	}

	return OrderResponse{
		ID:              record.ID.String(),
		CustomerID:      record.CustomerID.String(),
		State:           record.Status,
		ShippingAddress: record.ShippingAddress,
		TotalAmount:     record.TotalAmount.Float64(),
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
		Items:           items,
	}
}
