// Package http is the inbound HTTP adapter. It translates echo requests into
// commands and queries, enforces actor capabilities, and collapses every
// fulfillment failure into the single 400 `{"detail": ...}` shape the API
// promises. No business rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"pedidos/internal/core/application/auth"
	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderWithItemsHandler commands.CreateOrderWithItemsCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	updateOrderHandler          commands.UpdateOrderCommandHandler
	createProductHandler        commands.CreateProductCommandHandler

	// Query handlers
	getOrdersHandler   queries.GetOrdersQueryHandler
	getProductsHandler queries.GetProductsQueryHandler

	metrics *metrics.FulfillmentMetrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderWithItemsHandler commands.CreateOrderWithItemsCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	fulfillmentMetrics *metrics.FulfillmentMetrics,
) *Server {
	return &Server{
		createOrderWithItemsHandler: createOrderWithItemsHandler,
		cancelOrderHandler:          cancelOrderHandler,
		updateOrderHandler:          updateOrderHandler,
		createProductHandler:        createProductHandler,
		getOrdersHandler:            getOrdersHandler,
		getProductsHandler:          getProductsHandler,
		metrics:                     fulfillmentMetrics,
	}
}

// RegisterRoutes attaches all API routes and the metrics middleware to the
// echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(s.requestMetrics)

	e.POST("/api/v1/orders/create-with-items", s.CreateOrderWithItems)
	e.PUT("/api/v1/orders/:id", s.UpdateOrder)
	e.PATCH("/api/v1/orders/:id", s.UpdateOrder)
	e.GET("/api/v1/orders", s.GetOrders)
	e.GET("/api/v1/orders/report/json", s.GetOrdersReport)
	e.POST("/api/v1/products", s.CreateProduct)
	e.GET("/api/v1/products", s.GetProducts)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}

// requestMetrics records the request counter and latency histogram per route.
func (s *Server) requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		err := next(ctx)

		status := ctx.Response().Status
		if err != nil {
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			}
		}

		s.metrics.ObserveHTTPRequest(ctx.Path(), status, time.Since(start))
		return err
	}
}

// CreateOrderWithItems handles POST /api/v1/orders/create-with-items.
// The order row and every stock decrement commit together or not at all;
// any failure along the way is reported as 400 with a detail message.
func (s *Server) CreateOrderWithItems(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})
	}

	if actor.Role != auth.RoleAdmin && !actor.CanCreateOrders() {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Detail: "role is not allowed to create orders",
		})
	}

	var req CreateOrderWithItemsRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
	}

	if req.Order.State != "" && req.Order.State != order.Pending.String() {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Detail: "new orders always start as " + order.Pending.String(),
		})
	}

	customerID := actor.ID
	if req.Order.CustomerID != "" {
		if customerID, err = kernel.UUIDFromString(req.Order.CustomerID); err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		}
	}
	if actor.Role == auth.RoleCustomer && !customerID.IsEqual(actor.ID) {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Detail: "customers can only create their own orders",
		})
	}

	totalAmount, err := kernel.NewMoneyFromFloat(req.Order.TotalAmount)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	itemRequests := make([]commands.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: itemErr.Error()})
		}

		itemRequest, itemErr := commands.NewItemRequest(productID, item.Quantity)
		if itemErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: itemErr.Error()})
		}

		itemRequests = append(itemRequests, itemRequest)
	}

	cmd, err := commands.NewCreateOrderWithItemsCommand(
		kernel.NewUUID(),
		customerID,
		req.Order.ShippingAddress,
		totalAmount,
		itemRequests,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	created, err := s.createOrderWithItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var stockErr *product.InsufficientStockError
		if errors.As(err, &stockErr) {
			s.metrics.InsufficientStock.Inc()
		}
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	s.metrics.OrdersCreated.Inc()
	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(created))
}

// UpdateOrder handles PUT/PATCH /api/v1/orders/:id. A state of "cancelado"
// routes through the cancellation path, which restores item stock in the
// same transaction as the state change. Other fields update in place.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
	}

	// The visibility scope hides other actors' orders (404, not 403); the
	// capability check then decides modification rights on the owner.
	visible, found, scopeErr := s.findVisibleOrder(ctx, actor, orderID)
	if scopeErr != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Detail: "failed to retrieve order",
		})
	}
	if !found {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: "order not found"})
	}
	if !actor.CanModifyOrder(visible.CustomerID) {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Detail: "role is not allowed to modify this order",
		})
	}

	targetStatus := order.Unknown
	if req.State != "" {
		if targetStatus, err = order.StatusFromString(req.State); err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		}
	}

	if targetStatus == order.Cancelled {
		return s.cancelOrder(ctx, actor, orderID, req)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.ShippingAddress, targetStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// cancelOrder runs the transactional cancel path and responds with the
// refreshed order representation.
func (s *Server) cancelOrder(ctx echo.Context, actor auth.Actor, orderID kernel.UUID, req UpdateOrderRequest) error {
	if req.ShippingAddress != "" {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Detail: "cancellation cannot be combined with other changes",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	s.metrics.OrdersCancelled.Inc()

	cancelled, found, err := s.findVisibleOrder(ctx, actor, orderID)
	if err != nil || !found {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Detail: "failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(cancelled))
}

// findVisibleOrder locates an order within the actor's visibility scope.
func (s *Server) findVisibleOrder(
	ctx echo.Context,
	actor auth.Actor,
	orderID kernel.UUID,
) (queries.GetOrdersQueryResponse, bool, error) {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery(actor))
	if err != nil {
		return queries.GetOrdersQueryResponse{}, false, err
	}

	for _, record := range orders {
		if record.ID.IsEqual(orderID) {
			return record, true, nil
		}
	}

	return queries.GetOrdersQueryResponse{}, false, nil
}

// GetOrders handles GET /api/v1/orders - retrieves the orders visible to the
// actor: admins see everything, customers their own, couriers nothing.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery(actor))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Detail: "failed to retrieve orders",
		})
	}

	response := make([]OrderResponse, len(orders))
	for i, record := range orders {
		response[i] = orderResponseFromQuery(record)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersReport handles GET /api/v1/orders/report/json - an admin-only
// aggregate view over all orders.
func (s *Server) GetOrdersReport(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})
	}

	if !actor.CanViewAllOrders() {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Detail: "role is not allowed to view the orders report",
		})
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery(actor))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Detail: "failed to retrieve orders",
		})
	}

	report := OrdersReportResponse{
		GeneratedAt: time.Now().UTC(),
		TotalOrders: len(orders),
		ByState:     make(map[string]int),
		Orders:      make([]OrderResponse, len(orders)),
	}

	var totalCents int64
	for i, record := range orders {
		report.Orders[i] = orderResponseFromQuery(record)
		report.ByState[record.Status]++
		totalCents += record.TotalAmount.Cents()
	}
	report.TotalAmount = float64(totalCents) / 100

	return ctx.JSON(http.StatusOK, report)
}

// CreateProduct handles POST /api/v1/products - registers a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})
	}

	if !actor.CanManageCatalog() {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Detail: "role is not allowed to manage the catalog",
		})
	}

	var req CreateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
	}

	price, err := kernel.NewMoneyFromFloat(req.Price)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(),
		req.Name,
		req.Description,
		price,
		req.Stock,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	return ctx.JSON(http.StatusCreated, ProductResponse{
		ID:          created.ID().String(),
		Name:        created.Name(),
		Description: created.Description(),
		Price:       created.Price().Float64(),
		Stock:       created.Stock(),
	})
}

// GetProducts handles GET /api/v1/products - retrieves the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	if _, err := actorFromRequest(ctx); err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Detail: "failed to retrieve products",
		})
	}

	response := make([]ProductResponse, len(products))
	for i, record := range products {
		response[i] = ProductResponse{
			ID:          record.ID.String(),
			Name:        record.Name,
			Description: record.Description,
			Price:       record.Price.Float64(),
			Stock:       record.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
