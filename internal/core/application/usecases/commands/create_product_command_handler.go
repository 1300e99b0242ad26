package commands

import (
	"context"

	"pedidos/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles catalog product registration.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command and returns the created
// product. Uses a transaction so the product is fully persisted or not at all.
func (h *CreateProductCommandHandler) Handle(
	ctx context.Context,
	cmd CreateProductCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Description(), cmd.Price(), cmd.Stock())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
