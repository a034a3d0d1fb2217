// Package catalog contains the product use cases.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/trade"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// MsgProductSold is returned when deleting a product referenced by a sale.
const MsgProductSold = "Product cannot be deleted because it has already been sold."

// ProductService handles product-related business operations
type ProductService struct {
	products  catalog.ProductRepository
	saleItems trade.SaleItemRepository
	logger    *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, saleItems trade.SaleItemRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		products:  products,
		saleItems: saleItems,
		logger:    logger,
	}
}

// List returns the products matching the query parameters.
func (s *ProductService) List(ctx context.Context, query map[string]string) ([]ProductResponse, error) {
	filter, err := catalog.ProductFilter.Build(query)
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return lo.Map(products, func(p catalog.Product, _ int) ProductResponse {
		return ToProductResponse(&p)
	}), nil
}

// Create stores a new product.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*ProductResponse, error) {
	product, err := catalog.NewProduct(in.Name, in.SuggestedPrice)
	if err != nil {
		return nil, err
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.logger.Info("product created", zap.Uint64("product_id", product.ID), zap.String("name", product.Name))
	resp := ToProductResponse(product)
	return &resp, nil
}

// Replace overwrites every field of the product.
func (s *ProductService) Replace(ctx context.Context, id uint64, in ProductInput) error {
	product, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := product.Replace(in.Name, in.SuggestedPrice); err != nil {
		return err
	}
	return s.save(ctx, product)
}

// Patch updates only the supplied product fields.
func (s *ProductService) Patch(ctx context.Context, id uint64, patch catalog.ProductPatch) error {
	product, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := product.Apply(patch); err != nil {
		return err
	}
	return s.save(ctx, product)
}

// Delete removes a product that was never sold. The sale check runs before
// the existence check.
func (s *ProductService) Delete(ctx context.Context, id uint64) error {
	sold, err := s.saleItems.CountByProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("count product sales: %w", err)
	}
	if sold > 0 {
		return shared.NewConflictFailure(MsgProductSold)
	}

	product, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, product); err != nil {
		if errors.Is(err, shared.ErrConflict) {
			return shared.NewConflictFailure(MsgProductSold)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	s.logger.Info("product deleted", zap.Uint64("product_id", id))
	return nil
}

func (s *ProductService) save(ctx context.Context, product *catalog.Product) error {
	if err := s.products.Update(ctx, product); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundFailure(fmt.Sprintf("No product exists with id %d", product.ID))
		}
		return fmt.Errorf("update product: %w", err)
	}
	s.logger.Info("product updated", zap.Uint64("product_id", product.ID))
	return nil
}

func (s *ProductService) find(ctx context.Context, id uint64) (*catalog.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundFailure(fmt.Sprintf("No product exists with id %d", id))
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}
