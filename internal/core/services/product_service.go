package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/reolmarked/shelf_market_app/internal/apperrors"
	"github.com/reolmarked/shelf_market_app/internal/core/domain"
	portsrepo "github.com/reolmarked/shelf_market_app/internal/core/ports/repositories"
	portssvc "github.com/reolmarked/shelf_market_app/internal/core/ports/services"
	"github.com/reolmarked/shelf_market_app/internal/dto"
	"github.com/reolmarked/shelf_market_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// productService implements the product catalog.
type productService struct {
	shelfRepo   portsrepo.ShelfReader
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product catalog service.
func NewProductService(shelfRepo portsrepo.ShelfReader, productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{
		shelfRepo:   shelfRepo,
		productRepo: productRepo,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct stocks a product on a shelf. The product id is generated
// here, so the label code can be derived up front and the product persisted
// with its code in a single insert.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: product price must not be negative", apperrors.ErrValidation)
	}
	if _, err := s.shelfRepo.FindShelfByID(ctx, req.ShelfID); err != nil {
		return nil, fmt.Errorf("failed to find shelf %s: %w", req.ShelfID, err)
	}

	productID := uuid.NewString()
	product := domain.Product{
		ProductID: productID,
		ShelfID:   req.ShelfID,
		Price:     req.Price,
		Code:      domain.BuildProductCode(req.ShelfID, productID, req.Price),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product", slog.String("error", err.Error()), slog.String("shelf_id", req.ShelfID))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID), slog.String("code", product.Code))
	return &product, nil
}

func (s *productService) GetProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: product code is required", apperrors.ErrValidation)
	}
	product, err := s.productRepo.FindProductByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by code %s: %w", code, err)
	}
	return product, nil
}
