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
	"github.com/reolmarked/shelf_market_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// saleService implements the sale recorder. Its one non-trivial duty is the
// commission snapshot: the rate of the lease agreement active on the shelf
// at sale time is copied onto the sale and never recomputed.
type saleService struct {
	productRepo portsrepo.ProductReader
	leaseRepo   portsrepo.LeaseReader
	saleRepo    portsrepo.SaleRepositoryFacade
}

// NewSaleService creates a new sale recorder service.
func NewSaleService(productRepo portsrepo.ProductReader, leaseRepo portsrepo.LeaseReader, saleRepo portsrepo.SaleRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{
		productRepo: productRepo,
		leaseRepo:   leaseRepo,
		saleRepo:    saleRepo,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) RegisterSale(ctx context.Context, req dto.RegisterSaleRequest) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: sale price must not be negative", apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", req.ProductID, err)
	}

	saleDate := time.Now().UTC()
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}
	saleDate = domain.DateOnly(saleDate)

	agreement, err := s.resolveActiveAgreement(ctx, product.ShelfID, saleDate)
	if err != nil {
		logger.Warn("Sale rejected, no active lease", slog.String("product_id", product.ProductID), slog.String("shelf_id", product.ShelfID))
		return nil, err
	}

	sale := domain.Sale{
		SaleID:            uuid.NewString(),
		ProductID:         product.ProductID,
		SaleDate:          saleDate,
		Price:             req.Price,
		CommissionPercent: agreement.CommissionPercent, // Frozen here, for good.
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		logger.Error("Failed to save sale", slog.String("error", err.Error()), slog.String("product_id", product.ProductID))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	metrics.SalesRecorded.Inc()
	logger.Info("Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("product_id", sale.ProductID),
		slog.String("commission_percent", sale.CommissionPercent.String()))
	return &sale, nil
}

// RegisterSaleByCode resolves the product from its scanned label code and
// records a sale at the product's current price, dated today.
func (s *saleService) RegisterSaleByCode(ctx context.Context, code string) (*domain.Sale, error) {
	product, err := s.productRepo.FindProductByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by code %s: %w", code, err)
	}
	return s.RegisterSale(ctx, dto.RegisterSaleRequest{
		ProductID: product.ProductID,
		Price:     product.Price,
	})
}

// resolveActiveAgreement selects the lease agreement covering the shelf on
// the given date. The overlap invariant should make the answer unique, but
// if several qualify the one with the latest start date wins so the choice
// stays deterministic.
func (s *saleService) resolveActiveAgreement(ctx context.Context, shelfID string, date time.Time) (*domain.LeaseAgreement, error) {
	agreements, err := s.leaseRepo.FindAgreementsActiveOn(ctx, shelfID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load agreements for shelf %s: %w", shelfID, err)
	}
	if len(agreements) == 0 {
		return nil, fmt.Errorf("%w: shelf %s on %s", apperrors.ErrNoActiveLease, shelfID, date.Format("2006-01-02"))
	}

	chosen := agreements[0]
	for _, a := range agreements[1:] {
		if a.StartDate.After(chosen.StartDate) {
			chosen = a
		}
	}
	return &chosen, nil
}
