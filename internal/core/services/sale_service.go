package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/flymarket_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/flymarket_pos/internal/core/ports/services"
	"github.com/SscSPs/flymarket_pos/internal/middleware"
)

const (
	defaultSaleListLimit = 20
	maxSaleListLimit     = 100
)

// saleService exposes the recorded receipts.
type saleService struct {
	saleRepo portsrepo.SaleReader
}

// NewSaleService creates a new SaleService.
func NewSaleService(saleRepo portsrepo.SaleReader) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo}
}

func (s *saleService) GetSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale %s: %w", saleID, err)
	}
	return sale, nil
}

// ListSales returns recorded sales, most recent first. The limit defaults to 20 and is capped at 100.
func (s *saleService) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	if limit <= 0 {
		limit = defaultSaleListLimit
	}
	if limit > maxSaleListLimit {
		limit = maxSaleListLimit
	}
	if offset < 0 {
		offset = 0
	}

	sales, err := s.saleRepo.ListSales(ctx, limit, offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list sales", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}
