package services

import (
	"context"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
)

// SaleReaderSvc defines read operations for receipts
type SaleReaderSvc interface {
	GetSale(ctx context.Context, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
}
