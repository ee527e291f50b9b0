package repositories

import (
	"context"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SaleReader defines read operations for completed sales
type SaleReader interface {
	// FindSaleByID retrieves a sale and its lines.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves sales, most recent first.
	ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)
}

// SaleWriter defines write operations for completed sales
type SaleWriter interface {
	// SaveSale persists a sale together with its lines.
	SaveSale(ctx context.Context, sale domain.Sale) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// SaleTxManager is implemented by stores that write a sale and its lines in one
// database transaction.
type SaleTxManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is a no-op on a committed transaction.
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// SaleRepositoryWithTx extends SaleRepositoryFacade with transaction capabilities
type SaleRepositoryWithTx interface {
	SaleRepositoryFacade
	SaleTxManager
}
