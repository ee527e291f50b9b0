package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/flymarket_pos/internal/core/ports/repositories"
)

// SaleRepository stores sales in memory. It backs the service when no
// database is configured.
type SaleRepository struct {
	mu    sync.RWMutex
	sales []domain.Sale
	index map[string]int
}

// NewSaleRepository creates an empty SaleRepository.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{index: make(map[string]int)}
}

var _ portsrepo.SaleRepositoryFacade = (*SaleRepository)(nil)

func cloneSale(s domain.Sale) domain.Sale {
	lines := make([]domain.SaleLine, len(s.Lines))
	copy(lines, s.Lines)
	s.Lines = lines
	return s
}

func (r *SaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[sale.SaleID]; exists {
		return fmt.Errorf("%w: sale '%s'", apperrors.ErrDuplicate, sale.SaleID)
	}
	r.index[sale.SaleID] = len(r.sales)
	r.sales = append(r.sales, cloneSale(sale))
	return nil
}

func (r *SaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[saleID]
	if !ok {
		return nil, fmt.Errorf("%w: sale '%s'", apperrors.ErrNotFound, saleID)
	}
	sale := cloneSale(r.sales[i])
	return &sale, nil
}

// ListSales returns sales most recent first; sales created at the same instant
// keep reverse insertion order.
func (r *SaleRepository) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	r.mu.RLock()
	ordered := make([]domain.Sale, 0, len(r.sales))
	for i := len(r.sales) - 1; i >= 0; i-- {
		ordered = append(ordered, cloneSale(r.sales[i]))
	}
	r.mu.RUnlock()

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	if offset >= len(ordered) {
		return []domain.Sale{}, nil
	}
	end := len(ordered)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return ordered[offset:end], nil
}
