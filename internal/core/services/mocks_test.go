package services_test

import (
	"context"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/flymarket_pos/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CatalogFeed ---
type MockCatalogFeed struct {
	mock.Mock
}

func (m *MockCatalogFeed) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogFeed) FetchCustomerTypes(ctx context.Context) ([]domain.CustomerType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerType), args.Error(1)
}

var _ portsrepo.CatalogFeed = (*MockCatalogFeed)(nil)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)
