package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	portssvc "github.com/SscSPs/flymarket_pos/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context, category string) []domain.Product {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Product)
}
func (m *MockCatalogService) ListCategories(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}
func (m *MockCatalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockCatalogService) ListCustomerTypes(ctx context.Context) []domain.CustomerType {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CustomerType)
}
func (m *MockCatalogService) GetCustomerType(ctx context.Context, customerTypeID string) (*domain.CustomerType, error) {
	args := m.Called(ctx, customerTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerType), args.Error(1)
}
func (m *MockCatalogService) DefaultCustomerType(ctx context.Context) domain.CustomerType {
	args := m.Called(ctx)
	return args.Get(0).(domain.CustomerType)
}
func (m *MockCatalogService) Status(ctx context.Context) domain.CatalogStatus {
	args := m.Called(ctx)
	return args.Get(0).(domain.CatalogStatus)
}
func (m *MockCatalogService) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Mock CheckoutService ---
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) session(args mock.Arguments) (*domain.CheckoutSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}

func (m *MockCheckoutService) CreateSession(ctx context.Context, operatorID string) (*domain.CheckoutSession, error) {
	return m.session(m.Called(ctx, operatorID))
}
func (m *MockCheckoutService) GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	return m.session(m.Called(ctx, sessionID))
}
func (m *MockCheckoutService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
func (m *MockCheckoutService) IncrementProduct(ctx context.Context, sessionID string, productID string, operatorID string) (*domain.CheckoutSession, error) {
	return m.session(m.Called(ctx, sessionID, productID, operatorID))
}
func (m *MockCheckoutService) DecrementProduct(ctx context.Context, sessionID string, productID string, operatorID string) (*domain.CheckoutSession, error) {
	return m.session(m.Called(ctx, sessionID, productID, operatorID))
}
func (m *MockCheckoutService) SelectCustomerType(ctx context.Context, sessionID string, customerTypeID string, operatorID string) (*domain.CheckoutSession, error) {
	return m.session(m.Called(ctx, sessionID, customerTypeID, operatorID))
}
func (m *MockCheckoutService) SelectCurrency(ctx context.Context, sessionID string, currencyCode string, operatorID string) (*domain.CheckoutSession, error) {
	return m.session(m.Called(ctx, sessionID, currencyCode, operatorID))
}
func (m *MockCheckoutService) SelectSeat(ctx context.Context, sessionID string, seat string, operatorID string) (*domain.CheckoutSession, error) {
	return m.session(m.Called(ctx, sessionID, seat, operatorID))
}
func (m *MockCheckoutService) Quote(ctx context.Context, sessionID string) (*domain.Quote, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockCheckoutService) PricedProducts(ctx context.Context, sessionID string, category string) ([]domain.PricedProduct, domain.Currency, error) {
	args := m.Called(ctx, sessionID, category)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.PricedProduct), args.Get(1).(domain.Currency), args.Error(2)
}
func (m *MockCheckoutService) PreviewCash(ctx context.Context, sessionID string, cashReceived string) (*domain.CashPayment, error) {
	args := m.Called(ctx, sessionID, cashReceived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashPayment), args.Error(1)
}
func (m *MockCheckoutService) ValidateCard(ctx context.Context, details domain.CardDetails) domain.CardValidation {
	args := m.Called(ctx, details)
	return args.Get(0).(domain.CardValidation)
}
func (m *MockCheckoutService) PayCash(ctx context.Context, sessionID string, cashReceived string, operatorID string) (*domain.Sale, domain.CashPayment, error) {
	args := m.Called(ctx, sessionID, cashReceived, operatorID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.CashPayment), args.Error(2)
	}
	return args.Get(0).(*domain.Sale), args.Get(1).(domain.CashPayment), args.Error(2)
}
func (m *MockCheckoutService) PayCard(ctx context.Context, sessionID string, details domain.CardDetails, operatorID string) (*domain.Sale, domain.CardValidation, error) {
	args := m.Called(ctx, sessionID, details, operatorID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.CardValidation), args.Error(2)
	}
	return args.Get(0).(*domain.Sale), args.Get(1).(domain.CardValidation), args.Error(2)
}

var _ portssvc.CheckoutSvcFacade = (*MockCheckoutService)(nil)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) GetSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, operatorID string, pin string) (string, time.Time, error) {
	args := m.Called(ctx, operatorID, pin)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)
