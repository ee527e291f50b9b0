package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/flymarket_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/flymarket_pos/internal/core/ports/services"
	"github.com/SscSPs/flymarket_pos/internal/middleware"
)

// CatalogService keeps the product and customer-type lists fetched from the feed.
// Both lists are replaced wholesale on every load; readers never observe a partial list.
type CatalogService struct {
	feed portsrepo.CatalogFeed
	now  func() time.Time

	mu            sync.RWMutex
	products      []domain.Product
	customerTypes []domain.CustomerType
	status        domain.CatalogStatus
}

// NewCatalogService creates a new CatalogService. The catalog is empty until Load is called.
func NewCatalogService(feed portsrepo.CatalogFeed) *CatalogService {
	return &CatalogService{feed: feed, now: time.Now}
}

var _ portssvc.CatalogSvcFacade = (*CatalogService)(nil)

// Load fetches products and customer types concurrently. A failed fetch empties
// its list and is recorded in Status; the other list is still replaced.
func (s *CatalogService) Load(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	var (
		wg                    sync.WaitGroup
		products              []domain.Product
		customerTypes         []domain.CustomerType
		productsErr, typesErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		products, productsErr = s.feed.FetchProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		customerTypes, typesErr = s.feed.FetchCustomerTypes(ctx)
	}()
	wg.Wait()

	status := domain.CatalogStatus{LoadedAt: s.now()}
	if productsErr != nil {
		logger.Error("Failed to fetch products", slog.String("error", productsErr.Error()))
		products = nil
		status.ProductsError = fmt.Sprintf("Error fetching products: %v", productsErr)
	}
	if typesErr != nil {
		logger.Error("Failed to fetch customer types", slog.String("error", typesErr.Error()))
		customerTypes = nil
		status.CustomerTypesError = fmt.Sprintf("Error fetching customer types: %v", typesErr)
	}
	status.ProductCount = len(products)
	status.CustomerTypeCount = len(customerTypes)

	s.mu.Lock()
	s.products = products
	s.customerTypes = customerTypes
	s.status = status
	s.mu.Unlock()

	if err := errors.Join(productsErr, typesErr); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("Catalog loaded",
		slog.Int("products", status.ProductCount),
		slog.Int("customer_types", status.CustomerTypeCount))
	return nil
}

// ListProducts returns a copy of the products in category.
func (s *CatalogService) ListProducts(ctx context.Context, category string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.InCategory(category) {
			out = append(out, p)
		}
	}
	return out
}

// ListCategories returns the distinct categories in the order they first appear.
func (s *CatalogService) ListCategories(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range s.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ProductID == productID {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("%w: product '%s'", apperrors.ErrNotFound, productID)
}

func (s *CatalogService) ListCustomerTypes(ctx context.Context) []domain.CustomerType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CustomerType, len(s.customerTypes))
	copy(out, s.customerTypes)
	return out
}

// GetCustomerType retrieves a fetched customer type. While no types are loaded the
// local default is the only one that resolves.
func (s *CatalogService) GetCustomerType(ctx context.Context, customerTypeID string) (*domain.CustomerType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ct := range s.customerTypes {
		if ct.CustomerTypeID == customerTypeID {
			found := ct
			return &found, nil
		}
	}
	if def := domain.DefaultCustomerType(); len(s.customerTypes) == 0 && def.CustomerTypeID == customerTypeID {
		return &def, nil
	}
	return nil, fmt.Errorf("%w: customer type '%s'", apperrors.ErrNotFound, customerTypeID)
}

// DefaultCustomerType is the first fetched customer type, or the local default
// when none could be fetched.
func (s *CatalogService) DefaultCustomerType(ctx context.Context) domain.CustomerType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.customerTypes) > 0 {
		return s.customerTypes[0]
	}
	return domain.DefaultCustomerType()
}

func (s *CatalogService) Status(ctx context.Context) domain.CatalogStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
