package services

import (
	"context"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
)

// CatalogReaderSvc defines read operations over the loaded catalog
type CatalogReaderSvc interface {
	// ListProducts returns the products in category; "" or domain.CategoryAll returns all.
	ListProducts(ctx context.Context, category string) []domain.Product

	// ListCategories returns the distinct product categories in catalog order.
	ListCategories(ctx context.Context) []string

	// GetProduct retrieves a product by ID.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// ListCustomerTypes returns every fetched customer type.
	ListCustomerTypes(ctx context.Context) []domain.CustomerType

	// GetCustomerType retrieves a customer type by ID.
	GetCustomerType(ctx context.Context, customerTypeID string) (*domain.CustomerType, error)

	// DefaultCustomerType is the type a new session starts with.
	DefaultCustomerType(ctx context.Context) domain.CustomerType

	// Status reports the outcome of the last load.
	Status(ctx context.Context) domain.CatalogStatus
}

// CatalogLoaderSvc defines the (re)load operation of the catalog
type CatalogLoaderSvc interface {
	// Load fetches both lists and replaces the in-memory copies wholesale.
	Load(ctx context.Context) error
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogLoaderSvc
}
