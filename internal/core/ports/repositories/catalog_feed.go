package repositories

import (
	"context"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
)

// CatalogFeed is the remote source of the product and customer-type lists.
// Each call returns the complete list or an error; there are no partial results.
type CatalogFeed interface {
	// FetchProducts retrieves the full product list.
	FetchProducts(ctx context.Context) ([]domain.Product, error)

	// FetchCustomerTypes retrieves the full list of customer types.
	FetchCustomerTypes(ctx context.Context) ([]domain.CustomerType, error)
}
