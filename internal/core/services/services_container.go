package services

import (
	portsrepo "github.com/SscSPs/flymarket_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/flymarket_pos/internal/core/ports/services"
	"github.com/SscSPs/flymarket_pos/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Checkout depends on the catalog, so it goes first
	container.Catalog = NewCatalogService(repos.CatalogFeed)
	container.Checkout = NewCheckoutService(repos.SessionRepo, repos.SaleRepo, container.Catalog)
	container.Sale = NewSaleService(repos.SaleRepo)
	container.Auth = NewAuthService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SaleSvcFacade = (*saleService)(nil)
	_ portssvc.AuthSvc       = (*authService)(nil)
)
