package pgsql

import (
	portsrepo "github.com/SscSPs/flymarket_pos/internal/core/ports/repositories"
	"github.com/SscSPs/flymarket_pos/internal/repositories/memory"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires sales to PostgreSQL. Checkout sessions are terminal
// state and stay in memory; the catalog is read from the remote feed.
func NewRepositoryProvider(dbPool *pgxpool.Pool, catalogFeed portsrepo.CatalogFeed) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CatalogFeed: catalogFeed,
		SessionRepo: memory.NewSessionRepository(),
		SaleRepo:    newPgxSaleRepository(dbPool),
	}
}
