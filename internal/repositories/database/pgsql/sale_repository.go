package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/flymarket_pos/internal/core/ports/repositories"
	"github.com/SscSPs/flymarket_pos/internal/models"
	"github.com/SscSPs/flymarket_pos/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSaleRepository stores receipts in the sales and sale_lines tables.
type PgxSaleRepository struct {
	txStore
}

// newPgxSaleRepository creates a new repository for sales and their lines.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{
		txStore: txStore{pool: pool},
	}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryWithTx
var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

const saleColumns = `
	sale_id, session_id, payment_method, currency_code, customer_type_id, customer_type_name,
	discount_percentage, seat, base_total, total, cash_received, change_given, card_brand, card_last4,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveSale inserts the sale row and all of its lines in a single transaction.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	m, lines := mapping.ToModelSale(sale)

	return r.withTx(ctx, func(tx pgx.Tx) error {
		saleQuery := `INSERT INTO sales (` + saleColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);`
		_, err := tx.Exec(ctx, saleQuery,
			m.SaleID,
			m.SessionID,
			m.PaymentMethod,
			m.CurrencyCode,
			m.CustomerTypeID,
			m.CustomerTypeName,
			m.DiscountPercentage,
			m.Seat,
			m.BaseTotal,
			m.Total,
			m.CashReceived,
			m.ChangeGiven,
			m.CardBrand,
			m.CardLast4,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert sale "+m.SaleID, err)
		}

		batch := &pgx.Batch{}
		lineQuery := `
			INSERT INTO sale_lines (sale_id, line_no, product_id, name, category, quantity, unit_base_price, unit_price, line_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`
		for _, l := range lines {
			batch.Queue(lineQuery,
				l.SaleID,
				l.LineNo,
				l.ProductID,
				l.Name,
				l.Category,
				l.Quantity,
				l.UnitBasePrice,
				l.UnitPrice,
				l.LineTotal,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert lines for sale "+m.SaleID, err)
		}

		return nil
	})
}

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.SessionID,
		&m.PaymentMethod,
		&m.CurrencyCode,
		&m.CustomerTypeID,
		&m.CustomerTypeName,
		&m.DiscountPercentage,
		&m.Seat,
		&m.BaseTotal,
		&m.Total,
		&m.CashReceived,
		&m.ChangeGiven,
		&m.CardBrand,
		&m.CardLast4,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindSaleByID retrieves a sale and its lines.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	m, err := scanSale(r.pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sale '%s'", apperrors.ErrNotFound, saleID)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find sale "+saleID, err)
	}

	lines, err := r.findLines(ctx, saleID)
	if err != nil {
		return nil, err
	}
	sale := mapping.ToDomainSale(m, lines)
	return &sale, nil
}

func (r *PgxSaleRepository) findLines(ctx context.Context, saleID string) ([]models.SaleLine, error) {
	query := `
		SELECT sale_id, line_no, product_id, name, category, quantity, unit_base_price, unit_price, line_total
		FROM sale_lines
		WHERE sale_id = $1
		ORDER BY line_no;
	`
	rows, err := r.pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query lines for sale "+saleID, err)
	}
	defer rows.Close()

	lines := []models.SaleLine{}
	for rows.Next() {
		var l models.SaleLine
		err := rows.Scan(
			&l.SaleID,
			&l.LineNo,
			&l.ProductID,
			&l.Name,
			&l.Category,
			&l.Quantity,
			&l.UnitBasePrice,
			&l.UnitPrice,
			&l.LineTotal,
		)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan sale line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating sale lines", err)
	}
	return lines, nil
}

// ListSales retrieves sales, most recent first, each with its lines.
func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at DESC, sale_id LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list sales", err)
	}

	var heads []models.Sale
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			rows.Close()
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan sale", err)
		}
		heads = append(heads, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating sales", err)
	}

	sales := make([]domain.Sale, 0, len(heads))
	for _, m := range heads {
		lines, err := r.findLines(ctx, m.SaleID)
		if err != nil {
			return nil, err
		}
		sales = append(sales, mapping.ToDomainSale(m, lines))
	}
	return sales, nil
}
