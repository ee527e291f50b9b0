package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelSale_CardSaleLeavesCashColumnsNull(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	sale := domain.Sale{
		SaleID:        "sale-1",
		SessionID:     "session-1",
		PaymentMethod: domain.PaymentCard,
		Currency:      domain.USD,
		CardBrand:     domain.CardBrandVisa,
		CardLast4:     "0366",
		Total:         decimal.RequireFromString("9.18"),
		Lines: []domain.SaleLine{
			{ProductID: "p1", Name: "Cola", Quantity: 2, UnitPrice: decimal.RequireFromString("4.59"), LineTotal: decimal.RequireFromString("9.18")},
		},
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "crew-1", LastUpdatedAt: now, LastUpdatedBy: "crew-1"},
	}

	m, lines := ToModelSale(sale)

	assert.Equal(t, "USD", m.CurrencyCode)
	assert.Nil(t, m.Seat)
	assert.Nil(t, m.CashReceived)
	assert.Nil(t, m.ChangeGiven)
	require.NotNil(t, m.CardBrand)
	assert.Equal(t, "Visa", *m.CardBrand)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].LineNo)
	assert.Equal(t, "sale-1", lines[0].SaleID)

	back := ToDomainSale(m, lines)
	assert.Equal(t, sale.CardLast4, back.CardLast4)
	assert.Equal(t, domain.Seat(""), back.Seat)
	assert.Equal(t, sale.AuditFields, back.AuditFields)
	assert.True(t, sale.Lines[0].LineTotal.Equal(back.Lines[0].LineTotal))
}
