package mapping

import (
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/SscSPs/flymarket_pos/internal/models"
)

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToModelSale converts a domain Sale to its sales row and sale_lines rows.
func ToModelSale(d domain.Sale) (models.Sale, []models.SaleLine) {
	m := models.Sale{
		SaleID:             d.SaleID,
		SessionID:          d.SessionID,
		PaymentMethod:      models.PaymentMethod(d.PaymentMethod),
		CurrencyCode:       d.Currency.Code(),
		CustomerTypeID:     d.CustomerTypeID,
		CustomerTypeName:   d.CustomerTypeName,
		DiscountPercentage: d.DiscountPercentage,
		Seat:               optionalString(string(d.Seat)),
		BaseTotal:          d.BaseTotal,
		Total:              d.Total,
		CashReceived:       d.CashReceived,
		ChangeGiven:        d.Change,
		CardBrand:          optionalString(string(d.CardBrand)),
		CardLast4:          optionalString(d.CardLast4),
		AuditFields:        models.AuditFields(d.AuditFields),
	}

	lines := make([]models.SaleLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = models.SaleLine{
			SaleID:        d.SaleID,
			LineNo:        i + 1,
			ProductID:     l.ProductID,
			Name:          l.Name,
			Category:      l.Category,
			Quantity:      l.Quantity,
			UnitBasePrice: l.UnitBasePrice,
			UnitPrice:     l.UnitPrice,
			LineTotal:     l.LineTotal,
		}
	}
	return m, lines
}

// ToDomainSale converts a sales row and its lines (ordered by line_no) to a domain Sale.
func ToDomainSale(m models.Sale, lines []models.SaleLine) domain.Sale {
	d := domain.Sale{
		SaleID:             m.SaleID,
		SessionID:          m.SessionID,
		PaymentMethod:      domain.PaymentMethod(m.PaymentMethod),
		Currency:           domain.Currency(m.CurrencyCode),
		CustomerTypeID:     m.CustomerTypeID,
		CustomerTypeName:   m.CustomerTypeName,
		DiscountPercentage: m.DiscountPercentage,
		Seat:               domain.Seat(derefString(m.Seat)),
		BaseTotal:          m.BaseTotal,
		Total:              m.Total,
		CashReceived:       m.CashReceived,
		Change:             m.ChangeGiven,
		CardBrand:          domain.CardBrand(derefString(m.CardBrand)),
		CardLast4:          derefString(m.CardLast4),
		AuditFields:        domain.AuditFields(m.AuditFields),
		Lines:              make([]domain.SaleLine, len(lines)),
	}
	for i, l := range lines {
		d.Lines[i] = domain.SaleLine{
			ProductID:     l.ProductID,
			Name:          l.Name,
			Category:      l.Category,
			Quantity:      l.Quantity,
			UnitBasePrice: l.UnitBasePrice,
			UnitPrice:     l.UnitPrice,
			LineTotal:     l.LineTotal,
		}
	}
	return d
}
