package models

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod mirrors the payment_method column.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

// Sale represents a row of the sales table.
// Cash and card columns are nullable; only the ones matching PaymentMethod are set.
type Sale struct {
	SaleID             string           `db:"sale_id"`
	SessionID          string           `db:"session_id"`
	PaymentMethod      PaymentMethod    `db:"payment_method"`
	CurrencyCode       string           `db:"currency_code"`
	CustomerTypeID     string           `db:"customer_type_id"`
	CustomerTypeName   string           `db:"customer_type_name"`
	DiscountPercentage decimal.Decimal  `db:"discount_percentage"`
	Seat               *string          `db:"seat"`
	BaseTotal          decimal.Decimal  `db:"base_total"`
	Total              decimal.Decimal  `db:"total"`
	CashReceived       *decimal.Decimal `db:"cash_received"`
	ChangeGiven        *decimal.Decimal `db:"change_given"`
	CardBrand          *string          `db:"card_brand"`
	CardLast4          *string          `db:"card_last4"`
	AuditFields
}

// SaleLine represents a row of the sale_lines table.
type SaleLine struct {
	SaleID        string          `db:"sale_id"`
	LineNo        int             `db:"line_no"`
	ProductID     string          `db:"product_id"`
	Name          string          `db:"name"`
	Category      string          `db:"category"`
	Quantity      int             `db:"quantity"`
	UnitBasePrice decimal.Decimal `db:"unit_base_price"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	LineTotal     decimal.Decimal `db:"line_total"`
}
