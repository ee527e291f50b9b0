package domain

import "github.com/shopspring/decimal"

// PaymentMethod indicates how a sale was settled.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

// SaleLine is an immutable snapshot of a quote line at the time of the sale.
type SaleLine struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	UnitBasePrice decimal.Decimal `json:"unitBasePrice"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
}

// Sale is a completed, settled transaction (the receipt).
type Sale struct {
	SaleID             string           `json:"saleID"`
	SessionID          string           `json:"sessionID"`
	PaymentMethod      PaymentMethod    `json:"paymentMethod"`
	Currency           Currency         `json:"currency"`
	CustomerTypeID     string           `json:"customerTypeID"`
	CustomerTypeName   string           `json:"customerTypeName"`
	DiscountPercentage decimal.Decimal  `json:"discountPercentage"`
	Seat               Seat             `json:"seat"`
	Lines              []SaleLine       `json:"lines"`
	BaseTotal          decimal.Decimal  `json:"baseTotal"`
	Total              decimal.Decimal  `json:"total"` // rounded to 2 places in Currency
	CashReceived       *decimal.Decimal `json:"cashReceived,omitempty"`
	Change             *decimal.Decimal `json:"change,omitempty"`
	CardBrand          CardBrand        `json:"cardBrand,omitempty"`
	CardLast4          string           `json:"cardLast4,omitempty"`
	AuditFields
}
