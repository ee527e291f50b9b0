package dto

import (
	"time"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/SscSPs/flymarket_pos/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

// ListSalesParams defines pagination for GET /sales.
type ListSalesParams struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// SaleLineResponse is one line of a receipt.
type SaleLineResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// SaleResponse is a receipt.
type SaleResponse struct {
	SaleID             string             `json:"saleID"`
	SessionID          string             `json:"sessionID"`
	PaymentMethod      string             `json:"paymentMethod"`
	Currency           string             `json:"currency"`
	CustomerTypeID     string             `json:"customerTypeID"`
	CustomerTypeName   string             `json:"customerTypeName"`
	DiscountPercentage decimal.Decimal    `json:"discountPercentage"`
	Seat               string             `json:"seat,omitempty"`
	Lines              []SaleLineResponse `json:"lines"`
	BaseTotal          decimal.Decimal    `json:"baseTotal"`
	Total              decimal.Decimal    `json:"total"`
	TotalDisplay       string             `json:"totalDisplay"`
	CashReceived       *decimal.Decimal   `json:"cashReceived,omitempty"`
	Change             *decimal.Decimal   `json:"change,omitempty"`
	CardBrand          string             `json:"cardBrand,omitempty"`
	CardLast4          string             `json:"cardLast4,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	CreatedBy          string             `json:"createdBy"`
}

// ListSalesResponse wraps a page of receipts.
type ListSalesResponse struct {
	Sales  []SaleResponse `json:"sales"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// CashCheckoutResponse is returned after a cash sale.
type CashCheckoutResponse struct {
	Sale SaleResponse        `json:"sale"`
	Cash CashPaymentResponse `json:"cash"`
}

// CardCheckoutResponse is returned after a card sale, and with a 422 when the card is declined.
type CardCheckoutResponse struct {
	Sale       *SaleResponse          `json:"sale,omitempty"`
	Validation CardValidationResponse `json:"validation"`
	Error      string                 `json:"error,omitempty"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO
func ToSaleResponse(s domain.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = SaleLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Category:  l.Category,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		}
	}
	return SaleResponse{
		SaleID:             s.SaleID,
		SessionID:          s.SessionID,
		PaymentMethod:      string(s.PaymentMethod),
		Currency:           s.Currency.Code(),
		CustomerTypeID:     s.CustomerTypeID,
		CustomerTypeName:   s.CustomerTypeName,
		DiscountPercentage: s.DiscountPercentage,
		Seat:               string(s.Seat),
		Lines:              lines,
		BaseTotal:          s.BaseTotal,
		Total:              s.Total,
		TotalDisplay:       pricing.FormatAmount(s.Total, s.Currency),
		CashReceived:       s.CashReceived,
		Change:             s.Change,
		CardBrand:          string(s.CardBrand),
		CardLast4:          s.CardLast4,
		CreatedAt:          s.CreatedAt,
		CreatedBy:          s.CreatedBy,
	}
}

// ToSaleResponses converts a slice of domain sales.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	out := make([]SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = ToSaleResponse(s)
	}
	return out
}
