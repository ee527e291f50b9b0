package dto

import (
	"time"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/SscSPs/flymarket_pos/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

// SelectCustomerTypeRequest is the body of PUT /sessions/:sessionID/customer-type.
type SelectCustomerTypeRequest struct {
	CustomerTypeID string `json:"customerTypeID" binding:"required"`
}

// SelectCurrencyRequest is the body of PUT /sessions/:sessionID/currency.
type SelectCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,currency"`
}

// SelectSeatRequest is the body of PUT /sessions/:sessionID/seat. An empty seat clears it.
type SelectSeatRequest struct {
	Seat string `json:"seat" binding:"omitempty,seat"`
}

// QuoteLineResponse is one priced cart line.
type QuoteLineResponse struct {
	ProductID        string          `json:"productID"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Quantity         int             `json:"quantity"`
	UnitBasePrice    decimal.Decimal `json:"unitBasePrice"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	UnitPriceDisplay string          `json:"unitPriceDisplay"`
	LineTotal        decimal.Decimal `json:"lineTotal"`
	LineTotalDisplay string          `json:"lineTotalDisplay"`
}

// QuoteResponse is the derived pricing of the cart. Amounts are rounded to display precision.
type QuoteResponse struct {
	Currency           string              `json:"currency"`
	CurrencySymbol     string              `json:"currencySymbol"`
	CustomerTypeID     string              `json:"customerTypeID"`
	DiscountPercentage decimal.Decimal     `json:"discountPercentage"`
	Lines              []QuoteLineResponse `json:"lines"`
	ItemCount          int                 `json:"itemCount"`
	Subtotal           decimal.Decimal     `json:"subtotal"`
	BaseTotal          decimal.Decimal     `json:"baseTotal"`
	Total              decimal.Decimal     `json:"total"`
	TotalDisplay       string              `json:"totalDisplay"`
}

// SessionResponse is a checkout session together with its current quote.
type SessionResponse struct {
	SessionID     string               `json:"sessionID"`
	CustomerType  CustomerTypeResponse `json:"customerType"`
	Currency      string               `json:"currency"`
	Seat          string               `json:"seat,omitempty"`
	Quote         QuoteResponse        `json:"quote"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// PricedProductResponse is a catalog product as shown to the session's customer.
type PricedProductResponse struct {
	ProductResponse
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	UnitPriceDisplay string          `json:"unitPriceDisplay"`
	Quantity         int             `json:"quantity"`
	SoldOut          bool            `json:"soldOut"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO
func ToQuoteResponse(q domain.Quote) QuoteResponse {
	lines := make([]QuoteLineResponse, len(q.Lines))
	for i, l := range q.Lines {
		unitPrice := pricing.RoundForDisplay(l.UnitPrice)
		lineTotal := pricing.RoundForDisplay(l.LineTotal)
		lines[i] = QuoteLineResponse{
			ProductID:        l.ProductID,
			Name:             l.Name,
			Category:         l.Category,
			Quantity:         l.Quantity,
			UnitBasePrice:    l.UnitBasePrice,
			UnitPrice:        unitPrice,
			UnitPriceDisplay: pricing.FormatAmount(unitPrice, q.Currency),
			LineTotal:        lineTotal,
			LineTotalDisplay: pricing.FormatAmount(lineTotal, q.Currency),
		}
	}

	total := pricing.AmountDue(q)
	return QuoteResponse{
		Currency:           q.Currency.Code(),
		CurrencySymbol:     q.Currency.Symbol(),
		CustomerTypeID:     q.CustomerType.CustomerTypeID,
		DiscountPercentage: q.CustomerType.DiscountPercentage,
		Lines:              lines,
		ItemCount:          q.ItemCount,
		Subtotal:           pricing.RoundForDisplay(q.Subtotal),
		BaseTotal:          pricing.RoundForDisplay(q.BaseTotal),
		Total:              total,
		TotalDisplay:       pricing.FormatAmount(total, q.Currency),
	}
}

// ToSessionResponse converts a session and prices its cart.
func ToSessionResponse(s *domain.CheckoutSession) SessionResponse {
	quote := pricing.QuoteCart(s.Cart, s.CustomerType, s.Currency)
	return SessionResponse{
		SessionID:     s.SessionID,
		CustomerType:  ToCustomerTypeResponse(s.CustomerType),
		Currency:      s.Currency.Code(),
		Seat:          string(s.Seat),
		Quote:         ToQuoteResponse(quote),
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ToPricedProductResponses converts the priced catalog of a session.
func ToPricedProductResponses(products []domain.PricedProduct, currency domain.Currency) []PricedProductResponse {
	out := make([]PricedProductResponse, len(products))
	for i, p := range products {
		unitPrice := pricing.RoundForDisplay(p.UnitPrice)
		out[i] = PricedProductResponse{
			ProductResponse:  ToProductResponse(p.Product),
			UnitPrice:        unitPrice,
			UnitPriceDisplay: pricing.FormatAmount(unitPrice, currency),
			Quantity:         p.Quantity,
			SoldOut:          p.SoldOut(),
		}
	}
	return out
}
