package services

import (
	"context"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
)

// CheckoutSessionSvc defines the lifecycle of checkout sessions
type CheckoutSessionSvc interface {
	CreateSession(ctx context.Context, operatorID string) (*domain.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// CheckoutCartSvc defines the operations that change what is displayed or selected
type CheckoutCartSvc interface {
	IncrementProduct(ctx context.Context, sessionID string, productID string, operatorID string) (*domain.CheckoutSession, error)
	DecrementProduct(ctx context.Context, sessionID string, productID string, operatorID string) (*domain.CheckoutSession, error)
	SelectCustomerType(ctx context.Context, sessionID string, customerTypeID string, operatorID string) (*domain.CheckoutSession, error)
	SelectCurrency(ctx context.Context, sessionID string, currencyCode string, operatorID string) (*domain.CheckoutSession, error)
	// SelectSeat sets the seat; an empty label clears it.
	SelectSeat(ctx context.Context, sessionID string, seat string, operatorID string) (*domain.CheckoutSession, error)

	Quote(ctx context.Context, sessionID string) (*domain.Quote, error)
	// PricedProducts also returns the currency the unit prices are expressed in.
	PricedProducts(ctx context.Context, sessionID string, category string) ([]domain.PricedProduct, domain.Currency, error)
}

// CheckoutPaymentSvc defines the two settlement flows
type CheckoutPaymentSvc interface {
	// PreviewCash computes change or remaining amount, in the session's currency, without settling.
	PreviewCash(ctx context.Context, sessionID string, cashReceived string) (*domain.CashPayment, error)

	// ValidateCard formats and validates card fields.
	ValidateCard(ctx context.Context, details domain.CardDetails) domain.CardValidation

	// PayCash settles the session in cash. The cash state is returned even when
	// the payment is rejected with apperrors.ErrInsufficientCash.
	PayCash(ctx context.Context, sessionID string, cashReceived string, operatorID string) (*domain.Sale, domain.CashPayment, error)

	// PayCard settles the session by card. The validation is returned even when
	// the payment is rejected with apperrors.ErrCardDeclined.
	PayCard(ctx context.Context, sessionID string, details domain.CardDetails, operatorID string) (*domain.Sale, domain.CardValidation, error)
}

// CheckoutSvcFacade combines all checkout-related service interfaces
type CheckoutSvcFacade interface {
	CheckoutSessionSvc
	CheckoutCartSvc
	CheckoutPaymentSvc
}
