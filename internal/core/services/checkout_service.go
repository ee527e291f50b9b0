package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/flymarket_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/flymarket_pos/internal/core/ports/services"
	"github.com/SscSPs/flymarket_pos/internal/middleware"
	"github.com/SscSPs/flymarket_pos/internal/utils/payment"
	"github.com/SscSPs/flymarket_pos/internal/utils/pricing"
	"github.com/google/uuid"
)

// CheckoutService owns the storefront state of every checkout session: the cart,
// the selected customer type, currency and seat, and the two settlement flows.
type CheckoutService struct {
	sessions portsrepo.SessionRepositoryFacade
	sales    portsrepo.SaleWriter
	catalog  portssvc.CatalogReaderSvc
	now      func() time.Time

	// mu serializes read-modify-write cycles on sessions.
	mu sync.Mutex
}

// CheckoutOption is a functional option for configuring the checkout service
type CheckoutOption func(*CheckoutService)

// WithClock overrides the time source used for audit fields and card expiry checks.
func WithClock(now func() time.Time) CheckoutOption {
	return func(s *CheckoutService) {
		s.now = now
	}
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	sessions portsrepo.SessionRepositoryFacade,
	sales portsrepo.SaleWriter,
	catalog portssvc.CatalogReaderSvc,
	options ...CheckoutOption,
) *CheckoutService {
	svc := &CheckoutService{
		sessions: sessions,
		sales:    sales,
		catalog:  catalog,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CheckoutSvcFacade = (*CheckoutService)(nil)

func (s *CheckoutService) CreateSession(ctx context.Context, operatorID string) (*domain.CheckoutSession, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := s.now()

	session := domain.CheckoutSession{
		SessionID:    uuid.NewString(),
		CustomerType: s.catalog.DefaultCustomerType(ctx),
		Currency:     domain.BaseCurrency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		logger.Error("Failed to save checkout session", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	logger.Info("Checkout session created", slog.String("session_id", session.SessionID))
	return &session, nil
}

func (s *CheckoutService) GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	session, err := s.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout session %s: %w", sessionID, err)
	}
	s.refresh(ctx, session)
	return session, nil
}

// refresh points a loaded session at the catalog as it is now. Cart lines take the
// current product data and are clamped to the current units, and the customer type
// takes its current discount, falling back to the default when it was removed.
func (s *CheckoutService) refresh(ctx context.Context, session *domain.CheckoutSession) {
	adjusted := session.Cart.Reconcile(func(productID string) (domain.Product, bool) {
		product, err := s.catalog.GetProduct(ctx, productID)
		if err != nil {
			return domain.Product{}, false
		}
		return *product, true
	})
	if adjusted {
		middleware.GetLoggerFromCtx(ctx).Info("Cart adjusted to the current catalog",
			slog.String("session_id", session.SessionID), slog.Int("item_count", session.Cart.ItemCount()))
	}

	if customerType, err := s.catalog.GetCustomerType(ctx, session.CustomerType.CustomerTypeID); err == nil {
		session.CustomerType = *customerType
	} else {
		session.CustomerType = s.catalog.DefaultCustomerType(ctx)
	}
}

func (s *CheckoutService) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete checkout session %s: %w", sessionID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Checkout session closed", slog.String("session_id", sessionID))
	return nil
}

// mutate loads a session, applies fn and stores the result, all under the service lock.
func (s *CheckoutService) mutate(ctx context.Context, sessionID string, operatorID string, fn func(*domain.CheckoutSession) error) (*domain.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout session %s: %w", sessionID, err)
	}
	s.refresh(ctx, session)
	if err := fn(session); err != nil {
		return nil, err
	}

	session.LastUpdatedAt = s.now()
	session.LastUpdatedBy = operatorID
	if err := s.sessions.SaveSession(ctx, *session); err != nil {
		return nil, fmt.Errorf("failed to save checkout session %s: %w", sessionID, err)
	}
	return session, nil
}

// IncrementProduct adds one unit of a product. Once every available unit is in the
// cart the call leaves the session unchanged.
func (s *CheckoutService) IncrementProduct(ctx context.Context, sessionID string, productID string, operatorID string) (*domain.CheckoutSession, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to add product to cart: %w", err)
	}

	return s.mutate(ctx, sessionID, operatorID, func(session *domain.CheckoutSession) error {
		if !session.Cart.Increment(*product) {
			middleware.GetLoggerFromCtx(ctx).Debug("Product quantity already at available units",
				slog.String("session_id", sessionID), slog.String("product_id", productID))
		}
		return nil
	})
}

// DecrementProduct removes one unit of a product; the line disappears at zero.
func (s *CheckoutService) DecrementProduct(ctx context.Context, sessionID string, productID string, operatorID string) (*domain.CheckoutSession, error) {
	return s.mutate(ctx, sessionID, operatorID, func(session *domain.CheckoutSession) error {
		session.Cart.Decrement(productID)
		return nil
	})
}

func (s *CheckoutService) SelectCustomerType(ctx context.Context, sessionID string, customerTypeID string, operatorID string) (*domain.CheckoutSession, error) {
	customerType, err := s.catalog.GetCustomerType(ctx, customerTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to select customer type: %w", err)
	}
	return s.mutate(ctx, sessionID, operatorID, func(session *domain.CheckoutSession) error {
		session.CustomerType = *customerType
		return nil
	})
}

func (s *CheckoutService) SelectCurrency(ctx context.Context, sessionID string, currencyCode string, operatorID string) (*domain.CheckoutSession, error) {
	currency, err := domain.ParseCurrency(currencyCode)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, operatorID, func(session *domain.CheckoutSession) error {
		session.Currency = currency
		return nil
	})
}

func (s *CheckoutService) SelectSeat(ctx context.Context, sessionID string, seat string, operatorID string) (*domain.CheckoutSession, error) {
	var parsed domain.Seat
	if seat != "" {
		var err error
		if parsed, err = domain.ParseSeat(seat); err != nil {
			return nil, err
		}
	}
	return s.mutate(ctx, sessionID, operatorID, func(session *domain.CheckoutSession) error {
		session.Seat = parsed
		return nil
	})
}

func (s *CheckoutService) Quote(ctx context.Context, sessionID string) (*domain.Quote, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	quote := pricing.QuoteCart(session.Cart, session.CustomerType, session.Currency)
	return &quote, nil
}

// PricedProducts returns the catalog priced for the session's customer type, along
// with the currency the prices are in.
func (s *CheckoutService) PricedProducts(ctx context.Context, sessionID string, category string) ([]domain.PricedProduct, domain.Currency, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	products := s.catalog.ListProducts(ctx, category)
	return pricing.PriceProducts(products, session.Cart, session.CustomerType, session.Currency), session.Currency, nil
}

func (s *CheckoutService) PreviewCash(ctx context.Context, sessionID string, cashReceived string) (*domain.CashPayment, error) {
	quote, err := s.Quote(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state := payment.CalculateCashPayment(pricing.AmountDue(*quote), cashReceived)
	state.Currency = quote.Currency
	return &state, nil
}

func (s *CheckoutService) ValidateCard(ctx context.Context, details domain.CardDetails) domain.CardValidation {
	return payment.ValidateCard(details, s.now())
}

// PayCash settles the session in cash and records the sale.
func (s *CheckoutService) PayCash(ctx context.Context, sessionID string, cashReceived string, operatorID string) (*domain.Sale, domain.CashPayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("session_id", sessionID))

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, domain.CashPayment{}, fmt.Errorf("failed to get checkout session %s: %w", sessionID, err)
	}
	s.refresh(ctx, session)
	if session.Cart.IsEmpty() {
		return nil, domain.CashPayment{}, fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
	}

	quote := pricing.QuoteCart(session.Cart, session.CustomerType, session.Currency)
	state := payment.CalculateCashPayment(pricing.AmountDue(quote), cashReceived)
	state.Currency = quote.Currency
	if !state.Enough {
		logger.Info("Cash payment short", slog.String("remaining", state.Remaining.String()))
		return nil, state, fmt.Errorf("%w: %s %s still due", apperrors.ErrInsufficientCash,
			pricing.RoundForDisplay(state.Remaining).StringFixed(pricing.DisplayPrecision), session.Currency.Code())
	}

	sale := s.newSale(*session, quote, domain.PaymentCash, operatorID)
	received := pricing.RoundForDisplay(state.CashReceived)
	change := pricing.RoundForDisplay(state.Change)
	sale.CashReceived = &received
	sale.Change = &change

	if err := s.settle(ctx, session, sale, operatorID); err != nil {
		return nil, state, err
	}
	logger.Info("Cash sale completed", slog.String("sale_id", sale.SaleID), slog.String("total", sale.Total.String()))
	return &sale, state, nil
}

// PayCard settles the session by card once every card field validates. Only the
// brand and the last four digits of the number are recorded.
func (s *CheckoutService) PayCard(ctx context.Context, sessionID string, details domain.CardDetails, operatorID string) (*domain.Sale, domain.CardValidation, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("session_id", sessionID))
	validation := s.ValidateCard(ctx, details)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, validation, fmt.Errorf("failed to get checkout session %s: %w", sessionID, err)
	}
	s.refresh(ctx, session)
	if session.Cart.IsEmpty() {
		return nil, validation, fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
	}
	if !validation.Payable() {
		logger.Info("Card details rejected",
			slog.Bool("number_valid", validation.NumberValid),
			slog.Bool("holder_valid", validation.HolderValid),
			slog.Bool("expiry_valid", validation.ExpiryValid),
			slog.Bool("cvv_valid", validation.CVVValid))
		return nil, validation, fmt.Errorf("%w: %w", apperrors.ErrCardDeclined, apperrors.ErrValidation)
	}

	quote := pricing.QuoteCart(session.Cart, session.CustomerType, session.Currency)
	sale := s.newSale(*session, quote, domain.PaymentCard, operatorID)
	sale.CardBrand = validation.Brand
	sale.CardLast4 = payment.MaskedLast4(validation.FormattedNumber)

	if err := s.settle(ctx, session, sale, operatorID); err != nil {
		return nil, validation, err
	}
	logger.Info("Card sale completed", slog.String("sale_id", sale.SaleID), slog.String("card_brand", string(sale.CardBrand)))
	return &sale, validation, nil
}

// settle stores the sale and resets the session for the next customer.
// Callers must hold s.mu.
func (s *CheckoutService) settle(ctx context.Context, session *domain.CheckoutSession, sale domain.Sale, operatorID string) error {
	if err := s.sales.SaveSale(ctx, sale); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to save sale", slog.String("error", err.Error()), slog.String("sale_id", sale.SaleID))
		return fmt.Errorf("failed to record sale: %w", err)
	}

	session.Cart.Clear()
	session.Seat = ""
	session.LastUpdatedAt = s.now()
	session.LastUpdatedBy = operatorID
	if err := s.sessions.SaveSession(ctx, *session); err != nil {
		return fmt.Errorf("sale %s recorded but session %s could not be reset: %w", sale.SaleID, session.SessionID, err)
	}
	return nil
}

func (s *CheckoutService) newSale(session domain.CheckoutSession, quote domain.Quote, method domain.PaymentMethod, operatorID string) domain.Sale {
	now := s.now()
	lines := make([]domain.SaleLine, len(quote.Lines))
	for i, l := range quote.Lines {
		lines[i] = domain.SaleLine{
			ProductID:     l.ProductID,
			Name:          l.Name,
			Category:      l.Category,
			Quantity:      l.Quantity,
			UnitBasePrice: l.UnitBasePrice,
			UnitPrice:     pricing.RoundForDisplay(l.UnitPrice),
			LineTotal:     pricing.RoundForDisplay(l.LineTotal),
		}
	}

	return domain.Sale{
		SaleID:             uuid.NewString(),
		SessionID:          session.SessionID,
		PaymentMethod:      method,
		Currency:           quote.Currency,
		CustomerTypeID:     quote.CustomerType.CustomerTypeID,
		CustomerTypeName:   quote.CustomerType.Name,
		DiscountPercentage: quote.CustomerType.DiscountPercentage,
		Seat:               session.Seat,
		Lines:              lines,
		BaseTotal:          pricing.RoundForDisplay(quote.BaseTotal),
		Total:              pricing.AmountDue(quote),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}
}
