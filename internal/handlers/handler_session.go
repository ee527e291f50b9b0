package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	portssvc "github.com/SscSPs/flymarket_pos/internal/core/ports/services"
	"github.com/SscSPs/flymarket_pos/internal/dto"
	"github.com/SscSPs/flymarket_pos/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler handles the checkout session: cart, selections and payment.
type sessionHandler struct {
	checkoutService portssvc.CheckoutSvcFacade
}

// newSessionHandler creates a new sessionHandler.
func newSessionHandler(cs portssvc.CheckoutSvcFacade) *sessionHandler {
	return &sessionHandler{checkoutService: cs}
}

// registerSessionRoutes registers routes related to checkout sessions.
func registerSessionRoutes(rg *gin.RouterGroup, checkoutService portssvc.CheckoutSvcFacade) {
	h := newSessionHandler(checkoutService)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.createSession)

		session := sessions.Group("/:sessionID")
		{
			session.GET("", h.getSession)
			session.DELETE("", h.deleteSession)
			session.GET("/products", h.listPricedProducts)

			session.POST("/cart/:productID/increment", h.incrementProduct)
			session.POST("/cart/:productID/decrement", h.decrementProduct)

			session.PUT("/customer-type", h.selectCustomerType)
			session.PUT("/currency", h.selectCurrency)
			session.PUT("/seat", h.selectSeat)

			session.POST("/cash/preview", h.previewCash)
			session.POST("/checkout/cash", h.checkoutCash)
			session.POST("/checkout/card", h.checkoutCard)
		}
	}
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, failure string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: failure})
	}
}

// operatorFromContext reads the operator ID set by the auth middleware, answering
// 401 when it is missing.
func operatorFromContext(c *gin.Context, logger *slog.Logger) (string, bool) {
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return operatorID, ok
}

// createSession godoc
// @Summary Open a checkout session
// @Description Starts an empty cart with the default customer type, priced in EUR
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions [post]
func (h *sessionHandler) createSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromContext(c, logger)
	if !ok {
		return
	}

	session, err := h.checkoutService.CreateSession(c.Request.Context(), operatorID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create session")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

// getSession godoc
// @Summary Get a checkout session
// @Description Returns the session with its cart priced for the selected customer type and currency
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{sessionID} [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	session, err := h.checkoutService.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve session")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// deleteSession godoc
// @Summary Close a checkout session
// @Tags sessions
// @Param sessionID path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{sessionID} [delete]
func (h *sessionHandler) deleteSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.checkoutService.DeleteSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		writeServiceError(c, logger, err, "Failed to close session")
		return
	}
	c.Status(http.StatusNoContent)
}

// listPricedProducts godoc
// @Summary Catalog priced for the session
// @Description Products with unit prices for the session's customer type and currency, and the quantity in the cart
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param category query string false "Category, All for every product"
// @Success 200 {array} dto.PricedProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{sessionID}/products [get]
func (h *sessionHandler) listPricedProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	products, currency, err := h.checkoutService.PricedProducts(c.Request.Context(), sessionID, params.Category)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to price products")
		return
	}
	c.JSON(http.StatusOK, dto.ToPricedProductResponses(products, currency))
}

// incrementProduct godoc
// @Summary Add one unit to the cart
// @Description Adds one unit of the product. At the available units the cart is returned unchanged.
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{sessionID}/cart/{productID}/increment [post]
func (h *sessionHandler) incrementProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromContext(c, logger)
	if !ok {
		return
	}

	session, err := h.checkoutService.IncrementProduct(c.Request.Context(), c.Param("sessionID"), c.Param("productID"), operatorID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// decrementProduct godoc
// @Summary Remove one unit from the cart
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{sessionID}/cart/{productID}/decrement [post]
func (h *sessionHandler) decrementProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromContext(c, logger)
	if !ok {
		return
	}

	session, err := h.checkoutService.DecrementProduct(c.Request.Context(), c.Param("sessionID"), c.Param("productID"), operatorID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// selectCustomerType godoc
// @Summary Select the customer type
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body dto.SelectCustomerTypeRequest true "Customer type"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{sessionID}/customer-type [put]
func (h *sessionHandler) selectCustomerType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.SelectCustomerTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.checkoutService.SelectCustomerType(c.Request.Context(), c.Param("sessionID"), req.CustomerTypeID, operatorID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to select customer type")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// selectCurrency godoc
// @Summary Select the display currency
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body dto.SelectCurrencyRequest true "Currency code: EUR, USD or GBP"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{sessionID}/currency [put]
func (h *sessionHandler) selectCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.SelectCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.checkoutService.SelectCurrency(c.Request.Context(), c.Param("sessionID"), req.Currency, operatorID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to select currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// selectSeat godoc
// @Summary Select the customer's seat
// @Description Accepts labels such as C12 or 12C; an empty seat clears the selection
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body dto.SelectSeatRequest true "Seat"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{sessionID}/seat [put]
func (h *sessionHandler) selectSeat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.SelectSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.checkoutService.SelectSeat(c.Request.Context(), c.Param("sessionID"), req.Seat, operatorID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to select seat")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// previewCash godoc
// @Summary Cash calculator
// @Description Change or remaining amount for the cash received, against the rounded total
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body dto.CashRequest true "Cash received as typed"
// @Success 200 {object} dto.CashPaymentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{sessionID}/cash/preview [post]
func (h *sessionHandler) previewCash(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	var req dto.CashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.checkoutService.PreviewCash(c.Request.Context(), sessionID, req.CashReceived)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to compute cash payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashPaymentResponse(*state))
}

// checkoutCash godoc
// @Summary Pay in cash
// @Description Records the sale when the cash received covers the total, then empties the cart
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body dto.CashRequest true "Cash received as typed"
// @Success 201 {object} dto.CashCheckoutResponse
// @Failure 400 {object} ErrorResponse "Empty cart"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} dto.CashPaymentResponse "Not enough cash"
// @Security BearerAuth
// @Router /sessions/{sessionID}/checkout/cash [post]
func (h *sessionHandler) checkoutCash(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromContext(c, logger)
	if !ok {
		return
	}
	sessionID := c.Param("sessionID")

	var req dto.CashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	sale, state, err := h.checkoutService.PayCash(c.Request.Context(), sessionID, req.CashReceived, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientCash) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
				"cash":  dto.ToCashPaymentResponse(state),
			})
			return
		}
		writeServiceError(c, logger, err, "Failed to complete cash payment")
		return
	}

	c.JSON(http.StatusCreated, dto.CashCheckoutResponse{
		Sale: dto.ToSaleResponse(*sale),
		Cash: dto.ToCashPaymentResponse(state),
	})
}

// checkoutCard godoc
// @Summary Pay by card
// @Description Records the sale when every card field is valid, then empties the cart. No card is charged.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param card body dto.CardDetailsRequest true "Card fields as typed"
// @Success 201 {object} dto.CardCheckoutResponse
// @Failure 400 {object} ErrorResponse "Empty cart"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} dto.CardCheckoutResponse "Card declined"
// @Security BearerAuth
// @Router /sessions/{sessionID}/checkout/card [post]
func (h *sessionHandler) checkoutCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.CardDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	sale, validation, err := h.checkoutService.PayCard(c.Request.Context(), c.Param("sessionID"), req.ToCardDetails(), operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCardDeclined) {
			c.JSON(http.StatusUnprocessableEntity, dto.CardCheckoutResponse{
				Validation: dto.ToCardValidationResponse(validation),
				Error:      "Card details are not valid",
			})
			return
		}
		writeServiceError(c, logger, err, "Failed to complete card payment")
		return
	}

	saleResponse := dto.ToSaleResponse(*sale)
	c.JSON(http.StatusCreated, dto.CardCheckoutResponse{
		Sale:       &saleResponse,
		Validation: dto.ToCardValidationResponse(validation),
	})
}
