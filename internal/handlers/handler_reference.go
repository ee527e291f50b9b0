package handlers

import (
	"net/http"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	portssvc "github.com/SscSPs/flymarket_pos/internal/core/ports/services"
	"github.com/SscSPs/flymarket_pos/internal/dto"
	"github.com/gin-gonic/gin"
)

// referenceHandler serves static reference data and the stateless card check.
type referenceHandler struct {
	checkoutService portssvc.CheckoutPaymentSvc
}

func registerReferenceRoutes(rg *gin.RouterGroup, checkoutService portssvc.CheckoutPaymentSvc) {
	h := &referenceHandler{checkoutService: checkoutService}

	rg.GET("/currencies", h.listCurrencies)
	rg.GET("/seats", h.getSeatMap)
	rg.POST("/card/validate", h.validateCard)
}

// listCurrencies godoc
// @Summary List display currencies
// @Tags reference
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *referenceHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrencyResponses(domain.Currencies()))
}

// getSeatMap godoc
// @Summary Cabin seat map
// @Tags reference
// @Produce json
// @Success 200 {array} domain.SeatRow
// @Security BearerAuth
// @Router /seats [get]
func (h *referenceHandler) getSeatMap(c *gin.Context) {
	c.JSON(http.StatusOK, domain.SeatMap())
}

// validateCard godoc
// @Summary Format and validate card fields
// @Description Returns the formatted number and expiry and whether each field is valid. Never charges.
// @Tags reference
// @Accept json
// @Produce json
// @Param card body dto.CardDetailsRequest true "Card fields as typed"
// @Success 200 {object} dto.CardValidationResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /card/validate [post]
func (h *referenceHandler) validateCard(c *gin.Context) {
	var req dto.CardDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	validation := h.checkoutService.ValidateCard(c.Request.Context(), req.ToCardDetails())
	c.JSON(http.StatusOK, dto.ToCardValidationResponse(validation))
}
