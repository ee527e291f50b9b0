package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/flymarket_pos/internal/core/ports/services"
	"github.com/SscSPs/flymarket_pos/internal/dto"
	"github.com/SscSPs/flymarket_pos/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests related to the product catalog.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
	// reloadTimeout bounds a reload; zero leaves it to the feed client.
	reloadTimeout time.Duration
}

// newCatalogHandler creates a new catalogHandler.
func newCatalogHandler(cs portssvc.CatalogSvcFacade, reloadTimeout time.Duration) *catalogHandler {
	return &catalogHandler{catalogService: cs, reloadTimeout: reloadTimeout}
}

// registerCatalogRoutes registers routes related to the catalog.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade, reloadTimeout time.Duration) {
	h := newCatalogHandler(catalogService, reloadTimeout)

	catalog := rg.Group("/catalog")
	{
		catalog.GET("/products", h.listProducts)
		catalog.GET("/categories", h.listCategories)
		catalog.GET("/customer-types", h.listCustomerTypes)
		catalog.GET("/status", h.getStatus)
		catalog.POST("/reload", h.reload)
	}
}

// listProducts godoc
// @Summary List catalog products
// @Description Lists products with base prices, optionally filtered by category
// @Tags catalog
// @Produce json
// @Param category query string false "Category, All for every product"
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /catalog/products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	products := h.catalogService.ListProducts(c.Request.Context(), params.Category)
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// listCategories godoc
// @Summary List product categories
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Security BearerAuth
// @Router /catalog/categories [get]
func (h *catalogHandler) listCategories(c *gin.Context) {
	categories := h.catalogService.ListCategories(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToCategoriesResponse(categories))
}

// listCustomerTypes godoc
// @Summary List customer types
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.CustomerTypeResponse
// @Security BearerAuth
// @Router /catalog/customer-types [get]
func (h *catalogHandler) listCustomerTypes(c *gin.Context) {
	types := h.catalogService.ListCustomerTypes(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToCustomerTypeResponses(types))
}

// getStatus godoc
// @Summary Catalog load status
// @Description Reports item counts and the error of any list that failed to load
// @Tags catalog
// @Produce json
// @Success 200 {object} domain.CatalogStatus
// @Security BearerAuth
// @Router /catalog/status [get]
func (h *catalogHandler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.Status(c.Request.Context()))
}

// reload godoc
// @Summary Reload the catalog
// @Description Fetches products and customer types again. Returns 502 with the status if either fetch failed.
// @Tags catalog
// @Produce json
// @Success 200 {object} domain.CatalogStatus
// @Failure 502 {object} domain.CatalogStatus
// @Security BearerAuth
// @Router /catalog/reload [post]
func (h *catalogHandler) reload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to reload catalog")

	// A reload replaces the catalog for every session, so it must finish even
	// if this client disconnects.
	ctx := context.WithoutCancel(c.Request.Context())
	if h.reloadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.reloadTimeout)
		defer cancel()
	}

	err := h.catalogService.Load(ctx)
	status := h.catalogService.Status(ctx)
	if err != nil {
		logger.Warn("Catalog reload incomplete", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
