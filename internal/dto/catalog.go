package dto

import (
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListProductsParams filters the catalog by category; "All" or empty returns everything.
type ListProductsParams struct {
	Category string `form:"category"`
}

// ProductResponse is a catalog product with its base price in the base currency.
type ProductResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"imageUrl"`
	Units     int             `json:"units"`
	BasePrice decimal.Decimal `json:"basePrice"`
	Category  string          `json:"category"`
}

// CustomerTypeResponse mirrors domain.CustomerType.
type CustomerTypeResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
}

// CategoriesResponse lists the selectable categories, "All" first.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Name:      p.Name,
		ImageURL:  p.ImageURL,
		Units:     p.Units,
		BasePrice: p.BasePrice,
		Category:  p.Category,
	}
}

// ToProductResponses converts a slice of domain products.
func ToProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return out
}

// ToCustomerTypeResponse converts a domain.CustomerType to CustomerTypeResponse DTO
func ToCustomerTypeResponse(ct domain.CustomerType) CustomerTypeResponse {
	return CustomerTypeResponse{
		ID:                 ct.CustomerTypeID,
		Name:               ct.Name,
		DiscountPercentage: ct.DiscountPercentage,
	}
}

// ToCustomerTypeResponses converts a slice of domain customer types.
func ToCustomerTypeResponses(types []domain.CustomerType) []CustomerTypeResponse {
	out := make([]CustomerTypeResponse, len(types))
	for i, ct := range types {
		out[i] = ToCustomerTypeResponse(ct)
	}
	return out
}

// ToCategoriesResponse prepends the "All" pseudo-category.
func ToCategoriesResponse(categories []string) CategoriesResponse {
	return CategoriesResponse{Categories: append([]string{domain.CategoryAll}, categories...)}
}
