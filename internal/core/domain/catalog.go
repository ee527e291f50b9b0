package domain

import "time"

// CatalogStatus describes the result of the last catalog load.
// A non-empty error field means the matching list is empty because its fetch failed.
type CatalogStatus struct {
	ProductCount       int       `json:"productCount"`
	CustomerTypeCount  int       `json:"customerTypeCount"`
	ProductsError      string    `json:"productsError,omitempty"`
	CustomerTypesError string    `json:"customerTypesError,omitempty"`
	LoadedAt           time.Time `json:"loadedAt"`
}

// OK reports whether both lists loaded successfully.
func (s CatalogStatus) OK() bool {
	return s.ProductsError == "" && s.CustomerTypesError == ""
}
