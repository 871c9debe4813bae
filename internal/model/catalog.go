package model

import "github.com/shopspring/decimal"

// Material is a catalog line orderable from a supplier. Read-only
// reference data from this service's perspective. UnitPrice may be
// absent or null upstream, hence NullDecimal.
type Material struct {
	MaterialID     int64               `json:"material_id"`
	SupplierID     int64               `json:"supplier_id"`
	Name           string              `json:"name"`
	Category       string              `json:"category"`
	UnitPrice      decimal.NullDecimal `json:"unit_price"`
	StockAvailable int64               `json:"stock_available"`
}

// Supplier is a vendor record; materials reference their supplier.
type Supplier struct {
	SupplierID  int64  `json:"supplier_id"`
	Name        string `json:"supplier_name"`
	Email       string `json:"supplier_email,omitempty"`
	Description string `json:"supplier_description,omitempty"`
}
