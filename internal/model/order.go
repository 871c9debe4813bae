package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrackingStatus enum constants
const (
	TrackingPrepared  = "prepared"
	TrackingShipped   = "shipped"
	TrackingDelivered = "delivered"
)

// Order is the supplier-facing commitment created by the backend once a
// purchase request is approved. This service only consumes the record.
type Order struct {
	OrderID        int64      `json:"order_id"`
	RequestID      int64      `json:"request_id"`
	SupplierID     int64      `json:"supplier_id"`
	OrderNumber    string     `json:"order_number"`
	TrackingStatus string     `json:"tracking_status"`
	OrderedAt      time.Time  `json:"ordered_at"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`

	// Enrichment output.
	SupplierName        string          `json:"supplier_name,omitempty"`
	SupplierEmail       string          `json:"supplier_email,omitempty"`
	SupplierDescription string          `json:"supplier_description,omitempty"`
	RequesterID         int64           `json:"requester,omitempty"`
	Items               []OrderItem     `json:"order_items,omitempty"`
	TotalActualCost     decimal.Decimal `json:"total_actual_cost"`
}

// OrderItem is one line of an order. UnitPrice is derived during
// enrichment: catalog price when available, otherwise back-calculated
// from ActualCost / Quantity.
type OrderItem struct {
	ItemID     int64           `json:"item_id"`
	OrderID    int64           `json:"order_id"`
	MaterialID int64           `json:"material_id"`
	Quantity   int64           `json:"quantity"`
	ActualCost decimal.Decimal `json:"actual_cost"`
	UnitPrice  decimal.Decimal `json:"unit_price"`

	MaterialName     string `json:"material_name,omitempty"`
	MaterialCategory string `json:"material_category,omitempty"`
}
