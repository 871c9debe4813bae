package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus enum constants
const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusRejected  = "rejected"
	RequestStatusOrdered   = "ordered"
	RequestStatusDelivered = "delivered"
	RequestStatusClosed    = "closed"
)

// PurchaseRequest is an internal ask to buy materials, subject to
// financial approval. Records come from the procurement backend as-is;
// TotalEstimatedCost and Items are attached by this service.
type PurchaseRequest struct {
	RequestID     int64     `json:"request_id"`
	UserID        int64     `json:"user_id"`
	SupplierID    int64     `json:"supplier_id,omitempty"`
	RequesterName string    `json:"requester_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
	Justification string    `json:"justification"`

	// Derived fields, never authoritative on their own.
	Items              []RequestItem   `json:"request_items,omitempty"`
	TotalEstimatedCost decimal.Decimal `json:"total_estimated_cost"`
}

// RequestItem is one line of a purchase request. It has no lifecycle of
// its own. EstimatedCost is unit price × quantity at request time;
// MaterialName/MaterialCategory are enrichment output.
type RequestItem struct {
	ItemID        int64           `json:"item_id"`
	RequestID     int64           `json:"request_id"`
	MaterialID    int64           `json:"material_id"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`

	MaterialName     string `json:"material_name,omitempty"`
	MaterialCategory string `json:"material_category,omitempty"`
}
