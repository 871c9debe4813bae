// Package costing attaches computed cost fields to raw line items and
// totals them. All functions are pure and fail-soft: a line with an
// unknown price degrades to zero instead of aborting the batch, and
// sums are carried in decimals so only the final 2-decimal rounding is
// ever applied.
package costing

import (
	"dashboard/internal/model"

	"github.com/shopspring/decimal"
)

// ResolveUnitPrice picks the unit price for an order line. Preference
// order: the authoritative catalog price when present and usable,
// then back-calculation from actual cost over quantity, then zero.
func ResolveUnitPrice(catalogPrice decimal.NullDecimal, actualCost decimal.Decimal, quantity int64) decimal.Decimal {
	if catalogPrice.Valid && !catalogPrice.Decimal.IsZero() {
		return catalogPrice.Decimal
	}
	if quantity > 0 && !actualCost.IsZero() {
		return actualCost.Div(decimal.NewFromInt(quantity)).Round(2)
	}
	return decimal.Zero
}

// LineEstimatedCost computes unit price × quantity for a request line,
// rounded to 2 decimals. When the material lookup failed (nil), the
// line's pre-existing estimated cost is kept unchanged.
func LineEstimatedCost(item model.RequestItem, material *model.Material) decimal.Decimal {
	if material == nil || !material.UnitPrice.Valid {
		return item.EstimatedCost
	}
	return material.UnitPrice.Decimal.Mul(decimal.NewFromInt(item.Quantity)).Round(2)
}

// SumEstimated totals the estimated costs of a request's lines.
// Missing costs contribute zero.
func SumEstimated(items []model.RequestItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.EstimatedCost)
	}
	return total
}

// SumActual totals the actual costs of an order's lines. Missing
// costs contribute zero.
func SumActual(items []model.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.ActualCost)
	}
	return total
}
