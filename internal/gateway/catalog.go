package gateway

import (
	"context"
	"fmt"

	"dashboard/internal/model"

	"github.com/shopspring/decimal"
)

// CreateMaterialPayload is the body for POST /materials.
type CreateMaterialPayload struct {
	SupplierID     int64           `json:"supplier_id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	StockAvailable int64           `json:"stock_available"`
}

// CreateSupplierPayload is the body for POST /suppliers.
type CreateSupplierPayload struct {
	Name        string `json:"supplier_name"`
	Email       string `json:"supplier_email,omitempty"`
	Description string `json:"supplier_description,omitempty"`
}

// ListMaterials fetches the full material catalog.
func (c *Client) ListMaterials(ctx context.Context, token string) ([]model.Material, error) {
	var materials []model.Material
	if err := c.get(ctx, token, "/materials", &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// GetMaterial fetches one catalog entry. Returns ErrNotFound for an
// unknown ID; callers aggregating line items treat that as a degraded
// line, not a failure.
func (c *Client) GetMaterial(ctx context.Context, token string, materialID int64) (model.Material, error) {
	var material model.Material
	if err := c.get(ctx, token, fmt.Sprintf("/materials/%d", materialID), &material); err != nil {
		return model.Material{}, err
	}
	return material, nil
}

// CreateMaterial adds a catalog entry.
func (c *Client) CreateMaterial(ctx context.Context, token string, payload CreateMaterialPayload) (model.Material, error) {
	var created model.Material
	if err := c.post(ctx, token, "/materials", payload, &created); err != nil {
		return model.Material{}, err
	}
	return created, nil
}

// ListSuppliers fetches all suppliers.
func (c *Client) ListSuppliers(ctx context.Context, token string) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := c.get(ctx, token, "/suppliers", &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// GetSupplier fetches one supplier by ID.
func (c *Client) GetSupplier(ctx context.Context, token string, supplierID int64) (model.Supplier, error) {
	var supplier model.Supplier
	if err := c.get(ctx, token, fmt.Sprintf("/suppliers/%d", supplierID), &supplier); err != nil {
		return model.Supplier{}, err
	}
	return supplier, nil
}

// CreateSupplier adds a supplier.
func (c *Client) CreateSupplier(ctx context.Context, token string, payload CreateSupplierPayload) (model.Supplier, error) {
	var created model.Supplier
	if err := c.post(ctx, token, "/suppliers", payload, &created); err != nil {
		return model.Supplier{}, err
	}
	return created, nil
}
