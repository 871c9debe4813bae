package service

import (
	"context"
	"strings"

	"dashboard/internal/gateway"
	"dashboard/internal/model"
	"dashboard/internal/session"
	"dashboard/internal/workflow"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

type CreateSupplierInput struct {
	Name        string `json:"supplier_name"`
	Email       string `json:"supplier_email"`
	Description string `json:"supplier_description"`
}

type CreateMaterialInput struct {
	SupplierID     int64           `json:"supplier_id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	StockAvailable int64           `json:"stock_available"`
}

// --- Interface ---

// CatalogService exposes the supplier/material reference data and its
// management operations.
type CatalogService interface {
	ListSuppliers(ctx context.Context, sess *session.Session) ([]model.Supplier, error)
	ListMaterials(ctx context.Context, sess *session.Session) ([]model.Material, error)
	CreateSupplier(ctx context.Context, sess *session.Session, input CreateSupplierInput) (model.Supplier, error)
	CreateMaterial(ctx context.Context, sess *session.Session, input CreateMaterialInput) (model.Material, error)
}

type catalogService struct {
	gw     ProcurementGateway
	events EventBroadcaster
}

func NewCatalogService(gw ProcurementGateway, events EventBroadcaster) CatalogService {
	return &catalogService{gw: gw, events: events}
}

// --- Implementation ---

func (s *catalogService) ListSuppliers(ctx context.Context, sess *session.Session) ([]model.Supplier, error) {
	return s.gw.ListSuppliers(ctx, sess.Token)
}

func (s *catalogService) ListMaterials(ctx context.Context, sess *session.Session) ([]model.Material, error) {
	return s.gw.ListMaterials(ctx, sess.Token)
}

func (s *catalogService) CreateSupplier(ctx context.Context, sess *session.Session, input CreateSupplierInput) (model.Supplier, error) {
	if !workflow.Allowed(sess.User.Role, workflow.ActionManageCatalog) {
		return model.Supplier{}, ErrForbidden
	}
	if strings.TrimSpace(input.Name) == "" {
		return model.Supplier{}, &workflow.ValidationError{Field: "supplier_name", Message: "a name is required"}
	}

	created, err := s.gw.CreateSupplier(ctx, sess.Token, gateway.CreateSupplierPayload{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		return model.Supplier{}, err
	}

	if s.events != nil {
		s.events.Publish("suppliers.updated", map[string]interface{}{"supplier_id": created.SupplierID})
	}
	return created, nil
}

func (s *catalogService) CreateMaterial(ctx context.Context, sess *session.Session, input CreateMaterialInput) (model.Material, error) {
	if !workflow.Allowed(sess.User.Role, workflow.ActionManageCatalog) {
		return model.Material{}, ErrForbidden
	}
	if input.SupplierID <= 0 {
		return model.Material{}, &workflow.ValidationError{Field: "supplier_id", Message: "a supplier must be selected"}
	}
	if strings.TrimSpace(input.Name) == "" {
		return model.Material{}, &workflow.ValidationError{Field: "name", Message: "a name is required"}
	}
	if input.UnitPrice.IsNegative() || input.UnitPrice.IsZero() {
		return model.Material{}, &workflow.ValidationError{Field: "unit_price", Message: "unit price must be positive"}
	}
	if input.StockAvailable < 0 {
		return model.Material{}, &workflow.ValidationError{Field: "stock_available", Message: "stock cannot be negative"}
	}

	created, err := s.gw.CreateMaterial(ctx, sess.Token, gateway.CreateMaterialPayload{
		SupplierID:     input.SupplierID,
		Name:           strings.TrimSpace(input.Name),
		Category:       strings.TrimSpace(input.Category),
		UnitPrice:      input.UnitPrice.Round(2),
		StockAvailable: input.StockAvailable,
	})
	if err != nil {
		return model.Material{}, err
	}

	if s.events != nil {
		s.events.Publish("materials.updated", map[string]interface{}{"material_id": created.MaterialID})
	}
	return created, nil
}
