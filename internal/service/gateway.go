package service

import (
	"context"
	"errors"

	"dashboard/internal/gateway"
	"dashboard/internal/model"
)

// ErrForbidden is returned when the session's role lacks the
// capability for the attempted action.
var ErrForbidden = errors.New("insufficient permissions for this action")

// enrichConcurrency bounds the fan-out used for per-item material
// lookups so one slow line never serializes the rest.
const enrichConcurrency = 4

// ProcurementGateway is the slice of the remote data gateway the
// services consume. *gateway.Client satisfies it; tests substitute a
// fake.
type ProcurementGateway interface {
	ListRequests(ctx context.Context, token string) ([]model.PurchaseRequest, error)
	GetRequest(ctx context.Context, token string, requestID int64) (model.PurchaseRequest, error)
	RequestItems(ctx context.Context, token string, requestID int64) ([]model.RequestItem, error)
	CreateRequest(ctx context.Context, token string, payload gateway.CreateRequestPayload) (model.PurchaseRequest, error)

	ListOrders(ctx context.Context, token string) ([]model.Order, error)
	GetOrder(ctx context.Context, token string, orderID int64) (model.Order, error)
	OrderItems(ctx context.Context, token string, orderID int64) ([]model.OrderItem, error)
	UpdateOrderTracking(ctx context.Context, token string, orderID int64, status string) (model.Order, error)

	ListMaterials(ctx context.Context, token string) ([]model.Material, error)
	GetMaterial(ctx context.Context, token string, materialID int64) (model.Material, error)
	CreateMaterial(ctx context.Context, token string, payload gateway.CreateMaterialPayload) (model.Material, error)
	ListSuppliers(ctx context.Context, token string) ([]model.Supplier, error)
	GetSupplier(ctx context.Context, token string, supplierID int64) (model.Supplier, error)
	CreateSupplier(ctx context.Context, token string, payload gateway.CreateSupplierPayload) (model.Supplier, error)

	CreateApproval(ctx context.Context, token string, payload gateway.CreateApprovalPayload) (model.Approval, error)
	ApprovalForRequest(ctx context.Context, token string, requestID int64) (model.Approval, error)

	CheckUser(ctx context.Context, token string) (gateway.CheckUserResult, error)
}

// EventBroadcaster pushes refresh notifications to connected
// dashboards after successful mutations.
type EventBroadcaster interface {
	Publish(event string, data interface{})
}
