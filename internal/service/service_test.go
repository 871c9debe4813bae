package service

import (
	"context"
	"sync"
	"time"

	"dashboard/internal/gateway"
	"dashboard/internal/model"
	"dashboard/internal/session"
)

// fakeGateway substitutes the procurement backend. Each method records
// the call and delegates to its Fn hook when set, returning zero values
// otherwise. Methods may be hit concurrently by the fan-out paths, so
// call recording is locked.
type fakeGateway struct {
	mu    sync.Mutex
	calls []string

	listRequestsFn  func(ctx context.Context, token string) ([]model.PurchaseRequest, error)
	getRequestFn    func(ctx context.Context, token string, requestID int64) (model.PurchaseRequest, error)
	requestItemsFn  func(ctx context.Context, token string, requestID int64) ([]model.RequestItem, error)
	createRequestFn func(ctx context.Context, token string, payload gateway.CreateRequestPayload) (model.PurchaseRequest, error)

	listOrdersFn          func(ctx context.Context, token string) ([]model.Order, error)
	getOrderFn            func(ctx context.Context, token string, orderID int64) (model.Order, error)
	orderItemsFn          func(ctx context.Context, token string, orderID int64) ([]model.OrderItem, error)
	updateOrderTrackingFn func(ctx context.Context, token string, orderID int64, status string) (model.Order, error)

	listMaterialsFn  func(ctx context.Context, token string) ([]model.Material, error)
	getMaterialFn    func(ctx context.Context, token string, materialID int64) (model.Material, error)
	createMaterialFn func(ctx context.Context, token string, payload gateway.CreateMaterialPayload) (model.Material, error)
	listSuppliersFn  func(ctx context.Context, token string) ([]model.Supplier, error)
	getSupplierFn    func(ctx context.Context, token string, supplierID int64) (model.Supplier, error)
	createSupplierFn func(ctx context.Context, token string, payload gateway.CreateSupplierPayload) (model.Supplier, error)

	createApprovalFn     func(ctx context.Context, token string, payload gateway.CreateApprovalPayload) (model.Approval, error)
	approvalForRequestFn func(ctx context.Context, token string, requestID int64) (model.Approval, error)

	checkUserFn func(ctx context.Context, token string) (gateway.CheckUserResult, error)
}

func (f *fakeGateway) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeGateway) ListRequests(ctx context.Context, token string) ([]model.PurchaseRequest, error) {
	f.record("ListRequests")
	if f.listRequestsFn != nil {
		return f.listRequestsFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeGateway) GetRequest(ctx context.Context, token string, requestID int64) (model.PurchaseRequest, error) {
	f.record("GetRequest")
	if f.getRequestFn != nil {
		return f.getRequestFn(ctx, token, requestID)
	}
	return model.PurchaseRequest{}, nil
}

func (f *fakeGateway) RequestItems(ctx context.Context, token string, requestID int64) ([]model.RequestItem, error) {
	f.record("RequestItems")
	if f.requestItemsFn != nil {
		return f.requestItemsFn(ctx, token, requestID)
	}
	return nil, nil
}

func (f *fakeGateway) CreateRequest(ctx context.Context, token string, payload gateway.CreateRequestPayload) (model.PurchaseRequest, error) {
	f.record("CreateRequest")
	if f.createRequestFn != nil {
		return f.createRequestFn(ctx, token, payload)
	}
	return model.PurchaseRequest{}, nil
}

func (f *fakeGateway) ListOrders(ctx context.Context, token string) ([]model.Order, error) {
	f.record("ListOrders")
	if f.listOrdersFn != nil {
		return f.listOrdersFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeGateway) GetOrder(ctx context.Context, token string, orderID int64) (model.Order, error) {
	f.record("GetOrder")
	if f.getOrderFn != nil {
		return f.getOrderFn(ctx, token, orderID)
	}
	return model.Order{}, nil
}

func (f *fakeGateway) OrderItems(ctx context.Context, token string, orderID int64) ([]model.OrderItem, error) {
	f.record("OrderItems")
	if f.orderItemsFn != nil {
		return f.orderItemsFn(ctx, token, orderID)
	}
	return nil, nil
}

func (f *fakeGateway) UpdateOrderTracking(ctx context.Context, token string, orderID int64, status string) (model.Order, error) {
	f.record("UpdateOrderTracking")
	if f.updateOrderTrackingFn != nil {
		return f.updateOrderTrackingFn(ctx, token, orderID, status)
	}
	return model.Order{}, nil
}

func (f *fakeGateway) ListMaterials(ctx context.Context, token string) ([]model.Material, error) {
	f.record("ListMaterials")
	if f.listMaterialsFn != nil {
		return f.listMaterialsFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeGateway) GetMaterial(ctx context.Context, token string, materialID int64) (model.Material, error) {
	f.record("GetMaterial")
	if f.getMaterialFn != nil {
		return f.getMaterialFn(ctx, token, materialID)
	}
	return model.Material{}, nil
}

func (f *fakeGateway) CreateMaterial(ctx context.Context, token string, payload gateway.CreateMaterialPayload) (model.Material, error) {
	f.record("CreateMaterial")
	if f.createMaterialFn != nil {
		return f.createMaterialFn(ctx, token, payload)
	}
	return model.Material{}, nil
}

func (f *fakeGateway) ListSuppliers(ctx context.Context, token string) ([]model.Supplier, error) {
	f.record("ListSuppliers")
	if f.listSuppliersFn != nil {
		return f.listSuppliersFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeGateway) GetSupplier(ctx context.Context, token string, supplierID int64) (model.Supplier, error) {
	f.record("GetSupplier")
	if f.getSupplierFn != nil {
		return f.getSupplierFn(ctx, token, supplierID)
	}
	return model.Supplier{}, nil
}

func (f *fakeGateway) CreateSupplier(ctx context.Context, token string, payload gateway.CreateSupplierPayload) (model.Supplier, error) {
	f.record("CreateSupplier")
	if f.createSupplierFn != nil {
		return f.createSupplierFn(ctx, token, payload)
	}
	return model.Supplier{}, nil
}

func (f *fakeGateway) CreateApproval(ctx context.Context, token string, payload gateway.CreateApprovalPayload) (model.Approval, error) {
	f.record("CreateApproval")
	if f.createApprovalFn != nil {
		return f.createApprovalFn(ctx, token, payload)
	}
	return model.Approval{}, nil
}

func (f *fakeGateway) ApprovalForRequest(ctx context.Context, token string, requestID int64) (model.Approval, error) {
	f.record("ApprovalForRequest")
	if f.approvalForRequestFn != nil {
		return f.approvalForRequestFn(ctx, token, requestID)
	}
	return model.Approval{}, nil
}

func (f *fakeGateway) CheckUser(ctx context.Context, token string) (gateway.CheckUserResult, error) {
	f.record("CheckUser")
	if f.checkUserFn != nil {
		return f.checkUserFn(ctx, token)
	}
	return gateway.CheckUserResult{}, nil
}

// fakeBroadcaster captures published refresh events.
type fakeBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeBroadcaster) Publish(event string, _ interface{}) {
	f.mu.Lock()
	f.events = append(f.events, event)
	f.mu.Unlock()
}

func (f *fakeBroadcaster) published() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func financeSession() *session.Session {
	return &session.Session{
		ID:        "sess-finance",
		Token:     "token-finance",
		User:      model.User{UserID: 2, Username: "daf.user", Role: model.RoleFinance},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func logisticsSession() *session.Session {
	return &session.Session{
		ID:        "sess-logistics",
		Token:     "token-logistics",
		User:      model.User{UserID: 1, Username: "log.user", Role: model.RoleLogistics},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}
