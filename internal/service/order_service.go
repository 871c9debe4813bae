package service

import (
	"context"
	"fmt"
	"log"

	"dashboard/internal/costing"
	"dashboard/internal/model"
	"dashboard/internal/session"
	"dashboard/internal/workflow"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type OrderService interface {
	ListOrders(ctx context.Context, sess *session.Session) ([]model.Order, error)
	GetOrder(ctx context.Context, sess *session.Session, orderID int64) (model.Order, error)
	UpdateTracking(ctx context.Context, sess *session.Session, orderID int64, status string) (model.Order, error)
}

type orderService struct {
	gw     ProcurementGateway
	events EventBroadcaster
}

func NewOrderService(gw ProcurementGateway, events EventBroadcaster) OrderService {
	return &orderService{gw: gw, events: events}
}

// ListOrders returns all orders as delivered by the backend.
func (s *orderService) ListOrders(ctx context.Context, sess *session.Session) ([]model.Order, error) {
	return s.gw.ListOrders(ctx, sess.Token)
}

// GetOrder assembles the full order view: supplier identity, the
// originating request's requester, and line items with resolved unit
// prices and the actual-cost total. Supplier and request lookups
// degrade to empty fields on failure; only the order itself and its
// item list are required.
func (s *orderService) GetOrder(ctx context.Context, sess *session.Session, orderID int64) (model.Order, error) {
	order, err := s.gw.GetOrder(ctx, sess.Token, orderID)
	if err != nil {
		return model.Order{}, err
	}

	items, err := s.gw.OrderItems(ctx, sess.Token, orderID)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to load items for order %d: %w", orderID, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)

	g.Go(func() error {
		supplier, supErr := s.gw.GetSupplier(gctx, sess.Token, order.SupplierID)
		if supErr != nil {
			log.Printf("order %d: failed to load supplier %d: %v", orderID, order.SupplierID, supErr)
			return nil
		}
		order.SupplierName = supplier.Name
		order.SupplierEmail = supplier.Email
		order.SupplierDescription = supplier.Description
		return nil
	})

	g.Go(func() error {
		request, reqErr := s.gw.GetRequest(gctx, sess.Token, order.RequestID)
		if reqErr != nil {
			log.Printf("order %d: failed to load request %d: %v", orderID, order.RequestID, reqErr)
			return nil
		}
		order.RequesterID = request.UserID
		return nil
	})

	enriched := make([]model.OrderItem, len(items))
	for i, item := range items {
		g.Go(func() error {
			enriched[i] = s.enrichOrderItem(gctx, sess.Token, item)
			return nil
		})
	}
	_ = g.Wait()

	order.Items = enriched
	order.TotalActualCost = costing.SumActual(enriched)
	return order, nil
}

// enrichOrderItem attaches material identity and a resolved unit price
// to one line. A failed catalog lookup degrades to placeholder naming
// and a back-calculated price; it never fails the batch.
func (s *orderService) enrichOrderItem(ctx context.Context, token string, item model.OrderItem) model.OrderItem {
	material, err := s.gw.GetMaterial(ctx, token, item.MaterialID)
	if err != nil {
		log.Printf("material %d: lookup failed, deriving unit price: %v", item.MaterialID, err)
		item.MaterialName = fmt.Sprintf("Material #%d", item.MaterialID)
		item.MaterialCategory = "Uncategorized"
		item.UnitPrice = costing.ResolveUnitPrice(decimal.NullDecimal{}, item.ActualCost, item.Quantity)
		return item
	}

	item.MaterialName = material.Name
	item.MaterialCategory = material.Category
	item.UnitPrice = costing.ResolveUnitPrice(material.UnitPrice, item.ActualCost, item.Quantity)
	return item
}

// UpdateTracking relays a tracking-status advance after checking it
// against the fulfillment chain.
func (s *orderService) UpdateTracking(ctx context.Context, sess *session.Session, orderID int64, status string) (model.Order, error) {
	if !workflow.Allowed(sess.User.Role, workflow.ActionUpdateTracking) {
		return model.Order{}, ErrForbidden
	}

	order, err := s.gw.GetOrder(ctx, sess.Token, orderID)
	if err != nil {
		return model.Order{}, err
	}
	if !workflow.CanAdvanceTracking(order.TrackingStatus, status) {
		return model.Order{}, &workflow.InvalidTrackingError{Current: order.TrackingStatus, Requested: status}
	}

	updated, err := s.gw.UpdateOrderTracking(ctx, sess.Token, orderID, status)
	if err != nil {
		return model.Order{}, err
	}

	if s.events != nil {
		s.events.Publish("orders.updated", map[string]interface{}{
			"order_id":        updated.OrderID,
			"tracking_status": updated.TrackingStatus,
		})
	}
	return updated, nil
}
