package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"dashboard/internal/costing"
	"dashboard/internal/gateway"
	"dashboard/internal/model"
	"dashboard/internal/session"
	"dashboard/internal/workflow"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// --- DTOs ---

type RequestItemInput struct {
	MaterialID    int64           `json:"material_id" binding:"required"`
	Quantity      int64           `json:"quantity" binding:"required"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

type CreateRequestInput struct {
	SupplierID    int64              `json:"supplier_id"`
	Justification string             `json:"justification"`
	Items         []RequestItemInput `json:"items"`
}

// RequestDetail is a purchase request with its enriched items and the
// decision filed for it, if any.
type RequestDetail struct {
	model.PurchaseRequest
	Approval *model.Approval `json:"approval,omitempty"`
}

// --- Interface ---

type RequestService interface {
	ListRequests(ctx context.Context, sess *session.Session) ([]model.PurchaseRequest, error)
	GetRequest(ctx context.Context, sess *session.Session, requestID int64) (RequestDetail, error)
	CreateRequest(ctx context.Context, sess *session.Session, input CreateRequestInput) (model.PurchaseRequest, error)
}

type requestService struct {
	gw     ProcurementGateway
	events EventBroadcaster
}

func NewRequestService(gw ProcurementGateway, events EventBroadcaster) RequestService {
	return &requestService{gw: gw, events: events}
}

// --- Implementation ---

// ListRequests returns all purchase requests with their items and
// estimated totals attached. Item fetches fan out concurrently; a
// failed fetch degrades that request to an empty item list and zero
// total instead of failing the listing.
func (s *requestService) ListRequests(ctx context.Context, sess *session.Session) ([]model.PurchaseRequest, error) {
	requests, err := s.gw.ListRequests(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i := range requests {
		g.Go(func() error {
			items, itemsErr := s.gw.RequestItems(gctx, sess.Token, requests[i].RequestID)
			if itemsErr != nil {
				log.Printf("request %d: failed to load items: %v", requests[i].RequestID, itemsErr)
				requests[i].Items = []model.RequestItem{}
				requests[i].TotalEstimatedCost = decimal.Zero
				return nil
			}
			requests[i].Items = items
			requests[i].TotalEstimatedCost = costing.SumEstimated(items)
			return nil
		})
	}
	_ = g.Wait()

	return requests, nil
}

// GetRequest returns one request with material-enriched items, the
// estimated total and the approval decision when one exists.
func (s *requestService) GetRequest(ctx context.Context, sess *session.Session, requestID int64) (RequestDetail, error) {
	request, err := s.gw.GetRequest(ctx, sess.Token, requestID)
	if err != nil {
		return RequestDetail{}, err
	}

	items, err := s.gw.RequestItems(ctx, sess.Token, requestID)
	if err != nil {
		return RequestDetail{}, fmt.Errorf("failed to load items for request %d: %w", requestID, err)
	}

	request.Items = s.enrichRequestItems(ctx, sess.Token, items)
	request.TotalEstimatedCost = costing.SumEstimated(request.Items)

	detail := RequestDetail{PurchaseRequest: request}

	approval, err := s.gw.ApprovalForRequest(ctx, sess.Token, requestID)
	switch {
	case err == nil:
		detail.Approval = &approval
	case err == gateway.ErrNotFound:
		// No decision filed yet; a normal state, not a failure.
	default:
		log.Printf("request %d: failed to load approval: %v", requestID, err)
	}

	return detail, nil
}

// enrichRequestItems resolves material names and recomputes estimated
// costs from the catalog. Lookups fan out concurrently; a failed
// lookup leaves that line as delivered by the backend. Results keep
// the input order.
func (s *requestService) enrichRequestItems(ctx context.Context, token string, items []model.RequestItem) []model.RequestItem {
	enriched := make([]model.RequestItem, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, item := range items {
		g.Go(func() error {
			material, err := s.gw.GetMaterial(gctx, token, item.MaterialID)
			if err != nil {
				log.Printf("material %d: lookup failed, keeping line as-is: %v", item.MaterialID, err)
				enriched[i] = item
				return nil
			}
			item.MaterialName = material.Name
			item.MaterialCategory = material.Category
			if material.UnitPrice.Valid {
				item.UnitPrice = material.UnitPrice.Decimal
			}
			item.EstimatedCost = costing.LineEstimatedCost(item, &material)
			enriched[i] = item
			return nil
		})
	}
	_ = g.Wait()

	return enriched
}

// CreateRequest validates locally, then files the request upstream.
func (s *requestService) CreateRequest(ctx context.Context, sess *session.Session, input CreateRequestInput) (model.PurchaseRequest, error) {
	if !workflow.Allowed(sess.User.Role, workflow.ActionCreateRequest) {
		return model.PurchaseRequest{}, ErrForbidden
	}
	if input.SupplierID <= 0 {
		return model.PurchaseRequest{}, &workflow.ValidationError{Field: "supplier_id", Message: "a supplier must be selected"}
	}
	if strings.TrimSpace(input.Justification) == "" {
		return model.PurchaseRequest{}, &workflow.ValidationError{Field: "justification", Message: "a justification is required"}
	}
	if len(input.Items) == 0 {
		return model.PurchaseRequest{}, &workflow.ValidationError{Field: "items", Message: "at least one item is required"}
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return model.PurchaseRequest{}, &workflow.ValidationError{
				Field:   "items",
				Message: fmt.Sprintf("material %d: quantity must be positive", item.MaterialID),
			}
		}
	}

	payload := gateway.CreateRequestPayload{
		SupplierID:    input.SupplierID,
		Justification: strings.TrimSpace(input.Justification),
		Items:         make([]gateway.NewRequestItem, 0, len(input.Items)),
	}
	for _, item := range input.Items {
		payload.Items = append(payload.Items, gateway.NewRequestItem{
			MaterialID:    item.MaterialID,
			Quantity:      item.Quantity,
			EstimatedCost: item.EstimatedCost.Round(2),
		})
	}

	created, err := s.gw.CreateRequest(ctx, sess.Token, payload)
	if err != nil {
		return model.PurchaseRequest{}, err
	}

	if s.events != nil {
		s.events.Publish("requests.updated", map[string]interface{}{"request_id": created.RequestID})
	}
	return created, nil
}
