package gateway

import (
	"context"
	"fmt"

	"dashboard/internal/model"

	"github.com/shopspring/decimal"
)

// NewRequestItem is one line of a request-creation payload.
type NewRequestItem struct {
	MaterialID    int64           `json:"material_id"`
	Quantity      int64           `json:"quantity"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

// CreateRequestPayload is the body for POST /purchase-requests.
type CreateRequestPayload struct {
	SupplierID    int64            `json:"supplier_id"`
	Justification string           `json:"justification"`
	Items         []NewRequestItem `json:"items"`
}

// ListRequests fetches all purchase requests visible to the caller.
func (c *Client) ListRequests(ctx context.Context, token string) ([]model.PurchaseRequest, error) {
	var requests []model.PurchaseRequest
	if err := c.get(ctx, token, "/purchase-requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetRequest fetches a single purchase request by ID.
func (c *Client) GetRequest(ctx context.Context, token string, requestID int64) (model.PurchaseRequest, error) {
	var request model.PurchaseRequest
	if err := c.get(ctx, token, fmt.Sprintf("/purchase-requests/%d", requestID), &request); err != nil {
		return model.PurchaseRequest{}, err
	}
	return request, nil
}

// RequestItems fetches the line items of a purchase request.
func (c *Client) RequestItems(ctx context.Context, token string, requestID int64) ([]model.RequestItem, error) {
	var items []model.RequestItem
	if err := c.get(ctx, token, fmt.Sprintf("/request-items/%d", requestID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateRequest files a new purchase request.
func (c *Client) CreateRequest(ctx context.Context, token string, payload CreateRequestPayload) (model.PurchaseRequest, error) {
	var created model.PurchaseRequest
	if err := c.post(ctx, token, "/purchase-requests", payload, &created); err != nil {
		return model.PurchaseRequest{}, err
	}
	return created, nil
}
