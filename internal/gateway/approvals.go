package gateway

import (
	"context"
	"fmt"

	"dashboard/internal/model"
)

// CreateApprovalPayload is the body for POST /approvals. The credential
// rides in the Authorization header like every other call.
type CreateApprovalPayload struct {
	RequestID int64  `json:"request_id"`
	Decision  string `json:"decision"`
	Comment   string `json:"comment"`
}

// CreateApproval files a financial decision for a pending request. The
// backend applies the status transition and, on approval, creates the
// downstream order.
func (c *Client) CreateApproval(ctx context.Context, token string, payload CreateApprovalPayload) (model.Approval, error) {
	var created model.Approval
	if err := c.post(ctx, token, "/approvals", payload, &created); err != nil {
		return model.Approval{}, err
	}
	return created, nil
}

// ApprovalForRequest fetches the decision filed for a request, if any.
// ErrNotFound means no decision has been filed yet, which callers
// treat as a normal empty state.
func (c *Client) ApprovalForRequest(ctx context.Context, token string, requestID int64) (model.Approval, error) {
	var approval model.Approval
	if err := c.get(ctx, token, fmt.Sprintf("/approvals/request/%d", requestID), &approval); err != nil {
		return model.Approval{}, err
	}
	return approval, nil
}
