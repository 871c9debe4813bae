package service

import (
	"context"
	"strings"

	"dashboard/internal/gateway"
	"dashboard/internal/model"
	"dashboard/internal/session"
	"dashboard/internal/workflow"
)

type ApprovalService interface {
	// Decide fires approve/reject/request_info on a pending request.
	Decide(ctx context.Context, sess *session.Session, requestID int64, action workflow.Action, comment string) (model.Approval, error)
	// ForRequest returns the decision filed for a request, or nil when
	// none exists yet.
	ForRequest(ctx context.Context, sess *session.Session, requestID int64) (*model.Approval, error)
}

type approvalService struct {
	gw     ProcurementGateway
	events EventBroadcaster
}

func NewApprovalService(gw ProcurementGateway, events EventBroadcaster) ApprovalService {
	return &approvalService{gw: gw, events: events}
}

// Decide validates everything resolvable locally (capability, comment
// requirement) before any round-trip, then checks the lifecycle
// against the request's current status and files the approval. The
// backend owns the resulting transition and order creation.
func (s *approvalService) Decide(ctx context.Context, sess *session.Session, requestID int64, action workflow.Action, comment string) (model.Approval, error) {
	if !workflow.Allowed(sess.User.Role, action) {
		return model.Approval{}, ErrForbidden
	}
	if err := workflow.ValidateComment(action, comment); err != nil {
		return model.Approval{}, err
	}

	request, err := s.gw.GetRequest(ctx, sess.Token, requestID)
	if err != nil {
		return model.Approval{}, err
	}
	if err := workflow.ValidateDecision(request.Status, action, comment); err != nil {
		return model.Approval{}, err
	}

	created, err := s.gw.CreateApproval(ctx, sess.Token, gateway.CreateApprovalPayload{
		RequestID: requestID,
		Decision:  workflow.DecisionFor(action),
		Comment:   strings.TrimSpace(comment),
	})
	if err != nil {
		return model.Approval{}, err
	}

	if s.events != nil {
		s.events.Publish("approvals.updated", map[string]interface{}{
			"request_id": requestID,
			"decision":   created.Decision,
		})
	}
	return created, nil
}

func (s *approvalService) ForRequest(ctx context.Context, sess *session.Session, requestID int64) (*model.Approval, error) {
	approval, err := s.gw.ApprovalForRequest(ctx, sess.Token, requestID)
	if err != nil {
		if err == gateway.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &approval, nil
}
