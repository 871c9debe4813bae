package service

import (
	"context"
	"errors"
	"testing"

	"dashboard/internal/gateway"
	"dashboard/internal/model"
	"dashboard/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideRejectWithoutCommentFailsLocally(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewApprovalService(gw, nil)

	_, err := svc.Decide(context.Background(), financeSession(), 1, workflow.ActionReject, "   ")

	var verr *workflow.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "comment", verr.Field)
	assert.Zero(t, gw.callCount(), "validation failures must not reach the backend")
}

func TestDecideRequestInfoWithoutCommentFailsLocally(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewApprovalService(gw, nil)

	_, err := svc.Decide(context.Background(), financeSession(), 1, workflow.ActionRequestInfo, "")

	var verr *workflow.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Zero(t, gw.callCount())
}

func TestDecideForbiddenForLogistics(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewApprovalService(gw, nil)

	_, err := svc.Decide(context.Background(), logisticsSession(), 1, workflow.ActionApprove, "")

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, gw.callCount())
}

func TestDecideRejectsNonPendingRequest(t *testing.T) {
	gw := &fakeGateway{
		getRequestFn: func(_ context.Context, _ string, requestID int64) (model.PurchaseRequest, error) {
			return model.PurchaseRequest{RequestID: requestID, Status: model.RequestStatusApproved}, nil
		},
	}
	svc := NewApprovalService(gw, nil)

	_, err := svc.Decide(context.Background(), financeSession(), 1, workflow.ActionApprove, "")

	var terr *workflow.InvalidTransitionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, model.RequestStatusApproved, terr.Current)
	assert.Equal(t, []string{"GetRequest"}, gw.calls, "no approval must be filed")
}

func TestDecideApproveFilesApprovalAndPublishes(t *testing.T) {
	var gotPayload gateway.CreateApprovalPayload
	gw := &fakeGateway{
		getRequestFn: func(_ context.Context, _ string, requestID int64) (model.PurchaseRequest, error) {
			return model.PurchaseRequest{RequestID: requestID, Status: model.RequestStatusPending}, nil
		},
		createApprovalFn: func(_ context.Context, _ string, payload gateway.CreateApprovalPayload) (model.Approval, error) {
			gotPayload = payload
			return model.Approval{ApprovalID: 5, RequestID: payload.RequestID, Decision: payload.Decision}, nil
		},
	}
	events := &fakeBroadcaster{}
	svc := NewApprovalService(gw, events)

	created, err := svc.Decide(context.Background(), financeSession(), 7, workflow.ActionApprove, "  looks fine  ")
	require.NoError(t, err)

	assert.Equal(t, int64(7), gotPayload.RequestID)
	assert.Equal(t, model.DecisionApproved, gotPayload.Decision)
	assert.Equal(t, "looks fine", gotPayload.Comment, "comments are trimmed before sending")
	assert.Equal(t, model.DecisionApproved, created.Decision)
	assert.Equal(t, []string{"approvals.updated"}, events.published())
}

func TestDecideRequestInfoRecordsPendingInfo(t *testing.T) {
	var gotPayload gateway.CreateApprovalPayload
	gw := &fakeGateway{
		getRequestFn: func(_ context.Context, _ string, requestID int64) (model.PurchaseRequest, error) {
			return model.PurchaseRequest{RequestID: requestID, Status: model.RequestStatusPending}, nil
		},
		createApprovalFn: func(_ context.Context, _ string, payload gateway.CreateApprovalPayload) (model.Approval, error) {
			gotPayload = payload
			return model.Approval{Decision: payload.Decision}, nil
		},
	}
	svc := NewApprovalService(gw, nil)

	_, err := svc.Decide(context.Background(), financeSession(), 3, workflow.ActionRequestInfo, "need quotes")
	require.NoError(t, err)
	assert.Equal(t, model.DecisionPendingInfo, gotPayload.Decision)
}

func TestForRequestAbsentDecisionIsNil(t *testing.T) {
	gw := &fakeGateway{
		approvalForRequestFn: func(_ context.Context, _ string, _ int64) (model.Approval, error) {
			return model.Approval{}, gateway.ErrNotFound
		},
	}
	svc := NewApprovalService(gw, nil)

	approval, err := svc.ForRequest(context.Background(), financeSession(), 1)
	require.NoError(t, err)
	assert.Nil(t, approval)
}

func TestForRequestPropagatesOtherErrors(t *testing.T) {
	gw := &fakeGateway{
		approvalForRequestFn: func(_ context.Context, _ string, _ int64) (model.Approval, error) {
			return model.Approval{}, gateway.ErrUnauthenticated
		},
	}
	svc := NewApprovalService(gw, nil)

	_, err := svc.ForRequest(context.Background(), financeSession(), 1)
	assert.ErrorIs(t, err, gateway.ErrUnauthenticated)
}
