package stats

import (
	"testing"
	"time"

	"dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestAt(id int64, status string, createdAt time.Time) model.PurchaseRequest {
	return model.PurchaseRequest{RequestID: id, Status: status, CreatedAt: createdAt}
}

func orderAt(id int64, tracking string, orderedAt time.Time) model.Order {
	return model.Order{OrderID: id, TrackingStatus: tracking, OrderedAt: orderedAt}
}

func TestReduceRequests(t *testing.T) {
	now := time.Now()
	requests := []model.PurchaseRequest{
		requestAt(1, model.RequestStatusPending, now),
		requestAt(2, model.RequestStatusPending, now),
		requestAt(3, model.RequestStatusApproved, now),
		requestAt(4, model.RequestStatusRejected, now),
	}

	stats := ReduceRequests(requests)
	assert.Equal(t, model.RequestStats{Total: 4, Pending: 2, Approved: 1, Rejected: 1}, stats)
}

func TestReduceRequestsCountsUnbucketedInTotal(t *testing.T) {
	requests := []model.PurchaseRequest{
		requestAt(1, model.RequestStatusOrdered, time.Now()),
		requestAt(2, model.RequestStatusClosed, time.Now()),
	}

	stats := ReduceRequests(requests)
	assert.Equal(t, 2, stats.Total)
	assert.Zero(t, stats.Pending)
	assert.Zero(t, stats.Approved)
	assert.Zero(t, stats.Rejected)
}

func TestReduceOrders(t *testing.T) {
	now := time.Now()
	orders := []model.Order{
		orderAt(1, model.TrackingPrepared, now),
		orderAt(2, model.TrackingShipped, now),
		orderAt(3, model.TrackingDelivered, now),
	}

	stats := ReduceOrders(orders)
	assert.Equal(t, model.OrderStats{Total: 3, InProgress: 2, Delivered: 1}, stats)
}

func TestApprovalRate(t *testing.T) {
	assert.Zero(t, ApprovalRate(model.RequestStats{}), "empty collection yields 0, not NaN")
	assert.Equal(t, 25.0, ApprovalRate(model.RequestStats{Total: 4, Approved: 1}))
	assert.Equal(t, 33.33, ApprovalRate(model.RequestStats{Total: 3, Approved: 1}))
	assert.Equal(t, 100.0, ApprovalRate(model.RequestStats{Total: 2, Approved: 2}))
}

func TestRecentRequestsNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var requests []model.PurchaseRequest
	for i := int64(1); i <= 7; i++ {
		requests = append(requests, requestAt(i, model.RequestStatusPending, base.Add(time.Duration(i)*time.Hour)))
	}

	recent := RecentRequests(requests, RecentLimit)
	require.Len(t, recent, 5)
	assert.Equal(t, int64(7), recent[0].RequestID)
	assert.Equal(t, int64(3), recent[4].RequestID)

	// Input is untouched.
	assert.Equal(t, int64(1), requests[0].RequestID)
}

func TestRecentRequestsTiesKeepInputOrder(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	requests := []model.PurchaseRequest{
		requestAt(10, model.RequestStatusPending, at),
		requestAt(20, model.RequestStatusPending, at),
		requestAt(30, model.RequestStatusPending, at),
	}

	recent := RecentRequests(requests, RecentLimit)
	require.Len(t, recent, 3)
	assert.Equal(t, int64(10), recent[0].RequestID)
	assert.Equal(t, int64(20), recent[1].RequestID)
	assert.Equal(t, int64(30), recent[2].RequestID)
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := []model.Order{
		orderAt(1, model.TrackingPrepared, base),
		orderAt(2, model.TrackingShipped, base.Add(2*time.Hour)),
		orderAt(3, model.TrackingDelivered, base.Add(time.Hour)),
	}

	recent := RecentOrders(orders, RecentLimit)
	require.Len(t, recent, 3)
	assert.Equal(t, int64(2), recent[0].OrderID)
	assert.Equal(t, int64(3), recent[1].OrderID)
	assert.Equal(t, int64(1), recent[2].OrderID)
}

func TestReduce(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	requests := []model.PurchaseRequest{
		requestAt(1, model.RequestStatusApproved, base),
		requestAt(2, model.RequestStatusPending, base.Add(time.Hour)),
	}
	orders := []model.Order{
		orderAt(1, model.TrackingShipped, base),
	}

	data := Reduce(requests, orders)
	assert.Equal(t, model.RequestStats{Total: 2, Pending: 1, Approved: 1}, data.RequestStats)
	assert.Equal(t, model.OrderStats{Total: 1, InProgress: 1}, data.OrderStats)
	assert.Equal(t, 50.0, data.ApprovalRate)
	require.Len(t, data.RecentRequests, 2)
	assert.Equal(t, int64(2), data.RecentRequests[0].RequestID)
	assert.Len(t, data.RecentOrders, 1)
}

func TestReduceEmpty(t *testing.T) {
	data := Reduce(nil, nil)
	assert.Zero(t, data.RequestStats.Total)
	assert.Zero(t, data.OrderStats.Total)
	assert.Zero(t, data.ApprovalRate)
	assert.Empty(t, data.RecentRequests)
	assert.Empty(t, data.RecentOrders)
}
