// Package stats derives the dashboard summary views from raw request
// and order collections. Pure functions over snapshots; no I/O.
package stats

import (
	"math"
	"sort"

	"dashboard/internal/model"
)

// RecentLimit is how many records the dashboard's recent lists show.
const RecentLimit = 5

// Reduce folds full request and order collections into the dashboard
// view: status counts, fulfillment counts, approval rate and the five
// most recent records of each kind.
func Reduce(requests []model.PurchaseRequest, orders []model.Order) model.DashboardData {
	requestStats := ReduceRequests(requests)
	return model.DashboardData{
		RequestStats:   requestStats,
		RecentRequests: RecentRequests(requests, RecentLimit),
		OrderStats:     ReduceOrders(orders),
		RecentOrders:   RecentOrders(orders, RecentLimit),
		ApprovalRate:   ApprovalRate(requestStats),
	}
}

// ReduceRequests partitions requests by status. Statuses outside the
// three named buckets (ordered, delivered, closed) still count toward
// Total.
func ReduceRequests(requests []model.PurchaseRequest) model.RequestStats {
	stats := model.RequestStats{Total: len(requests)}
	for _, request := range requests {
		switch request.Status {
		case model.RequestStatusPending:
			stats.Pending++
		case model.RequestStatusApproved:
			stats.Approved++
		case model.RequestStatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

// ReduceOrders counts orders by fulfillment stage. prepared and
// shipped both count as in progress.
func ReduceOrders(orders []model.Order) model.OrderStats {
	stats := model.OrderStats{Total: len(orders)}
	for _, order := range orders {
		switch order.TrackingStatus {
		case model.TrackingPrepared, model.TrackingShipped:
			stats.InProgress++
		case model.TrackingDelivered:
			stats.Delivered++
		}
	}
	return stats
}

// ApprovalRate returns the approved share of all requests as a
// percentage rounded to 2 decimals. An empty collection yields 0, not
// a division error.
func ApprovalRate(stats model.RequestStats) float64 {
	if stats.Total == 0 {
		return 0
	}
	rate := float64(stats.Approved) / float64(stats.Total) * 100
	return math.Round(rate*100) / 100
}

// RecentRequests returns up to limit requests sorted by creation time,
// newest first. Ties keep their input order.
func RecentRequests(requests []model.PurchaseRequest, limit int) []model.PurchaseRequest {
	recent := make([]model.PurchaseRequest, len(requests))
	copy(recent, requests)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// RecentOrders returns up to limit orders sorted by order time, newest
// first. Ties keep their input order.
func RecentOrders(orders []model.Order, limit int) []model.Order {
	recent := make([]model.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].OrderedAt.After(recent[j].OrderedAt)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}
