package service

import (
	"context"

	"dashboard/internal/model"
	"dashboard/internal/session"
	"dashboard/internal/stats"

	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	Overview(ctx context.Context, sess *session.Session) (model.DashboardData, error)
}

type dashboardService struct {
	gw ProcurementGateway
}

func NewDashboardService(gw ProcurementGateway) DashboardService {
	return &dashboardService{gw: gw}
}

// Overview fetches requests and orders concurrently, since neither
// fetch depends on the other, and reduces them into the dashboard view.
func (s *dashboardService) Overview(ctx context.Context, sess *session.Session) (model.DashboardData, error) {
	var (
		requests []model.PurchaseRequest
		orders   []model.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.gw.ListRequests(gctx, sess.Token)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.gw.ListOrders(gctx, sess.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.DashboardData{}, err
	}

	return stats.Reduce(requests, orders), nil
}
