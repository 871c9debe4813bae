package gateway

import (
	"context"
	"fmt"

	"dashboard/internal/model"
)

// ListOrders fetches all orders.
func (c *Client) ListOrders(ctx context.Context, token string) ([]model.Order, error) {
	var orders []model.Order
	if err := c.get(ctx, token, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches a single order by ID.
func (c *Client) GetOrder(ctx context.Context, token string, orderID int64) (model.Order, error) {
	var order model.Order
	if err := c.get(ctx, token, fmt.Sprintf("/orders/%d", orderID), &order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// OrderItems fetches the line items of an order.
func (c *Client) OrderItems(ctx context.Context, token string, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := c.get(ctx, token, fmt.Sprintf("/order-items/%d", orderID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateOrderTracking relays a tracking-status change to the backend.
func (c *Client) UpdateOrderTracking(ctx context.Context, token string, orderID int64, status string) (model.Order, error) {
	payload := map[string]string{"tracking_status": status}
	var updated model.Order
	if err := c.put(ctx, token, fmt.Sprintf("/orders/%d/tracking", orderID), payload, &updated); err != nil {
		return model.Order{}, err
	}
	return updated, nil
}
