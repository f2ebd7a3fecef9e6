package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nexus-commerce/storefront/internal/models"
)

// ListOrders 获取当前用户订单列表
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "/cart/orders/", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder 获取订单详情
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	path := fmt.Sprintf("/cart/orders/%s/", url.PathEscape(orderID))
	if err := c.get(ctx, path, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
