package api

import (
	"context"
	"fmt"

	"github.com/nexus-commerce/storefront/internal/models"
)

// RemoteCartItem 服务端购物车项
type RemoteCartItem struct {
	ID            int          `json:"id"`
	ProductName   string       `json:"product_name"`
	Quantity      int          `json:"quantity"`
	Price         models.Money `json:"price"`
	ExtendedPrice models.Money `json:"extended_price"`
}

// RemoteCart 服务端购物车。与本地购物车分离，
// 对账时以本地为准单向同步（见 checkout.Reconciler）。
type RemoteCart struct {
	ID         string           `json:"id"`
	Status     string           `json:"status"`
	Items      []RemoteCartItem `json:"items"`
	TotalPrice models.Money     `json:"total_price"`
}

// GetRemoteCart 获取服务端购物车
func (c *Client) GetRemoteCart(ctx context.Context) (*RemoteCart, error) {
	var cart RemoteCart
	if err := c.get(ctx, "/cart/", &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddRemoteCartItem 向服务端购物车添加商品
func (c *Client) AddRemoteCartItem(ctx context.Context, productID string, quantity int) (*RemoteCartItem, error) {
	body := map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	}
	var item RemoteCartItem
	if err := c.post(ctx, "/cart/items/", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateRemoteCartItem 更新服务端购物车项数量
func (c *Client) UpdateRemoteCartItem(ctx context.Context, itemID, quantity int) (*RemoteCartItem, error) {
	var item RemoteCartItem
	if err := c.patch(ctx, fmt.Sprintf("/cart/items/%d/", itemID), map[string]int{"quantity": quantity}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveRemoteCartItem 删除服务端购物车项
func (c *Client) RemoveRemoteCartItem(ctx context.Context, itemID int) error {
	return c.delete(ctx, fmt.Sprintf("/cart/items/%d/", itemID))
}
