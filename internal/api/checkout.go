package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nexus-commerce/storefront/internal/models"
)

// CheckoutPayload 下单请求体，扁平 snake_case 字段直接对应后端
type CheckoutPayload struct {
	FirstName            string `json:"first_name,omitempty"`
	LastName             string `json:"last_name,omitempty"`
	PhoneNumber          string `json:"phone_number,omitempty"`
	Email                string `json:"email,omitempty"`
	ShippingAddress      string `json:"shipping_address"`
	ShippingAddressLine2 string `json:"shipping_address_line_2,omitempty"`
	ShippingCity         string `json:"shipping_city"`
	ShippingState        string `json:"shipping_state,omitempty"`
	ShippingPostalCode   string `json:"shipping_postal_code"`
	ShippingCountry      string `json:"shipping_country,omitempty"`
}

// CheckoutResponse 下单响应
type CheckoutResponse struct {
	Message string       `json:"message"`
	OrderID string       `json:"order_id"`
	Total   models.Money `json:"total"`
}

// PaymentResponse 支付响应
type PaymentResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	PaidAt  string `json:"paid_at"`
}

// CreateOrder 登录用户下单。idempotencyKey 用于后端去重，
// 同一次提交重试不会重复建单。
func (c *Client) CreateOrder(ctx context.Context, payload CheckoutPayload, idempotencyKey string) (*CheckoutResponse, error) {
	return c.submitOrder(ctx, "/cart/checkout/", payload, idempotencyKey)
}

// CreateGuestOrder 游客下单，请求体与登录下单一致
func (c *Client) CreateGuestOrder(ctx context.Context, payload CheckoutPayload, idempotencyKey string) (*CheckoutResponse, error) {
	return c.submitOrder(ctx, "/cart/guest/checkout/", payload, idempotencyKey)
}

func (c *Client) submitOrder(ctx context.Context, path string, payload CheckoutPayload, idempotencyKey string) (*CheckoutResponse, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{"Idempotency-Key": idempotencyKey}
	}
	var resp CheckoutResponse
	if err := c.do(ctx, http.MethodPost, path, payload, &resp, headers); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PayOrder 触发订单支付
func (c *Client) PayOrder(ctx context.Context, orderID string) (*PaymentResponse, error) {
	var resp PaymentResponse
	path := fmt.Sprintf("/cart/orders/%s/pay/", url.PathEscape(orderID))
	if err := c.post(ctx, path, map[string]string{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
