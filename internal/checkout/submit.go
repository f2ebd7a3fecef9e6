package checkout

import (
	"context"
	"errors"

	"github.com/nexus-commerce/storefront/internal/api"
	"github.com/nexus-commerce/storefront/internal/cart"
	"github.com/nexus-commerce/storefront/internal/logger"
	"github.com/nexus-commerce/storefront/internal/models"

	"github.com/google/uuid"
)

// genericSubmitError 错误体没有结构化信息时的兜底提示
const genericSubmitError = "Failed to place order. Please try again."

var errShippingAddressMissing = errors.New("shipping address is required")

// OrderAPI 下单所需的后端操作
type OrderAPI interface {
	CreateOrder(ctx context.Context, payload api.CheckoutPayload, idempotencyKey string) (*api.CheckoutResponse, error)
	CreateGuestOrder(ctx context.Context, payload api.CheckoutPayload, idempotencyKey string) (*api.CheckoutResponse, error)
}

// Confirmation 下单成功结果，核心只消费订单号与总额
type Confirmation struct {
	OrderID string
	Total   models.Money
}

// Submitter 订单提交
type Submitter struct {
	api OrderAPI
}

// NewSubmitter 创建订单提交器
func NewSubmitter(orderAPI OrderAPI) *Submitter {
	return &Submitter{api: orderAPI}
}

// PlaceOrder 由向导状态构造下单请求并提交。
// 已登录走 /cart/checkout/，游客走 /cart/guest/checkout/，请求体一致。
// 成功：清空本地购物车，状态置 succeeded 并推进到确认页。
// 失败：状态置 failed 记录消息，购物车原样保留供用户重试；
// 失败从不自动重试，重试必须由用户显式触发。
func (s *Submitter) PlaceOrder(ctx context.Context, session *Session, localCart *cart.Cart, authenticated bool) (*Confirmation, error) {
	session.BeginSubmission()

	if session.ShippingAddress == nil {
		session.SubmissionFailed(errShippingAddressMissing.Error())
		return nil, errShippingAddressMissing
	}

	payload := buildCheckoutPayload(*session.ShippingAddress)
	idempotencyKey := uuid.NewString()

	var resp *api.CheckoutResponse
	var err error
	if authenticated {
		resp, err = s.api.CreateOrder(ctx, payload, idempotencyKey)
	} else {
		resp, err = s.api.CreateGuestOrder(ctx, payload, idempotencyKey)
	}
	if err != nil {
		message := submitErrorMessage(err)
		session.SubmissionFailed(message)
		logger.Warnw("order_submit_failed",
			"authenticated", authenticated,
			"error", err)
		return nil, err
	}

	localCart.Clear()
	session.SubmissionSucceeded()
	session.Advance()
	logger.Infow("order_submit_succeeded",
		"order_id", resp.OrderID,
		"total", resp.Total.String(),
		"authenticated", authenticated)
	return &Confirmation{OrderID: resp.OrderID, Total: resp.Total}, nil
}

// buildCheckoutPayload 把地址摊平为后端的扁平字段命名
func buildCheckoutPayload(address models.Address) api.CheckoutPayload {
	return api.CheckoutPayload{
		FirstName:            address.FirstName,
		LastName:             address.LastName,
		PhoneNumber:          address.PhoneNumber,
		Email:                address.Email,
		ShippingAddress:      address.AddressLine1,
		ShippingAddressLine2: address.AddressLine2,
		ShippingCity:         address.City,
		ShippingState:        address.StateProvince,
		ShippingPostalCode:   address.PostalCode,
		ShippingCountry:      address.Country,
	}
}

// submitErrorMessage 提取用户可读的失败消息
func submitErrorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return genericSubmitError
}
