package checkout

import (
	"context"

	"github.com/nexus-commerce/storefront/internal/api"
	"github.com/nexus-commerce/storefront/internal/logger"
	"github.com/nexus-commerce/storefront/internal/models"
)

// RemoteCartAPI 对账所需的服务端购物车操作
type RemoteCartAPI interface {
	GetRemoteCart(ctx context.Context) (*api.RemoteCart, error)
	AddRemoteCartItem(ctx context.Context, productID string, quantity int) (*api.RemoteCartItem, error)
}

// Reconciler 购物车对账：把本地购物车单向同步到服务端购物车。
// 纯尽力而为，最终下单请求体直接由本地购物车与向导状态构造，
// 服务端购物车只是旁路（如弃单挽回），不是数据源。
type Reconciler struct {
	api RemoteCartAPI
}

// NewReconciler 创建对账器
func NewReconciler(remoteAPI RemoteCartAPI) *Reconciler {
	return &Reconciler{api: remoteAPI}
}

// Sync 确保服务端购物车包含本地条目。幂等：
//  1. 本地为空直接返回，不发任何请求；
//  2. 获取失败（如服务端尚无购物车）或服务端为空时逐项补发 add；
//  3. 单项失败只记日志，不阻断下单。
//
// 服务端多出的条目不做删除或回并。
func (r *Reconciler) Sync(ctx context.Context, items []models.CartItem) {
	if len(items) == 0 {
		return
	}

	remote, err := r.api.GetRemoteCart(ctx)
	if err == nil && len(remote.Items) > 0 {
		return
	}
	if err != nil {
		logger.Debugw("remote_cart_fetch_failed", "error", err)
	}

	for _, item := range items {
		if _, err := r.api.AddRemoteCartItem(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Warnw("remote_cart_add_failed",
				"product_id", item.ProductID,
				"quantity", item.Quantity,
				"error", err)
		}
	}
}
