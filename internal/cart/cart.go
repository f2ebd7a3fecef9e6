package cart

import (
	"encoding/json"

	"github.com/nexus-commerce/storefront/internal/logger"
	"github.com/nexus-commerce/storefront/internal/models"
	"github.com/nexus-commerce/storefront/internal/store"

	"github.com/shopspring/decimal"
)

// storageKey 本地购物车的固定存储键
const storageKey = "cart"

// Cart 本地购物车。所有变更都是内存列表上的全函数，
// 每次变更后整表持久化；持久化失败只记日志，不影响内存状态。
type Cart struct {
	store *store.Store
	items []models.CartItem
}

// Load 创建购物车并加载已持久化的内容。
// 键不存在与空列表都按空购物车处理。
func Load(s *store.Store) *Cart {
	c := &Cart{store: s}
	if s == nil {
		return c
	}
	value, found, err := s.Get(storageKey)
	if err != nil {
		logger.Warnw("cart_load_failed", "error", err)
		return c
	}
	if !found || len(value) == 0 {
		return c
	}
	var items []models.CartItem
	if err := json.Unmarshal(value, &items); err != nil {
		logger.Warnw("cart_load_corrupt", "error", err)
		return c
	}
	c.items = items
	return c
}

// AddItem 加入商品：已存在则数量 +1，否则新建数量 1 的条目
func (c *Cart) AddItem(product models.Product) {
	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity++
			c.persist()
			return
		}
	}
	c.items = append(c.items, models.NewCartItem(product))
	c.persist()
}

// RemoveItem 删除商品对应的条目
func (c *Cart) RemoveItem(productID string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.persist()
}

// SetQuantity 精确设置数量；数量 ≤ 0 等价于删除
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.persist()
}

// Clear 清空购物车并整个移除持久化键（不是写入空列表），
// 重新加载时两种表示都按空处理。
func (c *Cart) Clear() {
	c.items = nil
	if c.store == nil {
		return
	}
	if err := c.store.Delete(storageKey); err != nil {
		logger.Warnw("cart_clear_failed", "error", err)
	}
}

// Items 当前条目快照
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty 购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Count 商品总件数（数量求和）
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total 按需重算合计，从不缓存，保证与条目永不脱节
func (c *Cart) Total() models.Money {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}

func (c *Cart) persist() {
	if c.store == nil {
		return
	}
	data, err := json.Marshal(c.items)
	if err != nil {
		logger.Errorw("cart_encode_failed", "error", err)
		return
	}
	if err := c.store.Put(storageKey, data); err != nil {
		logger.Warnw("cart_persist_failed", "error", err)
	}
}
