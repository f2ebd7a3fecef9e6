package models

import "github.com/shopspring/decimal"

// CartItem 本地购物车项。每个商品至多一条，数量归零即删除。
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice Money  `json:"unit_price"`
	ImageURL  string `json:"image_url,omitempty"`
	Quantity  int    `json:"quantity"`
}

// NewCartItem 从商品创建购物车项（数量 1，单价取促销价）
func NewCartItem(product Product) CartItem {
	return CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.SalePrice,
		ImageURL:  product.PrimaryImageURL(),
		Quantity:  1,
	}
}

// LineTotal 单行小计（单价 × 数量）
func (i CartItem) LineTotal() Money {
	return NewMoneyFromDecimal(i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))))
}
