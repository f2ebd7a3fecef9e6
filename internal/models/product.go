package models

import "time"

// Category 商品分类
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductImage 商品图片
type ProductImage struct {
	ID        int    `json:"id"`
	Image     string `json:"image"`     // 相对路径
	ImageURL  string `json:"image_url"` // 完整 URL
	AltText   string `json:"alt_text"`
	Order     int    `json:"order"`
	IsPrimary bool   `json:"is_primary"`
}

// Product 商品
type Product struct {
	ID                 string         `json:"id"`
	Category           Category       `json:"category"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	BasePrice          Money          `json:"base_price"`
	SalePrice          Money          `json:"sale_price"`
	DiscountPercentage string         `json:"discount_percentage"`
	StockQuantity      int            `json:"stock_quantity"`
	IsAvailable        bool           `json:"is_available"`
	IsFeatured         bool           `json:"is_featured"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	Images             []ProductImage `json:"images,omitempty"`
	Image              string         `json:"image,omitempty"` // 旧字段，兼容单图
}

// PrimaryImageURL 取主图地址，没有图片时返回空串
func (p Product) PrimaryImageURL() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return p.Image
}

// ProductPage 分页商品列表
type ProductPage struct {
	Count    int       `json:"count"`
	Next     string    `json:"next"`
	Previous string    `json:"previous"`
	Results  []Product `json:"results"`
}
