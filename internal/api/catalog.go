package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nexus-commerce/storefront/internal/models"
)

// ProductFilter 商品列表筛选条件
type ProductFilter struct {
	Category string
	Search   string
	MinPrice string
	MaxPrice string
	Ordering string
	Page     int
	PageSize int
}

// ListProducts 分页获取商品列表
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) (*models.ProductPage, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.MinPrice != "" {
		query.Set("min_price", filter.MinPrice)
	}
	if filter.MaxPrice != "" {
		query.Set("max_price", filter.MaxPrice)
	}
	if filter.Ordering != "" {
		query.Set("ordering", filter.Ordering)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(filter.PageSize))
	}

	path := "/catalog/products/"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page models.ProductPage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct 获取单个商品
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, fmt.Sprintf("/catalog/products/%s/", url.PathEscape(id)), &product); err != nil {
		return nil, err
	}
	return &product, nil
}
