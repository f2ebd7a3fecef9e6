package checkout

import "github.com/nexus-commerce/storefront/internal/models"

// ShippingRates 配送方式固定候选集。
// TODO: 后端配送报价接口上线后改为远程获取。
func ShippingRates() []models.ShippingRate {
	return []models.ShippingRate{
		{
			ID:               "standard",
			CarrierName:      "Amana Express",
			Price:            "50.00",
			DeliveryEstimate: "3-5 business days",
		},
		{
			ID:               "express",
			CarrierName:      "Amana Express",
			Price:            "100.00",
			DeliveryEstimate: "1-2 business days",
		},
	}
}

// FindShippingRate 按 ID 查找候选配送方式
func FindShippingRate(id string) (models.ShippingRate, bool) {
	for _, rate := range ShippingRates() {
		if rate.ID == id {
			return rate, true
		}
	}
	return models.ShippingRate{}, false
}
