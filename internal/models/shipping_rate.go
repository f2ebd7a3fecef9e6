package models

// ShippingRate 配送方式。用户从固定候选集中选择，不会新建。
type ShippingRate struct {
	ID               string `json:"id"`
	CarrierName      string `json:"carrier_name"`
	Price            string `json:"price"` // 十进制字符串，如 "50.00"
	DeliveryEstimate string `json:"delivery_estimate"`
}
