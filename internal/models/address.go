package models

// Address 收货地址。字段名与后端序列化器保持 snake_case 对应。
type Address struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	PhoneNumber   string `json:"phone_number" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	AddressLine1  string `json:"address_line_1" validate:"required"`
	AddressLine2  string `json:"address_line_2"`
	City          string `json:"city" validate:"required"`
	StateProvince string `json:"state_province" validate:"required"`
	PostalCode    string `json:"postal_code" validate:"required"`
	Country       string `json:"country" validate:"required"`
}
