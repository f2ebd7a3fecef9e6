package models

// OrderItem 订单项（后端返回）
type OrderItem struct {
	ID            int    `json:"id"`
	ProductName   string `json:"product_name"`
	Quantity      int    `json:"quantity"`
	Price         Money  `json:"price"`
	ExtendedPrice Money  `json:"extended_price"`
}

// Order 订单（后端实体，客户端只读）
type Order struct {
	ID         string      `json:"id"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items,omitempty"`
	TotalPrice Money       `json:"total_price"`
	CreatedAt  string      `json:"created_at,omitempty"`
	PaidAt     string      `json:"paid_at,omitempty"`
}

// UserProfile 用户资料
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
