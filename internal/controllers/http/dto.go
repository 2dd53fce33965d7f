package http

import "food-ordering/internal/domain"

type OrderLineRequest struct {
	MenuItemID uint64 `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName" binding:"required"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerEmail   string             `json:"customerEmail"`
	DeliveryAddress string             `json:"deliveryAddress"`
	OrderType       domain.OrderType   `json:"orderType" binding:"required"`
	PaymentMethod   string             `json:"paymentMethod"`
	Notes           string             `json:"notes"`
	Items           []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderResponse struct {
	ID     uint64             `json:"id"`
	Status domain.OrderStatus `json:"status"`
	Total  float64            `json:"total"`
}

type UpdateStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

type CategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

type ItemRequest struct {
	MenuCategoryID uint64  `json:"menuCategoryId" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price" binding:"min=0"`
	ImageURL       string  `json:"imageUrl"`
	Visible        *bool   `json:"visible"`
	SortOrder      int     `json:"sortOrder"`
}

type BusinessInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
	LogoURL string `json:"logoUrl"`
}
