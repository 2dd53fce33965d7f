package services

import (
	"time"

	"food-ordering/internal/domain"
)

func CreateMockOrder(id uint64, typ domain.OrderType, status domain.OrderStatus, createdAt time.Time) *domain.Order {
	return &domain.Order{
		ID:            id,
		CustomerName:  TestCustomerName,
		CustomerPhone: "555-0101",
		OrderType:     typ,
		Total:         TestOrderTotal,
		Status:        status,
		PaymentMethod: "cash",
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func CreateMockMenuItem(id, categoryID uint64, name string, price float64, visible bool) *domain.MenuItem {
	return &domain.MenuItem{
		ID:             id,
		MenuCategoryID: categoryID,
		Name:           name,
		Price:          price,
		Visible:        visible,
	}
}

const (
	TestCustomerName = "Test Customer"
	TestOrderID      = uint64(1)
	TestItemID       = uint64(1)
	TestCategoryID   = uint64(1)
	TestItemName     = "Margherita Pizza"
	TestItemPrice    = 8.99
	TestOrderTotal   = 21.97
)
