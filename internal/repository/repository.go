package repository

import (
	"time"

	"food-ordering/internal/domain"
)

// OrderRepository persists orders and their line items. UpdateStatus is a
// compare-and-swap: it only moves the row whose status still equals from,
// and reports whether a row was moved. That single guarantee is what keeps
// two workers from both accepting the same order.
type OrderRepository interface {
	Save(order *domain.Order) error
	FindByID(id uint64) (*domain.Order, error)
	FindAll(status domain.OrderStatus) ([]domain.Order, error)
	UpdateStatus(id uint64, from, to domain.OrderStatus, at time.Time) (bool, error)
}

type MenuRepository interface {
	ListCategories() ([]domain.MenuCategory, error)
	ListCategoriesWithItems(visibleOnly bool) ([]domain.MenuCategory, error)
	FindCategoryByID(id uint64) (*domain.MenuCategory, error)
	CreateCategory(c *domain.MenuCategory) error
	UpdateCategory(c *domain.MenuCategory) error
	DeleteCategory(id uint64) error
	CountItemsInCategory(id uint64) (int64, error)

	ListItems(categoryID uint64, visibleOnly bool) ([]domain.MenuItem, error)
	FindItemByID(id uint64) (*domain.MenuItem, error)
	CreateItem(i *domain.MenuItem) error
	UpdateItem(i *domain.MenuItem) error
	DeleteItem(id uint64) error
}

// BusinessInfoRepository manages the singleton business record.
type BusinessInfoRepository interface {
	Find() (*domain.BusinessInfo, error)
	Save(info *domain.BusinessInfo) error
}
