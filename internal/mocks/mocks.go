package mocks

import (
	"context"
	"time"

	"food-ordering/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

// FindByID hands back a copy, the way a real query materializes a fresh row,
// so callers mutating the result never alias each other.
func (m *MockOrderRepository) FindByID(id uint64) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	o := *args.Get(0).(*domain.Order)
	return &o, args.Error(1)
}

func (m *MockOrderRepository) FindAll(status domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id uint64, from, to domain.OrderStatus, at time.Time) (bool, error) {
	args := m.Called(id, from, to, at)
	return args.Bool(0), args.Error(1)
}

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) ListCategories() ([]domain.MenuCategory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuCategory), args.Error(1)
}

func (m *MockMenuRepository) ListCategoriesWithItems(visibleOnly bool) ([]domain.MenuCategory, error) {
	args := m.Called(visibleOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuCategory), args.Error(1)
}

func (m *MockMenuRepository) FindCategoryByID(id uint64) (*domain.MenuCategory, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuCategory), args.Error(1)
}

func (m *MockMenuRepository) CreateCategory(c *domain.MenuCategory) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockMenuRepository) UpdateCategory(c *domain.MenuCategory) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockMenuRepository) DeleteCategory(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMenuRepository) CountItemsInCategory(id uint64) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuRepository) ListItems(categoryID uint64, visibleOnly bool) ([]domain.MenuItem, error) {
	args := m.Called(categoryID, visibleOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindItemByID(id uint64) (*domain.MenuItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) CreateItem(i *domain.MenuItem) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *MockMenuRepository) UpdateItem(i *domain.MenuItem) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *MockMenuRepository) DeleteItem(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockBusinessInfoRepository struct {
	mock.Mock
}

func (m *MockBusinessInfoRepository) Find() (*domain.BusinessInfo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessInfo), args.Error(1)
}

func (m *MockBusinessInfoRepository) Save(info *domain.BusinessInfo) error {
	args := m.Called(info)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}
