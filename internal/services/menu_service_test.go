package services

import (
	"context"
	"testing"

	"food-ordering/internal/domain"
	"food-ordering/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/sync/errgroup"
)

func TestMenuService_ListCatalog_VisibleOnly(t *testing.T) {
	mockRepo := new(mocks.MockMenuRepository)
	mockRepo.On("ListCategoriesWithItems", true).Return([]domain.MenuCategory{
		{
			ID: 1, Name: "Pizzas", SortOrder: 0,
			Items: []domain.MenuItem{
				{ID: 1, MenuCategoryID: 1, Name: "Margherita Pizza", Price: 8.99, Visible: true, SortOrder: 0},
				{ID: 2, MenuCategoryID: 1, Name: "Diavola", Price: 10.99, Visible: true, SortOrder: 1},
			},
		},
		{ID: 2, Name: "Sides", SortOrder: 1},
	}, nil)

	service := NewMenuService(mockRepo)
	cats, err := service.ListCatalog(context.Background())

	assert.NoError(t, err)
	assert.Len(t, cats, 2)
	for _, cat := range cats {
		for _, item := range cat.Items {
			assert.True(t, item.Visible)
		}
	}
	mockRepo.AssertExpectations(t)
}

func TestMenuService_CreateCategory(t *testing.T) {
	tests := []struct {
		name          string
		categoryName  string
		setupMocks    func(*mocks.MockMenuRepository)
		expectedError string
	}{
		{
			name:         "valid category",
			categoryName: "Desserts",
			setupMocks: func(m *mocks.MockMenuRepository) {
				m.On("CreateCategory", mock.AnythingOfType("*domain.MenuCategory")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.MenuCategory).ID = 3
				})
			},
		},
		{
			name:          "empty name rejected",
			categoryName:  "   ",
			setupMocks:    func(*mocks.MockMenuRepository) {},
			expectedError: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockMenuRepository)
			tt.setupMocks(mockRepo)

			service := NewMenuService(mockRepo)
			cat, err := service.CreateCategory(context.Background(), tt.categoryName, 2)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				assert.Nil(t, cat)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint64(3), cat.ID)
				assert.Equal(t, tt.categoryName, cat.Name)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMenuService_DeleteCategory(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockMenuRepository)
		expectedError error
	}{
		{
			name: "empty category deletes",
			setupMocks: func(m *mocks.MockMenuRepository) {
				m.On("FindCategoryByID", uint64(1)).Return(&domain.MenuCategory{ID: 1, Name: "Sides"}, nil)
				m.On("CountItemsInCategory", uint64(1)).Return(int64(0), nil)
				m.On("DeleteCategory", uint64(1)).Return(nil)
			},
		},
		{
			name: "category with items is refused",
			setupMocks: func(m *mocks.MockMenuRepository) {
				m.On("FindCategoryByID", uint64(1)).Return(&domain.MenuCategory{ID: 1, Name: "Pizzas"}, nil)
				m.On("CountItemsInCategory", uint64(1)).Return(int64(4), nil)
			},
			expectedError: domain.ErrCategoryNotEmpty,
		},
		{
			name: "missing category",
			setupMocks: func(m *mocks.MockMenuRepository) {
				m.On("FindCategoryByID", uint64(1)).Return(nil, nil)
			},
			expectedError: domain.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockMenuRepository)
			tt.setupMocks(mockRepo)

			service := NewMenuService(mockRepo)
			err := service.DeleteCategory(context.Background(), 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMenuService_CreateItem(t *testing.T) {
	tests := []struct {
		name          string
		item          domain.MenuItem
		setupMocks    func(*mocks.MockMenuRepository)
		expectedError string
	}{
		{
			name: "valid item",
			item: domain.MenuItem{MenuCategoryID: 1, Name: "Tiramisu", Price: 5.49, Visible: true},
			setupMocks: func(m *mocks.MockMenuRepository) {
				m.On("FindCategoryByID", uint64(1)).Return(&domain.MenuCategory{ID: 1, Name: "Desserts"}, nil)
				m.On("CreateItem", mock.AnythingOfType("*domain.MenuItem")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.MenuItem).ID = 7
				})
			},
		},
		{
			name:          "empty name",
			item:          domain.MenuItem{MenuCategoryID: 1, Price: 5.49},
			setupMocks:    func(*mocks.MockMenuRepository) {},
			expectedError: "name",
		},
		{
			name:          "negative price",
			item:          domain.MenuItem{MenuCategoryID: 1, Name: "Tiramisu", Price: -1},
			setupMocks:    func(*mocks.MockMenuRepository) {},
			expectedError: "price",
		},
		{
			name:          "missing category id",
			item:          domain.MenuItem{Name: "Tiramisu", Price: 5.49},
			setupMocks:    func(*mocks.MockMenuRepository) {},
			expectedError: "menuCategoryId",
		},
		{
			name: "category does not exist",
			item: domain.MenuItem{MenuCategoryID: 9, Name: "Tiramisu", Price: 5.49},
			setupMocks: func(m *mocks.MockMenuRepository) {
				m.On("FindCategoryByID", uint64(9)).Return(nil, nil)
			},
			expectedError: "category not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockMenuRepository)
			tt.setupMocks(mockRepo)

			service := NewMenuService(mockRepo)
			item, err := service.CreateItem(context.Background(), tt.item)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint64(7), item.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMenuService_UpdateItem_KeepsID(t *testing.T) {
	mockRepo := new(mocks.MockMenuRepository)
	mockRepo.On("FindItemByID", uint64(7)).Return(CreateMockMenuItem(7, 1, "Tiramisu", 5.49, true), nil)
	mockRepo.On("FindCategoryByID", uint64(2)).Return(&domain.MenuCategory{ID: 2, Name: "Specials"}, nil)
	mockRepo.On("UpdateItem", mock.AnythingOfType("*domain.MenuItem")).Return(nil)

	service := NewMenuService(mockRepo)
	item, err := service.UpdateItem(context.Background(), 7, domain.MenuItem{
		MenuCategoryID: 2,
		Name:           "Tiramisu Grande",
		Price:          6.99,
		Visible:        false,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint64(7), item.ID)
	assert.Equal(t, "Tiramisu Grande", item.Name)
	assert.False(t, item.Visible)
	mockRepo.AssertExpectations(t)
}

func TestBusinessService_GetBusinessInfo_CreatesDefault(t *testing.T) {
	mockRepo := new(mocks.MockBusinessInfoRepository)
	mockRepo.On("Find").Return(nil, nil)
	mockRepo.On("Save", mock.AnythingOfType("*domain.BusinessInfo")).Return(nil)

	service := NewBusinessService(mockRepo)
	info, err := service.GetBusinessInfo(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultBusinessName, info.Name)
	assert.Equal(t, domain.BusinessInfoID, info.ID)
	mockRepo.AssertExpectations(t)
}

// Two first reads racing past an empty table must both create the record at
// the fixed singleton key, so the upsert collapses them into one row.
func TestBusinessService_ConcurrentFirstReadsPinSingletonID(t *testing.T) {
	mockRepo := new(mocks.MockBusinessInfoRepository)
	mockRepo.On("Find").Return(nil, nil)
	mockRepo.On("Save", mock.MatchedBy(func(info *domain.BusinessInfo) bool {
		return info.ID == domain.BusinessInfoID
	})).Return(nil)

	service := NewBusinessService(mockRepo)

	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			info, err := service.GetBusinessInfo(context.Background())
			if err != nil {
				return err
			}
			assert.Equal(t, domain.BusinessInfoID, info.ID)
			return nil
		})
	}
	assert.NoError(t, g.Wait())
	mockRepo.AssertNumberOfCalls(t, "Save", 2)
}

func TestBusinessService_UpdateBusinessInfo(t *testing.T) {
	tests := []struct {
		name          string
		update        domain.BusinessInfo
		existing      *domain.BusinessInfo
		expectedError bool
	}{
		{
			name:     "updates existing record",
			update:   domain.BusinessInfo{Name: "Pronto Pizza", Phone: "555-0100"},
			existing: &domain.BusinessInfo{ID: 1, Name: domain.DefaultBusinessName},
		},
		{
			name:   "creates when absent",
			update: domain.BusinessInfo{Name: "Pronto Pizza"},
		},
		{
			name:          "empty name rejected",
			update:        domain.BusinessInfo{Name: " "},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockBusinessInfoRepository)
			if !tt.expectedError {
				if tt.existing != nil {
					mockRepo.On("Find").Return(tt.existing, nil)
				} else {
					mockRepo.On("Find").Return(nil, nil)
				}
				mockRepo.On("Save", mock.AnythingOfType("*domain.BusinessInfo")).Return(nil)
			}

			service := NewBusinessService(mockRepo)
			info, err := service.UpdateBusinessInfo(context.Background(), tt.update)

			if tt.expectedError {
				assert.True(t, domain.IsValidation(err))
				assert.Nil(t, info)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.update.Name, info.Name)
				if tt.existing != nil {
					assert.Equal(t, tt.existing.ID, info.ID)
				}
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
