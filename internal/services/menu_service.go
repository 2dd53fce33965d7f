package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"food-ordering/internal/domain"
	"food-ordering/internal/repository"

	"github.com/go-redis/redis/v8"
)

const (
	catalogCacheKey = "menu:catalog"
	catalogCacheTTL = time.Minute
)

// MenuService is the menu catalog plus the admin mutation surface. Reads of
// the customer-facing catalog go through a short-lived redis cache; every
// admin write drops the cached copy.
type MenuService struct {
	repo        repository.MenuRepository
	redisClient *redis.Client
}

func NewMenuService(r repository.MenuRepository) *MenuService {
	return &MenuService{repo: r}
}

func (s *MenuService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// ListCatalog is the customer-facing read: visible items only, nested under
// their categories, both levels in display order.
func (s *MenuService) ListCatalog(ctx context.Context) ([]domain.MenuCategory, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var cats []domain.MenuCategory
			if err := json.Unmarshal([]byte(cached), &cats); err == nil {
				return cats, nil
			}
		}
	}

	cats, err := s.repo.ListCategoriesWithItems(true)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(cats); err == nil {
			s.redisClient.Set(ctx, catalogCacheKey, data, catalogCacheTTL)
		}
	}
	return cats, nil
}

func (s *MenuService) ListCategories(ctx context.Context, includeItems bool) ([]domain.MenuCategory, error) {
	if includeItems {
		return s.repo.ListCategoriesWithItems(false)
	}
	return s.repo.ListCategories()
}

func (s *MenuService) GetCategory(ctx context.Context, id uint64) (*domain.MenuCategory, error) {
	c, err := s.repo.FindCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (s *MenuService) CreateCategory(ctx context.Context, name string, sortOrder int) (*domain.MenuCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	c := &domain.MenuCategory{Name: name, SortOrder: sortOrder}
	if err := s.repo.CreateCategory(c); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return c, nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, id uint64, name string, sortOrder int) (*domain.MenuCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.SortOrder = sortOrder
	if err := s.repo.UpdateCategory(c); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return c, nil
}

// DeleteCategory refuses to delete a category that still owns items rather
// than cascading, so no item is ever silently orphaned.
func (s *MenuService) DeleteCategory(ctx context.Context, id uint64) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	n, err := s.repo.CountItemsInCategory(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrCategoryNotEmpty
	}
	if err := s.repo.DeleteCategory(id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

// ListItems serves the admin item list; visibleOnly narrows it to what a
// customer would see.
func (s *MenuService) ListItems(ctx context.Context, categoryID uint64, visibleOnly bool) ([]domain.MenuItem, error) {
	return s.repo.ListItems(categoryID, visibleOnly)
}

func (s *MenuService) GetItem(ctx context.Context, id uint64) (*domain.MenuItem, error) {
	i, err := s.repo.FindItemByID(id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.ErrItemNotFound
	}
	return i, nil
}

func (s *MenuService) CreateItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	if err := s.validateItem(ctx, &item); err != nil {
		return nil, err
	}
	if err := s.repo.CreateItem(&item); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return &item, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, id uint64, item domain.MenuItem) (*domain.MenuItem, error) {
	existing, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	item.ID = existing.ID
	if err := s.validateItem(ctx, &item); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateItem(&item); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return &item, nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id uint64) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteItem(id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *MenuService) validateItem(ctx context.Context, item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if item.Price < 0 {
		return &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if item.MenuCategoryID == 0 {
		return &domain.ValidationError{Field: "menuCategoryId", Reason: "is required"}
	}
	cat, err := s.repo.FindCategoryByID(item.MenuCategoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (s *MenuService) invalidateCatalog(ctx context.Context) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, catalogCacheKey)
	}
}
