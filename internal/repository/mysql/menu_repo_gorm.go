package mysql

import (
	"errors"
	"log"

	"food-ordering/internal/domain"
	"food-ordering/internal/repository"

	"gorm.io/gorm"
)

type menuRepo struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) ListCategories() ([]domain.MenuCategory, error) {
	var out []domain.MenuCategory
	if err := r.db.Order("sort_order ASC, name ASC").Find(&out).Error; err != nil {
		log.Printf("ListCategories error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) ListCategoriesWithItems(visibleOnly bool) ([]domain.MenuCategory, error) {
	q := r.db.Order("sort_order ASC, name ASC").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			if visibleOnly {
				db = db.Where("visible = ?", true)
			}
			return db.Order("sort_order ASC")
		})
	var out []domain.MenuCategory
	if err := q.Find(&out).Error; err != nil {
		log.Printf("ListCategoriesWithItems error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) FindCategoryByID(id uint64) (*domain.MenuCategory, error) {
	var c domain.MenuCategory
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *menuRepo) CreateCategory(c *domain.MenuCategory) error {
	return r.db.Create(c).Error
}

func (r *menuRepo) UpdateCategory(c *domain.MenuCategory) error {
	return r.db.Model(&domain.MenuCategory{ID: c.ID}).
		Updates(map[string]any{"name": c.Name, "sort_order": c.SortOrder}).Error
}

func (r *menuRepo) DeleteCategory(id uint64) error {
	return r.db.Delete(&domain.MenuCategory{}, id).Error
}

func (r *menuRepo) CountItemsInCategory(id uint64) (int64, error) {
	var n int64
	err := r.db.Model(&domain.MenuItem{}).Where("menu_category_id = ?", id).Count(&n).Error
	return n, err
}

// ListItems orders by the owning category's sort order first so the flat
// item list matches the nested category view.
func (r *menuRepo) ListItems(categoryID uint64, visibleOnly bool) ([]domain.MenuItem, error) {
	q := r.db.Model(&domain.MenuItem{}).
		Joins("JOIN menu_categories ON menu_categories.id = menu_items.menu_category_id").
		Order("menu_categories.sort_order ASC, menu_items.sort_order ASC")
	if categoryID != 0 {
		q = q.Where("menu_items.menu_category_id = ?", categoryID)
	}
	if visibleOnly {
		q = q.Where("menu_items.visible = ?", true)
	}
	var out []domain.MenuItem
	if err := q.Find(&out).Error; err != nil {
		log.Printf("ListItems error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) FindItemByID(id uint64) (*domain.MenuItem, error) {
	var i domain.MenuItem
	if err := r.db.First(&i, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *menuRepo) CreateItem(i *domain.MenuItem) error {
	return r.db.Create(i).Error
}

func (r *menuRepo) UpdateItem(i *domain.MenuItem) error {
	return r.db.Model(&domain.MenuItem{ID: i.ID}).Updates(map[string]any{
		"menu_category_id": i.MenuCategoryID,
		"name":             i.Name,
		"description":      i.Description,
		"price":            i.Price,
		"image_url":        i.ImageURL,
		"visible":          i.Visible,
		"sort_order":       i.SortOrder,
	}).Error
}

func (r *menuRepo) DeleteItem(id uint64) error {
	return r.db.Delete(&domain.MenuItem{}, id).Error
}
