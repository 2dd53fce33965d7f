package mysql

import (
	"errors"
	"log"
	"time"

	"food-ordering/internal/domain"
	"food-ordering/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Save inserts the order together with its line items in one transaction.
func (r *orderRepo) Save(order *domain.Order) error {
	result := r.db.Create(order)
	if result.Error != nil {
		log.Printf("Database save error: %v", result.Error)
		return result.Error
	}
	if order.ID == 0 {
		return errors.New("failed to assign order ID")
	}
	return nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindAll(status domain.OrderStatus) ([]domain.Order, error) {
	q := r.db.Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []domain.Order
	if err := q.Find(&out).Error; err != nil {
		log.Printf("FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

// UpdateStatus performs the compare-and-swap status write. The WHERE clause
// on the current status makes concurrent transitions against the same order
// resolve to exactly one winner; a stale request affects zero rows.
func (r *orderRepo) UpdateStatus(id uint64, from, to domain.OrderStatus, at time.Time) (bool, error) {
	result := r.db.Model(&domain.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": at})
	if result.Error != nil {
		log.Printf("UpdateStatus error: %v", result.Error)
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
