package mysql

import (
	"errors"

	"food-ordering/internal/domain"
	"food-ordering/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type businessRepo struct {
	db *gorm.DB
}

func NewBusinessInfoRepository(db *gorm.DB) repository.BusinessInfoRepository {
	return &businessRepo{db: db}
}

func (r *businessRepo) Find() (*domain.BusinessInfo, error) {
	var info domain.BusinessInfo
	if err := r.db.First(&info, domain.BusinessInfoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// Save upserts on the fixed primary key, so two racing first reads both land
// on the singleton row instead of inserting twice.
func (r *businessRepo) Save(info *domain.BusinessInfo) error {
	info.ID = domain.BusinessInfoID
	return r.db.Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"name", "address", "phone", "hours", "logo_url", "updated_at"}),
	}).Create(info).Error
}
