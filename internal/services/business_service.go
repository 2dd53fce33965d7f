package services

import (
	"context"
	"strings"

	"food-ordering/internal/domain"
	"food-ordering/internal/repository"
)

// BusinessService manages the singleton business record.
type BusinessService struct {
	repo repository.BusinessInfoRepository
}

func NewBusinessService(r repository.BusinessInfoRepository) *BusinessService {
	return &BusinessService{repo: r}
}

// GetBusinessInfo creates a default record on first read, so the storefront
// always has something to render.
func (s *BusinessService) GetBusinessInfo(ctx context.Context) (*domain.BusinessInfo, error) {
	info, err := s.repo.Find()
	if err != nil {
		return nil, err
	}
	if info != nil {
		return info, nil
	}

	info = &domain.BusinessInfo{ID: domain.BusinessInfoID, Name: domain.DefaultBusinessName}
	if err := s.repo.Save(info); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *BusinessService) UpdateBusinessInfo(ctx context.Context, update domain.BusinessInfo) (*domain.BusinessInfo, error) {
	if strings.TrimSpace(update.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	info, err := s.repo.Find()
	if err != nil {
		return nil, err
	}
	if info == nil {
		info = &domain.BusinessInfo{ID: domain.BusinessInfoID}
	}

	info.Name = update.Name
	info.Address = update.Address
	info.Phone = update.Phone
	info.Hours = update.Hours
	info.LogoURL = update.LogoURL

	if err := s.repo.Save(info); err != nil {
		return nil, err
	}
	return info, nil
}
