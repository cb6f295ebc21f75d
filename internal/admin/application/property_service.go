package application

import (
	"context"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// propertyService implements PropertyService.
type propertyService struct {
	repo PropertyRepository
}

func NewPropertyService(repo PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

func (s *propertyService) List(ctx context.Context, filter PropertyFilter) ([]domain.Property, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.repo.Find(ctx, filter)
}

func (s *propertyService) Detail(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

// SetActive は検索対象に含めるかどうかを切り替える。検索カウンタには触れない。
func (s *propertyService) SetActive(ctx context.Context, id string, active bool) (*domain.Property, error) {
	return s.repo.SetActive(ctx, id, active)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
