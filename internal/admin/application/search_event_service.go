package application

import (
	"context"
	"strings"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

type searchEventService struct {
	repo SearchEventRepository
}

func NewSearchEventService(repo SearchEventRepository) SearchEventService {
	return &searchEventService{repo: repo}
}

func (s *searchEventService) List(ctx context.Context, filter SearchEventFilter) ([]domain.SearchEvent, error) {
	filter.UserID = strings.TrimSpace(filter.UserID)
	filter.Limit = clampLimit(filter.Limit)
	return s.repo.List(ctx, filter)
}
